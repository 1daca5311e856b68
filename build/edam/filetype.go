package edam

import "strings"

// FileType is the closed set of source file kinds a backend dispatches on.
type FileType int

const (
	// FileTypeUnknown covers every tag no backend knows how to handle.
	FileTypeUnknown FileType = iota
	FileTypeTCL
	FileTypeVerilog
	FileTypeVHDL
	FileTypeUCF
	FileTypeBMM
	// FileTypeUser files are carried along for user scripts only.
	FileTypeUser
)

// ParseFileType maps a file type tag to its kind. Verilog and VHDL tags are
// matched by prefix, so "verilogSource-2005" and "vhdlSource-2008" resolve
// to the plain language kinds.
func ParseFileType(tag string) FileType {
	switch {
	case tag == "tclSource":
		return FileTypeTCL
	case strings.HasPrefix(tag, "verilogSource"):
		return FileTypeVerilog
	case tag == "UCF":
		return FileTypeUCF
	case tag == "BMM":
		return FileTypeBMM
	case strings.HasPrefix(tag, "vhdlSource"):
		return FileTypeVHDL
	case tag == "user":
		return FileTypeUser
	}
	return FileTypeUnknown
}

func (t FileType) String() string {
	switch t {
	case FileTypeTCL:
		return "tclSource"
	case FileTypeVerilog:
		return "verilogSource"
	case FileTypeVHDL:
		return "vhdlSource"
	case FileTypeUCF:
		return "UCF"
	case FileTypeBMM:
		return "BMM"
	case FileTypeUser:
		return "user"
	}
	return "unknown"
}
