package edam

import "path/filepath"

// SourceFile is a single entry of a design's file list.
type SourceFile struct {
	// Name is the path of the file, as the tool should see it.
	Name string `yaml:"name"`
	// FileType is the raw type tag, e.g. "verilogSource-2005".
	FileType string `yaml:"file_type"`
	// LogicalName is the VHDL library the file belongs to, if any.
	LogicalName string `yaml:"logical_name,omitempty"`
	// IsIncludeFile marks headers that are only reachable via include dirs.
	IsIncludeFile bool `yaml:"is_include_file,omitempty"`
	// IncludePath overrides the include directory derived from Name.
	IncludePath string `yaml:"include_path,omitempty"`
}

// Kind returns the parsed file type.
func (f SourceFile) Kind() FileType {
	return ParseFileType(f.FileType)
}

// Fileset splits files into the ordered list of sources to hand to a tool
// and the include directories contributed by include files. Include
// directories are de-duplicated and keep the order they were first seen in.
func Fileset(files []SourceFile) ([]SourceFile, []string) {
	var (
		src     []SourceFile
		incdirs []string
	)
	seen := map[string]bool{}
	for _, f := range files {
		if !f.IsIncludeFile {
			src = append(src, f)
			continue
		}
		dir := f.IncludePath
		if dir == "" {
			dir = filepath.Dir(f.Name)
		}
		if seen[dir] {
			continue
		}
		seen[dir] = true
		incdirs = append(incdirs, dir)
	}
	return src, incdirs
}
