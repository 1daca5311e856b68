package edam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFileType(t *testing.T) {
	tests := []struct {
		tag  string
		want FileType
	}{
		{tag: "tclSource", want: FileTypeTCL},
		{tag: "verilogSource", want: FileTypeVerilog},
		{tag: "verilogSource-2005", want: FileTypeVerilog},
		{tag: "vhdlSource", want: FileTypeVHDL},
		{tag: "vhdlSource-2008", want: FileTypeVHDL},
		{tag: "UCF", want: FileTypeUCF},
		{tag: "BMM", want: FileTypeBMM},
		{tag: "user", want: FileTypeUser},
		{tag: "systemVerilogSource", want: FileTypeUnknown},
		{tag: "xdc", want: FileTypeUnknown},
		{tag: "", want: FileTypeUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseFileType(tc.tag))
		})
	}
}

func TestSourceFileKind(t *testing.T) {
	f := SourceFile{Name: "a.vhd", FileType: "vhdlSource-93"}
	assert.Equal(t, FileTypeVHDL, f.Kind())
	assert.Equal(t, "vhdlSource", f.Kind().String())
}
