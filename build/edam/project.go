package edam

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
)

// Project is the description of a design handed to a tool backend.
type Project struct {
	// Name of the design; generated scripts are named after it.
	Name string `yaml:"name"`
	// Toplevel is the top-level module. Defaults to Name.
	Toplevel string `yaml:"toplevel,omitempty"`
	// ToolOptions holds the options of each tool, keyed by tool name.
	ToolOptions map[string]map[string]string `yaml:"tool_options,omitempty"`
	// VlogDefine is the list of Verilog macros.
	VlogDefine Params `yaml:"vlogdefine,omitempty"`
	// VlogParam is the list of top-level Verilog parameters and VHDL generics.
	VlogParam Params `yaml:"vlogparam,omitempty"`
	// Files is the ordered list of source files. Ordering is important.
	Files []SourceFile `yaml:"files,omitempty"`
}

// Top returns the name of the top-level module.
func (p *Project) Top() string {
	if p.Toplevel != "" {
		return p.Toplevel
	}
	return p.Name
}

// Options returns the options for tool, never nil.
func (p *Project) Options(tool string) map[string]string {
	if opts, ok := p.ToolOptions[tool]; ok && opts != nil {
		return opts
	}
	return map[string]string{}
}

// Validate checks the fields every backend relies on.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	for i, f := range p.Files {
		if f.Name == "" {
			return fmt.Errorf("file #%d: no file name in %+v", i, f)
		}
	}
	return nil
}

// Load reads a project description. The format is picked by extension:
// .yaml and .yml are YAML, .hcl is HCL. Any afs URL is accepted.
func Load(ctx context.Context, location string) (*Project, error) {
	var decode func(string, []byte) (*Project, error)
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		decode = decodeYAML
	case ".hcl":
		decode = decodeHCL
	default:
		return nil, fmt.Errorf("unsupported project file format: %v", location)
	}
	if !strings.Contains(location, "://") {
		if abs, err := filepath.Abs(location); err == nil {
			location = abs
		}
	}
	data, err := afs.New().DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("could not read project file: %v: %w", location, err)
	}
	p, err := decode(location, data)
	if err != nil {
		return nil, fmt.Errorf("could not parse project file: %v: %w", location, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project file: %v: %w", location, err)
	}
	return p, nil
}
