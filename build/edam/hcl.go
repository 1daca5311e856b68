package edam

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

// hclProject is the HCL shape of a project:
//
//	name     = "blinky"
//	toplevel = "blinky"
//
//	tool "ise" {
//	  options = { family = "spartan6", device = "xc6slx9" }
//	}
//
//	vlogdefine "SIMULATION" { value = false }
//	vlogparam "WIDTH" { value = 8 }
//
//	file "rtl/blinky.v" { type = "verilogSource" }
//
// Blocks keep their order, which maps do not.
type hclProject struct {
	Name     string     `hcl:"name"`
	Toplevel string     `hcl:"toplevel,optional"`
	Tools    []hclTool  `hcl:"tool,block"`
	Defines  []hclValue `hcl:"vlogdefine,block"`
	Params   []hclValue `hcl:"vlogparam,block"`
	Files    []hclFile  `hcl:"file,block"`
}

type hclTool struct {
	Name    string            `hcl:"name,label"`
	Options map[string]string `hcl:"options,optional"`
}

type hclValue struct {
	Name  string    `hcl:"name,label"`
	Value cty.Value `hcl:"value"`
}

type hclFile struct {
	Name          string `hcl:"name,label"`
	Type          string `hcl:"type"`
	LogicalName   string `hcl:"logical_name,optional"`
	IsIncludeFile bool   `hcl:"is_include_file,optional"`
	IncludePath   string `hcl:"include_path,optional"`
}

func decodeHCL(filename string, data []byte) (*Project, error) {
	var raw hclProject
	if err := hclsimple.Decode(filename, data, nil, &raw); err != nil {
		return nil, err
	}
	p := &Project{
		Name:     raw.Name,
		Toplevel: raw.Toplevel,
	}
	if len(raw.Tools) > 0 {
		p.ToolOptions = make(map[string]map[string]string, len(raw.Tools))
		for _, t := range raw.Tools {
			p.ToolOptions[t.Name] = t.Options
		}
	}
	var err error
	if p.VlogDefine, err = hclParams(raw.Defines); err != nil {
		return nil, fmt.Errorf("vlogdefine: %w", err)
	}
	if p.VlogParam, err = hclParams(raw.Params); err != nil {
		return nil, fmt.Errorf("vlogparam: %w", err)
	}
	for _, f := range raw.Files {
		p.Files = append(p.Files, SourceFile{
			Name:          f.Name,
			FileType:      f.Type,
			LogicalName:   f.LogicalName,
			IsIncludeFile: f.IsIncludeFile,
			IncludePath:   f.IncludePath,
		})
	}
	return p, nil
}

func hclParams(values []hclValue) (Params, error) {
	var out Params
	for _, v := range values {
		gv, err := ctyToGo(v.Value)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", v.Name, err)
		}
		out = append(out, Param{Name: v.Name, Value: gv})
	}
	return out, nil
}

// ctyToGo converts a primitive cty value into the Go value FormatValue
// understands.
func ctyToGo(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known")
	}
	switch v.Type() {
	case cty.Bool:
		return v.True(), nil
	case cty.String:
		return v.AsString(), nil
	case cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i, nil
			}
		}
		f, _ := bf.Float64()
		return f, nil
	}
	return nil, fmt.Errorf("unsupported value type: %v", v.Type().FriendlyName())
}
