package edam

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Param is a single named define or parameter value. Value is one of bool,
// string, an integer or a float.
type Param struct {
	Name  string
	Value any
}

// Params is an ordered list of values. Order is significant: it is the
// order in which the values end up in generated scripts.
type Params []Param

var _ yaml.Unmarshaler = (*Params)(nil)

// UnmarshalYAML reads a YAML mapping keeping its key order. Duplicate names
// are an error.
func (p *Params) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of name to value", node.Line)
	}
	out := make(Params, 0, len(node.Content)/2)
	seen := map[string]int{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("line %d: %w", node.Content[i].Line, err)
		}
		if line, ok := seen[name]; ok {
			return fmt.Errorf("line %d: %v already defined at line %d", node.Content[i].Line, name, line)
		}
		seen[name] = node.Content[i].Line
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("line %d: %v: %w", node.Content[i+1].Line, name, err)
		}
		out = append(out, Param{Name: name, Value: value})
	}
	*p = out
	return nil
}

// FormatValue renders a parameter value for a tool script. Booleans become
// 1 or 0, strings are wrapped in quote, anything else is printed as is.
func FormatValue(v any, quote string) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		if t {
			return "1"
		}
		return "0"
	case string:
		return quote + t + quote
	}
	return fmt.Sprint(v)
}
