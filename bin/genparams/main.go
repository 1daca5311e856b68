// genparams prints the ISE synthesis property directives for a set of
// Verilog defines, parameters and include directories, for splicing into a
// hand written project script.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/filmil/bazel_rules_ise/build/edam"
	"github.com/filmil/bazel_rules_ise/build/ise"
)

// KVList collects repeated NAME=VALUE flags, in order.
type KVList struct {
	values edam.Params
}

var _ flag.Value = (*KVList)(nil)

func (self *KVList) Set(v string) error {
	name, value, ok := strings.Cut(v, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected NAME=VALUE, got: %q", v)
	}
	self.values = append(self.values, edam.Param{Name: name, Value: parseValue(value)})
	return nil
}

func (self *KVList) String() string {
	var out []string
	for _, e := range self.values {
		out = append(out, e.Name+"="+edam.FormatValue(e.Value, ""))
	}
	return strings.Join(out, ";")
}

func (self *KVList) Iter() edam.Params {
	return self.values
}

// RepeatedString collects repeated string flags, in order.
type RepeatedString struct {
	values []string
}

var _ flag.Value = (*RepeatedString)(nil)

func (s *RepeatedString) Set(v string) error {
	s.values = append(s.values, v)
	return nil
}

func (s *RepeatedString) String() string {
	return strings.Join(s.values, ",")
}

// parseValue types a flag value: true/false are booleans, integers stay
// integers, anything else is a string.
func parseValue(v string) any {
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	return v
}

func run(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("genparams", flag.ContinueOnError)
	var (
		defines, generics KVList
		includeDirs       RepeatedString
	)
	fs.Var(&defines, "define", "Adds a Verilog macro, NAME=VALUE")
	fs.Var(&generics, "generic", "Adds a parameter or generic, NAME=VALUE")
	fs.Var(&includeDirs, "include-dir", "Adds a Verilog include directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return ise.Settings(w, defines.Iter(), generics.Iter(), includeDirs.values)
}

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
