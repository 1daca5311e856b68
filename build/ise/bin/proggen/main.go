// proggen generates the impact batch script that programs a device with
// the bit file of a design.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path"

	"github.com/filmil/bazel_rules_ise/build/edam"
	"github.com/filmil/bazel_rules_ise/build/ise"
)

type Args struct {
	// WorkRoot is where the script is written and the bit file is expected.
	WorkRoot string
	// Name of the design; the script is <name>.pgm.
	Name string
	// Toplevel names the bit file. Defaults to Name.
	Toplevel string
}

func run(ctx context.Context, args Args) (*ise.Artifact, error) {
	if args.WorkRoot == "" {
		return nil, fmt.Errorf("param --work-root is required")
	}
	if args.Name == "" {
		return nil, fmt.Errorf("param --name is required")
	}

	p := &edam.Project{Name: args.Name, Toplevel: args.Toplevel}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	b := ise.New(p, args.WorkRoot, ise.WithLogger(logger))

	a, err := b.WriteProgrammingScript(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not write programming script: %v:\n\t\t%w", b.ProgrammingScriptPath(), err)
	}
	return a, nil
}

func main() {
	log.SetPrefix(fmt.Sprintf("%v: ", path.Base(os.Args[0])))

	var args Args
	flag.StringVar(&args.WorkRoot, "work-root", "", "The directory to write the script to")
	flag.StringVar(&args.Name, "name", "", "The design name")
	flag.StringVar(&args.Toplevel, "toplevel", "", "The top level entity, names the bit file")
	flag.Parse()

	a, err := run(context.Background(), args)
	if err != nil {
		log.Printf("ERROR:\n\twhile running: %v:\n\t%v", os.Args[0], err)
		os.Exit(1)
	}
	fmt.Println(a)
}
