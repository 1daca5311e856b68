// isegen generates and runs Xilinx ISE scripts for a design.
//
// The design is described by a project file (YAML or HCL) listing the
// source files, Verilog defines and parameters, and the ISE options.
//
//	isegen --project blinky.yaml --work-root out configure
//	isegen --project blinky.yaml --work-root out build
//	isegen --project blinky.yaml --work-root out run
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	// Use a minimal logger until the flags are parsed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "ERROR:\n\twhile running: %v:\n\t%v\n", os.Args[0], err)
		os.Exit(1)
	}
}
