package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/filmil/bazel_rules_ise/build/edam"
	"github.com/filmil/bazel_rules_ise/build/ise"
	"github.com/spf13/cobra"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

type options struct {
	project   string
	workRoot  string
	logLevel  string
	logFormat string
	tools     ise.Tools
}

func newRootCmd(outW, errW io.Writer) *cobra.Command {
	var opts options
	opts.tools = ise.DefaultTools()

	root := &cobra.Command{
		Use:   "isegen",
		Short: "Generates and runs Xilinx ISE project and programming scripts",
		Long: `isegen reads a project description (.yaml or .hcl) and drives the
Xilinx ISE toolchain with it. "configure" writes <name>.tcl into the work
root, "build" runs it through xtclsh, and "run" writes <name>.pgm and
programs the device with impact.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.project, "project", "p", "", "The project description file (.yaml, .yml or .hcl)")
	flags.StringVarP(&opts.workRoot, "work-root", "w", ".", "The directory to write scripts to and run tools in")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&opts.tools.XTclSh, "xtclsh", opts.tools.XTclSh, "The ISE TCL shell to run")
	flags.StringVar(&opts.tools.Impact, "impact", opts.tools.Impact, "The impact programming tool to run")
	cobra.CheckErr(root.MarkPersistentFlagRequired("project"))

	root.AddCommand(
		&cobra.Command{
			Use:   "configure",
			Short: "Writes the TCL project script",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				b, err := opts.backend(cmd.Context(), errW, outW)
				if err != nil {
					return err
				}
				a, err := b.WriteProjectScript(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(outW, a)
				return err
			},
		},
		&cobra.Command{
			Use:   "build",
			Short: "Runs the TCL project script through xtclsh",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				b, err := opts.backend(cmd.Context(), errW, outW)
				if err != nil {
					return err
				}
				return b.Build(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "run",
			Short: "Writes the impact batch script and programs the device",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				b, err := opts.backend(cmd.Context(), errW, outW)
				if err != nil {
					return err
				}
				return b.Program(cmd.Context())
			},
		},
	)
	return root
}

// backend validates the flags and loads the project.
func (o *options) backend(ctx context.Context, logW, toolW io.Writer) (*ise.Backend, error) {
	logFormat := strings.ToLower(o.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(o.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	logger := newLogger(logLevel, logFormat, logW)

	if ctx == nil {
		ctx = context.Background()
	}
	project, err := edam.Load(ctx, o.project)
	if err != nil {
		return nil, err
	}
	logger.Debug("Project loaded.", "name", project.Name, "files", len(project.Files))

	return ise.New(project, o.workRoot,
		ise.WithLogger(logger),
		ise.WithTools(o.tools),
		ise.WithOutput(toolW),
	), nil
}

// newLogger creates a logger writing to outW in the given format.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
