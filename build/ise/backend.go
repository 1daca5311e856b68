package ise

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/filmil/bazel_rules_ise/build/edam"
	"github.com/filmil/bazel_rules_ise/build/launcher"
	"github.com/viant/afs"
)

// ToolName is the key of the ISE options in a project's tool options.
const ToolName = "ise"

const (
	buildErrorMessage   = "Failed to make FPGA load module"
	programErrorMessage = "impact tool returned an error"
)

// RequiredOptions must all be present in the ISE tool options.
var RequiredOptions = []string{"family", "device", "package", "speed"}

// Tools names the executables the backend runs.
type Tools struct {
	// XTclSh is the ISE TCL shell.
	XTclSh string
	// Impact is the device programming tool.
	Impact string
}

// DefaultTools returns the executables as installed by ISE.
func DefaultTools() Tools {
	return Tools{XTclSh: "xtclsh", Impact: "impact"}
}

// Backend generates and runs ISE scripts for one project.
type Backend struct {
	Project *edam.Project
	// WorkRoot is the directory scripts are written to and tools run in.
	WorkRoot string

	tools  Tools
	fs     afs.Service
	logger *slog.Logger
	output io.Writer
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Backend) {
		b.logger = logger
	}
}

// WithFileSystem sets the file system scripts are written through.
func WithFileSystem(fs afs.Service) Option {
	return func(b *Backend) {
		b.fs = fs
	}
}

// WithTools overrides the executables to run.
func WithTools(tools Tools) Option {
	return func(b *Backend) {
		b.tools = tools
	}
}

// WithOutput sets where tool diagnostics are copied to while tools run.
func WithOutput(w io.Writer) Option {
	return func(b *Backend) {
		b.output = w
	}
}

// New creates a backend for project, working in workRoot.
func New(project *edam.Project, workRoot string, opts ...Option) *Backend {
	if abs, err := filepath.Abs(workRoot); err == nil {
		workRoot = abs
	}
	b := &Backend{
		Project:  project,
		WorkRoot: workRoot,
		tools:    DefaultTools(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.fs == nil {
		b.fs = afs.New()
	}
	return b
}

// ProjectScriptPath is where the TCL project script is written.
func (b *Backend) ProjectScriptPath() string {
	return filepath.Join(b.WorkRoot, b.Project.Name+".tcl")
}

// ProgrammingScriptPath is where the impact batch script is written.
func (b *Backend) ProgrammingScriptPath() string {
	return filepath.Join(b.WorkRoot, b.Project.Name+".pgm")
}

// Validate checks that all required tool options are set.
func (b *Backend) Validate() error {
	if err := b.Project.Validate(); err != nil {
		return err
	}
	opts := b.Project.Options(ToolName)
	var missing []string
	for _, name := range RequiredOptions {
		if _, ok := opts[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &ConfigurationError{Tool: ToolName, Missing: missing}
	}
	return nil
}

// ProjectScript renders the TCL project script.
func (b *Backend) ProjectScript() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	opts := b.Project.Options(ToolName)
	src, incdirs := edam.Fileset(b.Project.Files)
	binding := tclBinding{
		Design:      b.Project.Name,
		Family:      opts["family"],
		Device:      opts["device"],
		Package:     opts["package"],
		Speed:       opts["speed"],
		Macros:      JoinMacros(b.Project.VlogDefine),
		Params:      JoinParams(b.Project.VlogParam),
		IncludeDirs: strings.Join(incdirs, "|"),
		Commands:    b.fileCommands(src),
		Toplevel:    b.Project.Top(),
	}
	var buf bytes.Buffer
	if err := tclTpl.Execute(&buf, &binding); err != nil {
		return nil, fmt.Errorf("while rendering project script: %w", err)
	}
	return buf.Bytes(), nil
}

// fileCommands returns the commands adding files to the project, in order.
// A VHDL library is declared right before the first file that uses it.
func (b *Backend) fileCommands(files []edam.SourceFile) []string {
	var commands []string
	libraries := map[string]bool{}
	for _, f := range files {
		switch f.Kind() {
		case edam.FileTypeTCL:
			commands = append(commands, "source "+f.Name)
		case edam.FileTypeVerilog, edam.FileTypeUCF, edam.FileTypeBMM:
			commands = append(commands, "xfile add "+f.Name)
		case edam.FileTypeVHDL:
			if f.LogicalName == "" {
				commands = append(commands, "xfile add "+f.Name)
				continue
			}
			if !libraries[f.LogicalName] {
				libraries[f.LogicalName] = true
				commands = append(commands, "lib_vhdl new "+f.LogicalName)
			}
			commands = append(commands, fmt.Sprintf("xfile add %v -lib_vhdl %v", f.Name, f.LogicalName))
		case edam.FileTypeUser:
		default:
			b.logger.Debug("Skipping file of unsupported type.", "file", f.Name, "file_type", f.FileType)
		}
	}
	return commands
}

// WriteProjectScript validates the options and (over)writes the TCL
// project script.
func (b *Backend) WriteProjectScript(ctx context.Context) (*Artifact, error) {
	data, err := b.ProjectScript()
	if err != nil {
		return nil, err
	}
	return b.write(ctx, b.ProjectScriptPath(), data)
}

// ProgrammingScript renders the impact batch script for the current
// toplevel.
func (b *Backend) ProgrammingScript() ([]byte, error) {
	top := b.Project.Top()
	binding := pgmBinding{
		PgmFile: b.ProgrammingScriptPath(),
		BitFile: filepath.Join(b.WorkRoot, top+".bit"),
		CdfFile: filepath.Join(b.WorkRoot, top+".cdf"),
	}
	var buf bytes.Buffer
	if err := pgmTpl.Execute(&buf, &binding); err != nil {
		return nil, fmt.Errorf("while rendering programming script: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteProgrammingScript (over)writes the impact batch script.
func (b *Backend) WriteProgrammingScript(ctx context.Context) (*Artifact, error) {
	data, err := b.ProgrammingScript()
	if err != nil {
		return nil, err
	}
	return b.write(ctx, b.ProgrammingScriptPath(), data)
}

// Configure prepares the work root for a build.
func (b *Backend) Configure(ctx context.Context) error {
	_, err := b.WriteProjectScript(ctx)
	return err
}

// Build runs the project script through xtclsh. The project script must
// have been written by Configure.
func (b *Backend) Build(ctx context.Context) error {
	return b.launcher(b.tools.XTclSh, []string{b.ProjectScriptPath()}, buildErrorMessage).Run(ctx)
}

// Program regenerates the batch script and runs impact on it to load the
// bit file onto the device.
func (b *Backend) Program(ctx context.Context) error {
	pgm, err := b.WriteProgrammingScript(ctx)
	if err != nil {
		return err
	}
	return b.launcher(b.tools.Impact, []string{"-batch", pgm.Path}, programErrorMessage).Run(ctx)
}

func (b *Backend) launcher(command string, args []string, errorMessage string) *launcher.Launcher {
	l := launcher.New(command, args, b.WorkRoot, errorMessage)
	l.Output = b.output
	l.Logger = b.logger
	return l
}

// JoinMacros renders Verilog macros as the value of the "Verilog Macros"
// property.
func JoinMacros(defines edam.Params) string {
	return join(defines, "")
}

// JoinParams renders parameters as the value of the "Generics, Parameters"
// property. String values are quoted so they survive the property's own
// quotes.
func JoinParams(params edam.Params) string {
	return join(params, `\"`)
}

func join(params edam.Params, quote string) string {
	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, p.Name+"="+edam.FormatValue(p.Value, quote))
	}
	return strings.Join(pairs, "|")
}

// Settings renders the synthesis property directives for the given macros,
// parameters and include directories, one per line. Empty inputs produce no
// directive.
func Settings(w io.Writer, defines, params edam.Params, incdirs []string) error {
	binding := tclBinding{
		Macros:      JoinMacros(defines),
		Params:      JoinParams(params),
		IncludeDirs: strings.Join(incdirs, "|"),
	}
	var buf bytes.Buffer
	if err := tclTpl.ExecuteTemplate(&buf, "settings", &binding); err != nil {
		return err
	}
	out := strings.TrimPrefix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}
