package ise

import "text/template"

var (
	// The TCL script creating the ISE project and running it up to the
	// bit file. The "settings" template holds the synthesis process
	// properties; every line it emits is preceded by a newline.
	tclTpl = template.Must(template.New("tcl").Parse(
		`# GENERATED FILE, DO NOT EDIT
# ISE project script
# Project name: "{{ .Design }}"
project new {{ .Design }}
project set family {{ .Family }}
project set device {{ .Device }}
project set package {{ .Package }}
project set speed {{ .Speed }}
project set "Generate Detailed MAP Report" true
{{- template "settings" . }}
{{- range .Commands }}
{{ . }}
{{- end }}
project set top "{{ .Toplevel }}"

process run "Generate Programming File"
{{ define "settings" }}
{{- with .Macros }}
project set "Verilog Macros" "{{ . }}" -process "Synthesize - XST"
{{- end }}
{{- with .Params }}
project set "Generics, Parameters" "{{ . }}" -process "Synthesize - XST"
{{- end }}
{{- with .IncludeDirs }}
project set "Verilog Include Directories" "{{ . }}" -process "Synthesize - XST"
{{- end }}
{{- end }}`))

	// The impact batch script for programming the device.
	pgmTpl = template.Must(template.New("pgm").Parse(
		`# GENERATED FILE, DO NOT EDIT
# Batch script for programming the device using a JTAG interface.
# Used with:
# $ impact -batch {{ .PgmFile }}

setMode -bscan
setCable -port auto
addDevice -p 1 -file {{ .BitFile }}
program -p 1
saveCDF -file {{ .CdfFile }}
quit
`))
)

type tclBinding struct {
	// Design is the ISE project name.
	Design  string
	Family  string
	Device  string
	Package string
	Speed   string
	// Macros, Params and IncludeDirs are "|" joined; empty ones are not
	// emitted.
	Macros      string
	Params      string
	IncludeDirs string
	// Commands add the source files, in order.
	Commands []string
	// Toplevel is the top-level module.
	Toplevel string
}

type pgmBinding struct {
	PgmFile string
	BitFile string
	CdfFile string
}
