// Package edam holds the EDA metadata a tool backend consumes: the ordered
// list of tagged source files, the Verilog defines and parameters, and the
// per-tool options of a design. Project descriptions are read from YAML or
// HCL files.
package edam
