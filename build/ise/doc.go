// Package ise is the backend for the Xilinx ISE toolchain.
//
// It generates a TCL project script for xtclsh from a project description,
// runs it to synthesize the design down to a bit file, and generates and
// runs an impact batch script that loads the bit file onto the device over
// JTAG.
package ise
