// Package cli implements the syspropc command line interface: compile one
// schema file, validate without emitting, and list available backends.
package cli
