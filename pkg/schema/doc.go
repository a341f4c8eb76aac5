// Package schema defines the in-memory model of a sysprop schema file and
// parses schema text (protobuf text format) into that model.
//
// A schema file describes one generated module: a dotted module path, an
// owner, and an ordered list of properties. The model carries no behavior
// beyond simple accessors; validation and default resolution live in
// pkg/validation, code generation in pkg/codegen.
package schema
