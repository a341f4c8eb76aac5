// Package codegen turns a validated sysprop schema into generated accessor
// code for one target language.
//
// Backends form a closed set registered at init time and selected explicitly
// by ID at the entry point. Each backend maps the abstract property types to
// its own type vocabulary but implements the same contract: a getter that
// reads the property's storage key and parses it (absent or malformed
// content yields an absent result), and a setter that formats the value and
// reports the store write's success.
//
// Compile is the entry point: parse, validate (aborting with no output on
// the first violation), resolve defaults, emit, write.
package codegen
