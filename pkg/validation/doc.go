// Package validation checks parsed sysprop schemas against the naming,
// ownership and type-consistency rules, and resolves defaulted fields.
//
// Validate is fail-fast: it reports the first violated rule and performs no
// mutation. Normalize runs after a successful Validate, fills in derived
// storage keys, rewrites the deprecated System scope and returns the
// non-fatal diagnostics it produced. Diagnostics are plain values; the
// package never logs.
package validation
