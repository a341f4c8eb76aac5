// Package identifiers derives generated-language identifiers from
// human-facing API names. The derivation is shared by the validator's
// uniqueness check and by every code generation backend, so two properties
// collide exactly when their generated symbols would.
package identifiers

import "strings"

var replacer = strings.NewReplacer("-", "_", ".", "_")

// FromAPIName turns an API name into a generated identifier: "-" and "."
// become "_", and a leading digit gets an underscore prepended.
func FromAPIName(apiName string) string {
	ret := replacer.Replace(apiName)
	if ret != "" && ret[0] >= '0' && ret[0] <= '9' {
		ret = "_" + ret
	}
	return ret
}

// EnumTypeName returns the synthesized enum type name for an enum-typed
// property: the derived identifier with a "_values" suffix.
func EnumTypeName(apiName string) string {
	return FromAPIName(apiName) + "_values"
}
