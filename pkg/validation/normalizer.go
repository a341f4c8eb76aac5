package validation

import "github.com/platinummonkey/syspropc/pkg/schema"

// DefaultPropName derives the storage key for a property with no explicit
// prop_name: an "ro." prefix unless the property is ReadWrite, then the
// owner namespace, then the API name. Validate previews keys with this same
// function, so the validated key and the assigned key agree byte for byte.
func DefaultPropName(props *schema.Properties, prop *schema.Property) string {
	var ret string

	if prop.Access != schema.AccessReadWrite {
		ret = "ro."
	}

	switch props.Owner {
	case schema.OwnerVendor:
		ret += "vendor."
	case schema.OwnerOdm:
		ret += "odm."
	}

	return ret + prop.APIName
}

// Normalize fills unset optional fields in place and returns the non-fatal
// diagnostics it produced. It must only run on a schema that passed
// Validate; it cannot fail.
func Normalize(props *schema.Properties) []*Diagnostic {
	var warnings []*Diagnostic

	for i := range props.Props {
		prop := &props.Props[i]

		if prop.PropName == "" {
			prop.PropName = DefaultPropName(props, prop)
		}

		if prop.Scope == schema.ScopeSystem {
			warnings = append(warnings, warningf(prop.APIName, RuleDeprecatedScope,
				"Sysprop API %s: System scope is deprecated. Please use Public scope instead.",
				prop.APIName))
			prop.Scope = schema.ScopePublic
		}
	}

	return warnings
}
