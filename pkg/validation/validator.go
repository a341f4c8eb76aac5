package validation

import (
	"strings"

	"github.com/platinummonkey/syspropc/pkg/codegen/identifiers"
	"github.com/platinummonkey/syspropc/pkg/schema"
)

// Validate checks props against the schema rules and returns the first
// violation, or nil when the schema is well formed. The rule order is part
// of the contract: a malformed schema always reports the same single error.
// Validate never mutates props; derived storage keys are previewed with the
// same formula Normalize later applies.
func Validate(props *schema.Properties) *Diagnostic {
	segments := strings.Split(props.Module, ".")
	if len(segments) <= 1 {
		return errorf(props.Module, RuleInvalidModuleName,
			"Invalid module name %q", props.Module)
	}
	for _, segment := range segments {
		if !schema.IsIdentifier(segment) {
			return errorf(props.Module, RuleInvalidModuleName,
				"Invalid name %q in module", segment)
		}
	}

	if len(props.Props) == 0 {
		return errorf(props.Module, RuleNoProperties,
			"There is no defined property")
	}

	for i := range props.Props {
		if diag := validateProp(props, &props.Props[i]); diag != nil {
			return diag
		}
	}

	seen := make(map[string]struct{}, len(props.Props))
	for i := range props.Props {
		prop := &props.Props[i]
		ident := identifiers.FromAPIName(prop.APIName)
		if _, ok := seen[ident]; ok {
			return errorf(prop.APIName, RuleDuplicateAPIName,
				"Duplicated API name %q", prop.APIName)
		}
		seen[ident] = struct{}{}
	}

	return nil
}

func validateProp(props *schema.Properties, prop *schema.Property) *Diagnostic {
	if !schema.IsPropertyName(prop.APIName) {
		return errorf(prop.APIName, RuleInvalidAPIName,
			"Invalid API name %q", prop.APIName)
	}

	if prop.Type == schema.TypeEnum || prop.Type == schema.TypeEnumList {
		if diag := validateEnumValues(prop); diag != nil {
			return diag
		}
	}

	propName := prop.PropName
	if propName == "" {
		propName = DefaultPropName(props, prop)
	}

	if !schema.IsPropertyName(propName) {
		return errorf(propName, RuleInvalidPropName,
			"Invalid prop name %q", propName)
	}

	switch props.Owner {
	case schema.OwnerPlatform:
		if isVendorKey(propName) || isOdmKey(propName) {
			return errorf(propName, RuleNamespaceMismatch,
				"Prop %q owned by platform cannot have vendor. or odm. namespace", propName)
		}
	case schema.OwnerVendor:
		if !isVendorKey(propName) {
			return errorf(propName, RuleNamespaceMismatch,
				"Prop %q owned by vendor should have vendor. namespace", propName)
		}
	case schema.OwnerOdm:
		if !isOdmKey(propName) {
			return errorf(propName, RuleNamespaceMismatch,
				"Prop %q owned by odm should have odm. namespace", propName)
		}
	}

	if prop.Access == schema.AccessReadWrite && strings.HasPrefix(propName, "ro.") {
		return errorf(propName, RuleReadWriteRoPrefix,
			"Prop %q is ReadWrite and also has prefix \"ro.\"", propName)
	}

	if prop.IntegerAsBool &&
		prop.Type != schema.TypeBoolean && prop.Type != schema.TypeBooleanList {
		return errorf(propName, RuleIntegerAsBoolType,
			"Prop %q has integer_as_bool: true, but is not a boolean", propName)
	}

	return nil
}

func validateEnumValues(prop *schema.Property) *Diagnostic {
	values := prop.EnumValueList()
	if len(values) == 0 {
		return errorf(prop.APIName, RuleEmptyEnumValues,
			"Enum values are empty for API %q", prop.APIName)
	}

	for _, value := range values {
		if !schema.IsIdentifier(value) {
			return errorf(prop.APIName, RuleInvalidEnumValue,
				"Invalid enum value %q for API %q", value, prop.APIName)
		}
	}

	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		upper := strings.ToUpper(value)
		if _, ok := seen[upper]; ok {
			return errorf(prop.APIName, RuleDuplicateEnumValue,
				"Duplicated enum value %q for API %q", value, prop.APIName)
		}
		seen[upper] = struct{}{}
	}

	return nil
}
