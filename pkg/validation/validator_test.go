package validation

import (
	"testing"

	"github.com/platinummonkey/syspropc/pkg/schema"
)

func testProps() *schema.Properties {
	return &schema.Properties{
		Module: "com.example.TestProperties",
		Owner:  schema.OwnerPlatform,
		Props: []schema.Property{
			{APIName: "test_int", Type: schema.TypeInteger, Access: schema.AccessReadWrite, Scope: schema.ScopePublic},
		},
	}
}

func assertRule(t *testing.T, props *schema.Properties, wantRule string) *Diagnostic {
	t.Helper()
	diag := Validate(props)
	if diag == nil {
		t.Fatalf("Validate() = nil, want rule %s", wantRule)
	}
	if diag.Rule != wantRule {
		t.Fatalf("Validate() rule = %s (%q), want %s", diag.Rule, diag.Message, wantRule)
	}
	if diag.Severity != SeverityError {
		t.Errorf("Validate() severity = %v, want ERROR", diag.Severity)
	}
	return diag
}

func TestValidateWellFormed(t *testing.T) {
	if diag := Validate(testProps()); diag != nil {
		t.Fatalf("Validate() = %q, want nil", diag.Message)
	}
}

func TestValidateModuleName(t *testing.T) {
	tests := []struct {
		name     string
		module   string
		wantRule string
	}{
		{"no dots", "Single", RuleInvalidModuleName},
		{"empty", "", RuleInvalidModuleName},
		{"bad segment", "com.9bad.Props", RuleInvalidModuleName},
		{"empty segment", "com..Props", RuleInvalidModuleName},
		{"dash in segment", "com.ex-ample.Props", RuleInvalidModuleName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := testProps()
			props.Module = tt.module
			assertRule(t, props, tt.wantRule)
		})
	}
}

func TestValidateEmptyProperties(t *testing.T) {
	props := testProps()
	props.Props = nil
	assertRule(t, props, RuleNoProperties)
}

func TestValidateAPIName(t *testing.T) {
	props := testProps()
	props.Props[0].APIName = "bad name!"
	assertRule(t, props, RuleInvalidAPIName)

	props = testProps()
	props.Props[0].APIName = ""
	assertRule(t, props, RuleInvalidAPIName)

	// Hyphen, dot and underscore are all allowed.
	props = testProps()
	props.Props[0].APIName = "ok-name_1.x"
	if diag := Validate(props); diag != nil {
		t.Fatalf("Validate() = %q, want nil", diag.Message)
	}
}

func TestValidateEnumValues(t *testing.T) {
	enumProp := func(values string) *schema.Properties {
		props := testProps()
		props.Props[0].Type = schema.TypeEnum
		props.Props[0].EnumValues = values
		return props
	}

	assertRule(t, enumProp(""), RuleEmptyEnumValues)
	assertRule(t, enumProp("ok|9bad"), RuleInvalidEnumValue)
	assertRule(t, enumProp("with space|b"), RuleInvalidEnumValue)
	assertRule(t, enumProp("a|b|A"), RuleDuplicateEnumValue)
	assertRule(t, enumProp("value|VALUE"), RuleDuplicateEnumValue)

	if diag := Validate(enumProp("a|b|c|D|e|f|G")); diag != nil {
		t.Fatalf("Validate() = %q, want nil", diag.Message)
	}
}

func TestValidatePropNameCharset(t *testing.T) {
	props := testProps()
	props.Props[0].PropName = "bad key!"
	assertRule(t, props, RuleInvalidPropName)
}

func TestValidateNamespaceOwnership(t *testing.T) {
	tests := []struct {
		name     string
		owner    schema.Owner
		access   schema.Access
		propName string
		wantRule string // empty means valid
	}{
		{"platform plain", schema.OwnerPlatform, schema.AccessReadWrite, "debug.flag", ""},
		{"platform vendor key", schema.OwnerPlatform, schema.AccessReadWrite, "vendor.flag", RuleNamespaceMismatch},
		{"platform odm key", schema.OwnerPlatform, schema.AccessReadWrite, "odm.flag", RuleNamespaceMismatch},
		{"platform ro vendor key", schema.OwnerPlatform, schema.AccessReadonly, "ro.vendor.flag", RuleNamespaceMismatch},
		{"platform persist odm key", schema.OwnerPlatform, schema.AccessReadWrite, "persist.odm.flag", RuleNamespaceMismatch},
		{"platform hardware key", schema.OwnerPlatform, schema.AccessReadonly, "ro.hardware.flag", RuleNamespaceMismatch},
		{"vendor plain key", schema.OwnerVendor, schema.AccessReadWrite, "debug.flag", RuleNamespaceMismatch},
		{"vendor vendor key", schema.OwnerVendor, schema.AccessReadWrite, "vendor.flag", ""},
		{"vendor init.svc key", schema.OwnerVendor, schema.AccessReadWrite, "init.svc.vendor.flag", ""},
		{"vendor hardware key", schema.OwnerVendor, schema.AccessReadonly, "ro.hardware.flag", ""},
		{"vendor bare namespace", schema.OwnerVendor, schema.AccessReadWrite, "vendor.", RuleNamespaceMismatch},
		{"odm odm key", schema.OwnerOdm, schema.AccessReadWrite, "odm.flag", ""},
		{"odm persist key", schema.OwnerOdm, schema.AccessReadWrite, "persist.odm.flag", ""},
		{"odm vendor key", schema.OwnerOdm, schema.AccessReadWrite, "vendor.flag", RuleNamespaceMismatch},
		{"odm hardware key", schema.OwnerOdm, schema.AccessReadonly, "ro.hardware.flag", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := testProps()
			props.Owner = tt.owner
			props.Props[0].Access = tt.access
			props.Props[0].PropName = tt.propName

			diag := Validate(props)
			if tt.wantRule == "" {
				if diag != nil {
					t.Fatalf("Validate() = %q, want nil", diag.Message)
				}
				return
			}
			assertRule(t, props, tt.wantRule)
		})
	}
}

func TestValidateDerivedKeyNamespace(t *testing.T) {
	// With no explicit prop_name the previewed default key is what must
	// satisfy the namespace rules.
	props := testProps()
	props.Owner = schema.OwnerVendor
	if diag := Validate(props); diag != nil {
		t.Fatalf("Validate() = %q, want nil: derived key is vendor.test_int", diag.Message)
	}

	props = testProps()
	props.Owner = schema.OwnerVendor
	props.Props[0].Access = schema.AccessReadonly
	if diag := Validate(props); diag != nil {
		t.Fatalf("Validate() = %q, want nil: derived key is ro.vendor.test_int", diag.Message)
	}
}

func TestValidateReadWriteRoPrefix(t *testing.T) {
	props := testProps()
	props.Props[0].PropName = "ro.flag"
	assertRule(t, props, RuleReadWriteRoPrefix)

	// Non-ReadWrite access may use the prefix.
	props = testProps()
	props.Props[0].Access = schema.AccessReadonly
	props.Props[0].PropName = "ro.flag"
	if diag := Validate(props); diag != nil {
		t.Fatalf("Validate() = %q, want nil", diag.Message)
	}
}

func TestValidateIntegerAsBool(t *testing.T) {
	props := testProps()
	props.Props[0].IntegerAsBool = true
	assertRule(t, props, RuleIntegerAsBoolType)

	props = testProps()
	props.Props[0].Type = schema.TypeBoolean
	props.Props[0].IntegerAsBool = true
	if diag := Validate(props); diag != nil {
		t.Fatalf("Validate() = %q, want nil", diag.Message)
	}

	props = testProps()
	props.Props[0].Type = schema.TypeBooleanList
	props.Props[0].IntegerAsBool = true
	if diag := Validate(props); diag != nil {
		t.Fatalf("Validate() = %q, want nil", diag.Message)
	}
}

func TestValidateDuplicateDerivedIdentifiers(t *testing.T) {
	// "test.int" and "test_int" collide after identifier derivation even
	// though the raw API names differ.
	props := testProps()
	props.Props = append(props.Props, schema.Property{
		APIName: "test.int",
		Type:    schema.TypeString,
		Access:  schema.AccessReadWrite,
		Scope:   schema.ScopePublic,
	})
	diag := assertRule(t, props, RuleDuplicateAPIName)
	if diag.Location != "test.int" {
		t.Errorf("diagnostic location = %q, want the second property's api_name", diag.Location)
	}
}

// The rule order decides which single error a multiply-malformed schema
// reports; these cases pin that order.
func TestValidateRuleOrder(t *testing.T) {
	// Module errors come before property errors.
	props := testProps()
	props.Module = "bad"
	props.Props[0].APIName = "also bad!"
	assertRule(t, props, RuleInvalidModuleName)

	// Within one property, the api_name check precedes the enum check.
	props = testProps()
	props.Props[0].APIName = "bad name!"
	props.Props[0].Type = schema.TypeEnum
	props.Props[0].EnumValues = ""
	assertRule(t, props, RuleInvalidAPIName)

	// The enum check precedes the storage-key check.
	props = testProps()
	props.Props[0].Type = schema.TypeEnum
	props.Props[0].EnumValues = ""
	props.Props[0].PropName = "bad key!"
	assertRule(t, props, RuleEmptyEnumValues)

	// The namespace check precedes the ro. prefix check.
	props = testProps()
	props.Props[0].Access = schema.AccessReadWrite
	props.Props[0].PropName = "ro.vendor.flag"
	assertRule(t, props, RuleNamespaceMismatch)

	// Earlier properties report before later ones.
	props = testProps()
	props.Props[0].APIName = "bad name!"
	props.Props = append(props.Props, schema.Property{
		APIName: "also bad!",
		Type:    schema.TypeInteger,
		Access:  schema.AccessReadWrite,
	})
	diag := assertRule(t, props, RuleInvalidAPIName)
	if diag.Location != "bad name!" {
		t.Errorf("diagnostic location = %q, want the first property", diag.Location)
	}

	// Per-property checks all pass before the uniqueness pass runs.
	props = testProps()
	props.Props = append(props.Props,
		schema.Property{APIName: "test_int", Type: schema.TypeInteger, Access: schema.AccessReadWrite},
		schema.Property{APIName: "bad name!", Type: schema.TypeInteger, Access: schema.AccessReadWrite},
	)
	assertRule(t, props, RuleInvalidAPIName)
}

func TestValidateDoesNotMutate(t *testing.T) {
	props := testProps()
	props.Props[0].Scope = schema.ScopeSystem
	if diag := Validate(props); diag != nil {
		t.Fatalf("Validate() = %q, want nil", diag.Message)
	}
	if props.Props[0].PropName != "" {
		t.Errorf("Validate assigned PropName %q; it must not mutate", props.Props[0].PropName)
	}
	if props.Props[0].Scope != schema.ScopeSystem {
		t.Error("Validate rewrote Scope; it must not mutate")
	}
}
