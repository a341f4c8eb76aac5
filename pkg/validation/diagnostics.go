package validation

import "fmt"

// Severity indicates whether a diagnostic blocks compilation.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	return []string{"ERROR", "WARNING"}[s]
}

// Rule identifiers carried by diagnostics.
const (
	RuleInvalidModuleName  = "INVALID_MODULE_NAME"
	RuleNoProperties       = "NO_PROPERTIES"
	RuleInvalidAPIName     = "INVALID_API_NAME"
	RuleEmptyEnumValues    = "EMPTY_ENUM_VALUES"
	RuleInvalidEnumValue   = "INVALID_ENUM_VALUE"
	RuleDuplicateEnumValue = "DUPLICATE_ENUM_VALUE"
	RuleInvalidPropName    = "INVALID_PROP_NAME"
	RuleNamespaceMismatch  = "NAMESPACE_MISMATCH"
	RuleReadWriteRoPrefix  = "READWRITE_RO_PREFIX"
	RuleIntegerAsBoolType  = "INTEGER_AS_BOOL_TYPE"
	RuleDuplicateAPIName   = "DUPLICATE_API_NAME"
	RuleDeprecatedScope    = "DEPRECATED_SCOPE"
)

// Diagnostic is one validation or normalization finding. Fatal diagnostics
// double as errors so a compile call can surface the message verbatim.
type Diagnostic struct {
	// Location is the api_name or storage key the finding is about.
	Location string
	Rule     string
	Message  string
	Severity Severity
}

func (d *Diagnostic) Error() string {
	return d.Message
}

func errorf(location, rule, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Location: location,
		Rule:     rule,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityError,
	}
}

func warningf(location, rule, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Location: location,
		Rule:     rule,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityWarning,
	}
}
