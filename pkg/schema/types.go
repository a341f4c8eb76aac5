package schema

import "strings"

// Owner is the administrative domain of a schema. It constrains which
// storage-key namespace the schema's properties may use.
type Owner int

const (
	OwnerPlatform Owner = iota
	OwnerVendor
	OwnerOdm
)

func (o Owner) String() string {
	return []string{"Platform", "Vendor", "Odm"}[o]
}

// Access is the mutability classification of a property. ReadWrite is the
// only variant whose storage key may not carry the "ro." prefix.
type Access int

const (
	AccessReadonly Access = iota
	AccessWriteonce
	AccessReadWrite
)

func (a Access) String() string {
	return []string{"Readonly", "Writeonce", "ReadWrite"}[a]
}

// Scope is the visibility classification of a property's generated API.
// ScopeSystem is deprecated and rewritten to ScopePublic during default
// resolution.
type Scope int

const (
	ScopePublic Scope = iota
	ScopeInternal
	ScopeSystem
)

func (s Scope) String() string {
	return []string{"Public", "Internal", "System"}[s]
}

// Type is the abstract property type.
type Type int

const (
	TypeBoolean Type = iota
	TypeInteger
	TypeLong
	TypeDouble
	TypeString
	TypeEnum
	TypeBooleanList
	TypeIntegerList
	TypeLongList
	TypeDoubleList
	TypeStringList
	TypeEnumList
)

func (t Type) String() string {
	return []string{
		"Boolean", "Integer", "Long", "Double", "String", "Enum",
		"BooleanList", "IntegerList", "LongList", "DoubleList", "StringList", "EnumList",
	}[t]
}

// IsList reports whether t is a list variant.
func (t Type) IsList() bool {
	return t >= TypeBooleanList
}

// Element returns the scalar type a list variant carries. For scalar types it
// returns t unchanged.
func (t Type) Element() Type {
	if t.IsList() {
		return t - TypeBooleanList
	}
	return t
}

// Property is one schema entry, compiled into one getter/setter pair.
type Property struct {
	// APIName is the human-facing name; charset is alnum plus "_-.".
	APIName string
	// PropName is the explicit storage key. Empty means the key is derived
	// from access, owner and APIName during default resolution.
	PropName string
	Type     Type
	Access   Access
	Scope    Scope
	// EnumValues is the pipe-delimited ordered value list; meaningful only
	// for TypeEnum and TypeEnumList.
	EnumValues string
	// IntegerAsBool makes the generated code store booleans as "1"/"0".
	// Valid only for TypeBoolean and TypeBooleanList.
	IntegerAsBool bool
}

// EnumValueList splits EnumValues on "|", preserving declaration order.
func (p *Property) EnumValueList() []string {
	if p.EnumValues == "" {
		return nil
	}
	return strings.Split(p.EnumValues, "|")
}

// Properties is one parsed schema file: the unit of compilation.
type Properties struct {
	// Module is the dotted module path. The last segment names the generated
	// module; the leading segments form the enclosing namespace path.
	Module string
	Owner  Owner
	Props  []Property
}

// ModuleName returns the last segment of the module path.
func (p *Properties) ModuleName() string {
	return p.Module[strings.LastIndex(p.Module, ".")+1:]
}

// NamespaceSegments returns the module path split on dots, in order.
func (p *Properties) NamespaceSegments() []string {
	return strings.Split(p.Module, ".")
}
