package codegen

import (
	"fmt"
	"strings"

	"github.com/platinummonkey/syspropc/pkg/codegen/identifiers"
	"github.com/platinummonkey/syspropc/pkg/schema"
)

// GoBackend emits a single Go source file per module. Accessors take the
// property store explicitly and use pkg/propcodec for parse/format, so the
// generated code carries no state of its own: every getter is a fresh store
// lookup and every setter one store write.
//
// Generated names keep the derived identifier verbatim (Get_<identifier>,
// Set_<identifier>, Enum_<identifier>): the validator's uniqueness check
// runs on derived identifiers, and any case or prefix rewriting here could
// reintroduce collisions it already ruled out.
type GoBackend struct{}

func init() {
	RegisterBackend(GoBackend{})
}

func (GoBackend) ID() string { return "go" }

func (GoBackend) Generate(props *schema.Properties, _ string) ([]GeneratedFile, error) {
	return []GeneratedFile{
		{
			Name:    strings.ToLower(props.ModuleName()) + ".sysprop.go",
			Kind:    KindDefinition,
			Content: generateGoSource(props),
		},
	}, nil
}

func goScalarType(t schema.Type, apiName string) string {
	switch t {
	case schema.TypeBoolean:
		return "bool"
	case schema.TypeInteger:
		return "int32"
	case schema.TypeLong:
		return "int64"
	case schema.TypeDouble:
		return "float64"
	case schema.TypeString:
		return "string"
	case schema.TypeEnum:
		return "Enum_" + identifiers.FromAPIName(apiName)
	}
	panic(fmt.Sprintf("not a scalar type: %v", t))
}

func goType(prop *schema.Property) string {
	elem := goScalarType(prop.Type.Element(), prop.APIName)
	if prop.Type.IsList() {
		return "[]" + elem
	}
	return elem
}

func goZeroValue(prop *schema.Property) string {
	if prop.Type.IsList() {
		return "nil"
	}
	switch prop.Type {
	case schema.TypeBoolean:
		return "false"
	case schema.TypeString:
		return `""`
	default:
		return "0"
	}
}

func generateGoSource(props *schema.Properties) string {
	var b strings.Builder

	b.WriteString("// Code generated by the sysprop generator. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", strings.ToLower(props.ModuleName()))
	b.WriteString("import (\n")
	b.WriteString("\t\"github.com/platinummonkey/syspropc/pkg/propcodec\"\n")
	b.WriteString("\t\"github.com/platinummonkey/syspropc/pkg/propstore\"\n")
	b.WriteString(")\n\n")

	for i := range props.Props {
		writeGoAccessors(&b, &props.Props[i])
	}

	return b.String()
}

func writeGoAccessors(b *strings.Builder, prop *schema.Property) {
	sym := identifiers.FromAPIName(prop.APIName)
	t := goType(prop)
	key := prop.PropName

	if prop.Type.Element() == schema.TypeEnum {
		writeGoEnumDecl(b, prop)
	}

	// Getter: fresh lookup, absent or unparsable content yields (zero, false).
	fmt.Fprintf(b, "func Get_%s(s propstore.Store) (%s, bool) {\n", sym, t)
	fmt.Fprintf(b, "\traw, ok := s.Get(\"%s\")\n", key)
	b.WriteString("\tif !ok {\n")
	fmt.Fprintf(b, "\t\treturn %s, false\n", goZeroValue(prop))
	b.WriteString("\t}\n")
	fmt.Fprintf(b, "\treturn %s\n", goParseExpr(prop))
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "func Set_%s(s propstore.Store, value %s) bool {\n", sym, t)
	fmt.Fprintf(b, "\treturn s.Set(\"%s\", %s)\n", key, goFormatExpr(prop))
	b.WriteString("}\n\n")
}

func writeGoEnumDecl(b *strings.Builder, prop *schema.Property) {
	sym := identifiers.FromAPIName(prop.APIName)
	etype := "Enum_" + sym
	values := prop.EnumValueList()

	fmt.Fprintf(b, "type %s int32\n\n", etype)
	b.WriteString("const (\n")
	for i, value := range values {
		if i == 0 {
			fmt.Fprintf(b, "\t%s_%s %s = iota\n", etype, value, etype)
		} else {
			fmt.Fprintf(b, "\t%s_%s\n", etype, value)
		}
	}
	b.WriteString(")\n\n")

	fmt.Fprintf(b, "var enum_%s_names = []string{", sym)
	for i, value := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "\"%s\"", value)
	}
	b.WriteString("}\n\n")

	// One table backs both directions; parse and format stay inverses.
	fmt.Fprintf(b, "func parse_%s(s string) (%s, bool) {\n", sym, etype)
	fmt.Fprintf(b, "\tv, ok := propcodec.ParseEnum(enum_%s_names, s)\n", sym)
	fmt.Fprintf(b, "\treturn %s(v), ok\n}\n\n", etype)

	fmt.Fprintf(b, "func format_%s(v %s) string {\n", sym, etype)
	fmt.Fprintf(b, "\treturn propcodec.FormatEnum(enum_%s_names, int32(v))\n}\n\n", sym)
}

// goParseExpr returns the expression a getter's final return uses to parse
// the raw stored string.
func goParseExpr(prop *schema.Property) string {
	sym := identifiers.FromAPIName(prop.APIName)
	elem := prop.Type.Element()

	if !prop.Type.IsList() {
		switch elem {
		case schema.TypeEnum:
			return fmt.Sprintf("parse_%s(raw)", sym)
		default:
			return fmt.Sprintf("propcodec.%s(raw)", goScalarParser(elem))
		}
	}

	if elem == schema.TypeEnum {
		return fmt.Sprintf("propcodec.ParseList(raw, parse_%s)", sym)
	}
	return fmt.Sprintf("propcodec.ParseList(raw, propcodec.%s)", goScalarParser(elem))
}

func goScalarParser(t schema.Type) string {
	switch t {
	case schema.TypeBoolean:
		return "ParseBool"
	case schema.TypeInteger:
		return "ParseInt32"
	case schema.TypeLong:
		return "ParseInt64"
	case schema.TypeDouble:
		return "ParseFloat64"
	case schema.TypeString:
		return "ParseString"
	}
	panic(fmt.Sprintf("no scalar parser for type: %v", t))
}

func goScalarFormatter(prop *schema.Property) string {
	switch prop.Type.Element() {
	case schema.TypeBoolean:
		if prop.IntegerAsBool {
			return "FormatBoolAsInt"
		}
		return "FormatBool"
	case schema.TypeInteger:
		return "FormatInt32"
	case schema.TypeLong:
		return "FormatInt64"
	case schema.TypeDouble:
		return "FormatFloat64"
	case schema.TypeString:
		return "FormatString"
	}
	panic(fmt.Sprintf("no scalar formatter for property %q", prop.APIName))
}

// goFormatExpr returns the expression a setter submits to the store.
func goFormatExpr(prop *schema.Property) string {
	sym := identifiers.FromAPIName(prop.APIName)
	elem := prop.Type.Element()

	if !prop.Type.IsList() {
		switch elem {
		case schema.TypeString:
			return "value"
		case schema.TypeEnum:
			return fmt.Sprintf("format_%s(value)", sym)
		default:
			return fmt.Sprintf("propcodec.%s(value)", goScalarFormatter(prop))
		}
	}

	if elem == schema.TypeEnum {
		return fmt.Sprintf("propcodec.FormatList(value, format_%s)", sym)
	}
	return fmt.Sprintf("propcodec.FormatList(value, propcodec.%s)", goScalarFormatter(prop))
}
