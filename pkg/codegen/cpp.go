package codegen

import (
	"fmt"
	"strings"

	"github.com/platinummonkey/syspropc/pkg/codegen/identifiers"
	"github.com/platinummonkey/syspropc/pkg/schema"
)

// CppBackend emits a header/source pair binding generated accessors to the
// platform property store via __system_property_find/read_callback/set.
type CppBackend struct{}

func init() {
	RegisterBackend(CppBackend{})
}

func (CppBackend) ID() string { return "cpp" }

func (CppBackend) Generate(props *schema.Properties, includePath string) ([]GeneratedFile, error) {
	base := props.ModuleName() + ".sysprop"
	return []GeneratedFile{
		{Name: base + ".h", Kind: KindDeclaration, Content: generateCppHeader(props)},
		{Name: base + ".cpp", Kind: KindDefinition, Content: generateCppSource(props, includePath)},
	}, nil
}

const cppGeneratedWarning = "// Generated by the sysprop generator. DO NOT EDIT!"

func cppScalarType(t schema.Type, apiName string) string {
	switch t {
	case schema.TypeBoolean:
		return "bool"
	case schema.TypeInteger:
		return "std::int32_t"
	case schema.TypeLong:
		return "std::int64_t"
	case schema.TypeDouble:
		return "double"
	case schema.TypeString:
		return "std::string"
	case schema.TypeEnum:
		return identifiers.EnumTypeName(apiName)
	}
	panic(fmt.Sprintf("not a scalar type: %v", t))
}

func cppType(prop *schema.Property) string {
	elem := cppScalarType(prop.Type.Element(), prop.APIName)
	if prop.Type.IsList() {
		return "std::vector<" + elem + ">"
	}
	return elem
}

func cppNamespace(props *schema.Properties) string {
	return strings.Join(props.NamespaceSegments(), "::")
}

// generateCppHeader emits the declaration surface: one include-guarded
// header with a getter/setter declaration pair per property in schema order,
// enum type declarations inlined immediately before the pair that uses them.
func generateCppHeader(props *schema.Properties) string {
	var b strings.Builder

	guard := "SYSPROPGEN_" + strings.ReplaceAll(props.Module, ".", "_") + "_H_"
	ns := cppNamespace(props)

	b.WriteString(cppGeneratedWarning + "\n\n")
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)
	b.WriteString("#include <cstdint>\n#include <optional>\n#include <string>\n#include <vector>\n\n")
	fmt.Fprintf(&b, "namespace %s {\n\n", ns)

	for i := range props.Props {
		prop := &props.Props[i]
		sym := identifiers.FromAPIName(prop.APIName)

		if prop.Type.Element() == schema.TypeEnum {
			fmt.Fprintf(&b, "enum class %s {\n", identifiers.EnumTypeName(prop.APIName))
			for _, value := range prop.EnumValueList() {
				fmt.Fprintf(&b, "    %s,\n", value)
			}
			b.WriteString("};\n\n")
		}

		t := cppType(prop)
		fmt.Fprintf(&b, "std::optional<%s> %s();\n", t, sym)
		fmt.Fprintf(&b, "bool %s(const %s& value);\n\n", sym, t)
	}

	fmt.Fprintf(&b, "}  // namespace %s\n\n", ns)
	fmt.Fprintf(&b, "#endif  // %s\n", guard)

	return b.String()
}

// Shared parse/format helpers, emitted once into the source file's anonymous
// namespace. Every DoParse specialization rejects malformed content by
// returning nullopt; the empty string parses as the empty list so format and
// parse stay inverses for lists too.
const cppSourceHelpers = `template <typename T> constexpr bool is_vector = false;

template <typename T> constexpr bool is_vector<std::vector<T>> = true;

template <> [[maybe_unused]] std::optional<bool> DoParse(const char* str) {
    static constexpr const char* kYes[] = {"1", "true"};
    static constexpr const char* kNo[] = {"0", "false"};

    for (const char* yes : kYes) {
        if (strcasecmp(yes, str) == 0) return std::make_optional(true);
    }

    for (const char* no : kNo) {
        if (strcasecmp(no, str) == 0) return std::make_optional(false);
    }

    return std::nullopt;
}

template <> [[maybe_unused]] std::optional<std::int32_t> DoParse(const char* str) {
    std::int32_t ret;
    bool success = android::base::ParseInt(str, &ret);
    return success ? std::make_optional(ret) : std::nullopt;
}

template <> [[maybe_unused]] std::optional<std::int64_t> DoParse(const char* str) {
    std::int64_t ret;
    bool success = android::base::ParseInt(str, &ret);
    return success ? std::make_optional(ret) : std::nullopt;
}

template <> [[maybe_unused]] std::optional<double> DoParse(const char* str) {
    int old_errno = errno;
    errno = 0;
    char* end;
    double ret = std::strtod(str, &end);
    if (errno != 0) {
        return std::nullopt;
    }
    if (str == end || *end != '\0') {
        errno = old_errno;
        return std::nullopt;
    }
    errno = old_errno;
    return std::make_optional(ret);
}

template <> [[maybe_unused]] std::optional<std::string> DoParse(const char* str) {
    return std::make_optional(str);
}

template <typename Vec> [[maybe_unused]] std::optional<Vec> DoParseList(const char* str) {
    if (*str == '\0') return std::make_optional(Vec{});
    Vec ret;
    for (auto&& element : android::base::Split(str, ",")) {
        auto parsed = DoParse<typename Vec::value_type>(element.c_str());
        if (!parsed) {
            return std::nullopt;
        }
        ret.emplace_back(std::move(*parsed));
    }
    return std::make_optional(std::move(ret));
}

template <typename T> inline std::optional<T> TryParse(const char* str) {
    if constexpr(is_vector<T>) {
        return DoParseList<T>(str);
    } else {
        return DoParse<T>(str);
    }
}

[[maybe_unused]] std::string FormatValue(std::int32_t value) {
    return std::to_string(value);
}

[[maybe_unused]] std::string FormatValue(std::int64_t value) {
    return std::to_string(value);
}

[[maybe_unused]] std::string FormatValue(double value) {
    return android::base::StringPrintf("%.*g", std::numeric_limits<double>::max_digits10, value);
}

[[maybe_unused]] std::string FormatValue(bool value) {
    return value ? "true" : "false";
}

template <typename T>
[[maybe_unused]] std::string FormatValue(const std::vector<T>& value) {
    if (value.empty()) return "";

    std::string ret;

    for (auto&& element : value) {
        if (!ret.empty()) ret.push_back(',');
        if constexpr(std::is_same_v<T, std::string>) {
            ret += element;
        } else {
            ret += FormatValue(element);
        }
    }

    return ret;
}
`

// Emitted only when a property is declared with integer_as_bool.
const cppIntegerAsBoolHelpers = `[[maybe_unused]] std::string FormatValueAsInt(bool value) {
    return value ? "1" : "0";
}

[[maybe_unused]] std::string FormatValueAsInt(const std::vector<bool>& value) {
    if (value.empty()) return "";

    std::string ret;

    for (bool element : value) {
        if (!ret.empty()) ret.push_back(',');
        ret += FormatValueAsInt(element);
    }

    return ret;
}
`

const cppGetProp = `template <typename T>
std::optional<T> GetProp(const char* key) {
    auto pi = __system_property_find(key);
    if (pi == nullptr) return std::nullopt;
    std::optional<T> ret;
    __system_property_read_callback(pi, [](void* cookie, const char*, const char* value, std::uint32_t) {
        *static_cast<std::optional<T>*>(cookie) = TryParse<T>(value);
    }, &ret);
    return ret;
}
`

// generateCppSource emits the definition surface: the private parse/format
// helpers and per-enum tables in an anonymous namespace, then the public
// accessor definitions in the module namespace, in schema order.
func generateCppSource(props *schema.Properties, includePath string) string {
	var b strings.Builder
	ns := cppNamespace(props)

	b.WriteString(cppGeneratedWarning + "\n\n")
	fmt.Fprintf(&b, "#include <%s>\n\n", includePath)
	b.WriteString("#include <cstring>\n#include <iterator>\n#include <type_traits>\n#include <utility>\n\n")
	b.WriteString("#include <strings.h>\n#include <sys/system_properties.h>\n\n")
	b.WriteString("#include <android-base/logging.h>\n#include <android-base/parseint.h>\n#include <android-base/stringprintf.h>\n#include <android-base/strings.h>\n\n")

	b.WriteString("namespace {\n\n")
	fmt.Fprintf(&b, "using namespace %s;\n\n", ns)
	b.WriteString("template <typename T> std::optional<T> DoParse(const char* str);\n\n")

	integerAsBool := false
	for i := range props.Props {
		prop := &props.Props[i]
		if prop.IntegerAsBool {
			integerAsBool = true
		}
		if prop.Type.Element() == schema.TypeEnum {
			writeCppEnumTable(&b, prop)
		}
	}

	b.WriteString(cppSourceHelpers)
	if integerAsBool {
		b.WriteString("\n")
		b.WriteString(cppIntegerAsBoolHelpers)
	}
	b.WriteString("\n")
	b.WriteString(cppGetProp)
	b.WriteString("\n}  // namespace\n\n")

	fmt.Fprintf(&b, "namespace %s {\n\n", ns)
	for i := range props.Props {
		writeCppAccessors(&b, &props.Props[i])
	}
	fmt.Fprintf(&b, "}  // namespace %s\n", ns)

	return b.String()
}

// writeCppEnumTable emits the (name, value) table for one enum-typed
// property plus the DoParse specialization and FormatValue overload backed
// by it. One table serves both directions, keeping them inverses.
func writeCppEnumTable(b *strings.Builder, prop *schema.Property) {
	etype := identifiers.EnumTypeName(prop.APIName)
	sym := identifiers.FromAPIName(prop.APIName)

	fmt.Fprintf(b, "constexpr const std::pair<const char*, %s> %s_list[] = {\n", etype, sym)
	for _, value := range prop.EnumValueList() {
		fmt.Fprintf(b, "    {\"%s\", %s::%s},\n", value, etype, value)
	}
	b.WriteString("};\n\n")

	fmt.Fprintf(b, "template <>\nstd::optional<%s> DoParse(const char* str) {\n", etype)
	fmt.Fprintf(b, "    for (auto [name, val] : %s_list) {\n", sym)
	b.WriteString("        if (strcmp(str, name) == 0) {\n            return val;\n        }\n    }\n    return std::nullopt;\n}\n\n")

	fmt.Fprintf(b, "std::string FormatValue(%s value) {\n", etype)
	fmt.Fprintf(b, "    for (auto [name, val] : %s_list) {\n", sym)
	b.WriteString("        if (val == value) {\n            return name;\n        }\n    }\n")
	fmt.Fprintf(b, "    LOG(FATAL) << \"Invalid value \" << static_cast<std::int32_t>(value) << \" for property \" << \"%s\";\n", prop.PropName)
	b.WriteString("    __builtin_unreachable();\n}\n\n")
}

func writeCppAccessors(b *strings.Builder, prop *schema.Property) {
	sym := identifiers.FromAPIName(prop.APIName)
	t := cppType(prop)
	key := prop.PropName

	fmt.Fprintf(b, "std::optional<%s> %s() {\n    return GetProp<%s>(\"%s\");\n}\n\n", t, sym, t, key)

	switch {
	case prop.Type == schema.TypeString:
		fmt.Fprintf(b, "bool %s(const std::string& value) {\n    return __system_property_set(\"%s\", value.c_str()) == 0;\n}\n\n", sym, key)
	case prop.IntegerAsBool:
		fmt.Fprintf(b, "bool %s(const %s& value) {\n    return __system_property_set(\"%s\", FormatValueAsInt(value).c_str()) == 0;\n}\n\n", sym, t, key)
	default:
		fmt.Fprintf(b, "bool %s(const %s& value) {\n    return __system_property_set(\"%s\", FormatValue(value).c_str()) == 0;\n}\n\n", sym, t, key)
	}
}
