package schema

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Schema files are protobuf text format against the message schema in
// sysprop.proto. The proto source ships embedded in the binary and is
// compiled once with protocompile; incoming text is unmarshalled into a
// dynamic message and converted to the model below.

//go:embed sysprop.proto
var syspropProto string

var (
	descOnce sync.Once
	descMsg  protoreflect.MessageDescriptor
	descErr  error
)

func propertiesDescriptor() (protoreflect.MessageDescriptor, error) {
	descOnce.Do(func() {
		compiler := protocompile.Compiler{
			Resolver: &protocompile.SourceResolver{
				Accessor: protocompile.SourceAccessorFromMap(map[string]string{
					"sysprop.proto": syspropProto,
				}),
			},
		}
		files, err := compiler.Compile(context.Background(), "sysprop.proto")
		if err != nil {
			descErr = fmt.Errorf("compiling embedded sysprop.proto: %w", err)
			return
		}
		md := files[0].Messages().ByName("Properties")
		if md == nil {
			descErr = fmt.Errorf("embedded sysprop.proto has no Properties message")
			return
		}
		descMsg = md
	})
	return descMsg, descErr
}

// Proto enum numbers for Type. List variants start at 20 so scalars can grow
// without renumbering.
var protoTypeNumbers = map[int32]Type{
	0:  TypeBoolean,
	1:  TypeInteger,
	2:  TypeLong,
	3:  TypeDouble,
	4:  TypeString,
	5:  TypeEnum,
	20: TypeBooleanList,
	21: TypeIntegerList,
	22: TypeLongList,
	23: TypeDoubleList,
	24: TypeStringList,
	25: TypeEnumList,
}

// Parse parses schema text into a Properties value. The result is exactly
// what the file declares; no validation or default resolution happens here.
func Parse(content []byte) (*Properties, error) {
	md, err := propertiesDescriptor()
	if err != nil {
		return nil, err
	}

	msg := dynamicpb.NewMessage(md)
	if err := prototext.Unmarshal(content, msg); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}

	fields := md.Fields()
	ret := &Properties{
		Module: msg.Get(fields.ByName("module")).String(),
		Owner:  Owner(msg.Get(fields.ByName("owner")).Enum()),
	}

	props := msg.Get(fields.ByName("prop")).List()
	for i := 0; i < props.Len(); i++ {
		prop, err := convertProperty(props.Get(i).Message())
		if err != nil {
			return nil, err
		}
		ret.Props = append(ret.Props, prop)
	}

	return ret, nil
}

// ParseFile reads and parses a schema file.
func ParseFile(path string) (*Properties, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	props, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return props, nil
}

func convertProperty(msg protoreflect.Message) (Property, error) {
	fields := msg.Descriptor().Fields()

	typeNumber := int32(msg.Get(fields.ByName("type")).Enum())
	typ, ok := protoTypeNumbers[typeNumber]
	if !ok {
		return Property{}, fmt.Errorf("unknown property type %d", typeNumber)
	}

	return Property{
		APIName:       msg.Get(fields.ByName("api_name")).String(),
		PropName:      msg.Get(fields.ByName("prop_name")).String(),
		Type:          typ,
		Access:        Access(msg.Get(fields.ByName("access")).Enum()),
		Scope:         Scope(msg.Get(fields.ByName("scope")).Enum()),
		EnumValues:    msg.Get(fields.ByName("enum_values")).String(),
		IntegerAsBool: msg.Get(fields.ByName("integer_as_bool")).Bool(),
	}, nil
}
