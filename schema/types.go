package schema

// ProtoRepo represents a collection of .proto files and their definitions.
type ProtoRepo struct {
	ProtoFiles map[string]*ProtoFile `json:"proto_files"`
}

// ProtoFile represents a single .proto file
type ProtoFile struct {
	Name     string     `json:"name"`     // messages.proto
	Package  string     `json:"package"`  // package name, empty for the device protos
	Syntax   string     `json:"syntax"`   // proto2 or proto3
	Imports  []*Import  `json:"imports"`  // imported files
	Messages []*Message `json:"messages"` // message definitions
	Enums    []*Enum    `json:"enums"`    // enum definitions
}

// Import represents an import statement
type Import struct {
	Path   string `json:"path"`   // "types.proto"
	Public bool   `json:"public"` // public import
	Weak   bool   `json:"weak"`   // weak import
}

// TypeID is the wire identifier of a top level message, e.g. 17 for Features.
type TypeID uint16

// Direction tells which side of the link may send a message.
type Direction string

const (
	DirectionUnknown Direction = ""
	DirectionIn      Direction = "in"  // host to device
	DirectionOut     Direction = "out" // device to host
)

// Message represents a protobuf message definition
type Message struct {
	Name        string     `json:"name"`         // "Features"
	FullName    string     `json:"full_name"`    // "Features", "ApplySettings.PassphraseSourceType" for nested
	TypeID      TypeID     `json:"type_id"`      // wire identifier, valid when HasTypeID
	HasTypeID   bool       `json:"has_type_id"`  // false for embedded-only types such as HDNodeType
	Direction   Direction  `json:"direction"`    // from the wire_in / wire_out options
	Tiny        bool       `json:"tiny"`         // handled by the device outside of the normal flow
	Fields      []*Field   `json:"fields"`       // message fields in declaration order
	NestedTypes []*Message `json:"nested_types"` // nested messages
	NestedEnums []*Enum    `json:"nested_enums"` // nested enums
}

// FieldByNumber returns the field with the given tag number or nil.
func (m *Message) FieldByNumber(number int32) *Field {
	for _, f := range m.Fields {
		if f.Number == number {
			return f
		}
	}
	return nil
}

// FieldByName returns the field with the given name or nil.
func (m *Message) FieldByName(name string) *Field {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// RequiredFields lists the required fields in declaration order.
func (m *Message) RequiredFields() []*Field {
	var out []*Field
	for _, f := range m.Fields {
		if f.Label == LabelRequired {
			out = append(out, f)
		}
	}
	return out
}

// Field represents a message field
type Field struct {
	Name         string     `json:"name"`          // "coin_name"
	Number       int32      `json:"number"`        // 1
	Label        FieldLabel `json:"label"`         // optional, required, repeated
	Type         FieldType  `json:"type"`          // field type information
	DefaultValue string     `json:"default_value"` // [default=...] as written in the .proto, quotes removed
	Packed       bool       `json:"packed"`        // [packed=true]
}

// HasDefault reports whether the field declares an explicit default.
func (f *Field) HasDefault() bool {
	return f.DefaultValue != ""
}

// FieldLabel represents field labels
type FieldLabel string

const (
	LabelOptional FieldLabel = "optional"
	LabelRequired FieldLabel = "required"
	LabelRepeated FieldLabel = "repeated"
)

// FieldType represents field type information
type FieldType struct {
	Kind          TypeKind      `json:"kind"`                     // primitive, message, enum
	PrimitiveType PrimitiveType `json:"primitive_type,omitempty"` // for primitive types
	MessageType   string        `json:"message_type,omitempty"`   // for message types: "HDNodeType"
	EnumType      string        `json:"enum_type,omitempty"`      // for enum types: "FailureType"

	// Resolved by the registry once every name is known.
	Message *Message `json:"-"`
	Enum    *Enum    `json:"-"`
}

// WireKind returns how values of this type travel on the wire.
func (t *FieldType) WireKind() WireKind {
	switch t.Kind {
	case KindMessage:
		return WireKindBytes
	case KindEnum:
		return WireKindVarint
	}
	switch t.PrimitiveType {
	case TypeString, TypeBytes:
		return WireKindBytes
	case TypeDouble, TypeFixed64, TypeSfixed64:
		return WireKindFixed64
	case TypeFloat, TypeFixed32, TypeSfixed32:
		return WireKindFixed32
	default:
		return WireKindVarint
	}
}

// WireKind is the encoding category of a field value.
type WireKind int

const (
	WireKindVarint WireKind = iota
	WireKindFixed64
	WireKindBytes
	WireKindFixed32
)

// TypeKind represents the kind of field type
type TypeKind string

const (
	KindPrimitive TypeKind = "primitive"
	KindMessage   TypeKind = "message"
	KindEnum      TypeKind = "enum"
)

// PrimitiveType represents protobuf primitive types
type PrimitiveType string

const (
	TypeDouble   PrimitiveType = "double"
	TypeFloat    PrimitiveType = "float"
	TypeInt64    PrimitiveType = "int64"
	TypeUint64   PrimitiveType = "uint64"
	TypeInt32    PrimitiveType = "int32"
	TypeFixed64  PrimitiveType = "fixed64"
	TypeFixed32  PrimitiveType = "fixed32"
	TypeBool     PrimitiveType = "bool"
	TypeString   PrimitiveType = "string"
	TypeBytes    PrimitiveType = "bytes"
	TypeUint32   PrimitiveType = "uint32"
	TypeSfixed32 PrimitiveType = "sfixed32"
	TypeSfixed64 PrimitiveType = "sfixed64"
	TypeSint32   PrimitiveType = "sint32"
	TypeSint64   PrimitiveType = "sint64"
)

var primitives = map[string]PrimitiveType{
	"double":   TypeDouble,
	"float":    TypeFloat,
	"int64":    TypeInt64,
	"uint64":   TypeUint64,
	"int32":    TypeInt32,
	"fixed64":  TypeFixed64,
	"fixed32":  TypeFixed32,
	"bool":     TypeBool,
	"string":   TypeString,
	"bytes":    TypeBytes,
	"uint32":   TypeUint32,
	"sfixed32": TypeSfixed32,
	"sfixed64": TypeSfixed64,
	"sint32":   TypeSint32,
	"sint64":   TypeSint64,
}

// LookupPrimitive maps a .proto scalar type name to its PrimitiveType.
func LookupPrimitive(name string) (PrimitiveType, bool) {
	p, ok := primitives[name]
	return p, ok
}

// IsPackedType checks and returns if the Primitive type is packed for repeated label
func IsPackedType(t PrimitiveType) bool {
	return t != TypeString && t != TypeBytes
}

// Enum represents an enum definition
type Enum struct {
	Name     string       `json:"name"`      // "FailureType"
	FullName string       `json:"full_name"` // "ApplySettings.PassphraseSourceType" for nested enums
	Values   []*EnumValue `json:"values"`    // enum values in declaration order
}

// ValueByNumber returns the declared value with the given number or nil.
func (e *Enum) ValueByNumber(n int32) *EnumValue {
	for _, v := range e.Values {
		if v.Number == n {
			return v
		}
	}
	return nil
}

// ValueByName returns the declared value with the given name or nil.
func (e *Enum) ValueByName(name string) *EnumValue {
	for _, v := range e.Values {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// EnumValue represents an enum value
type EnumValue struct {
	Name    string          `json:"name"`    // "Failure_PinInvalid"
	Number  int32           `json:"number"`  // 7
	Options map[string]bool `json:"options"` // boolean value options such as wire_in
}
