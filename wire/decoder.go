package wire

import (
	"fmt"

	"github.com/skycoin/skycoin-sub000/schema"
)

// Resolver looks up message and enum definitions by name. It is satisfied
// by *registry.Registry.
type Resolver interface {
	GetMessage(name string) (*schema.Message, error)
	GetEnum(name string) (*schema.Enum, error)
}

// Decoder handles low-level protobuf wire format decoding
type Decoder struct {
	buf      []byte
	pos      int
	registry Resolver
	config   Config
}

// NewDecoder creates a new wire format decoder
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf:    data,
		pos:    0,
		config: DefaultConfig(),
	}
}

// NewDecoderWithRegistry creates a decoder with schema registry
func NewDecoderWithRegistry(data []byte, registry Resolver) *Decoder {
	d := NewDecoder(data)
	d.registry = registry
	return d
}

// WithConfig replaces the decoder configuration.
func (d *Decoder) WithConfig(c Config) *Decoder {
	d.config = c
	return d
}

// Remaining reports how many bytes are left to read.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// DecodeMessage decodes protobuf bytes using schema - main entry point
func DecodeMessage(data []byte, msg *schema.Message, registry Resolver) (map[string]interface{}, error) {
	return DecodeMessageWithConfig(data, msg, registry, DefaultConfig())
}

// DecodeMessageWithConfig is DecodeMessage with explicit codec options.
func DecodeMessageWithConfig(data []byte, msg *schema.Message, registry Resolver, c Config) (map[string]interface{}, error) {
	decoder := NewDecoderWithRegistry(data, registry).WithConfig(c)
	return decoder.DecodeWithSchema(msg)
}

// DecodeWithSchema reads tag/value pairs until the input is exhausted.
// Known fields are decoded per their type, unknown ones skipped. Scalars
// keep the last value seen, repeated fields keep wire order. Required
// fields are checked after the loop and absent optional scalars receive
// their defaults.
func (d *Decoder) DecodeWithSchema(msg *schema.Message) (map[string]interface{}, error) {
	result := make(map[string]interface{})
	repeatedCollector := make(map[string][]interface{})
	seen := make(map[int32]struct{})
	var unknown []byte

	for d.pos < len(d.buf) {
		start := d.pos
		fieldNumber, wireType, err := d.DecodeTag()
		if err != nil {
			return nil, fmt.Errorf("failed to decode message %s: %w", msg.Name, err)
		}

		// Find field in schema
		field := msg.FieldByNumber(int32(fieldNumber))
		if field == nil {
			// Unknown field - skip it
			if err := d.SkipField(wireType); err != nil {
				return nil, fmt.Errorf("failed to decode message %s: %w", msg.Name, err)
			}
			if d.config.PreserveUnknownBytesOnDecode {
				unknown = append(unknown, d.buf[start:d.pos]...)
			}
			continue
		}

		expected := WireTypeFor(field.Type.WireKind())
		if wireType != expected {
			if wireType == WireBytes && field.Label == schema.LabelRepeated &&
				field.Type.Kind != schema.KindMessage && schema.IsPackedType(field.Type.PrimitiveType) {
				values, err := d.decodePacked(field)
				if err != nil {
					return nil, wrapWithField(err, field.Name)
				}
				repeatedCollector[field.Name] = append(repeatedCollector[field.Name], values...)
				seen[field.Number] = struct{}{}
				continue
			}
			if d.config.StrictWireTypeOnDecode {
				return nil, wrapWithField(fmt.Errorf("%w: got %d, want %d", ErrWireTypeMismatch, wireType, expected), field.Name)
			}
			if err := d.SkipField(wireType); err != nil {
				return nil, fmt.Errorf("failed to decode message %s: %w", msg.Name, err)
			}
			continue
		}

		// Decode using appropriate decoder
		value, err := d.DecodeTypedField(field)
		if err != nil {
			return nil, wrapWithField(err, field.Name)
		}
		seen[field.Number] = struct{}{}

		if field.Label == schema.LabelRepeated {
			repeatedCollector[field.Name] = append(repeatedCollector[field.Name], value)
		} else {
			result[field.Name] = value
		}
	}

	// Add collected repeated fields to result
	for fieldName, repeatedData := range repeatedCollector {
		result[fieldName] = repeatedData
	}

	for _, f := range msg.Fields {
		if _, ok := seen[f.Number]; ok {
			continue
		}
		switch f.Label {
		case schema.LabelRequired:
			return nil, &FieldError{FieldPath: []string{f.Name}, Err: ErrMissingRequiredField}
		case schema.LabelOptional:
			if !d.config.PopulateDefaultsOnDecode || f.Type.Kind == schema.KindMessage {
				continue
			}
			if f.Type.Kind == schema.KindEnum && f.Type.Enum == nil {
				enum, err := d.lookupEnum(&f.Type)
				if err != nil {
					return nil, wrapWithField(err, f.Name)
				}
				f = &schema.Field{Name: f.Name, Type: schema.FieldType{Kind: schema.KindEnum, Enum: enum}, DefaultValue: f.DefaultValue}
			}
			def, err := schema.DefaultFor(f)
			if err != nil {
				return nil, wrapWithField(err, f.Name)
			}
			result[f.Name] = def
		}
	}

	if len(unknown) > 0 {
		result[UnknownFieldsKey] = unknown
	}

	return result, nil
}

// DecodeTypedField routes to the appropriate decoder based on field type.
// The caller has already checked the wire type.
func (d *Decoder) DecodeTypedField(field *schema.Field) (interface{}, error) {
	switch field.Type.Kind {
	case schema.KindPrimitive:
		return d.decodePrimitive(field.Type.PrimitiveType)
	case schema.KindMessage:
		md := NewMessageDecoder(d)
		return md.DecodeMessage(&field.Type)
	case schema.KindEnum:
		return d.decodeEnum(&field.Type)
	default:
		return nil, fmt.Errorf("unsupported field kind %q", field.Type.Kind)
	}
}

func (d *Decoder) decodeEnum(fieldType *schema.FieldType) (interface{}, error) {
	vd := NewVarintDecoder(d)
	enumIntVal, err := vd.DecodeEnum()
	if err != nil {
		return nil, err
	}
	enum, err := d.lookupEnum(fieldType)
	if err != nil {
		return nil, err
	}
	if v := enum.ValueByNumber(enumIntVal); v != nil {
		return v.Name, nil
	}
	if d.config.AllowUnknownEnumNumberDecode {
		return enumIntVal, nil
	}
	return nil, fmt.Errorf("%w: %d is not a value of %s", ErrEnumValueOutOfDomain, enumIntVal, enum.FullName)
}

func (d *Decoder) lookupEnum(fieldType *schema.FieldType) (*schema.Enum, error) {
	if fieldType.Enum != nil {
		return fieldType.Enum, nil
	}
	if d.registry == nil {
		return nil, fmt.Errorf("enum %s is not resolved and no registry is set", fieldType.EnumType)
	}
	return d.registry.GetEnum(fieldType.EnumType)
}

// decodePrimitive decodes a primitive type using the appropriate decoder
func (d *Decoder) decodePrimitive(primitiveType schema.PrimitiveType) (interface{}, error) {
	switch primitiveType {
	case schema.TypeInt32:
		return NewVarintDecoder(d).DecodeInt32()
	case schema.TypeInt64:
		return NewVarintDecoder(d).DecodeInt64()
	case schema.TypeUint32:
		return NewVarintDecoder(d).DecodeUint32()
	case schema.TypeUint64:
		return NewVarintDecoder(d).DecodeVarint()
	case schema.TypeSint32:
		return NewVarintDecoder(d).DecodeSint32()
	case schema.TypeSint64:
		return NewVarintDecoder(d).DecodeSint64()
	case schema.TypeBool:
		return NewVarintDecoder(d).DecodeBool()
	case schema.TypeFixed32:
		return NewFixedDecoder(d).DecodeFixed32()
	case schema.TypeSfixed32:
		return NewFixedDecoder(d).DecodeSfixed32()
	case schema.TypeFloat:
		return NewFixedDecoder(d).DecodeFloat32()
	case schema.TypeFixed64:
		return NewFixedDecoder(d).DecodeFixed64()
	case schema.TypeSfixed64:
		return NewFixedDecoder(d).DecodeSfixed64()
	case schema.TypeDouble:
		return NewFixedDecoder(d).DecodeFloat64()
	case schema.TypeString:
		return NewBytesDecoder(d).DecodeString()
	case schema.TypeBytes:
		return NewBytesDecoder(d).DecodeBytes()
	default:
		return nil, fmt.Errorf("unsupported primitive %s", primitiveType)
	}
}

// decodePacked reads a length-delimited run of scalar values.
func (d *Decoder) decodePacked(field *schema.Field) ([]interface{}, error) {
	raw, err := NewBytesDecoder(d).DecodeRawBytes()
	if err != nil {
		return nil, err
	}
	sub := NewDecoderWithRegistry(raw, d.registry).WithConfig(d.config)
	var values []interface{}
	for sub.pos < len(sub.buf) {
		v, err := sub.DecodeTypedField(field)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// SkipField advances past one value of the given wire type without
// interpreting it.
func (d *Decoder) SkipField(wireType WireType) error {
	switch wireType {
	case WireVarint:
		return NewVarintDecoder(d).SkipVarint()
	case WireFixed64:
		if len(d.buf)-d.pos < 8 {
			return ErrTruncatedInput
		}
		d.pos += 8
		return nil
	case WireBytes:
		return NewBytesDecoder(d).SkipBytes()
	case WireFixed32:
		if len(d.buf)-d.pos < 4 {
			return ErrTruncatedInput
		}
		d.pos += 4
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidWireType, wireType)
	}
}

// decodeRawValue decodes without type information
func (d *Decoder) decodeRawValue(wireType WireType) (interface{}, error) {
	switch wireType {
	case WireVarint:
		return d.DecodeVarint()
	case WireFixed64:
		return d.DecodeFixed64()
	case WireBytes:
		return d.DecodeBytes()
	case WireFixed32:
		return d.DecodeFixed32()
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidWireType, wireType)
	}
}

// DecodeField decodes a single field from the current position without a
// schema. It returns nil, nil at the end of the input.
func (d *Decoder) DecodeField() (*Value, error) {
	if d.pos >= len(d.buf) {
		return nil, nil
	}

	fieldNumber, wireType, err := d.DecodeTag()
	if err != nil {
		return nil, err
	}

	data, err := d.decodeRawValue(wireType)
	if err != nil {
		return nil, err
	}

	return &Value{
		FieldNumber: fieldNumber,
		WireType:    wireType,
		Data:        data,
	}, nil
}
