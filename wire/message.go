package wire

import (
	"fmt"

	"github.com/skycoin/skycoin-sub000/schema"
)

// MessageDecoder handles message decoding operations
type MessageDecoder struct {
	decoder *Decoder
}

// MessageEncoder handles message encoding operations
type MessageEncoder struct {
	encoder *Encoder
}

// NewMessageDecoder creates a new message decoder
func NewMessageDecoder(d *Decoder) *MessageDecoder {
	return &MessageDecoder{decoder: d}
}

// NewMessageEncoder creates a new message encoder
func NewMessageEncoder(e *Encoder) *MessageEncoder {
	return &MessageEncoder{encoder: e}
}

// DECODER METHODS

// DecodeMessage decodes a nested message
func (md *MessageDecoder) DecodeMessage(fieldType *schema.FieldType) (interface{}, error) {
	d := md.decoder
	// Messages are encoded as length-delimited bytes
	messageBytes, err := NewBytesDecoder(d).DecodeRawBytes()
	if err != nil {
		return nil, err
	}

	msg := fieldType.Message
	if msg == nil && d.registry != nil {
		if msg, err = d.registry.GetMessage(fieldType.MessageType); err != nil {
			msg = nil
		}
	}
	if msg == nil {
		// Schema not found, return raw bytes
		raw := make([]byte, len(messageBytes))
		copy(raw, messageBytes)
		return raw, nil
	}

	// Recursively decode the nested message
	nestedDecoder := NewDecoderWithRegistry(messageBytes, d.registry).WithConfig(d.config)
	return nestedDecoder.DecodeWithSchema(msg)
}

// ENCODER METHODS

// EncodeMessage appends the fields of data in schema declaration order.
// Keys that name no field are ignored; nil values count as absent.
func (me *MessageEncoder) EncodeMessage(data map[string]interface{}, msg *schema.Message) error {
	for _, field := range msg.Fields {
		value, ok := data[field.Name]
		if !ok || value == nil {
			if field.Label == schema.LabelRequired {
				return &FieldError{FieldPath: []string{field.Name}, Err: ErrMissingRequiredField}
			}
			continue
		}

		start := len(me.encoder.buf)
		if field.Label == schema.LabelRepeated {
			if err := me.encodeRepeatedField(value, field); err != nil {
				me.encoder.buf = me.encoder.buf[:start]
				return wrapWithField(err, field.Name)
			}
			continue
		}

		me.encoder.EncodeTag(FieldNumber(field.Number), WireTypeFor(field.Type.WireKind()))
		if err := me.encodeFieldValue(me.encoder, value, field); err != nil {
			me.encoder.buf = me.encoder.buf[:start]
			return wrapWithField(err, field.Name)
		}
	}
	return nil
}

// encodeFieldValue encodes a single value based on its type
func (me *MessageEncoder) encodeFieldValue(encoder *Encoder, value interface{}, field *schema.Field) error {
	switch field.Type.Kind {
	case schema.KindPrimitive:
		return me.encodePrimitiveField(encoder, value, field.Type.PrimitiveType)
	case schema.KindMessage:
		return me.encodeMessageField(encoder, value, &field.Type)
	case schema.KindEnum:
		return me.encodeEnumField(encoder, value, &field.Type)
	default:
		return fmt.Errorf("unsupported field type: %s", field.Type.Kind)
	}
}

// encodeRepeatedField writes one tag per element, or a single packed run
// when the field is declared [packed=true].
func (me *MessageEncoder) encodeRepeatedField(value interface{}, field *schema.Field) error {
	slice, err := toSlice(value)
	if err != nil {
		return newFieldError("%v", err)
	}
	if len(slice) == 0 {
		return nil
	}

	packable := field.Type.Kind == schema.KindEnum ||
		(field.Type.Kind == schema.KindPrimitive && schema.IsPackedType(field.Type.PrimitiveType))
	if field.Packed && packable {
		packed := me.encoder.child()
		for i, element := range slice {
			if err := me.encodeFieldValue(packed, element, field); err != nil {
				return wrapWithField(err, fmt.Sprintf("[%d]", i))
			}
		}
		me.encoder.EncodeTag(FieldNumber(field.Number), WireBytes)
		me.encoder.EncodeBytes(packed.Bytes())
		return nil
	}

	wireType := WireTypeFor(field.Type.WireKind())
	for i, element := range slice {
		if element == nil {
			return newFieldError("[%d]: nil element", i)
		}
		me.encoder.EncodeTag(FieldNumber(field.Number), wireType)
		if err := me.encodeFieldValue(me.encoder, element, field); err != nil {
			return wrapWithField(err, fmt.Sprintf("[%d]", i))
		}
	}
	return nil
}

// encodePrimitiveField encodes a primitive field
func (me *MessageEncoder) encodePrimitiveField(encoder *Encoder, value interface{}, primitiveType schema.PrimitiveType) error {
	switch primitiveType {
	case schema.TypeString:
		s, err := coerceToString(value)
		if err != nil {
			return newFieldError("%v", err)
		}
		encoder.EncodeString(s)
	case schema.TypeBytes:
		b, err := coerceToBytes(value)
		if err != nil {
			return newFieldError("%v", err)
		}
		encoder.EncodeBytes(b)
	case schema.TypeInt32, schema.TypeInt64, schema.TypeSint32, schema.TypeSint64, schema.TypeSfixed32, schema.TypeSfixed64:
		v, err := coerceToInt64(value)
		if err != nil {
			return newFieldError("%v", err)
		}
		me.encodeSigned(encoder, v, primitiveType)
	case schema.TypeUint32, schema.TypeFixed32:
		v, err := coerceToUint32(value)
		if err != nil {
			return newFieldError("%v", err)
		}
		if primitiveType == schema.TypeFixed32 {
			encoder.EncodeFixed32(v)
		} else {
			NewVarintEncoder(encoder).EncodeUint32(v)
		}
	case schema.TypeUint64, schema.TypeFixed64:
		v, err := coerceToUint64(value)
		if err != nil {
			return newFieldError("%v", err)
		}
		if primitiveType == schema.TypeFixed64 {
			encoder.EncodeFixed64(v)
		} else {
			NewVarintEncoder(encoder).EncodeUint64(v)
		}
	case schema.TypeBool:
		v, err := coerceToBool(value)
		if err != nil {
			return newFieldError("%v", err)
		}
		NewVarintEncoder(encoder).EncodeBool(v)
	case schema.TypeFloat:
		v, err := coerceToFloat64(value)
		if err != nil {
			return newFieldError("%v", err)
		}
		NewFixedEncoder(encoder).EncodeFloat32(float32(v))
	case schema.TypeDouble:
		v, err := coerceToFloat64(value)
		if err != nil {
			return newFieldError("%v", err)
		}
		NewFixedEncoder(encoder).EncodeFloat64(v)
	default:
		return fmt.Errorf("unsupported primitive type: %s", primitiveType)
	}
	return nil
}

func (me *MessageEncoder) encodeSigned(encoder *Encoder, v int64, primitiveType schema.PrimitiveType) {
	ve := NewVarintEncoder(encoder)
	switch primitiveType {
	case schema.TypeInt32:
		ve.EncodeInt32(int32(v))
	case schema.TypeInt64:
		ve.EncodeInt64(v)
	case schema.TypeSint32:
		ve.EncodeSint32(int32(v))
	case schema.TypeSint64:
		ve.EncodeSint64(v)
	case schema.TypeSfixed32:
		encoder.EncodeFixed32(uint32(int32(v)))
	case schema.TypeSfixed64:
		encoder.EncodeFixed64(uint64(v))
	}
}

// encodeMessageField encodes a nested message field
func (me *MessageEncoder) encodeMessageField(encoder *Encoder, value interface{}, fieldType *schema.FieldType) error {
	// If it's already bytes, encode directly
	if messageBytes, ok := value.([]byte); ok {
		encoder.EncodeBytes(messageBytes)
		return nil
	}

	messageData, ok := value.(map[string]interface{})
	if !ok {
		return newFieldError("message value must be map[string]interface{} or []byte, got %T", value)
	}

	messageSchema, err := me.resolveMessage(fieldType)
	if err != nil {
		return err
	}

	// Create a temporary encoder for the nested message
	nestedEncoder := me.encoder.child()
	if err := NewMessageEncoder(nestedEncoder).EncodeMessage(messageData, messageSchema); err != nil {
		return err
	}

	encoder.EncodeBytes(nestedEncoder.Bytes())
	return nil
}

func (me *MessageEncoder) resolveMessage(fieldType *schema.FieldType) (*schema.Message, error) {
	if fieldType.Message != nil {
		return fieldType.Message, nil
	}
	if me.encoder.registry == nil {
		return nil, fmt.Errorf("registry is required to encode message fields")
	}
	msg, err := me.encoder.registry.GetMessage(fieldType.MessageType)
	if err != nil {
		return nil, fmt.Errorf("failed to get message schema for %s: %w", fieldType.MessageType, err)
	}
	return msg, nil
}

// encodeEnumField encodes an enum given either its number or its value name.
func (me *MessageEncoder) encodeEnumField(encoder *Encoder, value interface{}, fieldType *schema.FieldType) error {
	enum := fieldType.Enum
	if enum == nil {
		if me.encoder.registry == nil {
			return fmt.Errorf("registry is required to encode enum %s", fieldType.EnumType)
		}
		var err error
		if enum, err = me.encoder.registry.GetEnum(fieldType.EnumType); err != nil {
			return err
		}
	}

	number, err := enumNumber(enum, value)
	if err != nil {
		return err
	}
	NewVarintEncoder(encoder).EncodeEnum(number)
	return nil
}

// enumNumber maps a name or number onto a declared value of enum.
func enumNumber(enum *schema.Enum, value interface{}) (int32, error) {
	if name, ok := value.(string); ok {
		if v := enum.ValueByName(name); v != nil {
			return v.Number, nil
		}
		if _, err := coerceToInt64(name); err != nil {
			return 0, fmt.Errorf("%w: %q is not a value of %s", ErrEnumValueOutOfDomain, name, enum.FullName)
		}
	}
	n, err := coerceToInt64(value)
	if err != nil {
		return 0, newFieldError("enum %s: %v", enum.FullName, err)
	}
	if n < -1<<31 || n > 1<<31-1 || enum.ValueByNumber(int32(n)) == nil {
		return 0, fmt.Errorf("%w: %d is not a value of %s", ErrEnumValueOutOfDomain, n, enum.FullName)
	}
	return int32(n), nil
}

// Convenience methods for direct access

// DecodeMessage - convenience method for main decoder
func (d *Decoder) DecodeMessage(fieldType *schema.FieldType) (interface{}, error) {
	md := NewMessageDecoder(d)
	return md.DecodeMessage(fieldType)
}

// EncodeMessage - convenience method for main encoder
func (e *Encoder) EncodeMessage(data map[string]interface{}, msg *schema.Message) error {
	me := NewMessageEncoder(e)
	return me.EncodeMessage(data, msg)
}
