package wire

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/skycoin/skycoin-sub000/schema"
)

// Verify checks that data could be encoded as msg without encoding it.
// It returns nil when the map is valid, otherwise an error describing the
// first violation found in declaration order. Keys that name no field are
// ignored, as EncodeMessage ignores them.
func Verify(data map[string]interface{}, msg *schema.Message, registry Resolver) error {
	v := verifier{registry: registry}
	return v.verifyMessage(data, msg)
}

type verifier struct {
	registry Resolver
}

func (v verifier) verifyMessage(data map[string]interface{}, msg *schema.Message) error {
	for _, field := range msg.Fields {
		value, ok := data[field.Name]
		if !ok || value == nil {
			if field.Label == schema.LabelRequired {
				return &FieldError{FieldPath: []string{field.Name}, Err: ErrMissingRequiredField}
			}
			continue
		}

		if field.Label != schema.LabelRepeated {
			if err := v.verifyValue(value, field); err != nil {
				return wrapWithField(err, field.Name)
			}
			continue
		}

		if _, isBytes := value.([]byte); isBytes {
			return wrapWithField(newFieldError("%s[] expected, got %T", typeLabel(field), value), field.Name)
		}
		elements, err := toSlice(value)
		if err != nil {
			return wrapWithField(newFieldError("%s[] expected, got %T", typeLabel(field), value), field.Name)
		}
		for i, element := range elements {
			if err := v.verifyValue(element, field); err != nil {
				return wrapWithField(wrapWithField(err, fmt.Sprintf("[%d]", i)), field.Name)
			}
		}
	}
	return nil
}

func (v verifier) verifyValue(value interface{}, field *schema.Field) error {
	switch field.Type.Kind {
	case schema.KindMessage:
		if _, ok := value.([]byte); ok {
			return nil
		}
		nested, ok := value.(map[string]interface{})
		if !ok {
			return newFieldError("object expected, got %T", value)
		}
		msg := field.Type.Message
		if msg == nil {
			if v.registry == nil {
				return fmt.Errorf("message %s is not resolved and no registry is set", field.Type.MessageType)
			}
			var err error
			if msg, err = v.registry.GetMessage(field.Type.MessageType); err != nil {
				return err
			}
		}
		return v.verifyMessage(nested, msg)

	case schema.KindEnum:
		enum := field.Type.Enum
		if enum == nil {
			if v.registry == nil {
				return fmt.Errorf("enum %s is not resolved and no registry is set", field.Type.EnumType)
			}
			var err error
			if enum, err = v.registry.GetEnum(field.Type.EnumType); err != nil {
				return err
			}
		}
		if !isInteger(value) {
			if _, ok := value.(string); !ok {
				return newFieldError("enum value expected, got %T", value)
			}
		}
		_, err := enumNumber(enum, value)
		return err
	}

	switch field.Type.PrimitiveType {
	case schema.TypeString:
		if reflect.ValueOf(value).Kind() != reflect.String {
			return newFieldError("string expected, got %T", value)
		}
	case schema.TypeBytes:
		switch value.(type) {
		case []byte, string:
		default:
			return newFieldError("buffer expected, got %T", value)
		}
	case schema.TypeBool:
		if reflect.ValueOf(value).Kind() != reflect.Bool {
			return newFieldError("boolean expected, got %T", value)
		}
	case schema.TypeFloat, schema.TypeDouble:
		if !isNumber(value) {
			return newFieldError("number expected, got %T", value)
		}
	default:
		if !isInteger(value) {
			return newFieldError("integer expected, got %v (%T)", value, value)
		}
	}
	return nil
}

// typeLabel names the expected element type in messages.
func typeLabel(field *schema.Field) string {
	switch field.Type.Kind {
	case schema.KindMessage:
		return "object"
	case schema.KindEnum:
		return "enum value"
	}
	switch field.Type.PrimitiveType {
	case schema.TypeString:
		return "string"
	case schema.TypeBytes:
		return "buffer"
	case schema.TypeBool:
		return "boolean"
	case schema.TypeFloat, schema.TypeDouble:
		return "number"
	}
	return "integer"
}

func isInteger(value interface{}) bool {
	switch t := value.(type) {
	case json.Number:
		_, err := coerceToInt64(t)
		if err != nil {
			_, err = coerceToUint64(t)
		}
		return err == nil
	case float64:
		return t == math.Trunc(t) && !math.IsInf(t, 0)
	case float32:
		return float64(t) == math.Trunc(float64(t)) && !math.IsInf(float64(t), 0)
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumber(value interface{}) bool {
	switch value.(type) {
	case float32, float64, json.Number:
		return true
	}
	return isInteger(value)
}
