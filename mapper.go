package hwproto

import (
	"fmt"
	"reflect"

	"github.com/skycoin/skycoin-sub000/schema"
)

// wireTag is the struct tag naming the schema field a Go field maps to.
const wireTag = "wire"

// structToMap converts a typed message into the field map understood by the
// wire encoder. Nil pointers and nil slices are left out.
func (c *Codec) structToMap(v interface{}, msg *schema.Message) (map[string]interface{}, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("marshal source must be a non-nil pointer to struct, got %T", v)
	}
	return c.valueToMap(rv.Elem(), msg)
}

func (c *Codec) valueToMap(rv reflect.Value, msg *schema.Message) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name, ok := sf.Tag.Lookup(wireTag)
		if !ok {
			continue
		}
		field := msg.FieldByName(name)
		if field == nil {
			return nil, fmt.Errorf("%s.%s: no field %q in schema", rt.Name(), sf.Name, name)
		}
		value, present, err := c.fromGo(rv.Field(i), field)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if present {
			out[name] = value
		}
	}
	return out, nil
}

// fromGo converts one struct field. present is false for nil pointers and
// nil slices.
func (c *Codec) fromGo(fv reflect.Value, field *schema.Field) (interface{}, bool, error) {
	switch fv.Kind() {
	case reflect.Ptr:
		if fv.IsNil() {
			return nil, false, nil
		}
		return c.fromGo(fv.Elem(), field)
	case reflect.Struct:
		sub, err := c.nestedSchema(field)
		if err != nil {
			return nil, false, err
		}
		m, err := c.valueToMap(fv, sub)
		return m, err == nil, err
	case reflect.Slice:
		if fv.IsNil() {
			return nil, false, nil
		}
		if fv.Type().Elem().Kind() == reflect.Uint8 {
			return fv.Bytes(), true, nil
		}
		items := make([]interface{}, fv.Len())
		for i := range items {
			item, _, err := c.fromGo(fv.Index(i), field)
			if err != nil {
				return nil, false, fmt.Errorf("[%d]: %w", i, err)
			}
			items[i] = item
		}
		return items, true, nil
	case reflect.Int32:
		// enum types and int32 both travel as plain numbers
		return int32(fv.Int()), true, nil
	default:
		return fv.Interface(), true, nil
	}
}

// mapToStruct maps a decoded field map onto a typed message.
func (c *Codec) mapToStruct(data map[string]interface{}, v interface{}, msg *schema.Message) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("unmarshal target must be a pointer to struct")
	}
	return c.fillStruct(data, rv.Elem(), msg)
}

func (c *Codec) fillStruct(data map[string]interface{}, rv reflect.Value, msg *schema.Message) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		fieldValue := rv.Field(i)
		if !fieldValue.CanSet() {
			continue
		}
		name, ok := sf.Tag.Lookup(wireTag)
		if !ok {
			continue
		}
		value, ok := data[name]
		if !ok {
			continue
		}
		field := msg.FieldByName(name)
		if field == nil {
			return fmt.Errorf("%s.%s: no field %q in schema", rt.Name(), sf.Name, name)
		}
		if err := c.setFieldValue(fieldValue, value, field); err != nil {
			return fmt.Errorf("failed to set field %s: %v", sf.Name, err)
		}
	}
	return nil
}

// setFieldValue sets a struct field with type conversion
func (c *Codec) setFieldValue(fieldValue reflect.Value, value interface{}, field *schema.Field) error {
	if value == nil {
		return nil
	}

	switch fieldValue.Kind() {
	case reflect.Ptr:
		elem := reflect.New(fieldValue.Type().Elem())
		if err := c.setFieldValue(elem.Elem(), value, field); err != nil {
			return err
		}
		fieldValue.Set(elem)
		return nil
	case reflect.Struct:
		m, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("cannot convert %T to %s", value, fieldValue.Type())
		}
		sub, err := c.nestedSchema(field)
		if err != nil {
			return err
		}
		return c.fillStruct(m, fieldValue, sub)
	case reflect.Slice:
		if b, ok := value.([]byte); ok && fieldValue.Type().Elem().Kind() == reflect.Uint8 {
			fieldValue.SetBytes(b)
			return nil
		}
		items, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("cannot convert %T to %s", value, fieldValue.Type())
		}
		out := reflect.MakeSlice(fieldValue.Type(), len(items), len(items))
		for i, item := range items {
			if err := c.setFieldValue(out.Index(i), item, field); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		fieldValue.Set(out)
		return nil
	}

	if field.Type.Kind == schema.KindEnum {
		n, err := c.enumValue(value, field)
		if err != nil {
			return err
		}
		fieldValue.SetInt(int64(n))
		return nil
	}

	sourceValue := reflect.ValueOf(value)
	if sourceValue.Type().AssignableTo(fieldValue.Type()) {
		fieldValue.Set(sourceValue)
		return nil
	}
	if sourceValue.Kind() == fieldValue.Kind() && sourceValue.Type().ConvertibleTo(fieldValue.Type()) {
		fieldValue.Set(sourceValue.Convert(fieldValue.Type()))
		return nil
	}

	return fmt.Errorf("cannot convert %T to %s", value, fieldValue.Type())
}

// enumValue turns a decoded enum (its value name, or a bare number when
// unknown numbers are allowed) back into the number.
func (c *Codec) enumValue(value interface{}, field *schema.Field) (int32, error) {
	switch v := value.(type) {
	case int32:
		return v, nil
	case string:
		enum := field.Type.Enum
		if enum == nil {
			var err error
			if enum, err = c.registry.GetEnum(field.Type.EnumType); err != nil {
				return 0, err
			}
		}
		ev := enum.ValueByName(v)
		if ev == nil {
			return 0, fmt.Errorf("%q is not a value of %s", v, enum.FullName)
		}
		return ev.Number, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to enum %s", value, field.Type.EnumType)
	}
}

func (c *Codec) nestedSchema(field *schema.Field) (*schema.Message, error) {
	if field.Type.Message != nil {
		return field.Type.Message, nil
	}
	if field.Type.Kind != schema.KindMessage {
		return nil, fmt.Errorf("field %s is not a message", field.Name)
	}
	return c.registry.GetMessage(field.Type.MessageType)
}
