package schema

import (
	"fmt"
	"strconv"
)

// DefaultFor returns the value an absent optional field takes: the declared
// [default=...] when present, otherwise the proto2 zero value. Enums default
// to the name of their declared default or of their first value.
func DefaultFor(f *Field) (interface{}, error) {
	if f.Type.Kind == KindEnum {
		return enumDefault(f)
	}
	if f.Type.Kind != KindPrimitive {
		return nil, fmt.Errorf("field %s: no default for %s fields", f.Name, f.Type.Kind)
	}

	s := f.DefaultValue
	switch f.Type.PrimitiveType {
	case TypeString:
		return s, nil
	case TypeBytes:
		return []byte(s), nil
	case TypeBool:
		if s == "" {
			return false, nil
		}
		return strconv.ParseBool(s)
	case TypeUint32, TypeFixed32:
		if s == "" {
			return uint32(0), nil
		}
		v, err := strconv.ParseUint(s, 0, 32)
		return uint32(v), wrapDefault(f, err)
	case TypeUint64, TypeFixed64:
		if s == "" {
			return uint64(0), nil
		}
		v, err := strconv.ParseUint(s, 0, 64)
		return v, wrapDefault(f, err)
	case TypeInt32, TypeSint32, TypeSfixed32:
		if s == "" {
			return int32(0), nil
		}
		v, err := strconv.ParseInt(s, 0, 32)
		return int32(v), wrapDefault(f, err)
	case TypeInt64, TypeSint64, TypeSfixed64:
		if s == "" {
			return int64(0), nil
		}
		v, err := strconv.ParseInt(s, 0, 64)
		return v, wrapDefault(f, err)
	case TypeFloat:
		if s == "" {
			return float32(0), nil
		}
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), wrapDefault(f, err)
	case TypeDouble:
		if s == "" {
			return float64(0), nil
		}
		v, err := strconv.ParseFloat(s, 64)
		return v, wrapDefault(f, err)
	}
	return nil, fmt.Errorf("field %s: unknown primitive %s", f.Name, f.Type.PrimitiveType)
}

func enumDefault(f *Field) (interface{}, error) {
	e := f.Type.Enum
	if e == nil {
		return nil, fmt.Errorf("field %s: enum %s is not resolved", f.Name, f.Type.EnumType)
	}
	if f.DefaultValue != "" {
		if v := e.ValueByName(f.DefaultValue); v != nil {
			return v.Name, nil
		}
		return nil, fmt.Errorf("field %s: default %q is not a value of %s", f.Name, f.DefaultValue, e.FullName)
	}
	if len(e.Values) == 0 {
		return nil, fmt.Errorf("field %s: enum %s has no values", f.Name, e.FullName)
	}
	return e.Values[0].Name, nil
}

func wrapDefault(f *Field, err error) error {
	if err != nil {
		return fmt.Errorf("field %s: bad default %q: %w", f.Name, f.DefaultValue, err)
	}
	return nil
}
