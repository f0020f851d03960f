package wire

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Helpers to coerce caller inputs to integers. Any Go integer kind is
// accepted, as are JSON numbers in integral exponent/float form.
func coerceToInt64(v interface{}) (int64, error) {
	switch t := v.(type) {
	case json.Number:
		// Try integer first
		if iv, err := t.Int64(); err == nil {
			return iv, nil
		}
		// Fallback: parse as float and check integral
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0, err
		}
		return integralFloat(f)
	case float64:
		return integralFloat(t)
	case float32:
		return integralFloat(float64(t))
	case string:
		// allow explicit integer strings
		if strings.ContainsAny(t, ".eE") {
			f, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return 0, err
			}
			return integralFloat(f)
		}
		return strconv.ParseInt(t, 0, 64)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", u)
		}
		return int64(u), nil
	default:
		return 0, fmt.Errorf("expected integer-like, got %T", v)
	}
}

func coerceToUint64(v interface{}) (uint64, error) {
	switch t := v.(type) {
	case json.Number:
		if uv, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return uv, nil
		}
	case string:
		if uv, err := strconv.ParseUint(t, 0, 64); err == nil {
			return uv, nil
		}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	}

	iv, err := coerceToInt64(v)
	if err != nil {
		return 0, fmt.Errorf("expected unsigned-integer-like, got %T", v)
	}
	// negative values wrap, matching unsigned truncation on the wire
	return uint64(iv), nil
}

// coerceToUint32 keeps the low 32 bits of any integer input.
func coerceToUint32(v interface{}) (uint32, error) {
	u, err := coerceToUint64(v)
	if err != nil {
		return 0, err
	}
	return uint32(u), nil
}

func coerceToBool(v interface{}) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		return strconv.ParseBool(t)
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Bool {
		return rv.Bool(), nil
	}
	return false, fmt.Errorf("expected bool, got %T", v)
}

func coerceToFloat64(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case json.Number:
		return t.Float64()
	case string:
		return strconv.ParseFloat(t, 64)
	}
	iv, err := coerceToInt64(v)
	if err != nil {
		return 0, fmt.Errorf("expected number, got %T", v)
	}
	return float64(iv), nil
}

func coerceToString(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return "", fmt.Errorf("expected string, got %T", v)
}

func coerceToBytes(v interface{}) ([]byte, error) {
	switch t := v.(type) {
	case []byte:
		return t, nil
	case string:
		return []byte(t), nil
	}
	return nil, fmt.Errorf("expected bytes, got %T", v)
}

func integralFloat(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("non-integer numeric for integer field")
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%g overflows int64", f)
	}
	return int64(f), nil
}

// toSlice converts any slice value other than []byte to []interface{}.
func toSlice(value interface{}) ([]interface{}, error) {
	if s, ok := value.([]interface{}); ok {
		return s, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("repeated field value must be a slice, got %T", value)
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}
