package wire

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/skycoin/skycoin-sub000/schema"
)

func TestEncodeMessage_DeclaredOrder(t *testing.T) {
	// fields declared out of numeric order are written as declared
	msg := &schema.Message{
		Name: "Ping",
		Fields: []*schema.Field{
			scalar("button_protection", 2, schema.TypeBool),
			scalar("message", 1, schema.TypeString),
		},
	}
	got, err := EncodeMessage(map[string]interface{}{
		"message":           "hello",
		"button_protection": true,
		"not_a_field":       42,
	}, msg, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var want []byte
	want = protowire.AppendTag(want, 2, protowire.VarintType)
	want = protowire.AppendVarint(want, 1)
	want = protowire.AppendTag(want, 1, protowire.BytesType)
	want = protowire.AppendString(want, "hello")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestEncodeMessage_Coercion(t *testing.T) {
	msg := &schema.Message{
		Name: "M",
		Fields: []*schema.Field{
			scalar("u32", 1, schema.TypeUint32),
			scalar("u64", 2, schema.TypeUint64),
			scalar("i32", 3, schema.TypeInt32),
		},
	}

	tests := []struct {
		name  string
		input map[string]interface{}
		want  map[string]interface{}
	}{
		{
			name:  "go int kinds",
			input: map[string]interface{}{"u32": 7, "u64": int8(3), "i32": uint16(9)},
			want:  map[string]interface{}{"u32": uint32(7), "u64": uint64(3), "i32": int32(9)},
		},
		{
			name:  "json numbers",
			input: map[string]interface{}{"u32": json.Number("4294967295"), "u64": json.Number("1e3"), "i32": float64(-5)},
			want:  map[string]interface{}{"u32": uint32(4294967295), "u64": uint64(1000), "i32": int32(-5)},
		},
		{
			name:  "uint32 keeps the low 32 bits",
			input: map[string]interface{}{"u32": int64(-1), "u64": uint64(1 << 63), "i32": int32(0)},
			want:  map[string]interface{}{"u32": uint32(0xffffffff), "u64": uint64(1 << 63), "i32": int32(0)},
		},
		{
			name:  "uint32 wraps past 2^32",
			input: map[string]interface{}{"u32": uint64(1<<32 + 5), "u64": 0, "i32": 0},
			want:  map[string]interface{}{"u32": uint32(5), "u64": uint64(0), "i32": int32(0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeMessage(tt.input, msg, nil)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := DecodeMessage(encoded, msg, nil)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestEncodeMessage_Enum(t *testing.T) {
	for _, code := range []interface{}{"Failure_PinInvalid", 7, int32(7), json.Number("7")} {
		got, err := EncodeMessage(map[string]interface{}{"code": code}, failureMessage(), nil)
		if err != nil {
			t.Fatalf("encode %v: %v", code, err)
		}
		want := protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 7)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("encode %v: got %x, want %x", code, got, want)
		}
	}

	for _, code := range []interface{}{"Failure_Nope", 50, int64(1 << 40)} {
		_, err := EncodeMessage(map[string]interface{}{"code": code}, failureMessage(), nil)
		if !errors.Is(err, ErrEnumValueOutOfDomain) {
			t.Errorf("encode %v: expected ErrEnumValueOutOfDomain, got %v", code, err)
		}
	}
}

func TestEncodeMessage_Errors(t *testing.T) {
	tests := []struct {
		name     string
		msg      *schema.Message
		input    map[string]interface{}
		wantErr  error
		wantPath string
	}{
		{
			name:     "missing required",
			msg:      publicKeyMessage(),
			input:    map[string]interface{}{"xpub": "x"},
			wantErr:  ErrMissingRequiredField,
			wantPath: "node",
		},
		{
			name:     "nil required",
			msg:      publicKeyMessage(),
			input:    map[string]interface{}{"node": nil},
			wantErr:  ErrMissingRequiredField,
			wantPath: "node",
		},
		{
			name: "missing nested required",
			msg:  publicKeyMessage(),
			input: map[string]interface{}{"node": map[string]interface{}{
				"depth": 0, "fingerprint": 0, "child_num": 0,
			}},
			wantErr:  ErrMissingRequiredField,
			wantPath: "node.chain_code",
		},
		{
			name:     "wrong scalar type",
			msg:      failureMessage(),
			input:    map[string]interface{}{"message": 12},
			wantErr:  ErrInvalidValue,
			wantPath: "message",
		},
		{
			name:     "nested value not a map",
			msg:      publicKeyMessage(),
			input:    map[string]interface{}{"node": 3.5},
			wantErr:  ErrInvalidValue,
			wantPath: "node",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeMessage(tt.input, tt.msg, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var fe *FieldError
			if !errors.As(err, &fe) || fe.Field() != tt.wantPath {
				t.Fatalf("expected path %q, got %v", tt.wantPath, err)
			}
		})
	}
}

func TestEncodeMessage_RepeatedMessages(t *testing.T) {
	input := &schema.Message{
		Name: "TxInputType",
		Fields: []*schema.Field{
			repeated(scalar("address_n", 1, schema.TypeUint32)),
			required(scalar("prev_hash", 2, schema.TypeBytes)),
			required(scalar("prev_index", 3, schema.TypeUint32)),
		},
	}
	tx := &schema.Message{
		Name: "TransactionType",
		Fields: []*schema.Field{
			{
				Name:   "inputs",
				Number: 2,
				Label:  schema.LabelRepeated,
				Type:   schema.FieldType{Kind: schema.KindMessage, MessageType: "TxInputType", Message: input},
			},
		},
	}

	data := map[string]interface{}{
		"inputs": []map[string]interface{}{
			{"address_n": []interface{}{uint32(1)}, "prev_hash": []byte{0xaa}, "prev_index": uint32(0)},
			{"prev_hash": []byte{0xbb}, "prev_index": uint32(1)},
		},
	}
	encoded, err := EncodeMessage(data, tx, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeMessage(encoded, tx, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]interface{}{
		"inputs": []interface{}{
			map[string]interface{}{"address_n": []interface{}{uint32(1)}, "prev_hash": []byte{0xaa}, "prev_index": uint32(0)},
			map[string]interface{}{"prev_hash": []byte{0xbb}, "prev_index": uint32(1)},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}

	data["inputs"] = []map[string]interface{}{{"prev_hash": []byte{0xbb}}}
	_, err = EncodeMessage(data, tx, nil)
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field() != "inputs.[0].prev_index" {
		t.Fatalf("expected path inputs.[0].prev_index, got %v", err)
	}
}

func TestEncoder_RepeatedFieldErrorLeavesBufferUntouched(t *testing.T) {
	prefix := &schema.Message{
		Name:   "Prefix",
		Fields: []*schema.Field{scalar("message", 1, schema.TypeString)},
	}
	getAddress := &schema.Message{
		Name: "GetAddress",
		Fields: []*schema.Field{
			repeated(scalar("address_n", 1, schema.TypeUint32)),
		},
	}

	e := NewEncoder()
	if err := e.EncodeMessage(map[string]interface{}{"message": "hi"}, prefix); err != nil {
		t.Fatalf("encode prefix: %v", err)
	}
	before := append([]byte(nil), e.Bytes()...)

	err := e.EncodeMessage(map[string]interface{}{
		"address_n": []interface{}{uint32(44), uint32(0), "x"},
	}, getAddress)
	if err == nil {
		t.Fatal("expected error for a non-integer element")
	}
	var fe *FieldError
	if !errors.As(err, &fe) || len(fe.FieldPath) == 0 || fe.FieldPath[0] != "address_n" {
		t.Errorf("expected error on address_n, got %v", err)
	}
	if !reflect.DeepEqual(e.Bytes(), before) {
		t.Errorf("buffer = %x, want %x", e.Bytes(), before)
	}
}
