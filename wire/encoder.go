package wire

import (
	"github.com/skycoin/skycoin-sub000/schema"
)

// Encoder accumulates wire-format bytes. Embedded messages are encoded
// into a child encoder sharing the same resolver and then appended with
// their length.
type Encoder struct {
	buf      []byte
	registry Resolver
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// NewEncoderWithRegistry creates an encoder that resolves message and enum
// references through registry.
func NewEncoderWithRegistry(registry Resolver) *Encoder {
	return &Encoder{registry: registry}
}

// child returns an empty encoder sharing e's resolver.
func (e *Encoder) child() *Encoder {
	return NewEncoderWithRegistry(e.registry)
}

func (e *Encoder) Bytes() []byte {
	return e.buf
}

func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// EncodeMessage encodes data as msg. Fields are written in declaration
// order and every required field must be present.
func EncodeMessage(data map[string]interface{}, msg *schema.Message, registry Resolver) ([]byte, error) {
	encoder := NewEncoderWithRegistry(registry)
	if err := NewMessageEncoder(encoder).EncodeMessage(data, msg); err != nil {
		return nil, err
	}
	if encoder.buf == nil {
		return []byte{}, nil
	}
	return encoder.buf, nil
}
