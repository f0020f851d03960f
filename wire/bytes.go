package wire

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// BytesDecoder reads length-delimited values: strings, bytes and embedded
// messages.
type BytesDecoder struct {
	decoder *Decoder
}

// BytesEncoder appends length-delimited values.
type BytesEncoder struct {
	encoder *Encoder
}

func NewBytesDecoder(d *Decoder) *BytesDecoder {
	return &BytesDecoder{decoder: d}
}

func NewBytesEncoder(e *Encoder) *BytesEncoder {
	return &BytesEncoder{encoder: e}
}

// DecodeBytes returns a copy that does not alias the input.
func (bd *BytesDecoder) DecodeBytes() ([]byte, error) {
	raw, err := bd.DecodeRawBytes()
	if err != nil {
		return nil, err
	}
	return append([]byte{}, raw...), nil
}

func (bd *BytesDecoder) DecodeString() (string, error) {
	raw, err := bd.DecodeRawBytes()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeRawBytes returns a slice of the input buffer.
func (bd *BytesDecoder) DecodeRawBytes() ([]byte, error) {
	d := bd.decoder
	rest := d.buf[d.pos:]
	v, n := protowire.ConsumeBytes(rest)
	if n < 0 {
		if length, ln := protowire.ConsumeVarint(rest); ln > 0 {
			return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedInput, length, len(rest)-ln)
		}
		return nil, fmt.Errorf("failed to decode bytes length: %w", consumeError(n))
	}
	d.pos += n
	return v, nil
}

func (bd *BytesDecoder) SkipBytes() error {
	_, err := bd.DecodeRawBytes()
	return err
}

func (be *BytesEncoder) EncodeBytes(data []byte) {
	be.encoder.buf = protowire.AppendBytes(be.encoder.buf, data)
}

func (be *BytesEncoder) EncodeString(s string) {
	be.encoder.buf = protowire.AppendString(be.encoder.buf, s)
}

// BytesSize returns the encoded length of data including its prefix.
func BytesSize(data []byte) int {
	return protowire.SizeBytes(len(data))
}

func (d *Decoder) DecodeBytes() ([]byte, error) {
	return NewBytesDecoder(d).DecodeBytes()
}

func (e *Encoder) EncodeBytes(data []byte) {
	NewBytesEncoder(e).EncodeBytes(data)
}

func (e *Encoder) EncodeString(s string) {
	NewBytesEncoder(e).EncodeString(s)
}
