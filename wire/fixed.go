package wire

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// FixedDecoder reads little-endian fixed32 and fixed64 values.
type FixedDecoder struct {
	decoder *Decoder
}

// FixedEncoder appends little-endian fixed32 and fixed64 values.
type FixedEncoder struct {
	encoder *Encoder
}

func NewFixedDecoder(d *Decoder) *FixedDecoder {
	return &FixedDecoder{decoder: d}
}

func NewFixedEncoder(e *Encoder) *FixedEncoder {
	return &FixedEncoder{encoder: e}
}

func (fd *FixedDecoder) DecodeFixed32() (uint32, error) {
	d := fd.decoder
	v, n := protowire.ConsumeFixed32(d.buf[d.pos:])
	if n < 0 {
		return 0, consumeError(n)
	}
	d.pos += n
	return v, nil
}

func (fd *FixedDecoder) DecodeFixed64() (uint64, error) {
	d := fd.decoder
	v, n := protowire.ConsumeFixed64(d.buf[d.pos:])
	if n < 0 {
		return 0, consumeError(n)
	}
	d.pos += n
	return v, nil
}

func (fd *FixedDecoder) DecodeSfixed32() (int32, error) {
	v, err := fd.DecodeFixed32()
	return int32(v), err
}

func (fd *FixedDecoder) DecodeSfixed64() (int64, error) {
	v, err := fd.DecodeFixed64()
	return int64(v), err
}

func (fd *FixedDecoder) DecodeFloat32() (float32, error) {
	v, err := fd.DecodeFixed32()
	return math.Float32frombits(v), err
}

func (fd *FixedDecoder) DecodeFloat64() (float64, error) {
	v, err := fd.DecodeFixed64()
	return math.Float64frombits(v), err
}

func (fe *FixedEncoder) EncodeFixed32(v uint32) {
	fe.encoder.buf = protowire.AppendFixed32(fe.encoder.buf, v)
}

func (fe *FixedEncoder) EncodeFixed64(v uint64) {
	fe.encoder.buf = protowire.AppendFixed64(fe.encoder.buf, v)
}

func (fe *FixedEncoder) EncodeFloat32(v float32) {
	fe.EncodeFixed32(math.Float32bits(v))
}

func (fe *FixedEncoder) EncodeFloat64(v float64) {
	fe.EncodeFixed64(math.Float64bits(v))
}

func (d *Decoder) DecodeFixed32() (uint32, error) {
	return NewFixedDecoder(d).DecodeFixed32()
}

func (d *Decoder) DecodeFixed64() (uint64, error) {
	return NewFixedDecoder(d).DecodeFixed64()
}

func (e *Encoder) EncodeFixed32(v uint32) {
	NewFixedEncoder(e).EncodeFixed32(v)
}

func (e *Encoder) EncodeFixed64(v uint64) {
	NewFixedEncoder(e).EncodeFixed64(v)
}
