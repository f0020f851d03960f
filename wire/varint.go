package wire

import (
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

const maxFieldNumber = 1<<29 - 1

// consumeError maps the negative length reported by protowire's Consume
// functions onto this package's errors.
func consumeError(n int) error {
	if errors.Is(protowire.ParseError(n), io.ErrUnexpectedEOF) {
		return ErrTruncatedInput
	}
	return ErrVarintOverflow
}

// VarintDecoder reads varint-encoded scalars from a Decoder.
type VarintDecoder struct {
	decoder *Decoder
}

// VarintEncoder appends varint-encoded scalars to an Encoder.
type VarintEncoder struct {
	encoder *Encoder
}

func NewVarintDecoder(d *Decoder) *VarintDecoder {
	return &VarintDecoder{decoder: d}
}

func NewVarintEncoder(e *Encoder) *VarintEncoder {
	return &VarintEncoder{encoder: e}
}

// DecodeVarint reads one base-128 varint. Input ending before the last byte
// is ErrTruncatedInput; an encoding longer than ten bytes, or a tenth byte
// carrying more than the top bit of a uint64, is ErrVarintOverflow.
func (vd *VarintDecoder) DecodeVarint() (uint64, error) {
	d := vd.decoder
	v, n := protowire.ConsumeVarint(d.buf[d.pos:])
	if n < 0 {
		return 0, consumeError(n)
	}
	d.pos += n
	return v, nil
}

// DecodeInt32 keeps the low 32 bits, so negative values sent as ten bytes
// come back intact.
func (vd *VarintDecoder) DecodeInt32() (int32, error) {
	v, err := vd.DecodeVarint()
	return int32(v), err
}

func (vd *VarintDecoder) DecodeInt64() (int64, error) {
	v, err := vd.DecodeVarint()
	return int64(v), err
}

// DecodeUint32 keeps the low 32 bits.
func (vd *VarintDecoder) DecodeUint32() (uint32, error) {
	v, err := vd.DecodeVarint()
	return uint32(v), err
}

func (vd *VarintDecoder) DecodeSint32() (int32, error) {
	v, err := vd.DecodeVarint()
	return DecodeZigZag32(v), err
}

func (vd *VarintDecoder) DecodeSint64() (int64, error) {
	v, err := vd.DecodeVarint()
	return DecodeZigZag64(v), err
}

// DecodeBool treats any non-zero value as true.
func (vd *VarintDecoder) DecodeBool() (bool, error) {
	v, err := vd.DecodeVarint()
	return protowire.DecodeBool(v), err
}

// DecodeEnum returns the raw enum number; domain checks are the caller's.
func (vd *VarintDecoder) DecodeEnum() (int32, error) {
	return vd.DecodeInt32()
}

func (vd *VarintDecoder) SkipVarint() error {
	_, err := vd.DecodeVarint()
	return err
}

func (ve *VarintEncoder) EncodeVarint(v uint64) {
	ve.encoder.buf = protowire.AppendVarint(ve.encoder.buf, v)
}

// EncodeInt32 sign-extends, so negative values take ten bytes.
func (ve *VarintEncoder) EncodeInt32(v int32) {
	ve.EncodeVarint(uint64(int64(v)))
}

func (ve *VarintEncoder) EncodeInt64(v int64) {
	ve.EncodeVarint(uint64(v))
}

func (ve *VarintEncoder) EncodeUint32(v uint32) {
	ve.EncodeVarint(uint64(v))
}

func (ve *VarintEncoder) EncodeUint64(v uint64) {
	ve.EncodeVarint(v)
}

func (ve *VarintEncoder) EncodeSint32(v int32) {
	ve.EncodeVarint(EncodeZigZag32(v))
}

func (ve *VarintEncoder) EncodeSint64(v int64) {
	ve.EncodeVarint(EncodeZigZag64(v))
}

func (ve *VarintEncoder) EncodeBool(v bool) {
	ve.EncodeVarint(protowire.EncodeBool(v))
}

func (ve *VarintEncoder) EncodeEnum(v int32) {
	ve.EncodeInt32(v)
}

func DecodeZigZag32(encoded uint64) int32 {
	return int32(protowire.DecodeZigZag(encoded & 0xffffffff))
}

func DecodeZigZag64(encoded uint64) int64 {
	return protowire.DecodeZigZag(encoded)
}

func EncodeZigZag32(v int32) uint64 {
	return protowire.EncodeZigZag(int64(v))
}

func EncodeZigZag64(v int64) uint64 {
	return protowire.EncodeZigZag(v)
}

// VarintSize returns the encoded length of v.
func VarintSize(v uint64) int {
	return protowire.SizeVarint(v)
}

func (d *Decoder) DecodeVarint() (uint64, error) {
	return NewVarintDecoder(d).DecodeVarint()
}

// DecodeTag reads one tag and splits it into field number and wire type.
// Field numbers outside 1..2^29-1 are ErrInvalidValue.
func (d *Decoder) DecodeTag() (FieldNumber, WireType, error) {
	tag, err := d.DecodeVarint()
	if err != nil {
		return 0, 0, err
	}
	if tag>>3 == 0 || tag>>3 > maxFieldNumber {
		return 0, 0, fmt.Errorf("%w: field number %d out of range", ErrInvalidValue, tag>>3)
	}
	fieldNumber, wireType := ParseTag(Tag(tag))
	return fieldNumber, wireType, nil
}

func (e *Encoder) EncodeVarint(v uint64) {
	NewVarintEncoder(e).EncodeVarint(v)
}

// EncodeTag appends the tag for fieldNumber and wireType.
func (e *Encoder) EncodeTag(fieldNumber FieldNumber, wireType WireType) {
	e.EncodeVarint(uint64(MakeTag(fieldNumber, wireType)))
}
