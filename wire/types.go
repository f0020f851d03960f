package wire

import "github.com/skycoin/skycoin-sub000/schema"

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int32

const (
	WireVarint     WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64    WireType = 1 // fixed64, sfixed64, double
	WireBytes      WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireStartGroup WireType = 3 // deprecated, never produced by the device
	WireEndGroup   WireType = 4 // deprecated, never produced by the device
	WireFixed32    WireType = 5 // fixed32, sfixed32, float
)

// FieldNumber represents a protobuf field number
type FieldNumber int32

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag parses a tag into field number and wire type
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> 3), WireType(tag & 0x7)
}

// WireTypeFor returns the wire type used for a single value of the given kind.
func WireTypeFor(kind schema.WireKind) WireType {
	switch kind {
	case schema.WireKindFixed64:
		return WireFixed64
	case schema.WireKindBytes:
		return WireBytes
	case schema.WireKindFixed32:
		return WireFixed32
	default:
		return WireVarint
	}
}

// Value represents a decoded protobuf value
type Value struct {
	FieldNumber FieldNumber
	WireType    WireType
	Data        interface{} // Actual value
}
