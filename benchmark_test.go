package hwproto

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/skycoin/skycoin-sub000/messages"
)

func benchCodec(b *testing.B) *Codec {
	b.Helper()
	c, err := NewDefault(nil)
	if err != nil {
		b.Fatalf("NewDefault failed: %v", err)
	}
	return c
}

// benchMessages are a small prompt and a large streamed transaction chunk.
func benchMessages() map[string]messages.Message {
	all := conformanceMessages()
	return map[string]messages.Message{
		"Failure": all[1],
		"TxAck":   all[5],
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	c := benchCodec(b)
	for name, m := range benchMessages() {
		payload, err := c.Marshal(m)
		if err != nil {
			b.Fatal(err)
		}
		id := uint16(m.MessageType())

		b.Run(name+"/Typed", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := c.Unmarshal(id, payload); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(name+"/Fields", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := c.Decode(id, payload); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(name+"/DynamicPB", func(b *testing.B) {
			md := referenceMessage(b, m.MessageType()).Descriptor()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := proto.Unmarshal(payload, dynamicpb.NewMessage(md)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMarshal(b *testing.B) {
	c := benchCodec(b)
	for name, m := range benchMessages() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := c.Marshal(m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
