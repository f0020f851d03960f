package hwproto

import (
	"errors"
	"fmt"

	"github.com/pion/logging"

	"github.com/skycoin/skycoin-sub000/messages"
	"github.com/skycoin/skycoin-sub000/registry"
	"github.com/skycoin/skycoin-sub000/schema"
	"github.com/skycoin/skycoin-sub000/wire"
)

// ErrUnknownMessageType is returned for a wire identifier with no schema.
var ErrUnknownMessageType = errors.New("hwproto: unknown message type")

// Codec converts between frame payloads, field maps and typed messages
// using the schemas of a sealed registry. A Codec is safe for concurrent use.
type Codec struct {
	registry *registry.Registry
	config   wire.Config
}

// Option configures a Codec.
type Option func(*Codec)

// WithConfig sets the decoding options used by Decode and DecodeKind.
func WithConfig(c wire.Config) Option {
	return func(cd *Codec) {
		cd.config = c
	}
}

// New creates a codec over reg. The registry should already be sealed.
func New(reg *registry.Registry, opts ...Option) *Codec {
	c := &Codec{
		registry: reg,
		config:   wire.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewDefault loads the embedded device protocol and returns a codec for it.
func NewDefault(factory logging.LoggerFactory, opts ...Option) (*Codec, error) {
	reg, err := registry.LoadEmbedded(factory)
	if err != nil {
		return nil, fmt.Errorf("failed to load device protocol: %w", err)
	}
	return New(reg, opts...), nil
}

// Decoded is a payload decoded into a field map.
type Decoded struct {
	Type   messages.MessageType
	Name   string
	Fields map[string]interface{}
}

// Decode parses payload as the message carried under typeID.
func (c *Codec) Decode(typeID uint16, payload []byte) (*Decoded, error) {
	msg, err := c.schemaForType(typeID)
	if err != nil {
		return nil, err
	}
	fields, err := wire.DecodeMessageWithConfig(payload, msg, c.registry, c.config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", msg.Name, err)
	}
	return &Decoded{
		Type:   messages.MessageType(typeID),
		Name:   msg.Name,
		Fields: fields,
	}, nil
}

// DecodeKind parses payload as the named message.
func (c *Codec) DecodeKind(kind string, payload []byte) (map[string]interface{}, error) {
	msg, err := c.registry.SchemaForKind(kind)
	if err != nil {
		return nil, fmt.Errorf("message type not found: %w", err)
	}
	return wire.DecodeMessageWithConfig(payload, msg, c.registry, c.config)
}

// Encode serializes fields as the named message and returns the payload
// together with the message's wire identifier.
func (c *Codec) Encode(kind string, fields map[string]interface{}) (uint16, []byte, error) {
	msg, err := c.registry.SchemaForKind(kind)
	if err != nil {
		return 0, nil, fmt.Errorf("message type not found: %w", err)
	}
	payload, err := wire.EncodeMessage(fields, msg, c.registry)
	if err != nil {
		return 0, nil, err
	}
	return uint16(msg.TypeID), payload, nil
}

// Verify reports the first reason fields could not be encoded as kind.
func (c *Codec) Verify(kind string, fields map[string]interface{}) error {
	msg, err := c.registry.SchemaForKind(kind)
	if err != nil {
		return fmt.Errorf("message type not found: %w", err)
	}
	return wire.Verify(fields, msg, c.registry)
}

// Marshal encodes a typed message.
func (c *Codec) Marshal(m messages.Message) ([]byte, error) {
	msg, err := c.schemaForType(uint16(m.MessageType()))
	if err != nil {
		return nil, err
	}
	fields, err := c.structToMap(m, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to map %s: %w", msg.Name, err)
	}
	return wire.EncodeMessage(fields, msg, c.registry)
}

// Unmarshal decodes payload into a new typed message of kind typeID.
// Optional fields that are absent stay nil so that their getters report
// the declared default.
func (c *Codec) Unmarshal(typeID uint16, payload []byte) (messages.Message, error) {
	m, ok := messages.New(messages.MessageType(typeID))
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMessageType, typeID)
	}
	msg, err := c.schemaForType(typeID)
	if err != nil {
		return nil, err
	}
	cfg := c.config
	cfg.PopulateDefaultsOnDecode = false
	fields, err := wire.DecodeMessageWithConfig(payload, msg, c.registry, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", msg.Name, err)
	}
	if err := c.mapToStruct(fields, m, msg); err != nil {
		return nil, fmt.Errorf("failed to map %s: %w", msg.Name, err)
	}
	return m, nil
}

func (c *Codec) schemaForType(typeID uint16) (*schema.Message, error) {
	msg, err := c.registry.SchemaForTypeID(schema.TypeID(typeID))
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownMessageType, typeID)
		}
		return nil, err
	}
	return msg, nil
}

// ===== REGISTRY ACCESS =====

func (c *Codec) Registry() *registry.Registry { return c.registry }
func (c *Codec) Config() wire.Config          { return c.config }
func (c *Codec) ListMessages() []string       { return c.registry.ListMessages() }
func (c *Codec) ListEnums() []string          { return c.registry.ListEnums() }
