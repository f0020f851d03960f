package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/pion/logging"
	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/skycoin/skycoin-sub000/protob"
	"github.com/skycoin/skycoin-sub000/schema"
)

var (
	// ErrNotFound is returned when a lookup does not match any schema.
	ErrNotFound = errors.New("registry: not found")

	// ErrDuplicate is returned when a type id, name or field tag is registered twice.
	ErrDuplicate = errors.New("registry: duplicate definition")

	// ErrSealed is returned when registering into a registry that is already in use.
	ErrSealed = errors.New("registry: sealed")
)

// messageTypeEnum is the enum that maps wire identifiers to message names.
const (
	messageTypeEnum   = "MessageType"
	messageTypePrefix = "MessageType_"
)

// Registry allows us to store the schema of the device messages. We look this up when we need to parse or marshal a message.
//
// A Registry is populated once at start-up and sealed; after that it is
// read-only and safe for concurrent use without locking.
type Registry struct {
	repo     *schema.ProtoRepo
	messages map[string]*schema.Message        // fully qualified name -> message
	enums    map[string]*schema.Enum           // fully qualified name -> enum
	byTypeID map[schema.TypeID]*schema.Message // wire identifier -> message
	sealed   bool

	fsys            fs.FS
	parsedProtoBody map[string]*protoparserparser.Proto

	log logging.LeveledLogger
}

func NewRegistry() *Registry {
	return &Registry{}
}

// NewRegistryWithLogger creates a registry that reports loading progress.
func NewRegistryWithLogger(factory logging.LoggerFactory) *Registry {
	r := NewRegistry()
	if factory != nil {
		r.log = factory.NewLogger("hwregistry")
	}
	return r
}

// LoadEmbedded builds a sealed registry from the protos compiled into the binary.
func LoadEmbedded(factory logging.LoggerFactory) (*Registry, error) {
	r := NewRegistryWithLogger(factory)
	if err := r.LoadFS(protob.Files, protob.Root); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) init() {
	if r.messages == nil {
		r.messages = make(map[string]*schema.Message)
	}
	if r.enums == nil {
		r.enums = make(map[string]*schema.Enum)
	}
	if r.byTypeID == nil {
		r.byTypeID = make(map[schema.TypeID]*schema.Message)
	}
	if r.repo == nil {
		r.repo = &schema.ProtoRepo{ProtoFiles: make(map[string]*schema.ProtoFile)}
	}
	if r.parsedProtoBody == nil {
		r.parsedProtoBody = make(map[string]*protoparserparser.Proto)
	}
}

// LoadFS parses root and every file it imports from fsys, registers all
// messages and enums, then seals the registry. Imports of google/protobuf
// files are skipped.
func (r *Registry) LoadFS(fsys fs.FS, root string) error {
	if r.sealed {
		return ErrSealed
	}
	r.init()
	r.fsys = fsys

	files, err := r.getAllProtoInfo(root)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", root, err)
	}

	b := newBuilder()
	for _, name := range files {
		pf, err := b.convertFile(name, r.parsedProtoBody[name])
		if err != nil {
			return fmt.Errorf("failed to convert %s: %w", name, err)
		}
		r.repo.ProtoFiles[name] = pf
	}

	if err := r.buildSymbolTable(b); err != nil {
		return fmt.Errorf("failed to build symbol table: %w", err)
	}

	if r.log != nil {
		r.log.Debugf("loaded %d files, %d messages (%d with wire ids), %d enums",
			len(files), len(r.messages), len(r.byTypeID), len(r.enums))
	}
	r.Seal()
	return nil
}

// buildSymbolTable builds the symbol table from the converted files
func (r *Registry) buildSymbolTable(b *builder) error {
	// Pass 1: Register all message and enum names
	for _, name := range b.order {
		if err := r.registerNames(r.repo.ProtoFiles[name]); err != nil {
			return err
		}
	}

	// Pass 2: Resolve field type references now that every name is known
	if err := r.buildDefinitions(b); err != nil {
		return err
	}

	// Pass 3: Attach wire identifiers from the MessageType enum
	return r.assignTypeIDs()
}

// registerNames registers all message and enum names
func (r *Registry) registerNames(protoFile *schema.ProtoFile) error {
	for _, msg := range protoFile.Messages {
		if err := r.registerMessageTree(msg); err != nil {
			return err
		}
	}
	for _, enum := range protoFile.Enums {
		if err := r.registerEnum(enum); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) registerMessageTree(msg *schema.Message) error {
	if _, exists := r.messages[msg.FullName]; exists {
		return fmt.Errorf("%w: message %s", ErrDuplicate, msg.FullName)
	}
	if err := checkUniqueTags(msg); err != nil {
		return err
	}
	r.messages[msg.FullName] = msg
	for _, nested := range msg.NestedTypes {
		if err := r.registerMessageTree(nested); err != nil {
			return err
		}
	}
	for _, enum := range msg.NestedEnums {
		if err := r.registerEnum(enum); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) registerEnum(enum *schema.Enum) error {
	if _, exists := r.enums[enum.FullName]; exists {
		return fmt.Errorf("%w: enum %s", ErrDuplicate, enum.FullName)
	}
	r.enums[enum.FullName] = enum
	return nil
}

// buildDefinitions resolves every pending field type reference and checks defaults.
func (r *Registry) buildDefinitions(b *builder) error {
	entities := make(map[string]struct{}, len(r.messages)+len(r.enums))
	for name := range r.messages {
		entities[name] = struct{}{}
	}
	for name := range r.enums {
		entities[name] = struct{}{}
	}

	for _, ref := range b.pending {
		resolved, err := getReferencedType(ref.typeName, ref.scope, entities)
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", ref.owner.FullName, ref.field.Name, err)
		}
		if msg, ok := r.messages[resolved]; ok {
			ref.field.Type.Kind = schema.KindMessage
			ref.field.Type.MessageType = resolved
			ref.field.Type.Message = msg
			continue
		}
		enum := r.enums[resolved]
		ref.field.Type.Kind = schema.KindEnum
		ref.field.Type.EnumType = resolved
		ref.field.Type.Enum = enum
		if ref.field.HasDefault() && enum.ValueByName(ref.field.DefaultValue) == nil {
			return fmt.Errorf("field %s.%s: default %q is not a value of %s",
				ref.owner.FullName, ref.field.Name, ref.field.DefaultValue, resolved)
		}
	}

	for _, name := range sortedKeys(r.messages) {
		for _, f := range r.messages[name].Fields {
			if f.HasDefault() && f.Type.Kind == schema.KindPrimitive {
				if _, err := schema.DefaultFor(f); err != nil {
					return fmt.Errorf("message %s: %w", name, err)
				}
			}
		}
	}
	return nil
}

// assignTypeIDs reads MessageType_<Name> = <id> values and indexes the
// matching messages by id.
func (r *Registry) assignTypeIDs() error {
	enum, ok := r.enums[messageTypeEnum]
	if !ok {
		return nil
	}
	for _, v := range enum.Values {
		name := strings.TrimPrefix(v.Name, messageTypePrefix)
		msg, ok := r.messages[name]
		if !ok {
			return fmt.Errorf("%w: %s names no message", ErrNotFound, v.Name)
		}
		if v.Number < 0 || v.Number > 0xffff {
			return fmt.Errorf("%s: wire id %d out of range", v.Name, v.Number)
		}
		msg.TypeID = schema.TypeID(v.Number)
		msg.HasTypeID = true
		switch {
		case v.Options["wire_in"]:
			msg.Direction = schema.DirectionIn
		case v.Options["wire_out"]:
			msg.Direction = schema.DirectionOut
		}
		msg.Tiny = v.Options["wire_tiny"]
		if err := r.indexTypeID(msg); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) indexTypeID(msg *schema.Message) error {
	if prev, exists := r.byTypeID[msg.TypeID]; exists {
		return fmt.Errorf("%w: wire id %d used by %s and %s", ErrDuplicate, msg.TypeID, prev.Name, msg.Name)
	}
	r.byTypeID[msg.TypeID] = msg
	return nil
}

func checkUniqueTags(msg *schema.Message) error {
	seenNumbers := make(map[int32]string, len(msg.Fields))
	seenNames := make(map[string]struct{}, len(msg.Fields))
	for _, f := range msg.Fields {
		if prev, ok := seenNumbers[f.Number]; ok {
			return fmt.Errorf("%w: %s fields %s and %s share tag %d", ErrDuplicate, msg.FullName, prev, f.Name, f.Number)
		}
		if _, ok := seenNames[f.Name]; ok {
			return fmt.Errorf("%w: %s field name %s", ErrDuplicate, msg.FullName, f.Name)
		}
		seenNumbers[f.Number] = f.Name
		seenNames[f.Name] = struct{}{}
	}
	return nil
}

// RegisterSchema adds a top level message with a wire identifier. It fails
// when the id or name is already taken, when two fields share a tag, or when
// the registry has been sealed.
func (r *Registry) RegisterSchema(msg *schema.Message) error {
	if r.sealed {
		return ErrSealed
	}
	if !msg.HasTypeID {
		return fmt.Errorf("message %s has no wire id", msg.Name)
	}
	r.init()
	if msg.FullName == "" {
		msg.FullName = msg.Name
	}
	if _, exists := r.messages[msg.FullName]; exists {
		return fmt.Errorf("%w: message %s", ErrDuplicate, msg.FullName)
	}
	if err := checkUniqueTags(msg); err != nil {
		return err
	}
	if err := r.indexTypeID(msg); err != nil {
		return err
	}
	r.messages[msg.FullName] = msg
	return nil
}

// MustRegister is RegisterSchema for package initialisation; it panics on error.
func (r *Registry) MustRegister(msg *schema.Message) {
	if err := r.RegisterSchema(msg); err != nil {
		panic(err)
	}
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.init()
	r.sealed = true
	r.parsedProtoBody = nil
	r.fsys = nil
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool { return r.sealed }

// SchemaForTypeID returns the message carried under a wire identifier.
func (r *Registry) SchemaForTypeID(id schema.TypeID) (*schema.Message, error) {
	if msg, ok := r.byTypeID[id]; ok {
		return msg, nil
	}
	return nil, fmt.Errorf("%w: wire id %d", ErrNotFound, id)
}

// SchemaForKind returns the top level message called kind. Both "Features"
// and "MessageType_Features" are accepted.
func (r *Registry) SchemaForKind(kind string) (*schema.Message, error) {
	msg, err := r.GetMessage(strings.TrimPrefix(kind, messageTypePrefix))
	if err != nil {
		return nil, err
	}
	if !msg.HasTypeID {
		return nil, fmt.Errorf("%w: %s is not a top level message", ErrNotFound, kind)
	}
	return msg, nil
}

// GetMessage retrieves a message definition by name
func (r *Registry) GetMessage(name string) (*schema.Message, error) {
	if msg, exists := r.messages[name]; exists {
		return msg, nil
	}

	// Try without package prefix
	for _, fullName := range sortedKeys(r.messages) {
		if strings.HasSuffix(fullName, "."+name) {
			return r.messages[fullName], nil
		}
	}

	return nil, fmt.Errorf("%w: message %s", ErrNotFound, name)
}

// GetEnum retrieves an enum definition by name
func (r *Registry) GetEnum(name string) (*schema.Enum, error) {
	if enum, exists := r.enums[name]; exists {
		return enum, nil
	}

	// Try without package prefix
	for _, fullName := range sortedKeys(r.enums) {
		if strings.HasSuffix(fullName, "."+name) {
			return r.enums[fullName], nil
		}
	}

	return nil, fmt.Errorf("%w: enum %s", ErrNotFound, name)
}

// ListMessages returns all registered message names, sorted
func (r *Registry) ListMessages() []string {
	return sortedKeys(r.messages)
}

// ListEnums returns all registered enum names, sorted
func (r *Registry) ListEnums() []string {
	return sortedKeys(r.enums)
}

// TypeIDs returns every registered wire identifier in ascending order.
func (r *Registry) TypeIDs() []schema.TypeID {
	ids := make([]schema.TypeID, 0, len(r.byTypeID))
	for id := range r.byTypeID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
