package registry

import (
	"fmt"
	"strconv"
	"strings"

	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/skycoin/skycoin-sub000/schema"
)

// pendingRef is a field whose type names a message or enum that can only be
// resolved once every file has been converted.
type pendingRef struct {
	owner    *schema.Message
	field    *schema.Field
	typeName string
	scope    string // fully qualified name of the enclosing message
}

type builder struct {
	order   []string
	pending []pendingRef
}

func newBuilder() *builder {
	return &builder{}
}

// convertFile turns one parsed .proto into its schema form.
func (b *builder) convertFile(name string, parsed *protoparserparser.Proto) (*schema.ProtoFile, error) {
	pf := &schema.ProtoFile{
		Name:     name,
		Syntax:   "proto2",
		Imports:  []*schema.Import{},
		Messages: []*schema.Message{},
		Enums:    []*schema.Enum{},
	}
	if parsed.Syntax != nil && parsed.Syntax.ProtobufVersion != "" {
		pf.Syntax = parsed.Syntax.ProtobufVersion
	}

	for _, body := range parsed.ProtoBody {
		if p, ok := body.(*protoparserparser.Package); ok {
			pf.Package = p.Name
		}
	}

	for _, body := range parsed.ProtoBody {
		switch v := body.(type) {
		case *protoparserparser.Import:
			pf.Imports = append(pf.Imports, &schema.Import{
				Path:   strings.Trim(v.Location, `"'`),
				Public: v.Modifier == protoparserparser.ImportModifierPublic,
				Weak:   v.Modifier == protoparserparser.ImportModifierWeak,
			})
		case *protoparserparser.Message:
			msg, err := b.convertMessage(v, pf.Package)
			if err != nil {
				return nil, err
			}
			pf.Messages = append(pf.Messages, msg)
		case *protoparserparser.Enum:
			enum, err := convertEnum(v, pf.Package)
			if err != nil {
				return nil, err
			}
			pf.Enums = append(pf.Enums, enum)
		}
	}

	b.order = append(b.order, name)
	return pf, nil
}

func (b *builder) convertMessage(m *protoparserparser.Message, scope string) (*schema.Message, error) {
	msg := &schema.Message{
		Name:     m.MessageName,
		FullName: qualify(scope, m.MessageName),
	}

	for _, body := range m.MessageBody {
		switch v := body.(type) {
		case *protoparserparser.Field:
			field, err := b.convertField(msg, v)
			if err != nil {
				return nil, fmt.Errorf("message %s: %w", msg.FullName, err)
			}
			msg.Fields = append(msg.Fields, field)
		case *protoparserparser.Message:
			nested, err := b.convertMessage(v, msg.FullName)
			if err != nil {
				return nil, err
			}
			msg.NestedTypes = append(msg.NestedTypes, nested)
		case *protoparserparser.Enum:
			enum, err := convertEnum(v, msg.FullName)
			if err != nil {
				return nil, err
			}
			msg.NestedEnums = append(msg.NestedEnums, enum)
		case *protoparserparser.MapField, *protoparserparser.Oneof:
			return nil, fmt.Errorf("message %s: maps and oneofs are not part of the device protocol", msg.FullName)
		}
	}
	return msg, nil
}

func (b *builder) convertField(owner *schema.Message, f *protoparserparser.Field) (*schema.Field, error) {
	number, err := strconv.ParseInt(f.FieldNumber, 0, 32)
	if err != nil || number <= 0 || number > 1<<29-1 {
		return nil, fmt.Errorf("field %s: invalid number %q", f.FieldName, f.FieldNumber)
	}

	field := &schema.Field{
		Name:   f.FieldName,
		Number: int32(number),
		Label:  schema.LabelOptional,
	}
	switch {
	case f.IsRepeated:
		field.Label = schema.LabelRepeated
	case f.IsRequired:
		field.Label = schema.LabelRequired
	}

	for _, opt := range f.FieldOptions {
		switch opt.OptionName {
		case "default":
			field.DefaultValue = unquote(opt.Constant)
		case "packed":
			field.Packed = opt.Constant == "true"
		}
	}

	if p, ok := schema.LookupPrimitive(f.Type); ok {
		field.Type = schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: p}
		return field, nil
	}
	b.pending = append(b.pending, pendingRef{
		owner:    owner,
		field:    field,
		typeName: f.Type,
		scope:    owner.FullName,
	})
	return field, nil
}

func convertEnum(e *protoparserparser.Enum, scope string) (*schema.Enum, error) {
	enum := &schema.Enum{
		Name:     e.EnumName,
		FullName: qualify(scope, e.EnumName),
	}
	seen := make(map[int32]string)
	for _, body := range e.EnumBody {
		ef, ok := body.(*protoparserparser.EnumField)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(ef.Number, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("enum %s: value %s: invalid number %q", enum.FullName, ef.Ident, ef.Number)
		}
		if prev, dup := seen[int32(n)]; dup {
			return nil, fmt.Errorf("%w: enum %s values %s and %s share number %d", ErrDuplicate, enum.FullName, prev, ef.Ident, n)
		}
		seen[int32(n)] = ef.Ident

		value := &schema.EnumValue{Name: ef.Ident, Number: int32(n)}
		for _, opt := range ef.EnumValueOptions {
			if value.Options == nil {
				value.Options = make(map[string]bool)
			}
			name := strings.Trim(opt.OptionName, "()")
			value.Options[name] = opt.Constant == "true"
		}
		enum.Values = append(enum.Values, value)
	}
	return enum, nil
}

func qualify(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
