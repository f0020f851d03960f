package registry

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"

	protoparser "github.com/yoheimuta/go-protoparser/v4"
	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"
)

// getAllProtoInfo parses root and everything it imports, depth first. The
// returned names list every dependency before the files importing it.
func (r *Registry) getAllProtoInfo(root string) ([]string, error) {
	var order []string
	seen := make(map[string]bool)

	var visit func(name string, stack []string) error
	visit = func(name string, stack []string) error {
		for _, s := range stack {
			if s == name {
				return fmt.Errorf("import cycle: %s -> %s", strings.Join(stack, " -> "), name)
			}
		}
		if seen[name] {
			return nil
		}
		seen[name] = true

		src, err := fs.ReadFile(r.fsys, name)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		parsed, err := protoparser.Parse(bytes.NewReader(src), protoparser.WithFilename(name))
		if err != nil {
			return err
		}
		r.parsedProtoBody[name] = parsed

		for _, body := range parsed.ProtoBody {
			imp, ok := body.(*protoparserparser.Import)
			if !ok {
				continue
			}
			location := strings.Trim(imp.Location, `"'`)
			// descriptor.proto only declares the option extensions
			if strings.HasPrefix(location, "google/protobuf/") {
				continue
			}
			dep, err := r.findIfProtoExists(location)
			if err != nil {
				return err
			}
			if err := visit(dep, append(stack, name)); err != nil {
				return err
			}
		}
		order = append(order, name)
		return nil
	}

	rootPath, err := r.findIfProtoExists(root)
	if err != nil {
		return nil, err
	}
	if err := visit(rootPath, nil); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Registry) findIfProtoExists(name string) (string, error) {
	name = path.Clean(strings.Trim(name, `"`))
	if path.Ext(name) != ".proto" {
		return "", fmt.Errorf("is not a .proto file %s", name)
	}
	if _, err := fs.Stat(r.fsys, name); err != nil {
		return "", fmt.Errorf("path does not exist: %s %w", name, err)
	}
	return name, nil
}

// getReferencedType resolves a type name used inside scope the way protoc
// does: a leading dot means fully qualified, otherwise the innermost
// enclosing scope that declares the name wins.
func getReferencedType(typeName, scope string, known map[string]struct{}) (string, error) {
	if strings.HasPrefix(typeName, ".") {
		name := typeName[1:]
		if _, ok := known[name]; ok {
			return name, nil
		}
		return "", fmt.Errorf("unable to resolve fully qualified (.) prefixed type name: %s", typeName)
	}

	for s := scope; s != ""; {
		candidate := s + "." + typeName
		if _, ok := known[candidate]; ok {
			return candidate, nil
		}
		i := strings.LastIndexByte(s, '.')
		if i < 0 {
			break
		}
		s = s[:i]
	}
	if _, ok := known[typeName]; ok {
		return typeName, nil
	}
	return "", fmt.Errorf("unable to resolve type name: %s", typeName)
}
