package docstore

import (
	"fmt"
	"time"
)

// Document is the persisted tree: string keys mapping to scalars
// (string, number, nil) or nested Documents. After a backend round trip
// nested nodes are plain map[string]any values.
type Document map[string]any

// GetPath walks the document along keys and returns the value at the leaf.
// The second return is false when any key along the path is absent or an
// intermediate node is not a mapping.
func GetPath(doc Document, keys ...string) (any, bool) {
	var current any = map[string]any(doc)
	for _, key := range keys {
		node, ok := current.(map[string]any)
		if !ok {
			if d, isDoc := current.(Document); isDoc {
				node = map[string]any(d)
			} else {
				return nil, false
			}
		}
		value, exists := node[key]
		if !exists {
			return nil, false
		}
		current = value
	}
	return current, true
}

// SetPath sets the value at the leaf of keys, creating missing intermediate
// mappings along the way. It is intentionally lenient: a missing intermediate
// node is never an error, only an intermediate that already exists as a
// non-mapping value is.
func SetPath(doc Document, keys []string, value any) error {
	if len(keys) == 0 {
		return fmt.Errorf("docstore: empty key path")
	}

	node := map[string]any(doc)
	for _, key := range keys[:len(keys)-1] {
		next, exists := node[key]
		if !exists {
			child := map[string]any{}
			node[key] = child
			node = child
			continue
		}
		switch typed := next.(type) {
		case map[string]any:
			node = typed
		case Document:
			node = map[string]any(typed)
		default:
			return fmt.Errorf("docstore: key %q holds a %T, not a mapping", key, next)
		}
	}

	node[keys[len(keys)-1]] = value
	return nil
}

// Normalize converts typed calendar values to their wire representation
// before a document is handed to a backend: time.Time values become ISO-8601
// date strings. It walks nested mappings and lists and returns the same
// shape with dates replaced.
func Normalize(value any) any {
	switch typed := value.(type) {
	case time.Time:
		return typed.Format("2006-01-02")
	case Document:
		return Normalize(map[string]any(typed))
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = Normalize(v)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = Normalize(v)
		}
		return out
	default:
		return value
	}
}
