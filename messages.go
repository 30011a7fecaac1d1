package conform

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Messages is a custom-message tree mirroring the shape of a descriptor.
// Values are strings, nested trees (Messages or map[string]any) or
// MessageFunc. Ordinary keys are field names and decimal indices; the
// FailureKind values (":type", ":predicate", ...) are reserved keys selecting
// a message by failure kind.
//
// A string (or MessageFunc) node applies to every failure at or below its
// position. Inside a tree, the AnyKind key gives a message for failures of
// every kind at that node; it is how the root gets a single message.
type Messages map[string]any

// AnyKind is the reserved key matching failures of any kind. Kind-specific
// keys take precedence.
const AnyKind = ""

// MessageFunc computes a custom message from the offending value and the
// failure path.
type MessageFunc func(value any, path Path) string

// Resolve returns the custom message configured for a failure of the given
// kind at path, or false when the tree has none and the default formatter
// applies.
func Resolve(m Messages, path Path, kind FailureKind, value any) (string, bool) {
	if m == nil {
		return "", false
	}
	var node any = m
	for _, seg := range path {
		if msg, ok := leafMessage(node, value, path); ok {
			return msg, true
		}
		sub, ok := subtree(node)
		if !ok {
			return "", false
		}
		node, ok = sub[seg.String()]
		if !ok {
			return "", false
		}
	}
	if msg, ok := leafMessage(node, value, path); ok {
		return msg, true
	}
	sub, ok := subtree(node)
	if !ok {
		return "", false
	}
	if msg, ok := leafMessage(sub[string(kind)], value, path); ok {
		return msg, true
	}
	if kind == FailureStruct {
		if msg, ok := leafMessage(sub[string(FailureInput)], value, path); ok {
			return msg, true
		}
	}
	return leafMessage(sub[AnyKind], value, path)
}

func leafMessage(node, value any, path Path) (string, bool) {
	switch n := node.(type) {
	case string:
		return n, true
	case MessageFunc:
		if n == nil {
			return "", false
		}
		return n(value, path), true
	case func(any, Path) string:
		if n == nil {
			return "", false
		}
		return n(value, path), true
	}
	return "", false
}

func subtree(node any) (map[string]any, bool) {
	switch n := node.(type) {
	case Messages:
		return n, true
	case map[string]any:
		return n, true
	}
	return nil, false
}

// MessagesFromJSON decodes a message tree from a JSON document.
func MessagesFromJSON(data []byte) (Messages, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("conform: decode messages: %w", err)
	}
	return normalizeMessages(m)
}

// MessagesFromYAML decodes a message tree from a YAML document. Integer keys
// (tuple and list indices) are accepted and turned into their decimal form.
func MessagesFromYAML(data []byte) (Messages, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("conform: decode messages: %w", err)
	}
	if raw == nil {
		return Messages{}, nil
	}
	return normalizeMessages(raw)
}

func normalizeMessages(raw any) (Messages, error) {
	out := Messages{}
	switch n := raw.(type) {
	case map[string]any:
		for k, v := range n {
			nv, err := normalizeNode(k, v)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
	case map[any]any:
		for k, v := range n {
			ks := renderKey(k)
			nv, err := normalizeNode(ks, v)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
	default:
		return nil, fmt.Errorf("conform: messages must be a mapping, got %T", raw)
	}
	return out, nil
}

func normalizeNode(key string, v any) (any, error) {
	switch n := v.(type) {
	case string:
		return n, nil
	case map[string]any, map[any]any:
		sub, err := normalizeMessages(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return sub, nil
	}
	return nil, fmt.Errorf("conform: message %q must be a string or a mapping, got %T", key, v)
}
