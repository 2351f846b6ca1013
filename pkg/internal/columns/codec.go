package columns

import (
	jsoniter "github.com/json-iterator/go"
)

// Codec turns one JSON column kind between its storage string and a
// normalized in-memory map. Parsing tolerates anything: a missing or
// malformed column degrades to an empty object, never to an error. The
// normalize step is a projection, so unknown keys do not survive it.
type Codec struct {
	Kind      string
	normalize func(map[string]any) map[string]any
}

// Parse accepts the raw stored value (string, map, or nil) and returns the
// normalized object. Never fails.
func (c Codec) Parse(stored any) map[string]any {
	obj := looseObject(stored)
	if c.normalize == nil {
		return obj
	}
	return c.normalize(obj)
}

// Serialize normalizes the input the same way Parse does, then encodes it.
// The zero value for a column is the string "{}".
func (c Codec) Serialize(value any) string {
	raw, err := jsoniter.MarshalToString(c.Parse(value))
	if err != nil {
		return "{}"
	}
	return raw
}

func looseObject(stored any) map[string]any {
	switch v := stored.(type) {
	case nil:
		return map[string]any{}
	case string:
		if v == "" {
			return map[string]any{}
		}
		var obj map[string]any
		if err := jsoniter.UnmarshalFromString(v, &obj); err != nil || obj == nil {
			return map[string]any{}
		}
		return obj
	case []byte:
		return looseObject(string(v))
	case map[string]any:
		if v == nil {
			return map[string]any{}
		}
		return v
	default:
		return map[string]any{}
	}
}

// Typed pickers shared by the per-kind projections. Each returns the value
// and whether it had the exact expected type; mismatches are dropped by the
// callers rather than coerced.

func pickString(obj map[string]any, key string) (string, bool) {
	v, ok := obj[key].(string)
	return v, ok
}

func pickBool(obj map[string]any, key string) (bool, bool) {
	v, ok := obj[key].(bool)
	return v, ok
}

func pickNumber(obj map[string]any, key string) (any, bool) {
	switch obj[key].(type) {
	case float64, float32, int, int64, int32, uint, uint64, uint32:
		return obj[key], true
	default:
		return nil, false
	}
}

func pickArray(obj map[string]any, key string) ([]any, bool) {
	v, ok := obj[key].([]any)
	return v, ok
}

func pickObject(obj map[string]any, key string) (map[string]any, bool) {
	v, ok := obj[key].(map[string]any)
	return v, ok && v != nil
}
