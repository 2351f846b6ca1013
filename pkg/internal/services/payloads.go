package services

import (
	jsoniter "github.com/json-iterator/go"
)

// applyPayload merges a column-shaped payload onto a model. Only keys the
// payload carries are touched, which is what gives updates their
// partial-merge semantics.
func applyPayload(payload map[string]any, out any) error {
	raw, err := jsoniter.Marshal(payload)
	if err != nil {
		return err
	}
	return jsoniter.Unmarshal(raw, out)
}
