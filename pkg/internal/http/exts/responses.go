package exts

import (
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

// WriteData wraps a payload in the standard success envelope.
func WriteData(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// WritePage wraps a list payload together with pagination info.
func WritePage(c *fiber.Ctx, data any, total int64, take int, offset int) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"pagination": fiber.Map{
			"total":  total,
			"take":   take,
			"offset": offset,
		},
	})
}

// ToMap flattens a model into the loose row shape the response transformers
// consume.
func ToMap(v any) map[string]any {
	var mapping map[string]any
	raw, _ := jsoniter.Marshal(v)
	_ = jsoniter.Unmarshal(raw, &mapping)
	return mapping
}
