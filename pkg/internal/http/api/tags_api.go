package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/bildev/tastebook/pkg/internal/http/exts"
	"github.com/bildev/tastebook/pkg/internal/models"
	"github.com/bildev/tastebook/pkg/internal/services"
	"github.com/bildev/tastebook/pkg/internal/transform"
)

type tagPayload struct {
	Slug       string `json:"slug,omitempty" validate:"omitempty,max=128"`
	Label      string `json:"label" validate:"required,max=128"`
	Color      string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	IsOnline   bool   `json:"isOnline"`
	IsFavorite bool   `json:"isFavorite"`
}

func listTags(c *fiber.Ctx) error {
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	items, err := services.ListTags(take, offset, true)
	if err != nil {
		return err
	}

	return exts.WriteData(c, lo.Map(items, func(item models.Tag, _ int) map[string]any {
		return transform.TagResponse(exts.ToMap(item))
	}))
}

func getTag(c *fiber.Ctx) error {
	item, err := services.GetTag(c.Params("slug"))
	if err != nil {
		return err
	}

	return exts.WriteData(c, transform.TagResponse(exts.ToMap(item)))
}

func createTag(c *fiber.Ctx) error {
	var data tagPayload
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	payload, err := transform.TagRequest(exts.ToMap(data))
	if err != nil {
		return err
	}

	item, err := services.NewTag(payload)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"success": true, "data": transform.TagResponse(exts.ToMap(item))})
}

func editTag(c *fiber.Ctx) error {
	item, err := services.GetTag(c.Params("slug"))
	if err != nil {
		return err
	}

	var data tagPayload
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	if data.Slug == "" {
		data.Slug = item.Slug
	}

	payload, err := transform.TagRequest(exts.ToMap(data))
	if err != nil {
		return err
	}

	item, err = services.EditTag(item, payload)
	if err != nil {
		return err
	}

	return exts.WriteData(c, transform.TagResponse(exts.ToMap(item)))
}

func deleteTag(c *fiber.Ctx) error {
	item, err := services.GetTag(c.Params("slug"))
	if err != nil {
		return err
	}

	if err := services.DeleteTag(item); err != nil {
		return err
	}

	return exts.WriteData(c, nil)
}
