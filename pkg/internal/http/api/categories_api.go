package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/bildev/tastebook/pkg/internal/http/exts"
	"github.com/bildev/tastebook/pkg/internal/models"
	"github.com/bildev/tastebook/pkg/internal/services"
	"github.com/bildev/tastebook/pkg/internal/transform"
)

func listCategories(c *fiber.Ctx) error {
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	if c.QueryBool("tree", false) {
		roots, err := services.CategoryTree(true)
		if err != nil {
			return err
		}
		return exts.WriteData(c, lo.Map(roots, func(item *models.Category, _ int) map[string]any {
			return categoryTreeResponse(item)
		}))
	}

	items, err := services.ListCategories(take, offset, true)
	if err != nil {
		return err
	}

	return exts.WriteData(c, lo.Map(items, func(item models.Category, _ int) map[string]any {
		return transform.CategoryResponse(exts.ToMap(item))
	}))
}

// categoryTreeResponse expands a node and all of its descendants, so nested
// rows carry the same flat convenience fields as the plain listing.
func categoryTreeResponse(node *models.Category) map[string]any {
	out := transform.CategoryResponse(exts.ToMap(node))
	if len(node.Children) > 0 {
		out["children"] = lo.Map(node.Children, func(child *models.Category, _ int) map[string]any {
			return categoryTreeResponse(child)
		})
	}
	return out
}

func getCategory(c *fiber.Ctx) error {
	item, err := services.GetCategory(c.Params("slugOrId"))
	if err != nil {
		return err
	}

	return exts.WriteData(c, transform.CategoryResponse(exts.ToMap(item)))
}

func createCategory(c *fiber.Ctx) error {
	body, err := exts.BindBody(c)
	if err != nil {
		return err
	}

	payload, err := transform.CategoryRequest(body)
	if err != nil {
		return err
	}

	item, err := services.NewCategory(payload)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"success": true, "data": transform.CategoryResponse(exts.ToMap(item))})
}

func editCategory(c *fiber.Ctx) error {
	item, err := services.GetCategory(c.Params("slugOrId"))
	if err != nil {
		return err
	}

	body, err := exts.BindBody(c)
	if err != nil {
		return err
	}

	// Required fields fall back to the stored row so partial updates stay
	// valid while an explicit empty value still fails.
	merged := map[string]any{
		"slug":             item.Slug,
		"label":            item.Label,
		"shortDescription": item.ShortDescription,
	}
	for k, v := range body {
		merged[k] = v
	}

	payload, err := transform.CategoryRequest(merged)
	if err != nil {
		return err
	}

	item, err = services.EditCategory(item, payload)
	if err != nil {
		return err
	}

	return exts.WriteData(c, transform.CategoryResponse(exts.ToMap(item)))
}

func deleteCategory(c *fiber.Ctx) error {
	item, err := services.GetCategory(c.Params("slugOrId"))
	if err != nil {
		return err
	}

	if err := services.DeleteCategory(item); err != nil {
		return err
	}

	return exts.WriteData(c, nil)
}
