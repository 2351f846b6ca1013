package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/bildev/tastebook/pkg/internal/http/exts"
	"github.com/bildev/tastebook/pkg/internal/models"
	"github.com/bildev/tastebook/pkg/internal/services"
	"github.com/bildev/tastebook/pkg/internal/transform"
)

func listAuthors(c *fiber.Ctx) error {
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	items, err := services.ListAuthors(take, offset, true)
	if err != nil {
		return err
	}

	return exts.WriteData(c, lo.Map(items, func(item models.Author, _ int) map[string]any {
		return transform.AuthorResponse(exts.ToMap(item))
	}))
}

func getAuthor(c *fiber.Ctx) error {
	item, err := services.GetAuthor(c.Params("slugOrId"))
	if err != nil {
		return err
	}

	return exts.WriteData(c, transform.AuthorResponse(exts.ToMap(item)))
}

func createAuthor(c *fiber.Ctx) error {
	body, err := exts.BindBody(c)
	if err != nil {
		return err
	}

	payload, err := transform.AuthorRequest(body)
	if err != nil {
		return err
	}

	item, err := services.NewAuthor(payload)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"success": true, "data": transform.AuthorResponse(exts.ToMap(item))})
}

func editAuthor(c *fiber.Ctx) error {
	item, err := services.GetAuthor(c.Params("slugOrId"))
	if err != nil {
		return err
	}

	body, err := exts.BindBody(c)
	if err != nil {
		return err
	}

	merged := map[string]any{
		"slug": item.Slug,
		"name": item.Name,
	}
	for k, v := range body {
		merged[k] = v
	}

	payload, err := transform.AuthorRequest(merged)
	if err != nil {
		return err
	}

	item, err = services.EditAuthor(item, payload)
	if err != nil {
		return err
	}

	return exts.WriteData(c, transform.AuthorResponse(exts.ToMap(item)))
}

func deleteAuthor(c *fiber.Ctx) error {
	item, err := services.GetAuthor(c.Params("slugOrId"))
	if err != nil {
		return err
	}

	if err := services.DeleteAuthor(item); err != nil {
		return err
	}

	return exts.WriteData(c, nil)
}
