package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/bildev/tastebook/pkg/internal/database"
	"github.com/bildev/tastebook/pkg/internal/http/exts"
	"github.com/bildev/tastebook/pkg/internal/models"
	"github.com/bildev/tastebook/pkg/internal/services"
	"github.com/bildev/tastebook/pkg/internal/transform"
)

func listArticles(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	tx := services.FilterArticleOnline(database.C)

	if len(c.Query("category")) > 0 {
		category, err := services.GetCategory(c.Query("category"))
		if err != nil {
			return err
		}
		tx = services.FilterArticleWithCategory(tx, category.ID)
	}
	if len(c.Query("author")) > 0 {
		author, err := services.GetAuthor(c.Query("author"))
		if err != nil {
			return err
		}
		tx = services.FilterArticleWithAuthor(tx, author.ID)
	}
	if len(c.Query("tag")) > 0 {
		tx = services.FilterArticleWithTag(tx, c.Query("tag"))
	}
	if len(c.Query("type")) > 0 {
		tx = services.FilterArticleWithType(tx, c.Query("type"))
	}

	count, err := services.CountArticles(tx)
	if err != nil {
		return err
	}

	items, err := services.ListArticles(tx, take, offset)
	if err != nil {
		return err
	}

	return exts.WritePage(c, lo.Map(items, func(item models.Article, _ int) map[string]any {
		return transform.ArticleResponse(exts.ToMap(item))
	}), count, take, offset)
}

func getArticle(c *fiber.Ctx) error {
	item, err := services.GetArticle(services.FilterArticleOnline(database.C), c.Params("slug"))
	if err != nil {
		return err
	}

	services.AddArticleView(item)

	return exts.WriteData(c, transform.ArticleResponse(exts.ToMap(item)))
}

func createArticle(c *fiber.Ctx) error {
	body, err := exts.BindBody(c)
	if err != nil {
		return err
	}

	payload, err := transform.ArticleRequest(body)
	if err != nil {
		return err
	}

	item, err := services.NewArticle(payload)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"success": true, "data": transform.ArticleResponse(exts.ToMap(item))})
}

func editArticle(c *fiber.Ctx) error {
	item, err := services.GetArticle(database.C, c.Params("slug"))
	if err != nil {
		return err
	}

	body, err := exts.BindBody(c)
	if err != nil {
		return err
	}

	merged := map[string]any{
		"slug":     item.Slug,
		"headline": item.Headline,
		"type":     item.Type,
	}
	for k, v := range body {
		merged[k] = v
	}

	payload, err := transform.ArticleRequest(merged)
	if err != nil {
		return err
	}

	item, err = services.EditArticle(item, payload)
	if err != nil {
		return err
	}

	return exts.WriteData(c, transform.ArticleResponse(exts.ToMap(item)))
}

func deleteArticle(c *fiber.Ctx) error {
	item, err := services.GetArticle(database.C, c.Params("slug"))
	if err != nil {
		return err
	}

	if err := services.DeleteArticle(item); err != nil {
		return err
	}

	return exts.WriteData(c, nil)
}
