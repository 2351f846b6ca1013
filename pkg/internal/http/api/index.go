package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bildev/tastebook/pkg/internal/security"
)

// MapAPIs mounts the public surface plus the mutating endpoints, which sit
// behind the editor gate.
func MapAPIs(app *fiber.App, baseURL string, secret string) {
	editor := security.Gate(secret, security.RoleEditor)

	base := app.Group(baseURL).Name("API").Use(publicCacheControl)
	{
		categories := base.Group("/categories")
		{
			categories.Get("/", listCategories)
			categories.Get("/:slugOrId", getCategory)
			categories.Post("/", editor, createCategory)
			categories.Put("/:slugOrId", editor, editCategory)
			categories.Delete("/:slugOrId", editor, deleteCategory)
		}

		authors := base.Group("/authors")
		{
			authors.Get("/", listAuthors)
			authors.Get("/:slugOrId", getAuthor)
			authors.Post("/", editor, createAuthor)
			authors.Put("/:slugOrId", editor, editAuthor)
			authors.Delete("/:slugOrId", editor, deleteAuthor)
		}

		articles := base.Group("/articles")
		{
			articles.Get("/", listArticles)
			articles.Get("/:slug", getArticle)
			articles.Post("/", editor, createArticle)
			articles.Put("/:slug", editor, editArticle)
			articles.Delete("/:slug", editor, deleteArticle)
		}

		tags := base.Group("/tags")
		{
			tags.Get("/", listTags)
			tags.Get("/:slug", getTag)
			tags.Post("/", editor, createTag)
			tags.Put("/:slug", editor, editTag)
			tags.Delete("/:slug", editor, deleteTag)
		}

		base.Get("/media", listMedia)
	}
}

// Public GETs are cacheable for an hour. Routes that already set their own
// policy (the admin surface below this prefix) are left alone.
func publicCacheControl(c *fiber.Ctx) error {
	err := c.Next()
	if c.Method() == fiber.MethodGet && len(c.GetRespHeader(fiber.HeaderCacheControl)) == 0 {
		c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	}
	return err
}
