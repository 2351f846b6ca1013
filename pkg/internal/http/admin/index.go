package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bildev/tastebook/pkg/internal/security"
)

// MapControllers mounts the back-office surface. Everything here requires
// the editor role and is never cacheable.
func MapControllers(app *fiber.App, baseURL string, secret string) {
	editor := security.Gate(secret, security.RoleEditor)

	admin := app.Group(baseURL).Name("Admin").Use(noStoreCacheControl, editor)
	{
		admin.Get("/articles", adminListArticles)
		admin.Patch("/articles/:id", adminPatchArticle)
		admin.Post("/articles/:id/sync", adminSyncArticle)

		admin.Post("/authors/:id/restore", adminRestoreAuthor)

		admin.Post("/media", adminUploadMedia)
		admin.Delete("/media/:id", adminDeleteMedia)
	}
}

func noStoreCacheControl(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	return c.Next()
}
