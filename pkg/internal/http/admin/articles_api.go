package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/bildev/tastebook/pkg/internal/database"
	"github.com/bildev/tastebook/pkg/internal/http/exts"
	"github.com/bildev/tastebook/pkg/internal/models"
	"github.com/bildev/tastebook/pkg/internal/services"
	"github.com/bildev/tastebook/pkg/internal/transform"
)

// adminListArticles includes offline and scheduled rows, unlike the public
// listing.
func adminListArticles(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	count, err := services.CountArticles(database.C)
	if err != nil {
		return err
	}

	items, err := services.ListArticles(database.C, take, offset)
	if err != nil {
		return err
	}

	return exts.WritePage(c, lo.Map(items, func(item models.Article, _ int) map[string]any {
		return transform.ArticleResponse(exts.ToMap(item))
	}), count, take, offset)
}

func adminPatchArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	item, err := services.GetArticle(database.C, strconv.Itoa(id))
	if err != nil {
		return err
	}

	switch action := c.Query("action"); action {
	case "toggle-online":
		item, err = services.ToggleArticleOnline(item)
	case "toggle-favorite":
		item, err = services.ToggleArticleFavorite(item)
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown action: "+action)
	}
	if err != nil {
		return err
	}

	return exts.WriteData(c, transform.ArticleResponse(exts.ToMap(item)))
}

func adminSyncArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	item, err := services.GetArticle(database.C, strconv.Itoa(id))
	if err != nil {
		return err
	}

	if err := services.SyncArticleSnapshots(&item); err != nil {
		return err
	}

	return exts.WriteData(c, transform.ArticleResponse(exts.ToMap(item)))
}
