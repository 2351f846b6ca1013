package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bildev/tastebook/pkg/internal/http/exts"
	"github.com/bildev/tastebook/pkg/internal/services"
	"github.com/bildev/tastebook/pkg/internal/transform"
)

func adminRestoreAuthor(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	item, err := services.RestoreAuthor(uint(id))
	if err != nil {
		return err
	}

	return exts.WriteData(c, transform.AuthorResponse(exts.ToMap(item)))
}
