package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bildev/tastebook/pkg/internal/http/exts"
	"github.com/bildev/tastebook/pkg/internal/services"
)

func listMedia(c *fiber.Ctx) error {
	take := c.QueryInt("take", 50)
	offset := c.QueryInt("offset", 0)

	items, err := services.ListMedia(take, offset)
	if err != nil {
		return err
	}

	return exts.WriteData(c, items)
}
