package admin

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bildev/tastebook/pkg/internal/http/exts"
	"github.com/bildev/tastebook/pkg/internal/services"
)

func adminUploadMedia(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file field is required")
	}

	source, err := header.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	defer source.Close()

	data, err := io.ReadAll(source)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	width, _ := strconv.Atoi(c.FormValue("width"))
	height, _ := strconv.Atoi(c.FormValue("height"))

	item, err := services.UploadMedia(
		header.Filename,
		header.Header.Get(fiber.HeaderContentType),
		data,
		width, height,
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

func adminDeleteMedia(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	item, err := services.GetMedia(uint(id))
	if err != nil {
		return err
	}

	if err := services.DeleteMedia(item); err != nil {
		return err
	}

	return exts.WriteData(c, nil)
}
