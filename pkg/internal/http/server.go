package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/bildev/tastebook/pkg/internal/http/admin"
	"github.com/bildev/tastebook/pkg/internal/http/api"
	"github.com/bildev/tastebook/pkg/internal/security"
	"github.com/bildev/tastebook/pkg/internal/transform"
)

type Server struct {
	app *fiber.App
}

func NewServer() *Server {
	secret, err := security.ReadSecret()
	if err != nil {
		log.Fatal().Err(err).Msg("Refusing to start without a signing secret.")
	}

	app := fiber.New(fiber.Config{
		AppName:               "Tastebook",
		DisableStartupMessage: true,
		JSONEncoder:           jsoniter.Marshal,
		JSONDecoder:           jsoniter.Unmarshal,
		BodyLimit:             32 << 20,
		ErrorHandler:          writeErrorEnvelope,
	})

	api.MapAPIs(app, "/api", secret)
	admin.MapControllers(app, "/api/admin", secret)

	return &Server{app}
}

func (v *Server) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}

// writeErrorEnvelope maps the error taxonomy onto the standard error
// envelope. Raw downstream messages surface only under originalError.
func writeErrorEnvelope(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	code := "INTERNAL_ERROR"
	message := "internal error"
	var details any

	var validation *transform.ValidationError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &validation):
		status = fiber.StatusBadRequest
		code = validation.Code
		message = validation.Error()
		details = fiber.Map{"missing": validation.Missing}
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = fiber.StatusNotFound
		code = "NOT_FOUND"
		message = "record not found"
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		message = fiberErr.Message
		switch status {
		case fiber.StatusBadRequest:
			code = "VALIDATION_ERROR"
		case fiber.StatusUnauthorized, fiber.StatusForbidden:
			code = "AUTH_ERROR"
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		default:
			code = "INTERNAL_ERROR"
		}
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error in request handler...")
		code = "DATABASE_ERROR"
		details = fiber.Map{"originalError": err.Error()}
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error": fiber.Map{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
