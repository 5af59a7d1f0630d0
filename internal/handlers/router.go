package handlers

import (
	"genrebox/internal/app"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	log    logger.Logger
	router fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")

	HealthHandler(api, app.Config, app.StartedAt)
	NewGenreHandler(*app, api).Register()

	// Unmatched /api/* paths get a structured 404 instead of fiber's
	// plain-text default.
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "route not found",
			"path":    c.Path(),
		})
	})

	return nil
}
