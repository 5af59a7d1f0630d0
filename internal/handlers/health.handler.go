package handlers

import (
	"time"

	"genrebox/config"

	"github.com/gofiber/fiber/v2"
)

func HealthHandler(router fiber.Router, config config.Config, startedAt time.Time) {
	router.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":          true,
			"time":        time.Now().UTC().Format(time.RFC3339),
			"uptime":      time.Since(startedAt).Round(time.Second).String(),
			"environment": config.Environment,
		})
	})
}
