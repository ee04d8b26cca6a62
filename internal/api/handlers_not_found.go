package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") || acceptsJSON(c) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	primaryPath := "/signin"
	primaryLabel := "Go to sign in"
	if handler.sessionUserID(c) != "" {
		primaryPath = "/profile"
		primaryLabel = "Go to my information"
	}

	c.Status(fiber.StatusNotFound)
	return handler.render(c, "not_found", fiber.Map{
		"Title":        "Medichat | Page Not Found",
		"PrimaryPath":  primaryPath,
		"PrimaryLabel": primaryLabel,
	})
}
