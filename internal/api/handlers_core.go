package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Home routes the bare origin to whichever view the session state allows.
func (handler *Handler) Home(c *fiber.Ctx) error {
	if handler.sessionUserID(c) != "" {
		return c.Redirect("/profile", fiber.StatusSeeOther)
	}
	return c.Redirect("/signin", fiber.StatusSeeOther)
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	payload := fiber.Map{}
	for key, value := range data {
		payload[key] = value
	}
	if _, ok := payload["SignedIn"]; !ok {
		payload["SignedIn"] = handler.sessionUserID(c) != ""
	}
	if _, ok := payload["ActivePath"]; !ok {
		payload["ActivePath"] = c.Path()
	}
	if _, ok := payload["CSRFToken"]; !ok {
		payload["CSRFToken"] = csrfToken(c)
	}
	return payload
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}
