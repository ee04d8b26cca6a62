package api

import "github.com/gofiber/fiber/v2"

// AuthRequired gates identity-required views. It is re-evaluated on every
// request and never errors: an absent session always redirects to the
// sign-in view before any upstream call is made.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	userID := handler.sessionUserID(c)
	if userID == "" {
		if acceptsJSON(c) {
			return apiError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Redirect("/signin", fiber.StatusSeeOther)
	}

	c.Locals(contextUserIDKey, userID)
	return c.Next()
}
