package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowSignIn(c *fiber.Ctx) error {
	// A session holder goes straight to the profile view instead of
	// re-rendering an auth form.
	if handler.sessionUserID(c) != "" {
		return c.Redirect("/profile", fiber.StatusSeeOther)
	}
	flash := handler.popFlashCookie(c)
	return handler.render(c, "signin", fiber.Map{
		"Title": "Medichat | Sign In",
		"Error": flash.AuthError,
		"Email": flash.SignInEmail,
	})
}

func (handler *Handler) ShowSignUp(c *fiber.Ctx) error {
	if handler.sessionUserID(c) != "" {
		return c.Redirect("/profile", fiber.StatusSeeOther)
	}
	flash := handler.popFlashCookie(c)
	return handler.render(c, "signup", fiber.Map{
		"Title": "Medichat | Sign Up",
		"Error": flash.AuthError,
		"Email": flash.SignUpEmail,
	})
}
