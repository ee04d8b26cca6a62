package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/", handler.Home)

	app.Get("/signin", handler.ShowSignIn)
	app.Get("/signup", handler.ShowSignUp)
	app.Post("/signin", handler.SignIn)
	app.Post("/signup", handler.SignUp)
	app.Post("/signout", handler.SignOut)

	app.Get("/profile", handler.AuthRequired, handler.ShowProfile)
	app.Post("/profile", handler.AuthRequired, handler.SaveProfile)
	app.Post("/profile/rows", handler.AuthRequired, handler.AddProfileRow)

	app.Get("/chat", handler.AuthRequired, handler.ShowChat)
	app.Post("/chat/send", handler.AuthRequired, handler.SendChatMessage)
	app.Post("/chat/reset", handler.AuthRequired, handler.ResetChat)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
