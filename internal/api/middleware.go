package api

import "github.com/gofiber/fiber/v2"

const (
	sessionCookieName = "medichat_session"
	flashCookieName   = "medichat_flash"
	contextUserIDKey  = "session_user_id"
)

// currentUserID returns the session identifier stashed by AuthRequired, or
// an empty string on routes that run without the guard.
func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(contextUserIDKey).(string)
	return userID
}
