package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// The session cookie is the client's only durable storage: one key holding
// the opaque identifier the remote service returned. It is stored verbatim
// and never validated here; the remote service enforces validity on every
// request that carries it.
const sessionCookieTTL = 30 * 24 * time.Hour

func (handler *Handler) sessionUserID(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies(sessionCookieName))
}

func (handler *Handler) setSessionCookie(c *fiber.Ctx, userID string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    userID,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(sessionCookieTTL),
	})
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
