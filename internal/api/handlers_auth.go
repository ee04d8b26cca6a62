package api

import (
	"github.com/gofiber/fiber/v2"
)

// SignUp registers a new account with the remote service. On success the
// returned identifier becomes the session; on rejection the service's
// detail (duplicate email, etc.) is surfaced and no identifier is stored.
func (handler *Handler) SignUp(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return handler.respondAuthError(c, "/signup", missingFieldsMessage, credentials.Email)
	}

	userID, err := handler.upstream.SignUp(c.UserContext(), credentials.Email, credentials.Password)
	if err != nil {
		return handler.respondAuthError(c, "/signup", authErrorText(err, signUpFailedMessage), credentials.Email)
	}

	handler.setSessionCookie(c, userID)
	return c.Redirect("/profile", fiber.StatusSeeOther)
}

// SignIn exchanges credentials for a session identifier. A rejected
// response and a transport failure produce distinct inline messages.
func (handler *Handler) SignIn(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return handler.respondAuthError(c, "/signin", missingFieldsMessage, credentials.Email)
	}

	userID, err := handler.upstream.SignIn(c.UserContext(), credentials.Email, credentials.Password)
	if err != nil {
		return handler.respondAuthError(c, "/signin", authErrorText(err, signInFailedMessage), credentials.Email)
	}

	handler.setSessionCookie(c, userID)
	return c.Redirect("/profile", fiber.StatusSeeOther)
}

// SignOut removes the session cookie in full, drops the session's
// transcript, and returns to the sign-in view.
func (handler *Handler) SignOut(c *fiber.Ctx) error {
	if userID := handler.sessionUserID(c); userID != "" {
		handler.transcripts.Remove(userID)
	}
	handler.clearSessionCookie(c)
	return c.Redirect("/signin", fiber.StatusSeeOther)
}
