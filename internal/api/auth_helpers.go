package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mtareb/medichat/internal/services"
	"github.com/mtareb/medichat/internal/upstream"
)

const (
	signInFailedMessage  = "Sign in failed. Please try again."
	signUpFailedMessage  = "Sign up failed. Please try again."
	connectivityMessage  = "Unable to reach the service. Please check your connection and try again."
	missingFieldsMessage = "Email and password are required."
)

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}
	email, password, err := services.NormalizeCredentials(credentials.Email, credentials.Password)
	if err != nil {
		return credentials, err
	}
	credentials.Email = email
	credentials.Password = password
	return credentials, nil
}

// respondAuthError flashes the message (and the submitted email, so the
// input keeps its value) and returns to the auth view that failed.
func (handler *Handler) respondAuthError(c *fiber.Ctx, viewPath string, message string, email string) error {
	flash := FlashPayload{AuthError: message}
	if viewPath == "/signup" {
		flash.SignUpEmail = email
	} else {
		flash.SignInEmail = email
	}
	handler.setFlashCookie(c, flash)
	return c.Redirect(viewPath, fiber.StatusSeeOther)
}

// authErrorText maps the two failure classes to user-facing text: a
// rejected response surfaces the service's detail verbatim, a transport
// failure gets the fixed connectivity message.
func authErrorText(err error, genericMessage string) string {
	if rejection, ok := upstream.Rejection(err); ok {
		if rejection.Detail != "" {
			return rejection.Detail
		}
		return genericMessage
	}
	return connectivityMessage
}
