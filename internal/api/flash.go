package api

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// FlashPayload carries one-shot banner text across a redirect: auth errors
// with the submitted email, profile save banners, and chat notices. It is
// cleared as soon as it is read, so every new attempt starts with a clean
// error region.
type FlashPayload struct {
	AuthError      string `json:"auth_error,omitempty"`
	SignInEmail    string `json:"signin_email,omitempty"`
	SignUpEmail    string `json:"signup_email,omitempty"`
	ProfileError   string `json:"profile_error,omitempty"`
	ProfileSuccess string `json:"profile_success,omitempty"`
	ChatNotice     string `json:"chat_notice,omitempty"`
}

func (payload FlashPayload) isEmpty() bool {
	return payload.AuthError == "" &&
		payload.SignInEmail == "" &&
		payload.SignUpEmail == "" &&
		payload.ProfileError == "" &&
		payload.ProfileSuccess == "" &&
		payload.ChatNotice == ""
}

func (payload FlashPayload) trimmed() FlashPayload {
	return FlashPayload{
		AuthError:      strings.TrimSpace(payload.AuthError),
		SignInEmail:    strings.TrimSpace(payload.SignInEmail),
		SignUpEmail:    strings.TrimSpace(payload.SignUpEmail),
		ProfileError:   strings.TrimSpace(payload.ProfileError),
		ProfileSuccess: strings.TrimSpace(payload.ProfileSuccess),
		ChatNotice:     strings.TrimSpace(payload.ChatNotice),
	}
}

func (handler *Handler) setFlashCookie(c *fiber.Ctx, payload FlashPayload) {
	payload = payload.trimmed()
	if payload.isEmpty() {
		handler.clearFlashCookie(c)
		return
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(serialized),
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

func (handler *Handler) popFlashCookie(c *fiber.Ctx) FlashPayload {
	raw := strings.TrimSpace(c.Cookies(flashCookieName))
	if raw == "" {
		return FlashPayload{}
	}
	handler.clearFlashCookie(c)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return FlashPayload{}
	}
	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return FlashPayload{}
	}
	return payload.trimmed()
}

func (handler *Handler) clearFlashCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
