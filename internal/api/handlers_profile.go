package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/mtareb/medichat/internal/services"
	"github.com/mtareb/medichat/internal/upstream"
)

const (
	profileSavedMessage      = "Your information has been saved."
	profileSaveFailedMessage = "Failed to save your information. Please try again."
	profileSaveBusyMessage   = "A save is already in progress. Please wait a moment."
	profileInvalidFormText   = "The form could not be read. Please review your entries."
)

// ShowProfile fetches the stored record and renders it as an editable
// draft. Any fetch failure leaves the form at its empty defaults; the view
// itself never fails.
func (handler *Handler) ShowProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)
	flash := handler.popFlashCookie(c)

	draft := services.NewProfileDraft()
	profile, err := handler.upstream.FetchProfile(c.UserContext(), userID)
	if err == nil {
		draft = services.DraftFromProfile(profile)
	} else if _, rejected := upstream.Rejection(err); !rejected {
		log.Printf("profile fetch failed, rendering defaults: %v", err)
	}

	return handler.render(c, "profile", buildProfilePageData(draft, flash))
}

// SaveProfile normalizes the posted draft and submits it upstream. Failures
// re-render the draft intact with a dismissable banner; only a successful
// save goes through the redirect that reloads the stored record.
func (handler *Handler) SaveProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	draft, err := parseProfileForm(c)
	if err != nil {
		return handler.renderProfileError(c, draft, profileInvalidFormText)
	}

	payload, err := draft.Payload()
	if err != nil {
		return handler.renderProfileError(c, draft, err.Error())
	}

	if !handler.profileSaves.begin(userID) {
		return handler.renderProfileError(c, draft, profileSaveBusyMessage)
	}
	defer handler.profileSaves.end(userID)

	if err := handler.upstream.SaveProfile(c.UserContext(), userID, payload); err != nil {
		if rejection, ok := upstream.Rejection(err); ok {
			log.Printf("profile save rejected (%d): %s", rejection.StatusCode, rejection.Detail)
		} else {
			log.Printf("profile save failed: %v", err)
		}
		return handler.renderProfileError(c, draft, profileSaveFailedMessage)
	}

	handler.setFlashCookie(c, FlashPayload{ProfileSuccess: profileSavedMessage})
	return c.Redirect("/profile", fiber.StatusSeeOther)
}

// AddProfileRow appends one empty slot to the named list section and
// re-renders the form with the unsaved draft intact. No upstream call.
func (handler *Handler) AddProfileRow(c *fiber.Ctx) error {
	draft, err := parseProfileForm(c)
	if err != nil {
		return handler.renderProfileError(c, draft, profileInvalidFormText)
	}

	if err := draft.AddSlot(c.Query("section")); err != nil {
		return handler.renderProfileError(c, draft, "Unknown form section.")
	}

	return handler.render(c, "profile", buildProfilePageData(draft, FlashPayload{}))
}

func (handler *Handler) renderProfileError(c *fiber.Ctx, draft services.ProfileDraft, message string) error {
	return handler.render(c, "profile", buildProfilePageData(draft, FlashPayload{ProfileError: message}))
}
