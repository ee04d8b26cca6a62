package api

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mtareb/medichat/internal/services"
)

const (
	chatFallbackReply  = "Sorry, I couldn't come up with a response. Please try asking again."
	chatFailureMessage = "Error: could not reach the assistant. Please try again."
	chatPendingNotice  = "Please wait for the current reply before sending another message."
)

// ShowChat renders the session's transcript and the message input.
func (handler *Handler) ShowChat(c *fiber.Ctx) error {
	flash := handler.popFlashCookie(c)
	view := handler.transcripts.Current(currentUserID(c))
	return handler.render(c, "chat", buildChatPageData(view, flash))
}

// SendChatMessage appends the user's turn, asks the remote service, and
// appends exactly one assistant message: the reply, a fixed fallback when
// the reply field is absent, or a fixed error line when the request fails.
func (handler *Handler) SendChatMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)

	input := chatInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Redirect("/chat", fiber.StatusSeeOther)
	}
	text := strings.TrimSpace(input.Message)
	if text == "" {
		return c.Redirect("/chat", fiber.StatusSeeOther)
	}

	if _, err := handler.transcripts.BeginTurn(userID, text); err != nil {
		handler.setFlashCookie(c, FlashPayload{ChatNotice: chatPendingNotice})
		return c.Redirect("/chat", fiber.StatusSeeOther)
	}

	reply, err := handler.upstream.Ask(c.UserContext(), userID, text)
	switch {
	case err != nil:
		log.Printf("chat turn failed: %v", err)
		handler.transcripts.CompleteTurn(userID, chatFailureMessage)
	case reply == "":
		handler.transcripts.CompleteTurn(userID, chatFallbackReply)
	default:
		handler.transcripts.CompleteTurn(userID, reply)
	}

	return c.Redirect("/chat", fiber.StatusSeeOther)
}

// ResetChat discards the transcript and starts a fresh seeded one.
func (handler *Handler) ResetChat(c *fiber.Ctx) error {
	handler.transcripts.Reset(currentUserID(c))
	return c.Redirect("/chat", fiber.StatusSeeOther)
}

func buildChatPageData(view services.TranscriptView, flash FlashPayload) fiber.Map {
	return fiber.Map{
		"Title":         "Medichat | Assistant",
		"TranscriptID":  view.ID,
		"Messages":      view.Messages,
		"AwaitingReply": view.AwaitingReply,
		"Notice":        flash.ChatNotice,
	}
}
