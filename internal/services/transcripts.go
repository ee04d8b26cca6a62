package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mtareb/medichat/internal/models"
)

// WelcomeMessage seeds every fresh transcript as the assistant's opening
// turn.
const WelcomeMessage = "Hello! I'm your medicine assistant. Ask me anything about your medications, interactions, or your health profile."

var ErrReplyPending = errors.New("a reply is already pending for this conversation")

// TranscriptStore keeps one in-memory conversation transcript per signed-in
// session. Transcripts are append-only, never reordered, and die with the
// process; nothing here is persisted.
type TranscriptStore struct {
	mu          sync.Mutex
	transcripts map[string]*transcript
}

type transcript struct {
	id            string
	messages      []models.ChatMessage
	awaitingReply bool
	nextSeq       int
}

// TranscriptView is a read-only snapshot handed to the renderer.
type TranscriptView struct {
	ID            string
	Messages      []models.ChatMessage
	AwaitingReply bool
}

func NewTranscriptStore() *TranscriptStore {
	return &TranscriptStore{
		transcripts: make(map[string]*transcript),
	}
}

// Current returns a snapshot of the session's transcript, creating a fresh
// seeded one when none exists yet.
func (store *TranscriptStore) Current(sessionID string) TranscriptView {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.getOrCreateLocked(sessionID).snapshot()
}

// BeginTurn appends the user's message and marks the transcript as awaiting
// a reply. It fails with ErrReplyPending while a previous turn is still in
// flight, in which case nothing is appended.
func (store *TranscriptStore) BeginTurn(sessionID string, text string) (models.ChatMessage, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	current := store.getOrCreateLocked(sessionID)
	if current.awaitingReply {
		return models.ChatMessage{}, ErrReplyPending
	}
	current.awaitingReply = true
	return current.append(text, models.SenderUser), nil
}

// CompleteTurn appends the assistant's reply and returns the transcript to
// idle. Exactly one assistant message is appended per begun turn; failure
// text goes through the same path as a real reply.
func (store *TranscriptStore) CompleteTurn(sessionID string, reply string) models.ChatMessage {
	store.mu.Lock()
	defer store.mu.Unlock()

	current := store.getOrCreateLocked(sessionID)
	current.awaitingReply = false
	return current.append(reply, models.SenderBot)
}

// Reset discards the session's transcript and seeds a new one, which is the
// equivalent of reopening the conversation view.
func (store *TranscriptStore) Reset(sessionID string) TranscriptView {
	store.mu.Lock()
	defer store.mu.Unlock()

	fresh := newTranscript()
	store.transcripts[sessionID] = fresh
	return fresh.snapshot()
}

// Remove drops the session's transcript entirely, used on sign-out.
func (store *TranscriptStore) Remove(sessionID string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.transcripts, sessionID)
}

func (store *TranscriptStore) getOrCreateLocked(sessionID string) *transcript {
	current, ok := store.transcripts[sessionID]
	if !ok {
		current = newTranscript()
		store.transcripts[sessionID] = current
	}
	return current
}

func newTranscript() *transcript {
	created := &transcript{
		id:      uuid.NewString(),
		nextSeq: 1,
	}
	created.append(WelcomeMessage, models.SenderBot)
	return created
}

func (t *transcript) append(text string, sender models.ChatSender) models.ChatMessage {
	message := models.ChatMessage{
		Seq:    t.nextSeq,
		Text:   text,
		Sender: sender,
		SentAt: time.Now(),
	}
	t.nextSeq++
	t.messages = append(t.messages, message)
	return message
}

func (t *transcript) snapshot() TranscriptView {
	return TranscriptView{
		ID:            t.id,
		Messages:      append([]models.ChatMessage(nil), t.messages...),
		AwaitingReply: t.awaitingReply,
	}
}
