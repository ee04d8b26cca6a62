package models

import "time"

// ChatSender describes who authored a transcript message. There are only
// two senders: the signed-in user and the assistant.
type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderBot  ChatSender = "bot"
)

// ChatMessage is one turn in a conversation transcript.
type ChatMessage struct {
	Seq    int        `json:"seq"`
	Text   string     `json:"text"`
	Sender ChatSender `json:"sender"`
	SentAt time.Time  `json:"sent_at"`
}
