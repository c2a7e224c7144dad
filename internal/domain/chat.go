// File: internal/domain/chat.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message sender roles.
const (
	SenderUser   = "user"
	SenderMentor = "mentor"
)

// NoMessagesYet is the placeholder last-message text for a chat session whose
// transcript is still empty. Sessions carrying it are hidden from the index.
const NoMessagesYet = "No messages yet"

// Message is a single message within a chat transcript.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
}

// NewMessage builds an unread transcript message with a fresh identifier,
// stamped with the current time.
func NewMessage(text, sender string) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}
}

// ChatSession is a denormalized index entry summarizing one mentor
// conversation for list display, without loading the full transcript.
// UnreadCount is reserved; no code path increments it yet.
type ChatSession struct {
	ID          string    `json:"id"`
	MentorName  string    `json:"mentorName"`
	MentorSkill string    `json:"mentorSkill"`
	LastMessage string    `json:"lastMessage"`
	Timestamp   time.Time `json:"timestamp"`
	UnreadCount int       `json:"unreadCount"`
}

// SessionID builds the stable identifier for a mentor conversation.
func SessionID(mentorName, mentorSkill string) string {
	return mentorName + "_" + mentorSkill
}
