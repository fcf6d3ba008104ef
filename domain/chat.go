// Package domain contains core concepts of the chat dashboard.
// This file defines Chat and Message records and their construction rules.
// Messages are immutable once created; chats only grow by appending.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a message turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents one immutable turn in a chat.
// AssistantID is set only when a named assistant sent or received the turn.
type Message struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Role        Role      `json:"role"`
	Timestamp   time.Time `json:"timestamp"`
	AssistantID *int      `json:"assistantId,omitempty"`
}

// Chat is a persisted conversation: ordered messages plus metadata.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewChat(title string) Chat {
	now := time.Now().UTC()
	return Chat{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewMessage(role Role, content string, assistantID *int) Message {
	return Message{
		ID:          uuid.NewString(),
		Content:     content,
		Role:        role,
		Timestamp:   time.Now().UTC(),
		AssistantID: assistantID,
	}
}

// Append adds a message at the end of the conversation and refreshes the
// update timestamp. Insertion order is conversation order.
func (c *Chat) Append(message Message) {
	c.Messages = append(c.Messages, message)
	c.UpdatedAt = message.Timestamp
}
