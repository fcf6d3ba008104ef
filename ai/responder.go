//go:generate go run go.uber.org/mock/mockgen -source=responder.go -destination=../mocks/mock_responder.go -package=mocks

// Package ai holds the reply generator behind assistant responses.
// Responder is the integration point for a real model; MockResponder is the
// canned default the demo ships with.
package ai

import (
	"context"
	"fmt"
	"time"

	"chat-desk/domain"
)

// Responder produces the assistant reply for a conversation.
// The assistant is nil when the chat is not flavored by a named persona.
type Responder interface {
	Reply(ctx context.Context, chat domain.Chat, assistant *domain.Assistant) (string, error)
}

// MockResponder simulates the assistant typing for a fixed delay and then
// returns a placeholder reply. Once a request is accepted the delay runs to
// completion; there is no cancellation path.
type MockResponder struct {
	typingDelay time.Duration
}

func NewMockResponder(typingDelay time.Duration) *MockResponder {
	return &MockResponder{typingDelay: typingDelay}
}

func (r *MockResponder) Reply(_ context.Context, _ domain.Chat, assistant *domain.Assistant) (string, error) {
	time.Sleep(r.typingDelay)
	if assistant != nil {
		return fmt.Sprintf("This is a mock AI response from %s. Replace with actual AI integration.", assistant.Name), nil
	}
	return "This is a mock AI response. Replace with actual AI integration.", nil
}
