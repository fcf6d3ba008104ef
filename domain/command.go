package domain

// SendMessageCommand carries a user's intent to append a message to an
// existing chat. AssistantID is nil when no assistant was named.
type SendMessageCommand struct {
	ChatID      string
	Content     string
	AssistantID *int
}
