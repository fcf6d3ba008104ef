package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"chat-desk/ai"
	"chat-desk/domain"
	"chat-desk/errors"
	"chat-desk/repositories"
)

type IChatService interface {
	CreateChat(ctx context.Context, message string) (domain.Chat, error)
	CreateChatWithAssistant(ctx context.Context, assistantID int, message string) (domain.Chat, error)
	SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Chat, error)
	ListChats() []domain.Chat
	GetChat(id string) (domain.Chat, error)
	SearchMessages(query string) ([]domain.SearchResult, error)
	ListAssistants() []domain.Assistant
}

// ChatService orchestrates validation, chat construction, reply generation
// and persistence. It is the only component holding domain logic.
type ChatService struct {
	log        *slog.Logger
	repository repositories.IChatRepository
	registry   *domain.Registry
	responder  ai.Responder
}

func NewChatService(
	log *slog.Logger,
	repository repositories.IChatRepository,
	registry *domain.Registry,
	responder ai.Responder,
) *ChatService {
	return &ChatService{
		log:        log,
		repository: repository,
		registry:   registry,
		responder:  responder,
	}
}

// CreateChat opens a new conversation seeded with the user message and the
// generated assistant reply, then persists it.
func (s *ChatService) CreateChat(ctx context.Context, message string) (domain.Chat, error) {
	if strings.TrimSpace(message) == "" {
		return domain.Chat{}, errors.Validation("Message is required")
	}

	title := fmt.Sprintf("Chat %d", len(s.repository.ListChats())+1)
	chat := domain.NewChat(title)
	chat.Append(domain.NewMessage(domain.RoleUser, message, nil))

	reply, err := s.responder.Reply(ctx, chat, nil)
	if err != nil {
		return domain.Chat{}, errors.Internal("Failed to create chat", err)
	}
	chat.Append(domain.NewMessage(domain.RoleAssistant, reply, nil))

	if err := s.repository.AddChat(chat); err != nil {
		return domain.Chat{}, errors.Internal("Failed to create chat", err)
	}
	return chat, nil
}

// CreateChatWithAssistant opens a conversation flavored by a registered
// persona. The assistant greets immediately: this path has no typing delay.
func (s *ChatService) CreateChatWithAssistant(ctx context.Context, assistantID int, message string) (domain.Chat, error) {
	if message == "" {
		return domain.Chat{}, errors.Validation("Message is required")
	}
	assistant, ok := s.registry.Get(assistantID)
	if !ok {
		return domain.Chat{}, errors.NotFound("Assistant not found")
	}

	chat := domain.NewChat(fmt.Sprintf("Chat with %s", assistant.Name))
	chat.Append(domain.NewMessage(domain.RoleUser, message, &assistant.ID))
	greeting := fmt.Sprintf("Hello! I'm %s. How can I help you today?", assistant.Name)
	chat.Append(domain.NewMessage(domain.RoleAssistant, greeting, &assistant.ID))

	if err := s.repository.AddChat(chat); err != nil {
		return domain.Chat{}, errors.Internal("Failed to create chat with assistant", err)
	}
	return chat, nil
}

// SendMessage appends a user turn and the generated reply to an existing
// chat. A named assistant is resolved against the registry but never checked
// against the chat's origin: any registered assistant may be addressed from
// any chat.
func (s *ChatService) SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Chat, error) {
	if strings.TrimSpace(cmd.Content) == "" {
		return domain.Chat{}, errors.Validation("Message is required")
	}
	chat, ok := s.repository.GetChat(cmd.ChatID)
	if !ok {
		return domain.Chat{}, errors.NotFound("Chat not found")
	}

	var assistant *domain.Assistant
	if cmd.AssistantID != nil {
		found, ok := s.registry.Get(*cmd.AssistantID)
		if !ok {
			return domain.Chat{}, errors.NotFound("Assistant not found")
		}
		assistant = &found
	}

	chat.Append(domain.NewMessage(domain.RoleUser, cmd.Content, assistantIDOf(assistant)))

	reply, err := s.responder.Reply(ctx, chat, assistant)
	if err != nil {
		return domain.Chat{}, errors.Internal("Failed to send message", err)
	}
	chat.Append(domain.NewMessage(domain.RoleAssistant, reply, assistantIDOf(assistant)))

	if err := s.repository.ReplaceChat(cmd.ChatID, chat); err != nil {
		return domain.Chat{}, errors.Internal("Failed to send message", err)
	}
	return chat, nil
}

// ListChats returns every chat, unfiltered, in persisted order.
func (s *ChatService) ListChats() []domain.Chat {
	chats := s.repository.ListChats()
	if chats == nil {
		return []domain.Chat{}
	}
	return chats
}

func (s *ChatService) GetChat(id string) (domain.Chat, error) {
	chat, ok := s.repository.GetChat(id)
	if !ok {
		return domain.Chat{}, errors.NotFound("Chat not found")
	}
	return chat, nil
}

// SearchMessages scans every chat for a case-insensitive substring match,
// preserving chat order and message order within each chat. An empty result
// set is a valid outcome, not an error.
func (s *ChatService) SearchMessages(query string) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.Validation("Search query is required")
	}
	needle := strings.ToLower(query)

	results := []domain.SearchResult{}
	for _, chat := range s.repository.ListChats() {
		matches := lo.Filter(chat.Messages, func(message domain.Message, _ int) bool {
			return strings.Contains(strings.ToLower(message.Content), needle)
		})
		results = append(results, lo.Map(matches, func(message domain.Message, _ int) domain.SearchResult {
			return domain.SearchResult{
				ChatID:    chat.ID,
				ChatTitle: chat.Title,
				Message:   message,
			}
		})...)
	}
	return results, nil
}

// ListAssistants returns the static registry in fixed id order.
func (s *ChatService) ListAssistants() []domain.Assistant {
	return s.registry.List()
}

func assistantIDOf(assistant *domain.Assistant) *int {
	if assistant == nil {
		return nil
	}
	return &assistant.ID
}
