//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"chat-desk/domain"
)

type IChatRepository interface {
	ListChats() []domain.Chat
	GetChat(id string) (domain.Chat, bool)
	AddChat(chat domain.Chat) error
	ReplaceChat(id string, chat domain.Chat) error
}

// FileChatRepository persists the whole chat collection as one JSON array on
// disk. Every mutation is a full read-modify-write of the backing file and
// there is no locking: two concurrent writers race and the last rewrite wins.
// That lost-update window is an accepted property of the flat-file design,
// not something callers may rely on being safe.
type FileChatRepository struct {
	path string
	log  *slog.Logger
}

// NewFileChatRepository opens a repository backed by the given file,
// creating the parent directory and an empty collection when missing.
func NewFileChatRepository(path string, log *slog.Logger) (*FileChatRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating storage directory: %w", err)
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("initializing chats file: %w", err)
		}
	}
	return &FileChatRepository{path: path, log: log}, nil
}

// ListChats returns every chat in persisted order.
// Read and parse failures are swallowed into an empty list: the dashboard
// treats a broken backing file as "no chats yet" rather than an error.
func (r *FileChatRepository) ListChats() []domain.Chat {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.log.Error("Error reading chats file", "path", r.path, "err", err)
		return nil
	}
	var chats []domain.Chat
	if err := json.Unmarshal(data, &chats); err != nil {
		r.log.Error("Error parsing chats file", "path", r.path, "err", err)
		return nil
	}
	return chats
}

// GetChat scans the collection linearly for the given id.
func (r *FileChatRepository) GetChat(id string) (domain.Chat, bool) {
	for _, chat := range r.ListChats() {
		if chat.ID == id {
			return chat, true
		}
	}
	return domain.Chat{}, false
}

// AddChat appends the chat and rewrites the whole collection.
func (r *FileChatRepository) AddChat(chat domain.Chat) error {
	return r.saveChats(append(r.ListChats(), chat))
}

// ReplaceChat overwrites the slot holding id and rewrites the whole
// collection. It errors when the id is absent.
func (r *FileChatRepository) ReplaceChat(id string, chat domain.Chat) error {
	chats := r.ListChats()
	for i := range chats {
		if chats[i].ID == id {
			chats[i] = chat
			return r.saveChats(chats)
		}
	}
	return fmt.Errorf("chat %s not found in store", id)
}

func (r *FileChatRepository) saveChats(chats []domain.Chat) error {
	data, err := json.MarshalIndent(chats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling chats: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("writing chats file: %w", err)
	}
	return nil
}
