// Package httpserver exposes the chat service over an HTTP JSON API.
// Handlers stay thin: decode, delegate to the service, encode. Error kinds
// are dispatched into status codes in exactly one place (responses.go).
package httpserver

import (
	"log/slog"
	"net/http"

	"chat-desk/services"
)

type Server struct {
	log           *slog.Logger
	chatService   services.IChatService
	allowedOrigin string
}

func NewServer(log *slog.Logger, chatService services.IChatService, allowedOrigin string) *Server {
	return &Server{
		log:           log,
		chatService:   chatService,
		allowedOrigin: allowedOrigin,
	}
}

// Handler assembles the route table and wraps it with the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /chat", s.handleCreateChat)
	mux.HandleFunc("POST /chat/message", s.handleSendMessage)
	mux.HandleFunc("POST /chat/assistant/{assistantId}", s.handleCreateChatWithAssistant)
	mux.HandleFunc("GET /chats", s.handleListChats)
	mux.HandleFunc("GET /chat/{id}", s.handleGetChat)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /assistants", s.handleListAssistants)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withRequestLog(s.withSecurityHeaders(s.withCORS(mux)))
}
