package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"chat-desk/domain"
	"chat-desk/errors"
)

type createChatRequest struct {
	Message string `json:"message"`
}

type sendMessageRequest struct {
	ChatID      string `json:"chatId"`
	Message     string `json:"message"`
	AssistantID *int   `json:"assistantId,omitempty"`
}

type searchResponse struct {
	Query   string                `json:"query"`
	Count   int                   `json:"count"`
	Results []domain.SearchResult `json:"results"`
}

func (s *Server) handleCreateChat(w http.ResponseWriter, r *http.Request) {
	var request createChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeError(w, errors.Validation("Invalid request body"))
		return
	}

	chat, err := s.chatService.CreateChat(r.Context(), request.Message)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, chat)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeError(w, errors.Validation("Invalid request body"))
		return
	}

	chat, err := s.chatService.SendMessage(r.Context(), domain.SendMessageCommand{
		ChatID:      request.ChatID,
		Content:     request.Message,
		AssistantID: request.AssistantID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, chat)
}

func (s *Server) handleCreateChatWithAssistant(w http.ResponseWriter, r *http.Request) {
	// Unparsable ids behave like unknown assistants.
	assistantID, err := strconv.Atoi(r.PathValue("assistantId"))
	if err != nil {
		s.writeError(w, errors.NotFound("Assistant not found"))
		return
	}

	var request createChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeError(w, errors.Validation("Invalid request body"))
		return
	}

	chat, err := s.chatService.CreateChatWithAssistant(r.Context(), assistantID, request.Message)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, chat)
}

func (s *Server) handleListChats(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.chatService.ListChats())
}

func (s *Server) handleGetChat(w http.ResponseWriter, r *http.Request) {
	chat, err := s.chatService.GetChat(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, chat)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	results, err := s.chatService.SearchMessages(query)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, searchResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	})
}

func (s *Server) handleListAssistants(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.chatService.ListAssistants())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
