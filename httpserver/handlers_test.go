package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"chat-desk/ai"
	"chat-desk/domain"
	"chat-desk/repositories"
	"chat-desk/services"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelError)
	repository, err := repositories.NewFileChatRepository(filepath.Join(t.TempDir(), "chats.json"), log)
	require.NoError(t, err)

	chatService := services.NewChatService(log, repository, domain.NewRegistry(), ai.NewMockResponder(0))
	server := NewServer(log, chatService, "*")
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	response, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	data, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, target))
}

func Test_Chat_Scenario_End_To_End(t *testing.T) {
	req := require.New(t)
	ts := newTestServer(t)

	// Create a chat.
	response := postJSON(t, ts.URL+"/chat", map[string]string{"message": "Hello, AI!"})
	req.Equal(http.StatusCreated, response.StatusCode)
	var chat domain.Chat
	decodeBody(t, response, &chat)
	req.Len(chat.Messages, 2)
	req.Equal("Hello, AI!", chat.Messages[0].Content)
	req.Equal(domain.RoleUser, chat.Messages[0].Role)
	req.Equal(domain.RoleAssistant, chat.Messages[1].Role)

	// Append a message to it.
	response = postJSON(t, ts.URL+"/chat/message", map[string]string{
		"chatId":  chat.ID,
		"message": "How are you?",
	})
	req.Equal(http.StatusOK, response.StatusCode)
	var updated domain.Chat
	decodeBody(t, response, &updated)
	req.Len(updated.Messages, 4)
	req.Equal("How are you?", updated.Messages[2].Content)
	req.False(updated.UpdatedAt.Before(chat.UpdatedAt))

	// An unused id is not found.
	response, err := http.Get(ts.URL + "/chat/" + uuid.NewString())
	req.NoError(err)
	req.Equal(http.StatusNotFound, response.StatusCode)
	var notFound struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Code    int    `json:"code"`
	}
	decodeBody(t, response, &notFound)
	req.Equal("error", notFound.Status)
	req.Equal("Chat not found", notFound.Message)
	req.Equal(http.StatusNotFound, notFound.Code)

	// Search finds the created chat.
	response, err = http.Get(ts.URL + "/search?query=Hello")
	req.NoError(err)
	req.Equal(http.StatusOK, response.StatusCode)
	var search struct {
		Query   string                `json:"query"`
		Count   int                   `json:"count"`
		Results []domain.SearchResult `json:"results"`
	}
	decodeBody(t, response, &search)
	req.Equal("Hello", search.Query)
	req.GreaterOrEqual(search.Count, 1)
	req.Equal(chat.ID, search.Results[0].ChatID)

	// An empty query is rejected.
	response, err = http.Get(ts.URL + "/search?query=")
	req.NoError(err)
	req.Equal(http.StatusBadRequest, response.StatusCode)
	var badQuery struct {
		Message string `json:"message"`
	}
	decodeBody(t, response, &badQuery)
	req.Equal("Search query is required", badQuery.Message)
}

func Test_Create_Chat_Rejects_Empty_Message(t *testing.T) {
	req := require.New(t)
	ts := newTestServer(t)

	response := postJSON(t, ts.URL+"/chat", map[string]string{"message": "   "})
	req.Equal(http.StatusBadRequest, response.StatusCode)
	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Code    int    `json:"code"`
	}
	decodeBody(t, response, &body)
	req.Equal("error", body.Status)
	req.Equal("Message is required", body.Message)
	req.Equal(http.StatusBadRequest, body.Code)

	// Nothing was persisted.
	response, err := http.Get(ts.URL + "/chats")
	req.NoError(err)
	var chats []domain.Chat
	decodeBody(t, response, &chats)
	req.Empty(chats)
}

func Test_Create_Chat_With_Assistant(t *testing.T) {
	ts := newTestServer(t)

	t.Run("should greet on behalf of the assistant", func(t *testing.T) {
		req := require.New(t)
		response := postJSON(t, ts.URL+"/chat/assistant/3", map[string]string{"message": "Hi there"})
		req.Equal(http.StatusCreated, response.StatusCode)

		var chat domain.Chat
		decodeBody(t, response, &chat)
		req.Equal("Chat with General Chat", chat.Title)
		req.Len(chat.Messages, 2)
		req.Equal("Hello! I'm General Chat. How can I help you today?", chat.Messages[1].Content)
		req.NotNil(chat.Messages[1].AssistantID)
		req.Equal(3, *chat.Messages[1].AssistantID)
	})

	t.Run("should reject an unknown assistant id", func(t *testing.T) {
		req := require.New(t)
		response := postJSON(t, ts.URL+"/chat/assistant/99", map[string]string{"message": "Hi"})
		req.Equal(http.StatusNotFound, response.StatusCode)
	})

	t.Run("should treat a non-numeric id as unknown", func(t *testing.T) {
		req := require.New(t)
		response := postJSON(t, ts.URL+"/chat/assistant/abc", map[string]string{"message": "Hi"})
		req.Equal(http.StatusNotFound, response.StatusCode)

		var body struct {
			Message string `json:"message"`
		}
		decodeBody(t, response, &body)
		req.Equal("Assistant not found", body.Message)
	})
}

func Test_Send_Message_To_Unknown_Assistant(t *testing.T) {
	req := require.New(t)
	ts := newTestServer(t)

	response := postJSON(t, ts.URL+"/chat", map[string]string{"message": "Hello, AI!"})
	var chat domain.Chat
	decodeBody(t, response, &chat)

	response = postJSON(t, ts.URL+"/chat/message", map[string]any{
		"chatId":      chat.ID,
		"message":     "Hello again",
		"assistantId": 42,
	})
	req.Equal(http.StatusNotFound, response.StatusCode)
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, response, &body)
	req.Equal("Assistant not found", body.Message)

	// Id zero is outside the registry, not "no assistant".
	response = postJSON(t, ts.URL+"/chat/message", map[string]any{
		"chatId":      chat.ID,
		"message":     "Hello again",
		"assistantId": 0,
	})
	req.Equal(http.StatusNotFound, response.StatusCode)
	decodeBody(t, response, &body)
	req.Equal("Assistant not found", body.Message)
}

func Test_List_Assistants(t *testing.T) {
	req := require.New(t)
	ts := newTestServer(t)

	response, err := http.Get(ts.URL + "/assistants")
	req.NoError(err)
	req.Equal(http.StatusOK, response.StatusCode)

	var assistants []domain.Assistant
	decodeBody(t, response, &assistants)
	req.Len(assistants, 4)
	for i, assistant := range assistants {
		req.Equal(i+1, assistant.ID)
		req.NotEmpty(assistant.Name)
		req.NotEmpty(assistant.IconName)
	}
}

func Test_Health_And_Headers(t *testing.T) {
	req := require.New(t)
	ts := newTestServer(t)

	response, err := http.Get(ts.URL + "/health")
	req.NoError(err)
	req.Equal(http.StatusOK, response.StatusCode)
	var health map[string]string
	decodeBody(t, response, &health)
	req.Equal("ok", health["status"])

	req.Equal("*", response.Header.Get("Access-Control-Allow-Origin"))
	req.Equal("nosniff", response.Header.Get("X-Content-Type-Options"))
	req.Equal("DENY", response.Header.Get("X-Frame-Options"))
	req.NotEmpty(response.Header.Get("Strict-Transport-Security"))
}

func Test_Preflight_Request(t *testing.T) {
	req := require.New(t)
	ts := newTestServer(t)

	request, err := http.NewRequest(http.MethodOptions, ts.URL+"/chat", nil)
	req.NoError(err)
	response, err := http.DefaultClient.Do(request)
	req.NoError(err)
	defer response.Body.Close()

	req.Equal(http.StatusNoContent, response.StatusCode)
	req.Contains(response.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func Test_Malformed_Body_Is_Rejected(t *testing.T) {
	req := require.New(t)
	ts := newTestServer(t)

	response, err := http.Post(ts.URL+"/chat", "application/json", bytes.NewReader([]byte("{not json")))
	req.NoError(err)
	req.Equal(http.StatusBadRequest, response.StatusCode)
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, response, &body)
	req.Equal("Invalid request body", body.Message)
}
