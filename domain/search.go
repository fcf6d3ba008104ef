package domain

// SearchResult ties a matching message back to its owning chat.
type SearchResult struct {
	ChatID    string  `json:"chatId"`
	ChatTitle string  `json:"chatTitle"`
	Message   Message `json:"message"`
}
