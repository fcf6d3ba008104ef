package httpserver

import (
	"encoding/json"
	"net/http"

	"chat-desk/errors"
)

// errorResponse is the body shape of every non-2xx response.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("Error encoding response", "err", err)
	}
}

// writeError is the single point where error kinds become status codes.
// Internal causes stay in the logs; callers only see the safe message.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("Request failed", "err", err)
	}
	s.writeJSON(w, status, errorResponse{
		Status:  "error",
		Message: errors.PublicMessage(err),
		Code:    status,
	})
}
