package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_HTTPStatus_Mapping(t *testing.T) {
	req := require.New(t)

	req.Equal(http.StatusBadRequest, HTTPStatus(Validation("Message is required")))
	req.Equal(http.StatusNotFound, HTTPStatus(NotFound("Chat not found")))
	req.Equal(http.StatusInternalServerError, HTTPStatus(Internal("Failed to create chat", fmt.Errorf("disk full"))))
	req.Equal(http.StatusInternalServerError, HTTPStatus(fmt.Errorf("something unanticipated")))
}

func Test_HTTPStatus_Unwraps_Wrapped_Errors(t *testing.T) {
	req := require.New(t)

	wrapped := fmt.Errorf("handling request: %w", NotFound("Assistant not found"))
	req.Equal(http.StatusNotFound, HTTPStatus(wrapped))
	req.Equal("Assistant not found", PublicMessage(wrapped))
}

func Test_PublicMessage_Masks_Unknown_Errors(t *testing.T) {
	req := require.New(t)

	req.Equal("Message is required", PublicMessage(Validation("Message is required")))
	req.Equal("An unexpected error occurred", PublicMessage(fmt.Errorf("pq: connection reset")))
}

func Test_Internal_Keeps_Cause_Out_Of_Public_Message(t *testing.T) {
	req := require.New(t)

	cause := fmt.Errorf("open /data/chats.json: permission denied")
	err := Internal("Failed to send message", cause)

	req.Equal("Failed to send message", PublicMessage(err))
	req.ErrorContains(err, "permission denied")
	req.ErrorIs(err, cause)
}
