package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/soracane/roomdraw/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeNotEnoughCharacters = "NOT_ENOUGH_CHARACTERS"
	CodeInvalidPassword     = "INVALID_ADMIN_PASSWORD"
	CodeRoomNotFound        = "ROOM_NOT_FOUND"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeRoomFull            = "ROOM_FULL"
	CodeRoomNotFull         = "ROOM_NOT_FULL"
	CodeRoomNotReady        = "ROOM_NOT_READY"
	CodeDuplicatePlayer     = "DUPLICATE_PLAYER_NAME"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer.
// Unrecognized errors (storage failures included) collapse to a generic
// 500 so backend details never cross the boundary.
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidRequest):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Invalid request"}}
	case errors.Is(err, model.ErrNotEnoughCharacters):
		return &httpError{http.StatusBadRequest, APIError{CodeNotEnoughCharacters, "Player count exceeds available characters"}}
	case errors.Is(err, model.ErrInvalidAdminPassword):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidPassword, "Invalid admin password"}}
	case errors.Is(err, model.ErrRoomNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoomNotFound, "Room not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrRoomFull):
		return &httpError{http.StatusConflict, APIError{CodeRoomFull, "Room is full"}}
	case errors.Is(err, model.ErrRoomNotFull):
		return &httpError{http.StatusConflict, APIError{CodeRoomNotFull, "Room is not full"}}
	case errors.Is(err, model.ErrRoomNotReady):
		return &httpError{http.StatusConflict, APIError{CodeRoomNotReady, "Room is not ready"}}
	case errors.Is(err, model.ErrDuplicatePlayer):
		return &httpError{http.StatusConflict, APIError{CodeDuplicatePlayer, "Player name is already taken"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
