package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before committing headers so a failure can still become a
	// clean 500 instead of a half-written body.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		if _, werr := w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}`)); werr != nil {
			slog.Error("Failed to write response buffer", "error", werr)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."

	// User and item messages
	ErrMsgUserNotFoundError = "User not found"
	ErrMsgItemNotFoundError = "Item not found"
	ErrMsgDropNotFoundError = "You don't have that item"
	ErrMsgNotYourItemError  = "That item belongs to someone else"
	ErrMsgUnequipableError  = "That item cannot be equipped"

	// Trade messages
	ErrMsgTradeNotFoundError = "Trade not found"
	ErrMsgNotYourTradeError  = "You are not a party to that trade"
	ErrMsgTradeConflictError = "An item in this trade is no longer available"
	ErrMsgInvalidTradeError  = "Invalid trade"

	// Reaction messages
	ErrMsgPostNotFoundError    = "Post not found"
	ErrMsgNotAReactionError    = "That item is not a reaction"
	ErrMsgAlreadyConsumedError = "That reaction has already been used"
	ErrMsgOwnPostError         = "You cannot react to your own post"
	ErrMsgNotOwnerError        = "That reaction belongs to someone else"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrDropNotFound):
		return http.StatusNotFound, ErrMsgDropNotFoundError
	case errors.Is(err, domain.ErrNotYourItem):
		return http.StatusForbidden, ErrMsgNotYourItemError
	case errors.Is(err, domain.ErrUnequipable):
		return http.StatusBadRequest, ErrMsgUnequipableError
	case errors.Is(err, domain.ErrTradeNotFound):
		return http.StatusNotFound, ErrMsgTradeNotFoundError
	case errors.Is(err, domain.ErrNotYourTrade):
		return http.StatusForbidden, ErrMsgNotYourTradeError
	case errors.Is(err, domain.ErrTradeConflict):
		return http.StatusConflict, ErrMsgTradeConflictError
	case errors.Is(err, domain.ErrInvalidTrade):
		return http.StatusBadRequest, ErrMsgInvalidTradeError
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, ErrMsgPostNotFoundError
	case errors.Is(err, domain.ErrNotAReaction):
		return http.StatusBadRequest, ErrMsgNotAReactionError
	case errors.Is(err, domain.ErrAlreadyConsumed):
		return http.StatusConflict, ErrMsgAlreadyConsumedError
	case errors.Is(err, domain.ErrOwnPost):
		return http.StatusForbidden, ErrMsgOwnPostError
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden, ErrMsgNotOwnerError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
