package apierr

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mrodgar/gymrat/internal/model"
	"github.com/mrodgar/gymrat/internal/services/auth"
	"github.com/mrodgar/gymrat/internal/services/token"
)

// ErrorResponse is the body every failed request gets: when it
// happened, the HTTP status, and a human-readable message.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
}

// httpError combines an HTTP status code with a response message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    he.status,
		Message:   he.message,
	})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, "User not found"}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, "Training session not found"}
	case errors.Is(err, model.ErrExerciseNotFound):
		return &httpError{http.StatusNotFound, "Exercise not found"}
	case errors.Is(err, model.ErrUsernameTaken):
		return &httpError{http.StatusConflict, "Username already exists"}
	case errors.Is(err, model.ErrExerciseNameTaken):
		return &httpError{http.StatusBadRequest, "Exercise name already exists"}
	case errors.Is(err, model.ErrInvalidStat):
		return &httpError{http.StatusBadRequest, "Unknown stat name"}
	case errors.Is(err, model.ErrInvalidAmount):
		return &httpError{http.StatusBadRequest, "Amount must be a positive integer"}
	case errors.Is(err, model.ErrInvalidRole):
		return &httpError{http.StatusBadRequest, "Unknown role"}
	case errors.Is(err, model.ErrPurchaseDenied):
		return &httpError{http.StatusBadRequest, "User does not meet requirements to purchase accessory or accessory already purchased"}
	// A missing routine and a foreign routine are reported identically.
	case errors.Is(err, model.ErrRoutineNotFound):
		return &httpError{http.StatusForbidden, "Routine not found or access denied"}
	case errors.Is(err, model.ErrConcurrentUpdate):
		return &httpError{http.StatusConflict, "Concurrent update, retry the request"}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, "Invalid username or password"}
	case errors.Is(err, token.ErrTokenExpired):
		return &httpError{http.StatusUnauthorized, "Token has expired"}
	case errors.Is(err, token.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, "Invalid token"}

	default:
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, "Authentication required"}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, "You do not have access to this resource"}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
