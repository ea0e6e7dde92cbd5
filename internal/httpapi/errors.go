package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/internal/users"
	"github.com/RahatGithub/QBoard/pkg/types"
)

// jsonError is the JSON error payload
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, jsonError{Error: message, Details: details})
}

// writeDomainError maps domain error kinds to HTTP status codes
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		insufficient *types.InsufficientStockError
		quantity     *types.InvalidQuantityError
		terminal     *types.TerminalOrderStateError
		transition   *types.InvalidTransitionError
		notFound     *types.ProductNotFoundError
	)

	switch {
	case errors.As(err, &insufficient):
		writeJSONError(w, http.StatusConflict, "insufficient_stock", err.Error())
	case errors.As(err, &quantity):
		writeJSONError(w, http.StatusBadRequest, "invalid_quantity", err.Error())
	case errors.As(err, &terminal):
		writeJSONError(w, http.StatusConflict, "terminal_order_state", err.Error())
	case errors.As(err, &transition):
		writeJSONError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.As(err, &notFound):
		writeJSONError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "not_found", "")
	case errors.Is(err, users.ErrUsernameTaken):
		writeJSONError(w, http.StatusConflict, "username_taken", err.Error())
	default:
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
	}
}
