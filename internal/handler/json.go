package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/user-admin/internal/domain"
)

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeMessage sends a {"message": ...} body, the shape of every non-data response.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeError maps a service error to its HTTP status. Unclassified errors are
// logged under op and reported to the client as a generic 500.
func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAuthenticationFailed):
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password.")
	case errors.Is(err, domain.ErrMissingToken):
		writeMessage(w, http.StatusUnauthorized, "Authentication required.")
	case errors.Is(err, domain.ErrInvalidToken):
		writeMessage(w, http.StatusForbidden, "Invalid or expired token.")
	case errors.Is(err, domain.ErrPrincipalNotFound):
		writeMessage(w, http.StatusNotFound, "User not found.")
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Admin access required.")
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "User not found.")
	case errors.Is(err, domain.ErrDuplicateEmail):
		writeMessage(w, http.StatusConflict, "A user with that email already exists.")
	default:
		slog.Error(op, "error", err)
		writeMessage(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
	}
}
