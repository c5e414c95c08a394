package api

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"log/slog"
)

// okBody is the acknowledgment payload for update and delete operations.
var okBody = map[string]bool{"ok": true}

// emptyBody is the sentinel returned for a by-id read that finds nothing.
// Callers depend on receiving `{}` with a success status here, not a 404.
var emptyBody = struct{}{}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, map[string]string{"error": msg}, status)
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// newResourceID returns a 32-character hex token used as the client-visible
// id for string-keyed resources when the request does not supply one.
func newResourceID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// isConstraintViolation matches the driver's constraint failure text, e.g. a
// duplicate client-supplied primary key or a unique email. There is no
// existence pre-check anywhere; the store is the sole arbiter.
func isConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint")
}
