// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking internal
// details such as connection strings to API clients.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; the error can only be logged.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error
// message, verbatim. Use only for errors whose message is known to be safe
// for clients; otherwise use SafeError.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// safeFragments marks error messages that originate from input checks and
// may be shown to clients as-is.
var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"not allowed",
	"not authorized",
	"denied",
	"must be",
	"must not",
	"cannot be",
	"only",
	"unknown field",
	"permission",
}

// clientSafe is implemented by error types whose messages are assembled
// entirely in-process (no wrapped driver or transport text) and may be
// returned to the caller verbatim.
type clientSafe interface {
	ClientSafe() bool
}

// SafeError sanitizes error messages before returning them to users.
// Errors marked safe by their type, and validation-style messages, pass
// through unchanged; anything else, and every 5xx regardless of message,
// is logged (with secrets masked) and replaced by a generic message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	isSafe := false
	var marked clientSafe
	if errors.As(err, &marked) && marked.ClientSafe() {
		isSafe = true
	} else {
		lowerMsg := strings.ToLower(msg)
		for _, safe := range safeFragments {
			if strings.Contains(lowerMsg, safe) {
				isSafe = true
				break
			}
		}
	}
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
