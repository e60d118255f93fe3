// Package web contains shared HTTP plumbing: response helpers, query-param
// parsing and the middleware chain.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

// MsgServerError is the uniform message carried by every 500 response body.
const MsgServerError = "Something went wrong"

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// RespondError writes a structured error body: {"message": <message>}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, map[string]string{"message": message})
}

// RespondServerError writes the uniform 500 body with the failure detail and
// logs the failure server-side. Raw stacks never reach the client.
func RespondServerError(w http.ResponseWriter, logger *slog.Logger, detail string) {
	logger.Error("Internal server error", "error", detail)
	RespondJSON(w, logger, http.StatusInternalServerError, map[string]string{
		"message": MsgServerError,
		"error":   detail,
	})
}

// ParseIntDefault reads an integer query parameter. An absent, unparsable or
// zero value yields def; negative values are clamped to 1 so slicing math
// never sees a negative bound.
func ParseIntDefault(r *http.Request, key string, def int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return def
	}
	intValue, err := strconv.Atoi(value)
	if err != nil || intValue == 0 {
		return def
	}
	if intValue < 1 {
		return 1
	}
	return intValue
}
