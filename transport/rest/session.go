package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type SessionHandler interface {
	SessionHandler(w http.ResponseWriter, _ *http.Request)
}

type sessionHandler struct {
	logger  *slog.Logger
	session snapshotter
}

func NewSessionHandler(logger *slog.Logger, session snapshotter) SessionHandler {
	return &sessionHandler{
		logger:  logger.With("component", "rest"),
		session: session,
	}
}

// SessionHandler returns scores and history of the running session as JSON.
func (that *sessionHandler) SessionHandler(w http.ResponseWriter, _ *http.Request) {
	body, err := json.Marshal(that.session.Snapshot())
	if err != nil {
		that.logger.Error("failed to marshal snapshot", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(body); err != nil {
		that.logger.Error("failed to write snapshot", "error", err)
	}
}
