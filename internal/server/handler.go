package server

import (
	"encoding/json"
	"errors"
	"net/http"

	errx "github.com/shopassist-poc/server/internal/core/error"
	logx "github.com/shopassist-poc/server/pkg/logger"
)

// handleChat accepts one query and returns one answer or one error.
//
// Request body:  {"query": "..."}
// Response body: {"response": "..."} or {"error": "..."}
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be JSON with a 'query' field")
		return
	}

	answer, err := s.engine.Respond(r.Context(), req.Query)
	if err != nil {
		var appErr *errx.AppError
		if errors.As(err, &appErr) {
			logx.Warn().Err(err).Int("status", appErr.Status).Msg("request failed")
			writeError(w, appErr.Status, appErr.Message)
			return
		}
		logx.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, errx.SystemErrorMessage)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: answer})
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
