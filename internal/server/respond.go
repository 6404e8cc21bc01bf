package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// writeJSON serializes a response body with the proper content type.
func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error().Err(err).Msg("encoding response")
	}
}

// writeSuccess emits the {"success": true} acknowledgment the dashboard
// mutations expect.
func (s *Server) writeSuccess(w http.ResponseWriter) {
	s.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// writeError emits {"error": message} with the given status.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]any{"error": message})
}

// writeFailure emits {"success": false, "error": message}, the shape
// the edit and delete flows surface inline.
func (s *Server) writeFailure(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]any{"success": false, "error": message})
}

// errorStatus maps store errors onto HTTP statuses.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrNameRequired),
		errors.Is(err, types.ErrUnsupportedFile):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
