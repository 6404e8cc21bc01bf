package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

func (s *Server) handleFilesList(w http.ResponseWriter, r *http.Request) {
	files, err := s.store.ListSourceFiles()
	if err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"files": files})
}

// handleFilesDelete removes an upload: its registration, the client
// rows it produced, and the stored copy on disk.
func (s *Server) handleFilesDelete(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(in.Filename) == "" {
		s.writeError(w, http.StatusBadRequest, "filename is required")
		return
	}

	storedName, err := s.store.DeleteSourceFile(in.Filename)
	if err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	if err := os.Remove(filepath.Join(s.config.UploadDir, storedName)); err != nil && !os.IsNotExist(err) {
		s.log.Warn().Err(err).Str("file", storedName).Msg("removing stored upload")
	}
	s.writeSuccess(w)
}
