package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/BasharMawase/Nextis-Admin/internal/ingest"
)

// maxUploadBytes bounds one upload request.
const maxUploadBytes = 64 << 20

// handleUpload ingests one or more spreadsheets from a multipart form.
// Each file is stored under the uploads directory with a generated name
// so hostile filenames never touch the filesystem; the original name is
// kept as the rows' source-file attribution. The response carries the
// number of rows added plus refreshed analytics so the dashboard can
// redraw without a second round trip.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, "No files uploaded")
		return
	}
	files := r.MultipartForm.File["files"]
	if len(files) == 0 || files[0].Filename == "" {
		s.writeError(w, http.StatusBadRequest, "No files selected")
		return
	}

	if err := os.MkdirAll(s.config.UploadDir, 0o755); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	added := 0
	for _, fh := range files {
		n, err := s.ingestUpload(fh.Filename, fh)
		if err != nil {
			s.writeError(w, errorStatus(err), fmt.Sprintf("Error in %s: %v", fh.Filename, err))
			return
		}
		added += n
	}

	stats, err := s.store.Analytics()
	if err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"added":   added,
		"stats":   stats,
	})
}

// ingestUpload stores one uploaded file and stages its rows.
func (s *Server) ingestUpload(originalName string, fh *multipart.FileHeader) (int, error) {
	src, err := fh.Open()
	if err != nil {
		return 0, fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	storedName := uuid.NewString() + filepath.Ext(originalName)
	storedPath := filepath.Join(s.config.UploadDir, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		return 0, fmt.Errorf("storing upload: %w", err)
	}
	size, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("storing upload: %w", err)
	}

	rows, err := ingest.ParseFile(storedPath)
	if err != nil {
		os.Remove(storedPath)
		return 0, err
	}
	for i := range rows {
		rows[i].SourceFile = originalName
	}

	n, err := s.store.InsertClients(rows)
	if err != nil {
		return 0, err
	}
	if err := s.store.RegisterSourceFile(originalName, storedName, size); err != nil {
		return 0, err
	}
	return n, nil
}
