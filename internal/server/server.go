// Package server exposes the dashboard REST API over HTTP: analytics,
// paginated client listing, location drill-down, CRUD, search,
// spreadsheet upload, source-file management, and the contact inbox.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/BasharMawase/Nextis-Admin/internal/sqlite"
	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// Server routes API requests to an attached store.
type Server struct {
	log    zerolog.Logger
	store  *sqlite.Store
	config types.Config
	mux    *http.ServeMux
}

// NewServer wires the API routes onto a store. The store must be
// attached before requests arrive.
func NewServer(log zerolog.Logger, store *sqlite.Store, config types.Config) *Server {
	s := &Server{
		log:    log,
		store:  store,
		config: config,
		mux:    http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/analytics", s.handleAnalytics)
	s.mux.HandleFunc("GET /api/clients/all", s.handleClientsAll)
	s.mux.HandleFunc("GET /api/clients", s.handleClientsByLocation)
	s.mux.HandleFunc("GET /api/clients/details/{id}", s.handleClientDetails)
	s.mux.HandleFunc("POST /api/clients/add", s.handleClientAdd)
	s.mux.HandleFunc("POST /api/clients/update/{id}", s.handleClientUpdate)
	s.mux.HandleFunc("POST /api/clients/delete/{id}", s.handleClientDelete)
	s.mux.HandleFunc("GET /api/search", s.handleSearch)
	s.mux.HandleFunc("GET /api/files/list", s.handleFilesList)
	s.mux.HandleFunc("POST /api/files/delete", s.handleFilesDelete)
	s.mux.HandleFunc("POST /api/upload", s.handleUpload)
	s.mux.HandleFunc("GET /api/contact", s.handleContactList)
	s.mux.HandleFunc("POST /api/contact", s.handleContactAdd)
	s.mux.HandleFunc("DELETE /api/contact/{id}", s.handleContactDelete)
}

// ServeHTTP logs every request around the route dispatch.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.log.Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", rec.status).
		Dur("elapsed", time.Since(start)).
		Msg("request")
}

// Run serves the API until the context is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.ListenAddr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	s.log.Info().Str("addr", s.config.ListenAddr).Msg("api listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
