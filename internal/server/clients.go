package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/BasharMawase/Nextis-Admin/internal/ingest"
	"github.com/BasharMawase/Nextis-Admin/pkg/phone"
	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, types.ErrInvalidID
	}
	return id, nil
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Analytics()
	if err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleClientsAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = s.config.PageSize
	}

	result, err := s.store.ListPage(page, limit)
	if err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleClientsByLocation(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.ListByLocation(r.URL.Query().Get("location"))
	if err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleClientDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid client id")
		return
	}
	fields, err := s.store.ClientDetails(id)
	if err != nil {
		s.writeError(w, errorStatus(err), "Client not found")
		return
	}
	s.writeJSON(w, http.StatusOK, fields)
}

func (s *Server) handleClientAdd(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	name := types.Scalar(payload[types.FieldBusinessName])
	if name == "" {
		s.writeError(w, http.StatusBadRequest, "Business Name is required")
		return
	}

	// The full payload doubles as the record's extra data, so dynamic
	// fields entered in the form survive the round trip.
	extra, err := json.Marshal(payload)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	nc := types.NewClient{
		BusinessName: name,
		Location:     ingest.NormalizeCity(types.Scalar(payload[types.FieldLocation])),
		Phone:        scalarOrUnset(payload, types.FieldPhone),
		AnyDesk:      scalarOrUnset(payload, types.FieldAnyDesk),
		SourceFile:   "Manual Entry",
		ExtraData:    string(extra),
	}
	if _, err := s.store.InsertClient(nc); err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	s.writeSuccess(w)
}

func (s *Server) handleClientUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeFailure(w, http.StatusBadRequest, "invalid client id")
		return
	}
	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		s.writeFailure(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.store.UpdateClient(id, fields); err != nil {
		s.writeFailure(w, errorStatus(err), err.Error())
		return
	}
	s.writeSuccess(w)
}

func (s *Server) handleClientDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeFailure(w, http.StatusBadRequest, "invalid client id")
		return
	}
	if err := s.store.DeleteClient(id); err != nil {
		s.writeFailure(w, errorStatus(err), err.Error())
		return
	}
	s.writeSuccess(w)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.SearchClients(r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, recs)
}

// scalarOrUnset reads a payload field, substituting the unset marker
// for missing or blank values.
func scalarOrUnset(payload map[string]any, key string) string {
	if v := types.Scalar(payload[key]); v != "" {
		return v
	}
	return phone.Unset
}
