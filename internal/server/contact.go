package server

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleContactList(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.store.ListMessages()
	if err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, msgs)
}

func (s *Server) handleContactAdd(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if _, err := s.store.AddMessage(in.Name, in.Phone, in.Message); err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	s.writeSuccess(w)
}

func (s *Server) handleContactDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}
	if err := s.store.DeleteMessage(id); err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
