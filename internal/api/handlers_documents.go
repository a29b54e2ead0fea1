package api

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type addDocumentRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (s *Server) handleAddDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addDocumentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Name == "" || req.URL == "" {
			respondError(w, http.StatusBadRequest, "name and url are required")
			return
		}

		id, err := s.revisionStore.AddDocument(r.Context(), getUserID(r), req.Name, req.URL)
		if err != nil {
			s.logger.Error("add document failed", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to add document")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]interface{}{"id": id})
	}
}

func (s *Server) handleListDocuments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs, err := s.revisionStore.ListDocuments(r.Context(), getUserID(r))
		if err != nil {
			s.logger.Error("list documents failed", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to list documents")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"documents": docs})
	}
}

func (s *Server) handleDeleteDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid document id")
			return
		}
		if err := s.revisionStore.DeleteDocument(r.Context(), getUserID(r), id); err != nil {
			s.logger.Error("delete document failed", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to delete document")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func (s *Server) handleListReports() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid document id")
			return
		}

		// Reports are scoped to the caller's own documents.
		doc, err := s.revisionStore.GetDocument(r.Context(), id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "database error")
			return
		}
		if doc == nil || doc.UserID != getUserID(r) {
			respondError(w, http.StatusNotFound, "document not found")
			return
		}

		limit := 20
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		reports, err := s.revisionStore.ListReports(r.Context(), id, limit)
		if err != nil {
			s.logger.Error("list reports failed", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to list reports")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"reports": reports})
	}
}
