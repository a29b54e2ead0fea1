package api

import (
	"encoding/json"
	"net/http"

	"github.com/prosewatch/prosewatch/pkg/textdiff"
)

type diffRequest struct {
	Original  string `json:"original"`
	Rewritten string `json:"rewritten"`
}

// handleDiff computes an ad-hoc phrase diff over in-memory text,
// without touching the document store.
func (s *Server) handleDiff() http.HandlerFunc {
	const maxBodySize = 4 << 20 // the engine is quadratic within a sentence window

	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

		var req diffRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result := textdiff.Diff(req.Original, req.Rewritten)
		respondJSON(w, http.StatusOK, result)
	}
}
