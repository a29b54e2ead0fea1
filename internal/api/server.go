// Package api provides the REST API for prosewatch.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/prosewatch/prosewatch/internal/revision"
	"github.com/prosewatch/prosewatch/internal/user"
)

// Server holds the dependencies for the API.
type Server struct {
	userStore     *user.Store
	revisionStore *revision.Store
	jwtSecret     []byte
	logger        *slog.Logger
}

// NewServer creates a new API Server instance.
func NewServer(uStore *user.Store, rStore *revision.Store, jwtSecret string) *Server {
	return &Server{
		userStore:     uStore,
		revisionStore: rStore,
		jwtSecret:     []byte(jwtSecret),
		logger:        slog.Default(),
	}
}

// Routes returns the configured http.Handler for the API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("POST /api/auth/register", s.handleRegister())
	mux.HandleFunc("POST /api/auth/login", s.handleLogin())

	// Protected
	mux.Handle("POST /api/diff", s.requireAuth(http.HandlerFunc(s.handleDiff())))
	mux.Handle("GET /api/documents", s.requireAuth(http.HandlerFunc(s.handleListDocuments())))
	mux.Handle("POST /api/documents", s.requireAuth(http.HandlerFunc(s.handleAddDocument())))
	mux.Handle("DELETE /api/documents/{id}", s.requireAuth(http.HandlerFunc(s.handleDeleteDocument())))
	mux.Handle("GET /api/documents/{id}/reports", s.requireAuth(http.HandlerFunc(s.handleListReports())))

	return mux
}

// --- Helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
