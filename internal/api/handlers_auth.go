package api

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Email == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to process password")
			return
		}

		id, err := s.userStore.CreateUser(r.Context(), req.Email, string(hash))
		if err != nil {
			s.logger.Error("failed to create user", "error", err)
			respondError(w, http.StatusConflict, "user already exists or database error")
			return
		}

		token, err := s.generateToken(id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to generate token")
			return
		}

		respondJSON(w, http.StatusCreated, map[string]interface{}{
			"user_id": id,
			"token":   token,
		})
	}
}

func (s *Server) handleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		u, err := s.userStore.GetUserByEmail(r.Context(), req.Email)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "database error")
			return
		}
		if u == nil {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		token, err := s.generateToken(u.ID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to generate token")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"user_id": u.ID,
			"token":   token,
		})
	}
}
