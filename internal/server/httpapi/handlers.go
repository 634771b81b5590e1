package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rdutra/portfolio-api/internal/common"
	"github.com/rdutra/portfolio-api/internal/server/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Expiration  time.Time `json:"expiration"`
	User        string    `json:"user"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Personal projects API."})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	s.logger.Info(r.Context(), "Registration request", "username", req.Username)

	user, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeError(w, http.StatusBadRequest, "username already registered")
			return
		}
		s.logger.Error(r.Context(), "registration failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, common.ErrorInternal.Error())
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", user.Username)
	writeJSON(w, http.StatusCreated, map[string]string{"message": "user registered successfully", "id": user.ID})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, common.ErrorInvalidCredentials.Error())
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, common.ErrorInternal.Error())
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		Expiration:  token.ExpiresAt,
		User:        token.Username,
	})
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	list, err := s.projects.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing projects failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, common.ErrorInternal.Error())
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := s.projects.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		s.logger.Error(r.Context(), "loading project failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, common.ErrorInternal.Error())
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var fields models.NewProject
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := s.projects.Create(r.Context(), &fields)
	if err != nil {
		s.logger.Error(r.Context(), "creating project failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, common.ErrorInternal.Error())
		return
	}

	subject, _ := SubjectFromContext(r.Context())
	s.logger.Info(r.Context(), "Project created", "project_id", id, "user", subject)
	writeJSON(w, http.StatusCreated, map[string]any{"message": "project created successfully", "project_id": id})
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var fields models.NewProject
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.projects.Update(r.Context(), id, &fields); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		s.logger.Error(r.Context(), "updating project failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, common.ErrorInternal.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "project updated successfully"})
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := s.projects.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		s.logger.Error(r.Context(), "deleting project failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, common.ErrorInternal.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "project deleted successfully"})
}

func projectID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
