// Package httpapi exposes the service over HTTP/JSON: public reads,
// credential endpoints and token-gated project mutations.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rdutra/portfolio-api/internal/logging"
	"github.com/rdutra/portfolio-api/internal/server/services"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	projects  *services.ProjectService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us *services.UserService, ps *services.ProjectService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "httpapi"),
		users:     us,
		projects:  ps,
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the full middleware/router chain.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/projects", s.handleListProjects).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id:[0-9]+}", s.handleGetProject).Methods(http.MethodGet)

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(s.authMiddleware)
	authRouter.HandleFunc("/projects", s.handleCreateProject).Methods(http.MethodPost)
	authRouter.HandleFunc("/projects/{id:[0-9]+}", s.handleUpdateProject).Methods(http.MethodPut)
	authRouter.HandleFunc("/projects/{id:[0-9]+}", s.handleDeleteProject).Methods(http.MethodDelete)

	return s.corsMiddleware(r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
