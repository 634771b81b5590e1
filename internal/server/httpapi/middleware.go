package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rdutra/portfolio-api/internal/common"
	"github.com/rdutra/portfolio-api/internal/server/auth"
)

type ctxKey string

const subjectKey ctxKey = "subject"

// SubjectFromContext returns the authenticated username stored by the
// auth middleware.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok
}

// authMiddleware is the gate in front of mutating routes. Missing,
// invalid and expired tokens each produce a 401 with their own reason;
// on success the token's subject is stored in the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, common.ErrMissingToken.Error())
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			writeError(w, http.StatusUnauthorized, common.ErrInvalidToken.Error())
			return
		}

		subject, err := auth.GetSubjectFromToken(parts[1], s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				writeError(w, http.StatusUnauthorized, common.ErrTokenExpired.Error())
				return
			}
			writeError(w, http.StatusUnauthorized, common.ErrInvalidToken.Error())
			return
		}

		ctx := context.WithValue(r.Context(), subjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// corsMiddleware mirrors the allow-all policy of the public site frontend
// and answers preflight requests directly.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
