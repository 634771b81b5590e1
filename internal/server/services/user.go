// Package services contains the server-side business logic: account
// registration, login with token issuance, and project CRUD. Each
// operation acquires its repositories for its own duration only.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rdutra/portfolio-api/internal/common"
	"github.com/rdutra/portfolio-api/internal/server/auth"
	"github.com/rdutra/portfolio-api/internal/server/config"
	"github.com/rdutra/portfolio-api/internal/server/models"
	"github.com/rdutra/portfolio-api/internal/server/repositories/repomanager"
)

// AuthToken is the result of a successful login: a signed bearer token
// plus the metadata the client needs to use it.
type AuthToken struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	Username    string
}

// UserService handles registration and login.
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new account with a bcrypt-hashed password. The lookup
// before the insert is only a fast path for a friendly answer; the unique
// constraint on username settles concurrent registrations, so both paths
// report common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return u, nil
}

// Login verifies the credentials and mints a bearer token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*AuthToken, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	expiresAt := time.Now().Add(s.accessTokenValidityDuration)
	token, err := auth.GenerateToken(user.Username, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthToken{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		Username:    user.Username,
	}, nil
}
