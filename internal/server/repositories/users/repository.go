// Package users persists account rows. Username uniqueness is enforced by
// the users_username_key constraint; Create maps that violation to
// common.ErrorAlreadyExists so callers never need to know the SQL state.
package users

import (
	"context"

	"github.com/rdutra/portfolio-api/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
