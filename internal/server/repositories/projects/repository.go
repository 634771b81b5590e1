// Package projects persists portfolio entries. Update and Delete surface
// the affected-row count: touching a missing id yields
// common.ErrorNotFound instead of a silent success.
package projects

import (
	"context"

	"github.com/rdutra/portfolio-api/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, fields *models.NewProject) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, id int64, fields *models.NewProject) error
	Delete(ctx context.Context, id int64) error
}
