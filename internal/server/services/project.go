package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rdutra/portfolio-api/internal/common"
	"github.com/rdutra/portfolio-api/internal/dbx"
	"github.com/rdutra/portfolio-api/internal/server/models"
	"github.com/rdutra/portfolio-api/internal/server/repositories/repomanager"
)

// ProjectService provides CRUD over portfolio projects. Reads run against
// the pooled handle; Create runs in its own transaction.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager) *ProjectService {
	return &ProjectService{db: db, repomanager: m}
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	repo := s.repomanager.Projects(s.db)

	p, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading project: %w", err)
	}

	return p, nil
}

func (s *ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	repo := s.repomanager.Projects(s.db)

	list, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}

	return list, nil
}

// Create inserts a project and returns its server-assigned id, valid for
// an immediate Get.
func (s *ProjectService) Create(ctx context.Context, fields *models.NewProject) (int64, error) {
	var id int64
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Projects(tx)
		var createErr error
		id, createErr = repo.Create(ctx, fields)
		return createErr
	}); err != nil {
		return 0, fmt.Errorf("error creating project: %w", err)
	}

	return id, nil
}

// Update replaces all fields of the project with the given id.
func (s *ProjectService) Update(ctx context.Context, id int64, fields *models.NewProject) error {
	repo := s.repomanager.Projects(s.db)

	if err := repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error updating project: %w", err)
	}

	return nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Projects(s.db)

	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting project: %w", err)
	}

	return nil
}
