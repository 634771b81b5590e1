// Package repomanager vends repository implementations bound to a database
// handle. Services ask for a repository per logical operation, passing
// either the pooled *sql.DB or an open transaction, so no repository ever
// holds a cursor across requests.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/rdutra/portfolio-api/internal/dbx"
	"github.com/rdutra/portfolio-api/internal/server/repositories/projects"
	"github.com/rdutra/portfolio-api/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Projects(db dbx.DBTX) projects.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
