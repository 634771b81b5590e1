package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rdutra/portfolio-api/internal/common"
	"github.com/rdutra/portfolio-api/internal/dbx"
	"github.com/rdutra/portfolio-api/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, fields *models.NewProject) (int64, error) {

	query :=
		`INSERT INTO projects (img, title, descript, descript_ptbr, category, tecnologies, live_url, url, download, laptop_img, mobile_img)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		fields.Img, fields.Title, fields.Descript, fields.DescriptPtbr,
		fields.Category, fields.Tecnologies, fields.LiveURL, fields.URL,
		fields.Download, fields.LaptopImg, fields.MobileImg).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query :=
		`SELECT id, img, title, descript, descript_ptbr, category, tecnologies, live_url, url, download, laptop_img, mobile_img
		 FROM projects
		 WHERE id = $1
		 `

	p := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Img, &p.Title, &p.Descript, &p.DescriptPtbr,
		&p.Category, &p.Tecnologies, &p.LiveURL, &p.URL,
		&p.Download, &p.LaptopImg, &p.MobileImg)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Project, error) {
	query :=
		`SELECT id, img, title, descript, descript_ptbr, category, tecnologies, live_url, url, download, laptop_img, mobile_img
		 FROM projects
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Project, 0)
	for rows.Next() {
		p := &models.Project{}
		if err := rows.Scan(
			&p.ID, &p.Img, &p.Title, &p.Descript, &p.DescriptPtbr,
			&p.Category, &p.Tecnologies, &p.LiveURL, &p.URL,
			&p.Download, &p.LaptopImg, &p.MobileImg); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, fields *models.NewProject) error {
	query :=
		`UPDATE projects
		 SET img = $1, title = $2, descript = $3, descript_ptbr = $4, category = $5, tecnologies = $6, live_url = $7, url = $8, download = $9, laptop_img = $10, mobile_img = $11
		 WHERE id = $12
		 `

	res, err := r.db.ExecContext(ctx, query,
		fields.Img, fields.Title, fields.Descript, fields.DescriptPtbr,
		fields.Category, fields.Tecnologies, fields.LiveURL, fields.URL,
		fields.Download, fields.LaptopImg, fields.MobileImg, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM projects
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
