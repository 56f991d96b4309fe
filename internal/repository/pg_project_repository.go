package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portfolio/backend/internal/model"
)

const projectColumns = `id, title, description, technologies, github_url, live_url, image_url, created_at, updated_at`

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Technologies, &p.GitHubURL, &p.LiveURL, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return &p, nil
}

// List returns all projects, newest first.
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, wrap("list projects", err)
	}
	defer rows.Close()

	projects := make([]*model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, wrap("list projects", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list projects", err)
	}
	return projects, nil
}

// GetByID returns the project with the given id or ErrNotFound.
func (r *PgProjectRepository) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id,
	))
	if err != nil {
		return nil, wrap("get project", err)
	}
	return p, nil
}

// Create inserts the project and fills ID and timestamps in place.
func (r *PgProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, technologies, github_url, live_url, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		project.Title, project.Description, project.Technologies, project.GitHubURL, project.LiveURL, project.ImageURL,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	return wrap("create project", err)
}

// Update changes only the fields present in patch and bumps updated_at.
func (r *PgProjectRepository) Update(ctx context.Context, id int64, patch *model.ProjectPatch) (*model.Project, error) {
	var technologies any
	if patch.Technologies != nil {
		technologies = *patch.Technologies
	}
	p, err := scanProject(r.pool.QueryRow(ctx,
		`UPDATE projects SET
		   title        = COALESCE($2, title),
		   description  = COALESCE($3, description),
		   technologies = COALESCE($4::text[], technologies),
		   github_url   = COALESCE($5, github_url),
		   live_url     = COALESCE($6, live_url),
		   image_url    = COALESCE($7, image_url),
		   updated_at   = NOW()
		 WHERE id = $1
		 RETURNING `+projectColumns,
		id, patch.Title, patch.Description, technologies, patch.GitHubURL, patch.LiveURL, patch.ImageURL,
	))
	if err != nil {
		return nil, wrap("update project", err)
	}
	return p, nil
}

// Delete removes the project. A missing id is not an error.
func (r *PgProjectRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return wrap("delete project", err)
}

// UpdateImageURL sets image_url, which may be nil to clear it.
func (r *PgProjectRepository) UpdateImageURL(ctx context.Context, id int64, imageURL *string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects SET image_url = $2, updated_at = NOW() WHERE id = $1`,
		id, imageURL,
	)
	if err != nil {
		return wrap("update project image", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
