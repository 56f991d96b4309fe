package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portfolio/backend/internal/model"
)

const experienceColumns = `id, title, company, location, start_date, end_date, description, skills, created_at, updated_at`

// PgExperienceRepository is the PostgreSQL implementation of ExperienceRepository.
type PgExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewPgExperienceRepository(pool *pgxpool.Pool) *PgExperienceRepository {
	return &PgExperienceRepository{pool: pool}
}

var _ ExperienceRepository = (*PgExperienceRepository)(nil)

func scanExperience(row pgx.Row) (*model.Experience, error) {
	var e model.Experience
	if err := row.Scan(&e.ID, &e.Title, &e.Company, &e.Location, &e.StartDate, &e.EndDate, &e.Description, &e.Skills, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if e.Skills == nil {
		e.Skills = []string{}
	}
	return &e, nil
}

// List returns all experiences, most recently added first.
func (r *PgExperienceRepository) List(ctx context.Context) ([]*model.Experience, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+experienceColumns+` FROM experiences ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, wrap("list experiences", err)
	}
	defer rows.Close()

	experiences := make([]*model.Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, wrap("list experiences", err)
		}
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list experiences", err)
	}
	return experiences, nil
}

func (r *PgExperienceRepository) GetByID(ctx context.Context, id int64) (*model.Experience, error) {
	e, err := scanExperience(r.pool.QueryRow(ctx,
		`SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id,
	))
	if err != nil {
		return nil, wrap("get experience", err)
	}
	return e, nil
}

func (r *PgExperienceRepository) Create(ctx context.Context, exp *model.Experience) error {
	if exp.Skills == nil {
		exp.Skills = []string{}
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO experiences (title, company, location, start_date, end_date, description, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		exp.Title, exp.Company, exp.Location, exp.StartDate, exp.EndDate, exp.Description, exp.Skills,
	).Scan(&exp.ID, &exp.CreatedAt, &exp.UpdatedAt)
	return wrap("create experience", err)
}

// Update changes only the fields present in patch and bumps updated_at.
func (r *PgExperienceRepository) Update(ctx context.Context, id int64, patch *model.ExperiencePatch) (*model.Experience, error) {
	var skills any
	if patch.Skills != nil {
		skills = *patch.Skills
	}
	e, err := scanExperience(r.pool.QueryRow(ctx,
		`UPDATE experiences SET
		   title       = COALESCE($2, title),
		   company     = COALESCE($3, company),
		   location    = COALESCE($4, location),
		   start_date  = COALESCE($5, start_date),
		   end_date    = COALESCE($6, end_date),
		   description = COALESCE($7, description),
		   skills      = COALESCE($8::text[], skills),
		   updated_at  = NOW()
		 WHERE id = $1
		 RETURNING `+experienceColumns,
		id, patch.Title, patch.Company, patch.Location, patch.StartDate, patch.EndDate, patch.Description, skills,
	))
	if err != nil {
		return nil, wrap("update experience", err)
	}
	return e, nil
}

// Delete removes the experience. A missing id is not an error.
func (r *PgExperienceRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	return wrap("delete experience", err)
}
