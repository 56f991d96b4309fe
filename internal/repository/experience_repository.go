package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ExperienceRepository is the persistence interface for work experience entries.
type ExperienceRepository interface {
	List(ctx context.Context) ([]*model.Experience, error)
	GetByID(ctx context.Context, id int64) (*model.Experience, error)
	Create(ctx context.Context, exp *model.Experience) error
	Update(ctx context.Context, id int64, patch *model.ExperiencePatch) (*model.Experience, error)
	Delete(ctx context.Context, id int64) error
}
