package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ProjectRepository is the persistence interface for portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	// Update applies the non-nil fields of patch and returns the updated row.
	// Returns ErrNotFound when no project has the given id.
	Update(ctx context.Context, id int64, patch *model.ProjectPatch) (*model.Project, error)
	Delete(ctx context.Context, id int64) error
	UpdateImageURL(ctx context.Context, id int64, imageURL *string) error
}
