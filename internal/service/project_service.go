package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ProjectService manages portfolio projects and their images.
type ProjectService interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id int64) (*model.Project, error)

	// Create stores a project. A data URL in ImageURL is decoded and saved
	// to image storage; the stored URL replaces it.
	Create(ctx context.Context, in model.ProjectInput) (*model.Project, error)

	// CreateWithUpload stores a project whose image arrived as a file.
	// img may be nil.
	CreateWithUpload(ctx context.Context, in model.ProjectInput, img *ImageUpload) (*model.Project, error)

	// Update applies a partial update. Replacing or clearing the image
	// removes the previous stored file.
	Update(ctx context.Context, id int64, patch model.ProjectPatch) (*model.Project, error)

	// Delete removes the project and its stored image. Unknown ids are not an error.
	Delete(ctx context.Context, id int64) error
}
