package service

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/storage"
	"github.com/portfolio/backend/internal/validation"
)

// ProjectServiceImpl is the production implementation of ProjectService.
type ProjectServiceImpl struct {
	projectRepo repository.ProjectRepository
	validator   *validation.Validator
	images      imageStore
}

// NewProjectService creates a ProjectService. Images are written to store.
func NewProjectService(projectRepo repository.ProjectRepository, v *validation.Validator, store storage.Storage) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo, validator: v, images: imageStore{store: store}}
}

func (s *ProjectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *ProjectServiceImpl) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *ProjectServiceImpl) Create(ctx context.Context, in model.ProjectInput) (*model.Project, error) {
	if err := s.validator.Project(in); err != nil {
		return nil, err
	}
	if in.ImageURL != nil && storage.IsDataURL(*in.ImageURL) {
		url, err := s.images.saveDataURL(ctx, *in.ImageURL)
		if err != nil {
			return nil, err
		}
		in.ImageURL = &url
		return s.create(ctx, in, true)
	}
	return s.create(ctx, in, false)
}

func (s *ProjectServiceImpl) CreateWithUpload(ctx context.Context, in model.ProjectInput, img *ImageUpload) (*model.Project, error) {
	if err := s.validator.Project(in); err != nil {
		return nil, err
	}
	if img != nil {
		url, err := s.images.saveUpload(ctx, img)
		if err != nil {
			return nil, err
		}
		in.ImageURL = &url
		return s.create(ctx, in, true)
	}
	return s.create(ctx, in, false)
}

// create inserts the project. storedImage marks ImageURL as written by this
// request, so it is removed again when the insert fails.
func (s *ProjectServiceImpl) create(ctx context.Context, in model.ProjectInput, storedImage bool) (*model.Project, error) {
	p := &model.Project{
		Title:        in.Title,
		Description:  in.Description,
		Technologies: in.Technologies,
		GitHubURL:    emptyToNil(in.GitHubURL),
		LiveURL:      emptyToNil(in.LiveURL),
		ImageURL:     emptyToNil(in.ImageURL),
	}
	if err := s.projectRepo.Create(ctx, p); err != nil {
		if storedImage {
			s.images.remove(context.WithoutCancel(ctx), p.ImageURL)
		}
		return nil, err
	}
	return p, nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, id int64, patch model.ProjectPatch) (*model.Project, error) {
	if err := s.validator.ProjectPatch(patch); err != nil {
		return nil, err
	}

	existing, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	clearImage := false
	var stored *string
	if patch.ImageURL != nil {
		switch {
		case *patch.ImageURL == "":
			clearImage = true
			patch.ImageURL = nil
		case storage.IsDataURL(*patch.ImageURL):
			url, err := s.images.saveDataURL(ctx, *patch.ImageURL)
			if err != nil {
				return nil, err
			}
			patch.ImageURL = &url
			stored = &url
		}
	}

	updated, err := s.projectRepo.Update(ctx, id, &patch)
	if err != nil {
		s.images.remove(context.WithoutCancel(ctx), stored)
		return nil, err
	}

	if clearImage {
		if err := s.projectRepo.UpdateImageURL(ctx, id, nil); err != nil {
			return nil, err
		}
		updated.ImageURL = nil
	}
	if (clearImage || patch.ImageURL != nil) && !sameURL(existing.ImageURL, updated.ImageURL) {
		s.images.remove(ctx, existing.ImageURL)
	}
	return updated, nil
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, id int64) error {
	existing, err := s.projectRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.images.remove(ctx, existing.ImageURL)
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func sameURL(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
