package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/validation"
)

// ExperienceService manages work experience entries.
type ExperienceService interface {
	List(ctx context.Context) ([]*model.Experience, error)
	GetByID(ctx context.Context, id int64) (*model.Experience, error)
	Create(ctx context.Context, in model.ExperienceInput) (*model.Experience, error)
	Update(ctx context.Context, id int64, patch model.ExperiencePatch) (*model.Experience, error)
	Delete(ctx context.Context, id int64) error
}

type experienceServiceImpl struct {
	repo      repository.ExperienceRepository
	validator *validation.Validator
}

func NewExperienceService(repo repository.ExperienceRepository, v *validation.Validator) ExperienceService {
	return &experienceServiceImpl{repo: repo, validator: v}
}

func (s *experienceServiceImpl) List(ctx context.Context) ([]*model.Experience, error) {
	return s.repo.List(ctx)
}

func (s *experienceServiceImpl) GetByID(ctx context.Context, id int64) (*model.Experience, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores an experience. Skills defaults to an empty list.
func (s *experienceServiceImpl) Create(ctx context.Context, in model.ExperienceInput) (*model.Experience, error) {
	if err := s.validator.Experience(in); err != nil {
		return nil, err
	}
	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}
	e := &model.Experience{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		Skills:      skills,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *experienceServiceImpl) Update(ctx context.Context, id int64, patch model.ExperiencePatch) (*model.Experience, error) {
	if err := s.validator.ExperiencePatch(patch); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, &patch)
}

func (s *experienceServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
