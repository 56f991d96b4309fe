package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/validation"
)

type mockExperienceService struct {
	listFunc    func(ctx context.Context) ([]*model.Experience, error)
	getByIDFunc func(ctx context.Context, id int64) (*model.Experience, error)
	createFunc  func(ctx context.Context, in model.ExperienceInput) (*model.Experience, error)
	updateFunc  func(ctx context.Context, id int64, patch model.ExperiencePatch) (*model.Experience, error)
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockExperienceService) List(ctx context.Context) ([]*model.Experience, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockExperienceService) GetByID(ctx context.Context, id int64) (*model.Experience, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockExperienceService) Create(ctx context.Context, in model.ExperienceInput) (*model.Experience, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &model.Experience{ID: 1, Title: in.Title}, nil
}

func (m *mockExperienceService) Update(ctx context.Context, id int64, patch model.ExperiencePatch) (*model.Experience, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return &model.Experience{ID: id}, nil
}

func (m *mockExperienceService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func TestExperienceHandler_List_EmptyIsArray(t *testing.T) {
	h := NewExperienceHandler(&mockExperienceService{}, false)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/experiences", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}

func TestExperienceHandler_Get_NotFound(t *testing.T) {
	h := NewExperienceHandler(&mockExperienceService{}, false)
	req := withID(httptest.NewRequest(http.MethodGet, "/api/experiences/3", nil), "3")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Experience not found" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestExperienceHandler_Create(t *testing.T) {
	body := `{"title":"Engineer","company":"Acme","location":"Remote","start_date":"2020-01","end_date":"Present","description":"Built things","skills":["Go"]}`

	t.Run("success", func(t *testing.T) {
		var got model.ExperienceInput
		mock := &mockExperienceService{
			createFunc: func(ctx context.Context, in model.ExperienceInput) (*model.Experience, error) {
				got = in
				return &model.Experience{ID: 2, Title: in.Title}, nil
			},
		}
		h := NewExperienceHandler(mock, false)
		rec := httptest.NewRecorder()
		h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/experiences", strings.NewReader(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Company != "Acme" || got.EndDate != "Present" || len(got.Skills) != 1 {
			t.Errorf("unexpected input %+v", got)
		}
	})

	t.Run("validation", func(t *testing.T) {
		mock := &mockExperienceService{
			createFunc: func(ctx context.Context, in model.ExperienceInput) (*model.Experience, error) {
				return nil, &validation.Error{Message: validation.MsgExperienceRequired, Fields: []string{"company"}}
			},
		}
		h := NewExperienceHandler(mock, false)
		rec := httptest.NewRecorder()
		h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/experiences", strings.NewReader(`{"title":"x"}`)))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if env := decodeEnvelope(t, rec); env.Message != validation.MsgExperienceRequired {
			t.Errorf("unexpected message %q", env.Message)
		}
	})
}

func TestExperienceHandler_Update_NotFound(t *testing.T) {
	mock := &mockExperienceService{
		updateFunc: func(ctx context.Context, id int64, patch model.ExperiencePatch) (*model.Experience, error) {
			return nil, repository.ErrNotFound
		},
	}
	h := NewExperienceHandler(mock, false)
	req := withID(httptest.NewRequest(http.MethodPut, "/api/experiences/4", strings.NewReader(`{"title":"x"}`)), "4")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestExperienceHandler_Delete_InvalidID(t *testing.T) {
	h := NewExperienceHandler(&mockExperienceService{}, false)
	req := withID(httptest.NewRequest(http.MethodDelete, "/api/experiences/abc", nil), "abc")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Invalid experience ID" {
		t.Errorf("unexpected message %q", env.Message)
	}
}
