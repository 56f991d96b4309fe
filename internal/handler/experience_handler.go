package handler

import (
	"errors"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

// ExperienceHandler serves the /api/experiences resource.
type ExperienceHandler struct {
	responder
	experienceService service.ExperienceService
}

func NewExperienceHandler(experienceService service.ExperienceService, exposeErrors bool) *ExperienceHandler {
	return &ExperienceHandler{responder: responder{exposeErrors: exposeErrors}, experienceService: experienceService}
}

func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.experienceService.List(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch experiences", err)
		return
	}
	if experiences == nil {
		experiences = []*model.Experience{}
	}
	h.ok(w, http.StatusOK, experiences, "")
}

func (h *ExperienceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.fail(w, http.StatusBadRequest, "Invalid experience ID")
		return
	}
	exp, err := h.experienceService.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		h.fail(w, http.StatusNotFound, "Experience not found")
		return
	}
	if err != nil {
		h.serverError(w, r, "Failed to fetch experience", err)
		return
	}
	h.ok(w, http.StatusOK, exp, "")
}

func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.ExperienceInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	exp, err := h.experienceService.Create(r.Context(), in)
	if err != nil {
		if h.invalid(w, err) {
			return
		}
		h.serverError(w, r, "Failed to create experience", err)
		return
	}
	h.ok(w, http.StatusCreated, exp, "")
}

func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.fail(w, http.StatusBadRequest, "Invalid experience ID")
		return
	}
	var patch model.ExperiencePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	exp, err := h.experienceService.Update(r.Context(), id, patch)
	if err != nil {
		if h.invalid(w, err) {
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			h.fail(w, http.StatusNotFound, "Experience not found")
			return
		}
		h.serverError(w, r, "Failed to update experience", err)
		return
	}
	h.ok(w, http.StatusOK, exp, "")
}

// Delete handles DELETE /api/experiences/{id}. Unknown ids still return 200.
func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.fail(w, http.StatusBadRequest, "Invalid experience ID")
		return
	}
	if err := h.experienceService.Delete(r.Context(), id); err != nil {
		h.serverError(w, r, "Failed to delete experience", err)
		return
	}
	h.ok(w, http.StatusOK, nil, "Experience deleted successfully")
}
