package handler

import (
	"errors"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/internal/storage"
)

// ProjectHandler serves the /api/projects resource.
type ProjectHandler struct {
	responder
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService, exposeErrors bool) *ProjectHandler {
	return &ProjectHandler{responder: responder{exposeErrors: exposeErrors}, projectService: projectService}
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch projects", err)
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	h.ok(w, http.StatusOK, projects, "")
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.fail(w, http.StatusBadRequest, "Invalid project ID")
		return
	}
	project, err := h.projectService.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		h.fail(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		h.serverError(w, r, "Failed to fetch project", err)
		return
	}
	h.ok(w, http.StatusOK, project, "")
}

// Create handles POST /api/projects. image_url may be a base64 data URL.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.ProjectInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.bodyError(w, err)
		return
	}
	project, err := h.projectService.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "Failed to create project", err)
		return
	}
	h.ok(w, http.StatusCreated, project, "")
}

// Update handles PUT /api/projects/{id}. Only supplied fields change.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.fail(w, http.StatusBadRequest, "Invalid project ID")
		return
	}
	var patch model.ProjectPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		h.bodyError(w, err)
		return
	}
	project, err := h.projectService.Update(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, r, "Failed to update project", err)
		return
	}
	h.ok(w, http.StatusOK, project, "")
}

// Delete handles DELETE /api/projects/{id}. Unknown ids still return 200.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.fail(w, http.StatusBadRequest, "Invalid project ID")
		return
	}
	if err := h.projectService.Delete(r.Context(), id); err != nil {
		h.serverError(w, r, "Failed to delete project", err)
		return
	}
	h.ok(w, http.StatusOK, nil, "Project deleted successfully")
}

// writeError maps service errors to responses: 400 for rejected input or
// images, 404 for a missing project, 500 otherwise.
func (h *ProjectHandler) writeError(w http.ResponseWriter, r *http.Request, message string, err error) {
	if h.invalid(w, err) {
		return
	}
	var ierr *service.ImageError
	if errors.As(err, &ierr) {
		h.fail(w, http.StatusBadRequest, imageErrorMessage(ierr.Err))
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		h.fail(w, http.StatusNotFound, "Project not found")
		return
	}
	h.serverError(w, r, message, err)
}

func (h *ProjectHandler) bodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.fail(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	h.fail(w, http.StatusBadRequest, "Invalid request body")
}

func imageErrorMessage(err error) string {
	switch {
	case errors.Is(err, storage.ErrImageTooLarge):
		return "File too large. Maximum size is 5MB"
	case errors.Is(err, storage.ErrUnsupportedImage):
		return "Only image files are allowed"
	default:
		return "Invalid image data"
	}
}
