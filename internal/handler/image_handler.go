package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/internal/storage"
)

// multipartOverhead allows for form fields and part headers around the image.
const multipartOverhead = 1 << 20

// CreateWithUpload handles POST /api/projects/upload: a multipart form with
// text fields and an optional "image" file (at most 5MB, image/* only).
// technologies may be a JSON array or a comma-separated list.
func (h *ProjectHandler) CreateWithUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxImageSize+multipartOverhead)
	if err := r.ParseMultipartForm(storage.MaxImageSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(w, http.StatusBadRequest, imageErrorMessage(storage.ErrImageTooLarge))
			return
		}
		h.fail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	in := model.ProjectInput{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Technologies: parseTechnologies(r.FormValue("technologies")),
		GitHubURL:    optionalFormValue(r, "github_url"),
		LiveURL:      optionalFormValue(r, "live_url"),
	}

	var upload *service.ImageUpload
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		upload = &service.ImageUpload{
			Data:        file,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
		}
	case errors.Is(err, http.ErrMissingFile):
	default:
		h.fail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	project, err := h.projectService.CreateWithUpload(r.Context(), in, upload)
	if err != nil {
		h.writeError(w, r, "Failed to create project", err)
		return
	}
	h.ok(w, http.StatusCreated, project, "")
}

// parseTechnologies accepts `["Go","SQL"]` or `Go, SQL`. An empty value
// yields nil so validation reports the field as missing.
func parseTechnologies(v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if strings.HasPrefix(v, "[") {
		var list []string
		if err := json.Unmarshal([]byte(v), &list); err == nil {
			return list
		}
	}
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func optionalFormValue(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return nil
	}
	return &v
}
