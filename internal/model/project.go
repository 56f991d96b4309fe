package model

import "time"

type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	GitHubURL    *string   `json:"github_url"`
	LiveURL      *string   `json:"live_url"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProjectInput is the JSON body for POST /api/projects.
// ImageURL may be a plain URL or a base64 image data URL.
type ProjectInput struct {
	Title        string   `json:"title" validate:"notblank"`
	Description  string   `json:"description" validate:"notblank"`
	Technologies []string `json:"technologies" validate:"required"`
	GitHubURL    *string  `json:"github_url"`
	LiveURL      *string  `json:"live_url"`
	ImageURL     *string  `json:"image_url"`
}

// ProjectPatch carries the fields of a partial update. Nil fields are left
// unchanged. An empty ImageURL clears the image.
type ProjectPatch struct {
	Title        *string   `json:"title" validate:"omitnil,notblank"`
	Description  *string   `json:"description" validate:"omitnil,notblank"`
	Technologies *[]string `json:"technologies"`
	GitHubURL    *string   `json:"github_url"`
	LiveURL      *string   `json:"live_url"`
	ImageURL     *string   `json:"image_url"`
}
