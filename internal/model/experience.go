package model

import "time"

type Experience struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExperienceInput is the JSON body for POST /api/experiences.
// Skills is optional and defaults to an empty list.
type ExperienceInput struct {
	Title       string   `json:"title" validate:"notblank"`
	Company     string   `json:"company" validate:"notblank"`
	Location    string   `json:"location" validate:"notblank"`
	StartDate   string   `json:"start_date" validate:"notblank"`
	EndDate     string   `json:"end_date" validate:"notblank"`
	Description string   `json:"description" validate:"notblank"`
	Skills      []string `json:"skills"`
}

// ExperiencePatch carries the fields of a partial update. Nil fields are left
// unchanged; supplied text fields must not be blank.
type ExperiencePatch struct {
	Title       *string   `json:"title" validate:"omitnil,notblank"`
	Company     *string   `json:"company" validate:"omitnil,notblank"`
	Location    *string   `json:"location" validate:"omitnil,notblank"`
	StartDate   *string   `json:"start_date" validate:"omitnil,notblank"`
	EndDate     *string   `json:"end_date" validate:"omitnil,notblank"`
	Description *string   `json:"description" validate:"omitnil,notblank"`
	Skills      *[]string `json:"skills"`
}
