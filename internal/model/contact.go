package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// ID and CreatedAt are assigned by the database on insert.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactInput is the accepted JSON body for POST /api/contact.
type ContactInput struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank,contactemail"`
	Subject string `json:"subject" validate:"notblank"`
	Message string `json:"message" validate:"notblank"`
}

// ToMessage copies the submitted fields into a new, unsaved ContactMessage.
// Values are stored exactly as submitted.
func (in ContactInput) ToMessage() *ContactMessage {
	return &ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
}
