package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores a new contact message, then notifies the
	// owner and the submitter. Once the message is stored the call succeeds
	// regardless of how the notifications went.
	//
	// Errors are *validation.Error for a rejected payload and the
	// repository's error for a failed insert.
	Submit(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error)

	// List returns all contact messages, newest first.
	List(ctx context.Context) ([]*model.ContactMessage, error)

	// Delete removes a message. Unknown ids are not an error.
	Delete(ctx context.Context, id int64) error
}
