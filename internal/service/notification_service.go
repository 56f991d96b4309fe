package service

import (
	"context"
	"fmt"

	"github.com/portfolio/backend/internal/model"
)

// NotificationService builds and sends the emails that follow a contact
// submission: one to the site owner and one back to the submitter.
type NotificationService interface {
	BuildInternalNotification(msg *model.ContactMessage) (*model.EmailDispatch, error)
	BuildSubmitterConfirmation(msg *model.ContactMessage) (*model.EmailDispatch, error)

	SendInternalNotification(ctx context.Context, msg *model.ContactMessage) error
	SendSubmitterConfirmation(ctx context.Context, msg *model.ContactMessage) error

	// Dispatch makes a single delivery attempt. Failures are *DeliveryError.
	Dispatch(ctx context.Context, d *model.EmailDispatch) error

	// NotifyContact sends both emails concurrently and waits for both.
	// Outcomes are reported, never returned as an error.
	NotifyContact(ctx context.Context, msg *model.ContactMessage) NotificationReport
}

// DeliveryError is returned when an email could not be handed to the relay.
type DeliveryError struct {
	To  string
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver email to %s: %v", e.To, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// NotificationReport carries the outcome of each send. A nil field means the
// email was delivered.
type NotificationReport struct {
	Internal     error
	Confirmation error
}

// OK reports whether both emails were delivered.
func (r NotificationReport) OK() bool {
	return r.Internal == nil && r.Confirmation == nil
}
