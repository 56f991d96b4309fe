package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/portfolio/backend/internal/metrics"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/validation"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo      repository.ContactRepository
	validator *validation.Validator
	notifier  NotificationService
}

// NewContactService creates a ContactService backed by the given repository
// and notifier.
func NewContactService(repo repository.ContactRepository, v *validation.Validator, notifier NotificationService) ContactService {
	return &contactServiceImpl{repo: repo, validator: v, notifier: notifier}
}

func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
	if err := s.validator.Contact(in); err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, err
	}

	msg := in.ToMessage()
	if err := s.repo.Create(ctx, msg); err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeStoreError).Inc()
		var storeErr *repository.StoreError
		if errors.As(err, &storeErr) {
			slog.Error("contact message insert failed", "op", storeErr.Op, "error", storeErr.Err)
		} else {
			slog.Error("contact message insert failed", "error", err)
		}
		return nil, err
	}
	metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeAccepted).Inc()

	// The message is stored; a client disconnect must not abort the sends.
	report := s.notifier.NotifyContact(context.WithoutCancel(ctx), msg)
	logReport(msg.ID, report)

	return msg, nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
