package service

import (
	"bytes"
	"context"
	"embed"
	"errors"
	htmltemplate "html/template"
	"log/slog"
	texttemplate "text/template"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/portfolio/backend/internal/metrics"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/pkg/mailer"
)

const (
	internalSubjectPrefix     = "[INTERNAL] Portfolio Contact: "
	confirmationSubjectPrefix = "Thank you for contacting me - "

	timestampLayout = "Monday, January 2, 2006 at 03:04 PM MST"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html.tmpl"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt.tmpl"))
)

// NotificationConfig carries the owner branding and delivery settings.
type NotificationConfig struct {
	OwnerName    string
	OwnerTitle   string
	OwnerAddress string        // receives the internal notification
	Timeout      time.Duration // bounds NotifyContact; zero means no extra bound
}

type notificationServiceImpl struct {
	sender mailer.Sender
	cfg    NotificationConfig
	now    func() time.Time
}

// NewNotificationService creates a NotificationService that delivers through sender.
func NewNotificationService(sender mailer.Sender, cfg NotificationConfig) NotificationService {
	return &notificationServiceImpl{sender: sender, cfg: cfg, now: time.Now}
}

type emailData struct {
	Name       string
	Email      string
	Subject    string
	Message    string
	OwnerName  string
	OwnerTitle string
	Timestamp  string
}

func (s *notificationServiceImpl) data(msg *model.ContactMessage, at time.Time) emailData {
	return emailData{
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Subject,
		Message:    msg.Message,
		OwnerName:  s.cfg.OwnerName,
		OwnerTitle: s.cfg.OwnerTitle,
		Timestamp:  at.UTC().Format(timestampLayout),
	}
}

func (s *notificationServiceImpl) BuildInternalNotification(msg *model.ContactMessage) (*model.EmailDispatch, error) {
	received := msg.CreatedAt
	if received.IsZero() {
		received = s.now()
	}
	html, text, err := render("internal_notification", s.data(msg, received))
	if err != nil {
		return nil, err
	}
	return &model.EmailDispatch{
		To:      s.cfg.OwnerAddress,
		Subject: internalSubjectPrefix + msg.Subject,
		HTML:    html,
		Text:    text,
		ReplyTo: msg.Email,
	}, nil
}

func (s *notificationServiceImpl) BuildSubmitterConfirmation(msg *model.ContactMessage) (*model.EmailDispatch, error) {
	html, text, err := render("submitter_confirmation", s.data(msg, s.now()))
	if err != nil {
		return nil, err
	}
	return &model.EmailDispatch{
		To:      msg.Email,
		Subject: confirmationSubjectPrefix + msg.Subject,
		HTML:    html,
		Text:    text,
	}, nil
}

func render(name string, data emailData) (html, text string, err error) {
	var hb, tb bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&hb, name+".html.tmpl", data); err != nil {
		return "", "", err
	}
	if err := textTemplates.ExecuteTemplate(&tb, name+".txt.tmpl", data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func (s *notificationServiceImpl) Dispatch(ctx context.Context, d *model.EmailDispatch) error {
	if d.To == "" {
		return &DeliveryError{To: d.To, Err: errors.New("no recipient address")}
	}
	err := s.sender.Send(ctx, mailer.Message{
		To:      d.To,
		Subject: d.Subject,
		HTML:    d.HTML,
		Text:    d.Text,
		ReplyTo: d.ReplyTo,
	})
	if err != nil {
		return &DeliveryError{To: d.To, Err: err}
	}
	return nil
}

func (s *notificationServiceImpl) SendInternalNotification(ctx context.Context, msg *model.ContactMessage) error {
	d, err := s.BuildInternalNotification(msg)
	if err != nil {
		return &DeliveryError{To: s.cfg.OwnerAddress, Err: err}
	}
	return s.observe(metrics.EmailInternal, func() error { return s.Dispatch(ctx, d) })
}

func (s *notificationServiceImpl) SendSubmitterConfirmation(ctx context.Context, msg *model.ContactMessage) error {
	d, err := s.BuildSubmitterConfirmation(msg)
	if err != nil {
		return &DeliveryError{To: msg.Email, Err: err}
	}
	return s.observe(metrics.EmailConfirmation, func() error { return s.Dispatch(ctx, d) })
}

func (s *notificationServiceImpl) observe(kind string, send func() error) error {
	start := time.Now()
	err := send()
	metrics.EmailDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	status := metrics.StatusSent
	if err != nil {
		status = metrics.StatusFailed
	}
	metrics.EmailsSent.WithLabelValues(kind, status).Inc()
	return err
}

func (s *notificationServiceImpl) NotifyContact(ctx context.Context, msg *model.ContactMessage) NotificationReport {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	var report NotificationReport
	// Each goroutine writes its own field; Wait orders the writes before the return.
	var g errgroup.Group
	g.Go(func() error {
		report.Internal = s.SendInternalNotification(ctx, msg)
		return nil
	})
	g.Go(func() error {
		report.Confirmation = s.SendSubmitterConfirmation(ctx, msg)
		return nil
	})
	_ = g.Wait()
	return report
}

// logReport records notification failures for a stored message.
func logReport(id int64, r NotificationReport) {
	if r.Internal != nil {
		slog.Warn("internal notification failed", "contact_id", id, "error", r.Internal)
	}
	if r.Confirmation != nil {
		slog.Warn("submitter confirmation failed", "contact_id", id, "error", r.Confirmation)
	}
	if r.OK() {
		slog.Info("contact notifications sent", "contact_id", id)
	}
}
