// Package mailer delivers email over SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"
)

// DefaultTimeout bounds a single connect-and-send attempt.
const DefaultTimeout = 20 * time.Second

// Message is one outbound email with an HTML body and a plain-text alternative.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS (port 465); otherwise STARTTLS when offered
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPClient sends each message over a fresh SMTP connection.
type SMTPClient struct {
	cfg Config
}

// NewSMTPClient validates cfg and returns a client. A zero Timeout becomes
// DefaultTimeout.
func NewSMTPClient(cfg Config) (*SMTPClient, error) {
	if cfg.Host == "" {
		return nil, errors.New("mailer: host is required")
	}
	if cfg.From == "" {
		return nil, errors.New("mailer: from address is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &SMTPClient{cfg: cfg}, nil
}

var _ Sender = (*SMTPClient)(nil)

// Send builds msg and delivers it with a single attempt. The context deadline
// and the configured timeout both apply.
func (c *SMTPClient) Send(ctx context.Context, msg Message) error {
	m, err := c.build(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(c.cfg.Host, c.clientOptions()...)
	if err != nil {
		return fmt.Errorf("mailer: create client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", msg.To, err)
	}
	return nil
}

func (c *SMTPClient) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithTimeout(c.cfg.Timeout),
	}
	if c.cfg.Port > 0 {
		opts = append(opts, mail.WithPort(c.cfg.Port))
	}
	if c.cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if c.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(c.cfg.Username),
			mail.WithPassword(c.cfg.Password),
		)
	}
	return opts
}

// build assembles a multipart/alternative message: text/plain first,
// text/html as the preferred alternative.
func (c *SMTPClient) build(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(c.cfg.From); err != nil {
		return nil, fmt.Errorf("mailer: invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("mailer: invalid recipient %q: %w", msg.To, err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("mailer: invalid reply-to %q: %w", msg.ReplyTo, err)
		}
	}
	m.Subject(msg.Subject)
	m.SetDate()
	m.SetMessageID()
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}

// LogSender logs messages instead of sending them. It is used when no SMTP
// relay is configured.
type LogSender struct {
	Logger *slog.Logger
}

var _ Sender = LogSender{}

func (s LogSender) Send(_ context.Context, msg Message) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("email not sent: mail transport disabled",
		"to", msg.To,
		"subject", msg.Subject,
		"text_bytes", len(msg.Text),
		"html_bytes", len(msg.HTML),
	)
	return nil
}
