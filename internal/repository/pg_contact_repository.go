package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portfolio/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact messages.
// Messages are write-once: there is no update.
type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context) ([]*model.ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Create inserts a new contact_messages row and populates msg.ID and
// msg.CreatedAt from the RETURNING clause.
func (r *PgContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, subject, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Subject, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
	return wrap("create contact message", err)
}

// List returns all contact messages, newest first. An empty table yields an
// empty, non-nil slice.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, subject, message, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, wrap("list contact messages", err)
	}
	defer rows.Close()

	messages := make([]*model.ContactMessage, 0)
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, wrap("list contact messages", err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list contact messages", err)
	}
	return messages, nil
}

// Delete removes the message with the given id. Deleting a missing id is not
// an error.
func (r *PgContactRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	return wrap("delete contact message", err)
}
