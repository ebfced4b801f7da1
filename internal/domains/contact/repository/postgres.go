package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/contact/model"
)

type postgresContactRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &postgresContactRepository{pool: pool}
}

const contactColumns = `id, name, email, subject, message, read, created_at`

func (r *postgresContactRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
		message.Read,
		message.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}

func (r *postgresContactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]model.ContactMessage, 0)
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contact messages: %w", err)
	}

	return messages, nil
}

func (r *postgresContactRepository) MarkRead(ctx context.Context, id string) (*model.ContactMessage, error) {
	// Setting read on an already-read row rewrites the same value, so the
	// operation stays idempotent at the store.
	query := `
		UPDATE contact_messages
		SET read = TRUE
		WHERE id = $1
		RETURNING ` + contactColumns

	var m model.ContactMessage
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to mark contact message read: %w", err)
	}

	return &m, nil
}

func (r *postgresContactRepository) Counts(ctx context.Context) (int, int, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE NOT read) FROM contact_messages`

	var total, unread int
	if err := r.pool.QueryRow(ctx, query).Scan(&total, &unread); err != nil {
		return 0, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	return total, unread, nil
}
