package repository

import (
	"context"

	"portfolio-backend/internal/domains/contact/model"
)

type ContactRepository interface {
	// Create inserts a new message.
	Create(ctx context.Context, message *model.ContactMessage) error

	// List reads all messages, newest first.
	List(ctx context.Context) ([]model.ContactMessage, error)

	// MarkRead flips a message's read flag to true and returns the updated
	// row. Marking an already-read message is a no-op.
	MarkRead(ctx context.Context, id string) (*model.ContactMessage, error)

	// Counts returns the total and unread message counts.
	Counts(ctx context.Context) (total int, unread int, err error)
}
