package service

import (
	"context"

	"portfolio-backend/internal/domains/contact/model"
)

type ServiceInterface interface {
	// Submit validates and stores a public contact form message.
	Submit(ctx context.Context, req model.CreateContactMessageRequest) (*model.ContactMessage, error)

	// List reads all messages for the admin inbox, newest first.
	List(ctx context.Context) ([]model.ContactMessage, error)

	// MarkRead flips a message to read. The transition is one-way and
	// idempotent; marking a read message changes nothing.
	MarkRead(ctx context.Context, id string) (*model.ContactMessage, error)

	// Counts returns the total and unread message counts.
	Counts(ctx context.Context) (total int, unread int, err error)
}
