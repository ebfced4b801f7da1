package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/contact/model"
)

// fakeContactRepo is an in-memory stand-in for the postgres repository.
type fakeContactRepo struct {
	messages []model.ContactMessage
}

func (f *fakeContactRepo) Create(_ context.Context, m *model.ContactMessage) error {
	f.messages = append(f.messages, *m)
	return nil
}

func (f *fakeContactRepo) List(_ context.Context) ([]model.ContactMessage, error) {
	out := make([]model.ContactMessage, len(f.messages))
	copy(out, f.messages)
	return out, nil
}

func (f *fakeContactRepo) MarkRead(_ context.Context, id string) (*model.ContactMessage, error) {
	for i := range f.messages {
		if f.messages[i].ID == id {
			f.messages[i].Read = true
			m := f.messages[i]
			return &m, nil
		}
	}
	return nil, model.ErrMessageNotFound
}

func (f *fakeContactRepo) Counts(_ context.Context) (int, int, error) {
	unread := 0
	for _, m := range f.messages {
		if !m.Read {
			unread++
		}
	}
	return len(f.messages), unread, nil
}

func validMessage() model.CreateContactMessageRequest {
	return model.CreateContactMessageRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice portfolio!",
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores an unread message with id and timestamp", func(t *testing.T) {
		repo := &fakeContactRepo{}
		svc := NewContactService(repo)

		m, err := svc.Submit(ctx, validMessage())

		require.NoError(t, err)
		assert.NotEmpty(t, m.ID)
		assert.False(t, m.Read)
		assert.WithinDuration(t, time.Now(), m.CreatedAt, time.Second)
	})

	t.Run("rejects an invalid email before any write", func(t *testing.T) {
		repo := &fakeContactRepo{}
		svc := NewContactService(repo)

		req := validMessage()
		req.Email = "not-an-email"
		_, err := svc.Submit(ctx, req)

		assert.Error(t, err)
		assert.Empty(t, repo.messages, "no partial write on validation failure")
	})
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)

	m, err := svc.Submit(ctx, validMessage())
	require.NoError(t, err)

	t.Run("flips unread to read", func(t *testing.T) {
		updated, err := svc.MarkRead(ctx, m.ID)

		require.NoError(t, err)
		assert.True(t, updated.Read)
	})

	t.Run("marking again is an idempotent no-op", func(t *testing.T) {
		updated, err := svc.MarkRead(ctx, m.ID)

		require.NoError(t, err)
		assert.True(t, updated.Read)

		_, unread, err := svc.Counts(ctx)
		require.NoError(t, err)
		assert.Zero(t, unread)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.MarkRead(ctx, "missing")

		assert.ErrorIs(t, err, model.ErrMessageNotFound)
	})
}
