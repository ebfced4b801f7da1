package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact/model"
	"portfolio-backend/internal/domains/contact/repository"
)

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ServiceInterface {
	return &contactService{repo: repo}
}

func (s *contactService) Submit(ctx context.Context, req model.CreateContactMessageRequest) (*model.ContactMessage, error) {
	// Required fields are checked before any write is attempted.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	message := &model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Read:      false,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *contactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact messages: %w", err)
	}
	return messages, nil
}

func (s *contactService) MarkRead(ctx context.Context, id string) (*model.ContactMessage, error) {
	return s.repo.MarkRead(ctx, id)
}

func (s *contactService) Counts(ctx context.Context) (int, int, error) {
	return s.repo.Counts(ctx)
}
