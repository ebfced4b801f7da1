package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/user/model"
	"portfolio-backend/internal/domains/user/repository"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"
)

// Failed-login lockout. Counters live in Redis so the limit holds across
// instances; a cache outage fails open rather than blocking logins.
const (
	maxFailedAttempts = 5
	attemptWindow     = 15 * time.Minute
)

// bcrypt cost 12 is deliberately above the default.
const bcryptCost = 12

type userService struct {
	repo       repository.UserRepository
	jwtManager *jwt.Manager
	store      cache.Cache
	adminEmail string
}

func NewUserService(repo repository.UserRepository, jwtManager *jwt.Manager, store cache.Cache, adminEmail string) ServiceInterface {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
		store:      store,
		adminEmail: strings.ToLower(adminEmail),
	}
}

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, model.ErrEmailTaken
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := model.RoleUser
	if s.adminEmail != "" && email == s.adminEmail {
		role = model.RoleAdmin
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: string(passwordHash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	attemptKey := fmt.Sprintf("failed_login:%s", email)

	if s.isLocked(ctx, attemptKey) {
		return nil, model.ErrAccountLocked
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Unknown emails count toward the lockout too, so probing
			// for registered addresses costs the same as bad passwords.
			s.recordFailure(ctx, attemptKey)
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailure(ctx, attemptKey)
		return nil, model.ErrInvalidCredentials
	}

	if err := s.store.Delete(ctx, attemptKey); err != nil {
		logger.Warn("failed to clear login attempt counter", map[string]interface{}{"error": err.Error()})
	}

	return s.issueTokens(user)
}

func (s *userService) Refresh(ctx context.Context, req model.RefreshRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, model.ErrInvalidRefreshToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, model.ErrInvalidRefreshToken
	}

	// The refresh token carries only the user id; email and role come from
	// the store so a role change takes effect on the next refresh.
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidRefreshToken
		}
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *userService) Me(ctx context.Context, userID string) (*model.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, model.ErrUserNotFound
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := model.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) issueTokens(user *model.User) (*model.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &model.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         model.NewUserResponse(user),
	}, nil
}

func (s *userService) isLocked(ctx context.Context, attemptKey string) bool {
	var attempts int64
	found, err := s.store.Get(ctx, attemptKey, &attempts)
	if err != nil {
		logger.Warn("failed to read login attempt counter", map[string]interface{}{"error": err.Error()})
		return false
	}
	return found && attempts >= maxFailedAttempts
}

func (s *userService) recordFailure(ctx context.Context, attemptKey string) {
	attempts, err := s.store.Increment(ctx, attemptKey)
	if err != nil {
		logger.Warn("failed to count login attempt", map[string]interface{}{"error": err.Error()})
		return
	}
	if attempts == 1 {
		if err := s.store.Expire(ctx, attemptKey, attemptWindow); err != nil {
			logger.Warn("failed to set login attempt window", map[string]interface{}{"error": err.Error()})
		}
	}
}
