package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/user/model"
	"portfolio-backend/pkg/jwt"
)

// fakeUserRepo is an in-memory stand-in for the postgres repository.
type fakeUserRepo struct {
	users []model.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return model.ErrEmailTaken
		}
	}
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

// fakeCache is an in-memory counter store.
type fakeCache struct {
	counters map[string]int64
	err      error
}

func newFakeCache() *fakeCache {
	return &fakeCache{counters: map[string]int64{}}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	v, ok := f.counters[key]
	if !ok {
		return false, nil
	}
	data, _ := json.Marshal(v)
	return true, json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	if n, ok := value.(int64); ok {
		f.counters[key] = n
	}
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	if f.err != nil {
		return f.err
	}
	for _, k := range keys {
		delete(f.counters, k)
	}
	return nil
}

func (f *fakeCache) Increment(_ context.Context, key string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.counters[key]++
	return f.counters[key], nil
}

func (f *fakeCache) Expire(_ context.Context, _ string, _ time.Duration) error { return f.err }

func (f *fakeCache) TTL(_ context.Context, _ string) (time.Duration, error) { return 0, f.err }

func (f *fakeCache) Ping(_ context.Context) error { return f.err }

func newTestService(repo *fakeUserRepo, store *fakeCache, adminEmail string) ServiceInterface {
	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	return NewUserService(repo, manager, store, adminEmail)
}

func registerReq(email string) model.RegisterRequest {
	return model.RegisterRequest{Name: "Test User", Email: email, Password: "correct horse"}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("issues tokens and defaults to the user role", func(t *testing.T) {
		svc := newTestService(&fakeUserRepo{}, newFakeCache(), "admin@example.com")

		resp, err := svc.Register(ctx, registerReq("someone@example.com"))

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, model.RoleUser, resp.User.Role)
	})

	t.Run("the configured admin email gets the admin role", func(t *testing.T) {
		svc := newTestService(&fakeUserRepo{}, newFakeCache(), "admin@example.com")

		resp, err := svc.Register(ctx, registerReq("Admin@Example.com"))

		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, resp.User.Role)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc := newTestService(&fakeUserRepo{}, newFakeCache(), "")

		_, err := svc.Register(ctx, registerReq("dup@example.com"))
		require.NoError(t, err)

		_, err = svc.Register(ctx, registerReq("dup@example.com"))
		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("short password is rejected before any write", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := newTestService(repo, newFakeCache(), "")

		req := registerReq("weak@example.com")
		req.Password = "short"
		_, err := svc.Register(ctx, req)

		assert.Error(t, err)
		assert.Empty(t, repo.users)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	setup := func(store *fakeCache) ServiceInterface {
		repo := &fakeUserRepo{}
		svc := newTestService(repo, store, "")
		_, err := svc.Register(ctx, registerReq("user@example.com"))
		require.NoError(t, err)
		return svc
	}

	t.Run("valid credentials issue tokens and clear the counter", func(t *testing.T) {
		store := newFakeCache()
		svc := setup(store)

		_, err := svc.Login(ctx, model.LoginRequest{Email: "user@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)

		resp, err := svc.Login(ctx, model.LoginRequest{Email: "user@example.com", Password: "correct horse"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Empty(t, store.counters, "counter cleared on success")
	})

	t.Run("repeated failures lock the account", func(t *testing.T) {
		store := newFakeCache()
		svc := setup(store)

		for i := 0; i < maxFailedAttempts; i++ {
			_, err := svc.Login(ctx, model.LoginRequest{Email: "user@example.com", Password: "wrong"})
			assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		}

		// Even the right password is refused while locked.
		_, err := svc.Login(ctx, model.LoginRequest{Email: "user@example.com", Password: "correct horse"})
		assert.ErrorIs(t, err, model.ErrAccountLocked)
	})

	t.Run("unknown email counts toward the lockout", func(t *testing.T) {
		store := newFakeCache()
		svc := setup(store)

		_, err := svc.Login(ctx, model.LoginRequest{Email: "ghost@example.com", Password: "x"})

		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		assert.Equal(t, int64(1), store.counters["failed_login:ghost@example.com"])
	})

	t.Run("cache outage fails open", func(t *testing.T) {
		store := newFakeCache()
		svc := setup(store)
		store.err = errors.New("redis down")

		resp, err := svc.Login(ctx, model.LoginRequest{Email: "user@example.com", Password: "correct horse"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	repo := &fakeUserRepo{}
	svc := newTestService(repo, newFakeCache(), "admin@example.com")

	registered, err := svc.Register(ctx, registerReq("admin@example.com"))
	require.NoError(t, err)

	t.Run("valid refresh token issues a fresh pair", func(t *testing.T) {
		resp, err := svc.Refresh(ctx, model.RefreshRequest{RefreshToken: registered.RefreshToken})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, registered.User.ID, resp.User.ID)
		assert.Equal(t, model.RoleAdmin, resp.User.Role, "role re-read from the store")
	})

	t.Run("an access token is not accepted in place of a refresh token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, model.RefreshRequest{RefreshToken: registered.AccessToken})

		assert.ErrorIs(t, err, model.ErrInvalidRefreshToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.Refresh(ctx, model.RefreshRequest{RefreshToken: "not-a-jwt"})

		assert.ErrorIs(t, err, model.ErrInvalidRefreshToken)
	})

	t.Run("token for a deleted account is rejected", func(t *testing.T) {
		orphan, err := svc.Register(ctx, registerReq("gone@example.com"))
		require.NoError(t, err)
		repo.users = repo.users[:1]

		_, err = svc.Refresh(ctx, model.RefreshRequest{RefreshToken: orphan.RefreshToken})

		assert.ErrorIs(t, err, model.ErrInvalidRefreshToken)
	})
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	repo := &fakeUserRepo{}
	svc := newTestService(repo, newFakeCache(), "")

	resp, err := svc.Register(ctx, registerReq("me@example.com"))
	require.NoError(t, err)

	me, err := svc.Me(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", me.Email)

	_, err = svc.Me(ctx, uuid.NewString())
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	_, err = svc.Me(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
