package authService

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/auth"
	authRepository "github.com/ranjini26/lifeos/internal/api/auth/repository"
	"github.com/ranjini26/lifeos/internal/entity"
)

type fakeUserStore struct {
	users map[string]entity.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]entity.User{}}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUserStore) UpdateUser(ctx context.Context, user entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return auth.ErrUserNotFound
	}
	f.users[user.ID] = user
	return nil
}

type fakeAuthRepository struct {
	store *fakeUserStore
}

func (f *fakeAuthRepository) NewClient(tx bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeBcrypt struct{}

func (fakeBcrypt) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeBcrypt) ComparePassword(hashPassword string, password string) error {
	if hashPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

type fakeUtils struct {
	counter int
}

func (f *fakeUtils) NewULIDFromTimestamp(t time.Time) (string, error) {
	f.counter++
	return fmt.Sprintf("ulid-%03d", f.counter), nil
}

func (f *fakeUtils) ValidateAudioFile(file *multipart.FileHeader) error {
	return nil
}

func newTestAuthService(store *fakeUserStore) IAuthService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return NewAuthService(log, &fakeAuthRepository{store: store}, fakeBcrypt{}, &fakeUtils{})
}

func TestRegisterCreatesUser(t *testing.T) {
	store := newFakeUserStore()
	s := newTestAuthService(store)

	user, err := s.Register(context.Background(), auth.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "  Ada@Example.COM ",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.NotEmpty(t, user.ID)

	stored := store.users[user.ID]
	assert.True(t, strings.HasPrefix(stored.Password, "hashed:"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	s := newTestAuthService(store)

	_, err := s.Register(context.Background(), auth.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = s.Register(context.Background(), auth.RegisterRequest{
		Name:     "Someone Else",
		Email:    "ADA@example.com",
		Password: "other password",
	})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestLoginReturnsToken(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	store := newFakeUserStore()
	s := newTestAuthService(store)

	_, err := s.Register(context.Background(), auth.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	result, err := s.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.Greater(t, result.ExpiredAt, time.Now().Unix())
	assert.Equal(t, "ada@example.com", result.User.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	s := newTestAuthService(store)

	_, err := s.Register(context.Background(), auth.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = s.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	s := newTestAuthService(newFakeUserStore())

	_, err := s.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)
}

func TestProfileReturnsUser(t *testing.T) {
	store := newFakeUserStore()
	s := newTestAuthService(store)

	created, err := s.Register(context.Background(), auth.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	profile, err := s.Profile(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, profile)

	_, err = s.Profile(context.Background(), "missing")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
