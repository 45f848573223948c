package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"journal-scribe/editorial-portal/editorial-portal-backend/internal/people"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, a *Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Account), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, "test-secret", time.Hour, zap.NewNop())
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, validatePassword("abcdefg1"))
	assert.ErrorIs(t, validatePassword("short1"), ErrWeakPassword)
	assert.ErrorIs(t, validatePassword("lettersonly"), ErrWeakPassword)
	assert.ErrorIs(t, validatePassword("12345678"), ErrWeakPassword)
}

func TestRegister(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*auth.Account")).Return(nil)

	a, err := service.Register(ctx, "ejc369@nyu.edu", "password1")

	require.NoError(t, err)
	assert.Equal(t, "ejc369@nyu.edu", a.Email)
	assert.NotEqual(t, "password1", a.PasswordHash, "password is stored hashed")
	mockRepo.AssertExpectations(t)
}

func TestRegisterBadEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	_, err := service.Register(context.Background(), "not-an-email", "password1")
	assert.ErrorIs(t, err, people.ErrBadEmail)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterWeakPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	_, err := service.Register(context.Background(), "ejc369@nyu.edu", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestLoginRoundTrip(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	ctx := context.Background()
	var stored *Account
	mockRepo.On("Create", ctx, mock.AnythingOfType("*auth.Account")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*Account)
	}).Return(nil)

	_, err := service.Register(ctx, "ejc369@nyu.edu", "password1")
	require.NoError(t, err)

	mockRepo.On("GetByEmail", ctx, "ejc369@nyu.edu").Return(stored, nil)

	token, err := service.Login(ctx, "ejc369@nyu.edu", "password1")
	require.NoError(t, err)

	subject, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ejc369@nyu.edu", subject)
}

func TestLoginWrongPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	ctx := context.Background()
	var stored *Account
	mockRepo.On("Create", ctx, mock.AnythingOfType("*auth.Account")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*Account)
	}).Return(nil)

	_, err := service.Register(ctx, "ejc369@nyu.edu", "password1")
	require.NoError(t, err)

	mockRepo.On("GetByEmail", ctx, "ejc369@nyu.edu").Return(stored, nil)

	_, err = service.Login(ctx, "ejc369@nyu.edu", "wrongpass1")
	assert.ErrorIs(t, err, ErrBadLogin)
}

func TestLoginUnknownAccount(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	ctx := context.Background()
	mockRepo.On("GetByEmail", ctx, "ghost@nyu.edu").Return(nil, ErrAccountNotFound)

	_, err := service.Login(ctx, "ghost@nyu.edu", "password1")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	service := newTestService(new(MockRepository))

	_, err := service.VerifyToken("not.a.token")
	assert.Error(t, err)
}
