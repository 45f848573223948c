package people

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"journal-scribe/editorial-portal/editorial-portal-backend/pkg/roles"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p *Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*Person, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Person), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]Person, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Person), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, p *Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ejc369@nyu.edu"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.org"))
	assert.False(t, IsValidEmail("no-at-sign"))
	assert.False(t, IsValidEmail("@nodomain"))
	assert.False(t, IsValidEmail("user@tld-missing"))
	assert.False(t, IsValidEmail(""))
}

func TestCreate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*people.Person")).Return(nil)

	p, err := service.Create(ctx, CreateRequest{
		Email:       "ejc369@nyu.edu",
		Name:        "Eugene Callahan",
		Affiliation: "NYU",
		Roles:       []string{roles.CodeEditor},
	})

	require.NoError(t, err)
	assert.Equal(t, "ejc369@nyu.edu", p.Email)
	mockRepo.AssertExpectations(t)
}

func TestCreateValidation(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())
	ctx := context.Background()

	_, err := service.Create(ctx, CreateRequest{Email: "bad-email", Name: "Eugene"})
	assert.ErrorIs(t, err, ErrBadEmail)

	_, err = service.Create(ctx, CreateRequest{Email: "a@b.edu", Name: "E"})
	assert.ErrorIs(t, err, ErrBadName)

	_, err = service.Create(ctx, CreateRequest{Email: "a@b.edu", Name: "Eugene", Roles: []string{"XX"}})
	assert.ErrorIs(t, err, ErrBadRole)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRead(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())

	ctx := context.Background()
	mockRepo.On("List", ctx).Return([]Person{
		{Email: "a@b.edu", Name: "Alice Author"},
		{Email: "c@d.edu", Name: "Carol Editor"},
	}, nil)

	people, err := service.Read(ctx)

	require.NoError(t, err)
	assert.Len(t, people, 2)
	assert.Equal(t, "Alice Author", people["a@b.edu"].Name)
}

func TestAddRole(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())

	ctx := context.Background()
	p := &Person{Email: "a@b.edu", Name: "Alice", Roles: []string{}}
	mockRepo.On("GetByEmail", ctx, "a@b.edu").Return(p, nil)
	mockRepo.On("Update", ctx, p).Return(nil)

	got, err := service.AddRole(ctx, "a@b.edu", roles.CodeReferee)

	require.NoError(t, err)
	assert.Equal(t, []string{roles.CodeReferee}, got.Roles)

	// adding again is a no-op
	got, err = service.AddRole(ctx, "a@b.edu", roles.CodeReferee)
	require.NoError(t, err)
	assert.Equal(t, []string{roles.CodeReferee}, got.Roles)
}

func TestAddRoleUnknown(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())

	_, err := service.AddRole(context.Background(), "a@b.edu", "XX")
	assert.ErrorIs(t, err, ErrBadRole)
}

func TestRemoveRole(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())

	ctx := context.Background()
	p := &Person{Email: "a@b.edu", Name: "Alice", Roles: []string{"AU", "RE"}}
	mockRepo.On("GetByEmail", ctx, "a@b.edu").Return(p, nil)
	mockRepo.On("Update", ctx, p).Return(nil)

	got, err := service.RemoveRole(ctx, "a@b.edu", "RE")

	require.NoError(t, err)
	assert.Equal(t, []string{"AU"}, got.Roles)
}

func TestRolesOf(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())

	ctx := context.Background()
	mockRepo.On("GetByEmail", ctx, "a@b.edu").Return(&Person{Email: "a@b.edu", Roles: []string{"ED"}}, nil)
	mockRepo.On("GetByEmail", ctx, "ghost@b.edu").Return(nil, ErrPersonNotFound)

	got, err := service.RolesOf(ctx, "a@b.edu")
	require.NoError(t, err)
	assert.Equal(t, []string{"ED"}, got)

	_, err = service.RolesOf(ctx, "ghost@b.edu")
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestMasthead(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())

	ctx := context.Background()
	mockRepo.On("List", ctx).Return([]Person{
		{Email: "ed@b.edu", Name: "Ed", Roles: []string{roles.CodeEditor}},
		{Email: "me@b.edu", Name: "Meg", Roles: []string{roles.CodeManagingEditor, roles.CodeEditor}},
		{Email: "au@b.edu", Name: "Al", Roles: []string{roles.CodeAuthor}},
	}, nil)

	masthead, err := service.Masthead(ctx)

	require.NoError(t, err)
	assert.Len(t, masthead, 3, "one bucket per masthead role")
	assert.Len(t, masthead["Editor"], 2)
	assert.Len(t, masthead["Managing Editor"], 1)
	assert.Empty(t, masthead["Consulting Editor"])

	// authors never appear on the masthead
	for _, members := range masthead {
		for _, p := range members {
			assert.NotEqual(t, "au@b.edu", p.Email)
		}
	}
}
