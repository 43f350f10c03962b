package user_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhashaj/EdututorAI/internal/auth"
	"github.com/prabhashaj/EdututorAI/internal/user"
	"github.com/prabhashaj/EdututorAI/internal/vectorindex"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*user.User)}
}

func (f *fakeUserRepo) Create(u *user.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*user.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(u *user.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) ListByRole(role user.Role) ([]*user.User, error) {
	var users []*user.User
	for _, u := range f.byEmail {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

func newTestService(t *testing.T) (user.UserService, *fakeUserRepo) {
	t.Helper()
	os.Setenv("JWT_SECRET", "a-test-secret-that-is-long-enough")
	auth.Init()

	repo := newFakeUserRepo()
	return user.NewService(repo, vectorindex.NewMemoryIndex()), repo
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	resp, err := svc.Register(ctx, user.RegisterRequest{
		Email:    "alice@edututor.ai",
		Name:     "Alice Johnson",
		Role:     user.RoleStudent,
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, user.RoleStudent, resp.User.Role)

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := svc.Register(ctx, user.RegisterRequest{
			Email: "alice@edututor.ai", Name: "Alice", Role: user.RoleStudent, Password: "x",
		})
		assert.ErrorIs(t, err, user.ErrEmailTaken)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		_, err := svc.Register(ctx, user.RegisterRequest{
			Email: "bob@edututor.ai", Name: "Bob", Role: "admin", Password: "x",
		})
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("LoginOK", func(t *testing.T) {
		resp, err := svc.Login(ctx, user.LoginRequest{Email: "alice@edututor.ai", Password: "hunter22"})
		require.NoError(t, err)

		claims, err := auth.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "student", claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(ctx, user.LoginRequest{Email: "alice@edututor.ai", Password: "nope"})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := svc.Login(ctx, user.LoginRequest{Email: "ghost@edututor.ai", Password: "x"})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestSeedDemoUsers(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	require.NoError(t, svc.SeedDemoUsers(ctx))
	firstCount := len(repo.byEmail)
	assert.Greater(t, firstCount, 15)

	educator, err := repo.GetByEmail("educator@edututor.ai")
	require.NoError(t, err)
	require.NotNil(t, educator)
	assert.Equal(t, user.RoleEducator, educator.Role)

	_, err = svc.Login(ctx, user.LoginRequest{Email: "student@edututor.ai", Password: "student123"})
	require.NoError(t, err)

	// Seeding twice must not duplicate accounts.
	require.NoError(t, svc.SeedDemoUsers(ctx))
	assert.Equal(t, firstCount, len(repo.byEmail))
}
