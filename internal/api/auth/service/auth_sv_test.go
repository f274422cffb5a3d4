package authService

import (
	"ProjectBlog/internal/api/auth"
	authRepository "ProjectBlog/internal/api/auth/repository"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/bcrypt"
	"ProjectBlog/pkg/utils"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// usersStub is a stub for the Users side of the repository client.
type usersStub struct {
	createFn               func(context.Context, entity.User) error
	getByIDFn              func(context.Context, string) (entity.User, error)
	getByEmailFn           func(context.Context, string) (entity.User, error)
	getByUsernameFn        func(context.Context, string) (entity.User, error)
	getAllFn               func(context.Context) ([]entity.User, error)
	updateProfileFn        func(context.Context, entity.User) error
	updateProfilePictureFn func(context.Context, string, string) error
	deleteFn               func(context.Context, string) error
}

func (s *usersStub) CreateUser(ctx context.Context, u entity.User) error {
	return s.createFn(ctx, u)
}
func (s *usersStub) GetByID(ctx context.Context, id string) (entity.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *usersStub) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *usersStub) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *usersStub) GetAll(ctx context.Context) ([]entity.User, error) {
	return s.getAllFn(ctx)
}
func (s *usersStub) UpdateProfile(ctx context.Context, u entity.User) error {
	return s.updateProfileFn(ctx, u)
}
func (s *usersStub) UpdateProfilePicture(ctx context.Context, id, pictureURL string) error {
	return s.updateProfilePictureFn(ctx, id, pictureURL)
}
func (s *usersStub) DeleteUser(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func noopUsersStub() *usersStub {
	return &usersStub{
		createFn:        func(_ context.Context, _ entity.User) error { return nil },
		getByIDFn:       func(_ context.Context, _ string) (entity.User, error) { return entity.User{}, auth.ErrUserNotFound },
		getByEmailFn:    func(_ context.Context, _ string) (entity.User, error) { return entity.User{}, auth.ErrUserNotFound },
		getByUsernameFn: func(_ context.Context, _ string) (entity.User, error) { return entity.User{}, auth.ErrUserNotFound },
		getAllFn:        func(_ context.Context) ([]entity.User, error) { return nil, nil },
		updateProfileFn: func(_ context.Context, _ entity.User) error { return nil },
		updateProfilePictureFn: func(_ context.Context, _, _ string) error { return nil },
		deleteFn:               func(_ context.Context, _ string) error { return nil },
	}
}

type repoStub struct {
	users *usersStub
}

func (r *repoStub) NewClient(tx bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    r.users,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestService(users *usersStub) IAuthService {
	return New(logrus.New(), &repoStub{users: users}, bcrypt.New(), utils.New())
}

func registerRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		Name:     "Ada",
		Surname:  "Lovelace",
		Username: "ada",
		Email:    "ada@example.com",
		Password: "correct-horse",
	}
}

func TestRegisterEmailConflictTakesPrecedence(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	users := noopUsersStub()
	// Both the email and the username are taken.
	users.getByEmailFn = func(_ context.Context, _ string) (entity.User, error) {
		return entity.User{ID: "existing"}, nil
	}
	users.getByUsernameFn = func(_ context.Context, _ string) (entity.User, error) {
		return entity.User{ID: "existing"}, nil
	}
	svc := newTestService(users)

	_, err := svc.Register(context.Background(), registerRequest(), nil)
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestRegisterUsernameConflict(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	users := noopUsersStub()
	users.getByUsernameFn = func(_ context.Context, _ string) (entity.User, error) {
		return entity.User{ID: "existing"}, nil
	}
	svc := newTestService(users)

	_, err := svc.Register(context.Background(), registerRequest(), nil)
	assert.ErrorIs(t, err, auth.ErrUsernameAlreadyExists)
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	var created entity.User
	users := noopUsersStub()
	users.createFn = func(_ context.Context, u entity.User) error {
		created = u
		return nil
	}
	svc := newTestService(users)

	res, err := svc.Register(context.Background(), registerRequest(), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "correct-horse", created.Password, "the stored password must be hashed")
	assert.NoError(t, bcrypt.New().ComparePassword(created.Password, "correct-horse"))
	assert.Equal(t, "ada@example.com", res.User.Email)
}

func TestLoginUnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	hashed, err := bcrypt.New().HashPassword("right-password")
	require.NoError(t, err)

	users := noopUsersStub()
	users.getByEmailFn = func(_ context.Context, email string) (entity.User, error) {
		if email == "known@example.com" {
			return entity.User{ID: "user-1", Email: email, Password: hashed}, nil
		}
		return entity.User{}, auth.ErrUserNotFound
	}
	svc := newTestService(users)

	_, unknownErr := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	_, wrongPassErr := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "known@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, unknownErr, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, auth.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error(), "both failures must be indistinguishable")
}

func TestLoginReturnsSanitizedUserAndToken(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	hashed, err := bcrypt.New().HashPassword("right-password")
	require.NoError(t, err)

	users := noopUsersStub()
	users.getByEmailFn = func(_ context.Context, email string) (entity.User, error) {
		return entity.User{ID: "user-1", Username: "ada", Email: email, Password: hashed}, nil
	}
	svc := newTestService(users)

	res, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "right-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "user-1", res.User.ID)
	assert.Equal(t, "ada", res.User.Username)
}

func TestValidateUserResolvesClaims(t *testing.T) {
	users := noopUsersStub()
	users.getByIDFn = func(_ context.Context, id string) (entity.User, error) {
		return entity.User{ID: id, Username: "ada", Email: "ada@example.com"}, nil
	}
	svc := newTestService(users)

	data, err := svc.ValidateUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.UserLoginData{ID: "user-1", Username: "ada", Email: "ada@example.com"}, data)
}

func TestValidateUserMissingUser(t *testing.T) {
	svc := newTestService(noopUsersStub())

	_, err := svc.ValidateUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
