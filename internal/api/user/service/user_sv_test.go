package userService

import (
	"ProjectBlog/internal/api/auth"
	authRepository "ProjectBlog/internal/api/auth/repository"
	"ProjectBlog/internal/api/user"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/utils"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type usersStub struct {
	getByIDFn       func(context.Context, string) (entity.User, error)
	getAllFn        func(context.Context) ([]entity.User, error)
	updateProfileFn func(context.Context, entity.User) error
	deleteFn        func(context.Context, string) error
}

func (s *usersStub) CreateUser(ctx context.Context, u entity.User) error { return nil }
func (s *usersStub) GetByID(ctx context.Context, id string) (entity.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *usersStub) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	return entity.User{}, auth.ErrUserNotFound
}
func (s *usersStub) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	return entity.User{}, auth.ErrUserNotFound
}
func (s *usersStub) GetAll(ctx context.Context) ([]entity.User, error) {
	return s.getAllFn(ctx)
}
func (s *usersStub) UpdateProfile(ctx context.Context, u entity.User) error {
	return s.updateProfileFn(ctx, u)
}
func (s *usersStub) UpdateProfilePicture(ctx context.Context, id, pictureURL string) error {
	return nil
}
func (s *usersStub) DeleteUser(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type repoStub struct {
	users    *usersStub
	commits  int
	rollbacks int
}

func (r *repoStub) NewClient(tx bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users: r.users,
		Commit: func() error {
			r.commits++
			return nil
		},
		Rollback: func() error {
			r.rollbacks++
			return nil
		},
	}, nil
}

func noopUsersStub() *usersStub {
	return &usersStub{
		getByIDFn: func(_ context.Context, id string) (entity.User, error) {
			return entity.User{ID: id, Name: "Ada", Username: "ada"}, nil
		},
		getAllFn:        func(_ context.Context) ([]entity.User, error) { return nil, nil },
		updateProfileFn: func(_ context.Context, _ entity.User) error { return nil },
		deleteFn:        func(_ context.Context, _ string) error { return nil },
	}
}

func TestUpdateProfileSendsOnlyChangedFields(t *testing.T) {
	users := noopUsersStub()
	var updated entity.User
	users.updateProfileFn = func(_ context.Context, u entity.User) error {
		updated = u
		return nil
	}
	svc := New(logrus.New(), &repoStub{users: users}, utils.New())

	_, err := svc.UpdateProfile(context.Background(), "user-1", user.UpdateProfileRequest{Name: "Grace"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "user-1", updated.ID)
	assert.Equal(t, "Grace", updated.Name)
	assert.Empty(t, updated.Surname, "untouched fields stay blank for the query to skip")
}

func TestDeleteProfileMissingUser(t *testing.T) {
	users := noopUsersStub()
	users.getByIDFn = func(_ context.Context, _ string) (entity.User, error) {
		return entity.User{}, auth.ErrUserNotFound
	}
	repo := &repoStub{users: users}
	svc := New(logrus.New(), repo, utils.New())

	err := svc.DeleteProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
	assert.Equal(t, 1, repo.rollbacks)
	assert.Zero(t, repo.commits)
}

func TestDeleteProfileCommitsCascade(t *testing.T) {
	users := noopUsersStub()
	var deletedID string
	users.deleteFn = func(_ context.Context, id string) error {
		deletedID = id
		return nil
	}
	repo := &repoStub{users: users}
	svc := New(logrus.New(), repo, utils.New())

	err := svc.DeleteProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", deletedID)
	assert.Equal(t, 1, repo.commits)
	assert.Zero(t, repo.rollbacks)
}
