package userService

import (
	authRepository "ProjectBlog/internal/api/auth/repository"
	"ProjectBlog/internal/api/user"
	"ProjectBlog/pkg/utils"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type IUserService interface {
	GetAllUsers(ctx context.Context) ([]user.UserResponse, error)
	GetUserByID(ctx context.Context, id string) (user.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest, picture *multipart.FileHeader) (user.UserResponse, error)
	DeleteProfile(ctx context.Context, userID string) error
}

// User records live in the auth repository; this service only adds the
// profile-facing operations on top of it.
type userService struct {
	log   *logrus.Logger
	repo  authRepository.Repository
	utils utils.IUtils
}

func New(log *logrus.Logger, repo authRepository.Repository, utils utils.IUtils) IUserService {
	return &userService{
		log:   log,
		repo:  repo,
		utils: utils,
	}
}
