package authService

import (
	"ProjectBlog/internal/api/auth"
	authRepository "ProjectBlog/internal/api/auth/repository"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/bcrypt"
	"ProjectBlog/pkg/utils"
	"context"
	"errors"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest, picture *multipart.FileHeader) (auth.AuthResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error)
	ValidateUser(ctx context.Context, id string) (entity.UserLoginData, error)
	UpdateProfilePicture(ctx context.Context, userID string, picture *multipart.FileHeader) (*auth.ProfilePictureResponse, error)
}

type authService struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	repo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:         log,
		repo:        repo,
		bcryptUtils: bcryptUtils,
		utils:       utils,
	}
}

func pictureValidationError(err error) error {
	if errors.Is(err, utils.ErrFileTooLarge) {
		return auth.ErrFileTooLarge
	}
	return auth.ErrInvalidFileType
}

func makeUserResponse(user entity.User) auth.UserResponse {
	return auth.UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Surname:        user.Surname,
		Username:       user.Username,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}
