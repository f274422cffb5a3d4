package authService

import (
	"ProjectBlog/internal/api/auth"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	jwtPkg "ProjectBlog/pkg/jwt"
	"ProjectBlog/pkg/response"
	"errors"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Access tokens live for one day on every path that issues one.
const tokenTTL = 24 * time.Hour

func (s *authService) Register(ctx context.Context, req auth.RegisterRequest, picture *multipart.FileHeader) (auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthResponse{}, err
	}

	// Email collision takes precedence when both fields collide.
	if _, err := repo.Users.GetByEmail(ctx, req.Email); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      req.Email,
		}).Warn("Email already registered")
		return auth.AuthResponse{}, auth.ErrEmailAlreadyExists
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return auth.AuthResponse{}, err
	}

	if _, err := repo.Users.GetByUsername(ctx, req.Username); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"username":   req.Username,
		}).Warn("Username already registered")
		return auth.AuthResponse{}, auth.ErrUsernameAlreadyExists
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return auth.AuthResponse{}, err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.AuthResponse{}, err
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return auth.AuthResponse{}, err
	}

	var pictureURL string
	if picture != nil {
		if err := s.utils.ValidateImageFile(picture); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid profile picture")
			return auth.AuthResponse{}, pictureValidationError(err)
		}

		savedPath, err := s.utils.SaveProfilePicture(picture)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to save profile picture")
			return auth.AuthResponse{}, auth.ErrFailedToSavePicture
		}
		pictureURL = savedPath
	}

	now := time.Now()

	user := entity.User{
		ID:             userID,
		Name:           req.Name,
		Surname:        req.Surname,
		Username:       req.Username,
		Email:          req.Email,
		Password:       hashedPassword,
		ProfilePicture: pictureURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.AuthResponse{}, response.NewErrorf(400, "failed to create user: %s", err.Error())
	}

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
	}, tokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.AuthResponse{}, err
	}

	return auth.AuthResponse{
		User:  makeUserResponse(user),
		Token: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthResponse{}, err
	}

	// Unknown email and wrong password yield the same error so the
	// response does not leak which emails are registered.
	user, err := repo.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt for unknown email")
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
	}, tokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.AuthResponse{}, err
	}

	return auth.AuthResponse{
		User:  makeUserResponse(user),
		Token: token,
	}, nil
}

// ValidateUser resolves verified token claims to the stored user. It backs
// the bearer-token middleware for every guarded route.
func (s *authService) ValidateUser(ctx context.Context, id string) (entity.UserLoginData, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return entity.UserLoginData{}, err
	}

	user, err := repo.Users.GetByID(ctx, id)
	if err != nil {
		return entity.UserLoginData{}, err
	}

	return entity.UserLoginData{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
