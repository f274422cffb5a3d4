package userService

import (
	"ProjectBlog/internal/api/user"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func makeUserResponse(u entity.User) user.UserResponse {
	return user.UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Surname:        u.Surname,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (s *userService) GetAllUsers(ctx context.Context) ([]user.UserResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	users, err := repo.Users.GetAll(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to fetch users")
		return nil, user.ErrFetchUsers
	}

	res := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, makeUserResponse(u))
	}
	return res, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (user.UserResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := repo.Users.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return makeUserResponse(u), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest, picture *multipart.FileHeader) (user.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return user.UserResponse{}, err
	}

	current, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	// Blank fields keep their stored values; the query only overwrites what
	// the caller actually sent.
	if err := repo.Users.UpdateProfile(ctx, entity.User{
		ID:      userID,
		Name:    req.Name,
		Surname: req.Surname,
	}); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to update profile")
		return user.UserResponse{}, err
	}

	if picture != nil {
		if err := s.utils.ValidateImageFile(picture); err != nil {
			return user.UserResponse{}, user.ErrInvalidPicture
		}

		savedPath, err := s.utils.SaveProfilePicture(picture)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to save profile picture")
			return user.UserResponse{}, user.ErrUpdateProfile
		}

		if err := repo.Users.UpdateProfilePicture(ctx, userID, savedPath); err != nil {
			return user.UserResponse{}, err
		}

		// The replaced file is removed best effort.
		if current.ProfilePicture != "" {
			if err := s.utils.DeleteProfilePicture(current.ProfilePicture); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"path":       current.ProfilePicture,
					"error":      err.Error(),
				}).Warn("Failed to delete previous profile picture")
			}
		}
	}

	u, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return makeUserResponse(u), nil
}

// DeleteProfile removes the user and everything they authored. Comments on
// their posts, their own comments elsewhere, and their posts go first so no
// orphaned rows survive; the whole cascade runs in one transaction.
func (s *userService) DeleteProfile(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		return err
	}

	u, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      rbErr.Error(),
			}).Error("Failed to rollback transaction")
		}
		return err
	}

	if err := repo.Users.DeleteUser(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to delete user")
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      rbErr.Error(),
			}).Error("Failed to rollback transaction")
		}
		return user.ErrDeleteProfile
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return err
	}

	// The row is gone either way; a stale picture on disk is acceptable.
	if u.ProfilePicture != "" {
		if err := s.utils.DeleteProfilePicture(u.ProfilePicture); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"path":       u.ProfilePicture,
				"error":      err.Error(),
			}).Warn("Failed to delete profile picture file")
		}
	}

	return nil
}
