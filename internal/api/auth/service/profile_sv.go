package authService

import (
	"ProjectBlog/internal/api/auth"
	contextPkg "ProjectBlog/pkg/context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *authService) UpdateProfilePicture(ctx context.Context, userID string, picture *multipart.FileHeader) (*auth.ProfilePictureResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateImageFile(picture); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid profile picture upload")
		return nil, pictureValidationError(err)
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	savedPath, err := s.utils.SaveProfilePicture(picture)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save profile picture")
		return nil, auth.ErrFailedToSavePicture
	}

	if err := repo.Users.UpdateProfilePicture(ctx, userID, savedPath); err != nil {
		return nil, err
	}

	// Old picture removal is best effort; the new one is already persisted.
	if user.ProfilePicture != "" {
		if err := s.utils.DeleteProfilePicture(user.ProfilePicture); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"path":       user.ProfilePicture,
				"error":      err.Error(),
			}).Warn("Failed to delete previous profile picture")
		}
	}

	return &auth.ProfilePictureResponse{
		ID:             userID,
		ProfilePicture: savedPath,
	}, nil
}
