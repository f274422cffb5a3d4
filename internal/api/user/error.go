package user

import "ProjectBlog/pkg/response"

var (
	ErrFetchUsers     = response.NewError(400, "failed to fetch users")
	ErrUpdateProfile  = response.NewError(400, "failed to update profile")
	ErrInvalidPicture = response.NewError(400, "invalid profile picture")
	ErrDeleteProfile  = response.NewError(400, "failed to delete profile")
)
