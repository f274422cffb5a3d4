package auth

import (
	"ProjectBlog/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists    = response.NewError(http.StatusConflict, "user with this email already exists")
	ErrUsernameAlreadyExists = response.NewError(http.StatusConflict, "user with this username already exists")
	ErrInvalidCredentials    = response.NewError(http.StatusUnauthorized, "invalid credentials")
	ErrUserNotFound          = response.NewError(http.StatusNotFound, "user not found")
	ErrInvalidFileType       = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFileTooLarge          = response.NewError(http.StatusBadRequest, "file too large")
	ErrFailedToSavePicture   = response.NewError(http.StatusBadRequest, "failed to save profile picture")
)
