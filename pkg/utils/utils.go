package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const profilePictureDir = "./uploads/profile-pictures"

var (
	ErrNoFileUploaded = errors.New("no file uploaded")
	ErrFileTooLarge   = errors.New("file size exceeds limit")
	ErrNotAnImage     = errors.New("uploaded file is not an image")
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	NewMediaFileName(originalName string) string
	ValidateImageFile(file *multipart.FileHeader) error
	SaveProfilePicture(file *multipart.FileHeader) (string, error)
	DeleteProfilePicture(publicPath string) error
}

type utils struct {
	maxImageSize int64
}

func New() IUtils {
	return &utils{
		maxImageSize: 5 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// NewMediaFileName builds a collision-resistant object name from the upload
// time, a short random suffix and the original file extension.
func (u *utils) NewMediaFileName(originalName string) string {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		suffix = []byte{0, 0, 0}
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".file"
	}

	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(suffix), ext)
}

func (u *utils) ValidateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return ErrNoFileUploaded
	}

	if file.Size > u.maxImageSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowedExtensions := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}
	if !allowedExtensions[ext] {
		return ErrNotAnImage
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}

	return nil
}

// SaveProfilePicture writes an uploaded picture under ./uploads and returns
// the public path it is served from.
func (u *utils) SaveProfilePicture(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(profilePictureDir, 0o755); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("profile-%d%s", time.Now().UnixNano(), strings.ToLower(filepath.Ext(file.Filename)))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(profilePictureDir, fileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/profile-pictures/" + fileName, nil
}

func (u *utils) DeleteProfilePicture(publicPath string) error {
	if !strings.HasPrefix(publicPath, "/uploads/profile-pictures/") {
		return errors.New("not a managed profile picture path")
	}

	fileName := filepath.Base(publicPath)
	return os.Remove(filepath.Join(profilePictureDir, fileName))
}
