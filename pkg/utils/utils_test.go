package utils

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   header,
	}
}

func TestNewULIDFromTimestampOrdering(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Unix(1000, 0))
	require.NoError(t, err)
	second, err := u.NewULIDFromTimestamp(time.Unix(2000, 0))
	require.NoError(t, err)

	assert.Len(t, first, 26)
	assert.Less(t, first, second, "later timestamps must sort after earlier ones")
}

func TestNewMediaFileNameKeepsExtension(t *testing.T) {
	u := New()

	name := u.NewMediaFileName("Vacation Photo.JPG")
	assert.True(t, strings.HasSuffix(name, ".jpg"), "extension is lowercased and kept, got %q", name)
	assert.NotContains(t, name, " ")
}

func TestNewMediaFileNameFallbackExtension(t *testing.T) {
	u := New()

	name := u.NewMediaFileName("README")
	assert.True(t, strings.HasSuffix(name, ".file"), "missing extensions fall back to .file, got %q", name)
}

func TestNewMediaFileNamesAreUnique(t *testing.T) {
	u := New()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		name := u.NewMediaFileName("a.png")
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}

func TestValidateImageFile(t *testing.T) {
	u := New()

	assert.Error(t, u.ValidateImageFile(nil))
	assert.NoError(t, u.ValidateImageFile(imageHeader("a.png", "image/png", 1024)))
	assert.Error(t, u.ValidateImageFile(imageHeader("a.png", "image/png", 6*1024*1024)), "above the size cap")
	assert.Error(t, u.ValidateImageFile(imageHeader("a.exe", "image/png", 1024)), "extension not allowed")
	assert.Error(t, u.ValidateImageFile(imageHeader("a.png", "text/plain", 1024)), "content type must be an image")
}

func TestDeleteProfilePictureRejectsForeignPaths(t *testing.T) {
	u := New()

	assert.Error(t, u.DeleteProfilePicture("/etc/passwd"))
	assert.Error(t, u.DeleteProfilePicture("https://cdn.example.com/x.png"))
}
