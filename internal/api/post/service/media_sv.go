package postService

import (
	"ProjectBlog/internal/api/post"
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/response"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	maxImageSize = 10 << 20
	maxMediaSize = 50 << 20
)

// uploadFiles pushes each file to object storage sequentially, keyed by
// MIME family. A single failure aborts the batch; files already uploaded
// are not rolled back. URLs of files that are neither images nor videos
// are uploaded but dropped from both result lists.
func (s *postsService) uploadFiles(ctx context.Context, files []*multipart.FileHeader) ([]string, []string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var imageURLs, videoURLs []string
	for _, file := range files {
		if file.Size == 0 {
			return nil, nil, response.NewErrorf(400, "file %s is empty", file.Filename)
		}

		contentType := file.Header.Get("Content-Type")
		prefix := "other/"
		limit := int64(maxMediaSize)
		switch {
		case strings.HasPrefix(contentType, "image/"):
			prefix = "images/"
			limit = maxImageSize
		case strings.HasPrefix(contentType, "video/"):
			prefix = "videos/"
		}

		if file.Size > limit {
			return nil, nil, response.NewErrorf(400, "file %s exceeds the size limit", file.Filename)
		}

		key := prefix + s.utils.NewMediaFileName(file.Filename)
		fileURL, err := s.s3Client.UploadFile(file, key)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"file":       file.Filename,
				"error":      err.Error(),
			}).Error("Failed to upload file to storage")
			return nil, nil, response.NewErrorf(400, "failed to upload file %s", file.Filename)
		}

		switch prefix {
		case "images/":
			imageURLs = append(imageURLs, fileURL)
		case "videos/":
			videoURLs = append(videoURLs, fileURL)
		}
	}

	return imageURLs, videoURLs, nil
}

// AddMediaToPost appends the given URLs to the post's lists. Order is
// preserved and duplicates are kept; re-adding an existing URL lists it
// twice.
func (s *postsService) AddMediaToPost(ctx context.Context, id, callerID string, req post.AddMediaRequest) (post.PostResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return post.PostResponse{}, err
	}

	authorID, imageURLs, videoURLs, err := repo.Posts.GetPostAuthorAndMedia(ctx, id)
	if err != nil {
		return post.PostResponse{}, err
	}
	if authorID != callerID {
		return post.PostResponse{}, post.ErrPostNotOwned
	}

	imageURLs = append(imageURLs, req.ImageURLs...)
	videoURLs = append(videoURLs, req.VideoURLs...)

	if err := repo.Posts.UpdatePostMedia(ctx, id, pq.StringArray(imageURLs), pq.StringArray(videoURLs)); err != nil {
		return post.PostResponse{}, err
	}

	updated, err := repo.Posts.GetPostByID(ctx, id)
	if err != nil {
		return post.PostResponse{}, err
	}
	return makePostResponse(updated), nil
}

// RemoveMediaFromPost removes the first exact match of each named URL from
// its own list. A URL that is not present is a no-op, not an error.
func (s *postsService) RemoveMediaFromPost(ctx context.Context, id, callerID string, req post.RemoveMediaRequest) (post.PostResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return post.PostResponse{}, err
	}

	authorID, imageURLs, videoURLs, err := repo.Posts.GetPostAuthorAndMedia(ctx, id)
	if err != nil {
		return post.PostResponse{}, err
	}
	if authorID != callerID {
		return post.PostResponse{}, post.ErrPostNotOwned
	}

	var removed []string
	if req.ImageURL != "" {
		var ok bool
		if imageURLs, ok = removeFirst(imageURLs, req.ImageURL); ok {
			removed = append(removed, req.ImageURL)
		}
	}
	if req.VideoURL != "" {
		var ok bool
		if videoURLs, ok = removeFirst(videoURLs, req.VideoURL); ok {
			removed = append(removed, req.VideoURL)
		}
	}

	if err := repo.Posts.UpdatePostMedia(ctx, id, pq.StringArray(imageURLs), pq.StringArray(videoURLs)); err != nil {
		return post.PostResponse{}, err
	}

	for _, fileURL := range removed {
		s.deleteStoredFile(ctx, fileURL)
	}

	updated, err := repo.Posts.GetPostByID(ctx, id)
	if err != nil {
		return post.PostResponse{}, err
	}
	return makePostResponse(updated), nil
}

func removeFirst(urls []string, target string) ([]string, bool) {
	for i, u := range urls {
		if u == target {
			return append(urls[:i:i], urls[i+1:]...), true
		}
	}
	return urls, false
}

// deleteStoredFile is best effort. URLs that point outside the managed
// bucket are left alone, and storage failures only get logged.
func (s *postsService) deleteStoredFile(ctx context.Context, fileURL string) {
	if !s.s3Client.OwnsURL(fileURL) {
		return
	}

	parsed, err := url.Parse(fileURL)
	if err != nil {
		return
	}

	key := strings.TrimPrefix(parsed.Path, "/")
	if err := s.s3Client.DeleteFile(key); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"key":        key,
			"error":      err.Error(),
		}).Warn("Failed to delete stored media file")
	}
}
