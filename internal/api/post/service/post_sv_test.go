package postService

import (
	"ProjectBlog/internal/api/post"
	postRepository "ProjectBlog/internal/api/post/repository"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/utils"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postsStub is a stub for the Posts side of the repository client.
type postsStub struct {
	createFn             func(context.Context, entity.BlogPost) error
	getByIDFn            func(context.Context, string) (entity.BlogPost, error)
	getAuthorAndMediaFn  func(context.Context, string) (string, []string, []string, error)
	getAllFn             func(context.Context) ([]entity.BlogPost, error)
	getByAuthorFn        func(context.Context, string) ([]entity.BlogPost, error)
	updateFn             func(context.Context, entity.BlogPost) error
	updateMediaFn        func(context.Context, string, pq.StringArray, pq.StringArray) error
	deleteFn             func(context.Context, string) error
}

func (s *postsStub) CreatePost(ctx context.Context, p entity.BlogPost) error {
	return s.createFn(ctx, p)
}
func (s *postsStub) GetPostByID(ctx context.Context, id string) (entity.BlogPost, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postsStub) GetPostAuthorAndMedia(ctx context.Context, id string) (string, []string, []string, error) {
	return s.getAuthorAndMediaFn(ctx, id)
}
func (s *postsStub) GetAllPosts(ctx context.Context) ([]entity.BlogPost, error) {
	return s.getAllFn(ctx)
}
func (s *postsStub) GetPostsByAuthor(ctx context.Context, authorID string) ([]entity.BlogPost, error) {
	return s.getByAuthorFn(ctx, authorID)
}
func (s *postsStub) UpdatePost(ctx context.Context, p entity.BlogPost) error {
	return s.updateFn(ctx, p)
}
func (s *postsStub) UpdatePostMedia(ctx context.Context, id string, imageURLs, videoURLs pq.StringArray) error {
	return s.updateMediaFn(ctx, id, imageURLs, videoURLs)
}
func (s *postsStub) DeletePost(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func noopPostsStub() *postsStub {
	return &postsStub{
		createFn:  func(_ context.Context, _ entity.BlogPost) error { return nil },
		getByIDFn: func(_ context.Context, id string) (entity.BlogPost, error) { return entity.BlogPost{ID: id}, nil },
		getAuthorAndMediaFn: func(_ context.Context, _ string) (string, []string, []string, error) {
			return "", nil, nil, nil
		},
		getAllFn:      func(_ context.Context) ([]entity.BlogPost, error) { return nil, nil },
		getByAuthorFn: func(_ context.Context, _ string) ([]entity.BlogPost, error) { return nil, nil },
		updateFn:      func(_ context.Context, _ entity.BlogPost) error { return nil },
		updateMediaFn: func(_ context.Context, _ string, _, _ pq.StringArray) error { return nil },
		deleteFn:      func(_ context.Context, _ string) error { return nil },
	}
}

type commentsStub struct {
	getByPostFn    func(context.Context, string) ([]entity.Comment, error)
	deleteByPostFn func(context.Context, string) error
}

func (s *commentsStub) GetCommentsByPost(ctx context.Context, postID string) ([]entity.Comment, error) {
	return s.getByPostFn(ctx, postID)
}
func (s *commentsStub) DeleteCommentsByPost(ctx context.Context, postID string) error {
	return s.deleteByPostFn(ctx, postID)
}

func noopCommentsStub() *commentsStub {
	return &commentsStub{
		getByPostFn:    func(_ context.Context, _ string) ([]entity.Comment, error) { return nil, nil },
		deleteByPostFn: func(_ context.Context, _ string) error { return nil },
	}
}

type repoStub struct {
	posts    *postsStub
	comments *commentsStub
}

func (r *repoStub) NewClient(tx bool) (postRepository.Client, error) {
	return postRepository.Client{
		Posts:    r.posts,
		Comments: r.comments,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type s3Stub struct {
	uploads []string
	deletes []string
	failOn  string
}

func (s *s3Stub) EnsureBucket() error { return nil }
func (s *s3Stub) UploadFile(file *multipart.FileHeader, key string) (string, error) {
	if s.failOn != "" && file.Filename == s.failOn {
		return "", errors.New("storage unavailable")
	}
	s.uploads = append(s.uploads, key)
	return "https://blog-media.s3.us-east-1.amazonaws.com/" + key, nil
}
func (s *s3Stub) DeleteFile(key string) error {
	s.deletes = append(s.deletes, key)
	return nil
}
func (s *s3Stub) OwnsURL(fileURL string) bool {
	return strings.Contains(fileURL, "blog-media.s3.us-east-1.amazonaws.com")
}

func newTestService(repo *repoStub, storage *s3Stub) IPostsService {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	return New(logger, repo, storage, utils.New())
}

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   header,
	}
}

func TestUpdatePostMissingPostReportedAsNotFound(t *testing.T) {
	posts := noopPostsStub()
	posts.getAuthorAndMediaFn = func(_ context.Context, _ string) (string, []string, []string, error) {
		return "", nil, nil, post.ErrPostNotFound
	}
	svc := newTestService(&repoStub{posts: posts, comments: noopCommentsStub()}, &s3Stub{})

	_, err := svc.UpdatePost(context.Background(), "missing", "someone-else", post.UpdatePostRequest{Title: "new title"})
	require.Error(t, err)
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestUpdatePostNonOwnerForbidden(t *testing.T) {
	posts := noopPostsStub()
	posts.getAuthorAndMediaFn = func(_ context.Context, _ string) (string, []string, []string, error) {
		return "owner-1", nil, nil, nil
	}
	updateCalled := false
	posts.updateFn = func(_ context.Context, _ entity.BlogPost) error {
		updateCalled = true
		return nil
	}
	svc := newTestService(&repoStub{posts: posts, comments: noopCommentsStub()}, &s3Stub{})

	_, err := svc.UpdatePost(context.Background(), "post-1", "intruder", post.UpdatePostRequest{Title: "hijacked"})
	require.Error(t, err)
	assert.ErrorIs(t, err, post.ErrPostNotOwned)
	assert.False(t, updateCalled, "update must not run for a non-owner")
}

func TestAddMediaAppendsWithoutDeduplicating(t *testing.T) {
	posts := noopPostsStub()
	posts.getAuthorAndMediaFn = func(_ context.Context, _ string) (string, []string, []string, error) {
		return "owner-1", []string{"https://cdn.example.com/a.jpg"}, nil, nil
	}
	var gotImages, gotVideos pq.StringArray
	posts.updateMediaFn = func(_ context.Context, _ string, images, videos pq.StringArray) error {
		gotImages, gotVideos = images, videos
		return nil
	}
	svc := newTestService(&repoStub{posts: posts, comments: noopCommentsStub()}, &s3Stub{})

	_, err := svc.AddMediaToPost(context.Background(), "post-1", "owner-1", post.AddMediaRequest{
		ImageURLs: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		VideoURLs: []string{"https://cdn.example.com/c.mp4"},
	})
	require.NoError(t, err)
	assert.Equal(t, pq.StringArray{
		"https://cdn.example.com/a.jpg",
		"https://cdn.example.com/a.jpg",
		"https://cdn.example.com/b.jpg",
	}, gotImages, "duplicates are kept and order preserved")
	assert.Equal(t, pq.StringArray{"https://cdn.example.com/c.mp4"}, gotVideos)
}

func TestRemoveMediaAbsentURLIsNoOp(t *testing.T) {
	posts := noopPostsStub()
	posts.getAuthorAndMediaFn = func(_ context.Context, _ string) (string, []string, []string, error) {
		return "owner-1", []string{"https://cdn.example.com/a.jpg"}, []string{"https://cdn.example.com/v.mp4"}, nil
	}
	var gotImages, gotVideos pq.StringArray
	posts.updateMediaFn = func(_ context.Context, _ string, images, videos pq.StringArray) error {
		gotImages, gotVideos = images, videos
		return nil
	}
	storage := &s3Stub{}
	svc := newTestService(&repoStub{posts: posts, comments: noopCommentsStub()}, storage)

	_, err := svc.RemoveMediaFromPost(context.Background(), "post-1", "owner-1", post.RemoveMediaRequest{
		ImageURL: "https://cdn.example.com/not-there.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, pq.StringArray{"https://cdn.example.com/a.jpg"}, gotImages)
	assert.Equal(t, pq.StringArray{"https://cdn.example.com/v.mp4"}, gotVideos)
	assert.Empty(t, storage.deletes, "nothing was removed, nothing to delete")
}

func TestRemoveMediaOnlyTouchesItsOwnList(t *testing.T) {
	shared := "https://blog-media.s3.us-east-1.amazonaws.com/images/x.jpg"
	posts := noopPostsStub()
	posts.getAuthorAndMediaFn = func(_ context.Context, _ string) (string, []string, []string, error) {
		return "owner-1", []string{shared}, []string{shared}, nil
	}
	var gotImages, gotVideos pq.StringArray
	posts.updateMediaFn = func(_ context.Context, _ string, images, videos pq.StringArray) error {
		gotImages, gotVideos = images, videos
		return nil
	}
	storage := &s3Stub{}
	svc := newTestService(&repoStub{posts: posts, comments: noopCommentsStub()}, storage)

	_, err := svc.RemoveMediaFromPost(context.Background(), "post-1", "owner-1", post.RemoveMediaRequest{
		ImageURL: shared,
	})
	require.NoError(t, err)
	assert.Empty(t, gotImages)
	assert.Equal(t, pq.StringArray{shared}, gotVideos, "the video list keeps its copy")
	assert.Equal(t, []string{"images/x.jpg"}, storage.deletes)
}

func TestCreatePostWithMediaPartitionsByMimeType(t *testing.T) {
	var created entity.BlogPost
	posts := noopPostsStub()
	posts.createFn = func(_ context.Context, p entity.BlogPost) error {
		created = p
		return nil
	}
	storage := &s3Stub{}
	svc := newTestService(&repoStub{posts: posts, comments: noopCommentsStub()}, storage)

	files := []*multipart.FileHeader{
		fileHeader("photo.jpg", "image/jpeg", 1024),
		fileHeader("clip.mp4", "video/mp4", 2048),
		fileHeader("notes.txt", "text/plain", 64),
	}
	_, err := svc.CreatePostWithMedia(context.Background(), "owner-1", post.CreatePostRequest{
		Title:   "media post",
		Content: "body",
	}, files)
	require.NoError(t, err)

	require.Len(t, storage.uploads, 3, "every file is uploaded, partitioned or not")
	assert.Len(t, created.ImageURLs, 1)
	assert.Len(t, created.VideoURLs, 1)
}

func TestCreatePostWithMediaEmptyFileAbortsBatch(t *testing.T) {
	posts := noopPostsStub()
	createCalled := false
	posts.createFn = func(_ context.Context, _ entity.BlogPost) error {
		createCalled = true
		return nil
	}
	storage := &s3Stub{}
	svc := newTestService(&repoStub{posts: posts, comments: noopCommentsStub()}, storage)

	files := []*multipart.FileHeader{
		fileHeader("photo.jpg", "image/jpeg", 1024),
		fileHeader("broken.png", "image/png", 0),
	}
	_, err := svc.CreatePostWithMedia(context.Background(), "owner-1", post.CreatePostRequest{
		Title:   "media post",
		Content: "body",
	}, files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.png")
	assert.False(t, createCalled, "no post is created when an upload fails")
}

func TestCreatePostWithMediaUploadFailureNamesTheFile(t *testing.T) {
	posts := noopPostsStub()
	createCalled := false
	posts.createFn = func(_ context.Context, _ entity.BlogPost) error {
		createCalled = true
		return nil
	}
	storage := &s3Stub{failOn: "clip.mp4"}
	svc := newTestService(&repoStub{posts: posts, comments: noopCommentsStub()}, storage)

	files := []*multipart.FileHeader{
		fileHeader("photo.jpg", "image/jpeg", 1024),
		fileHeader("clip.mp4", "video/mp4", 2048),
	}
	_, err := svc.CreatePostWithMedia(context.Background(), "owner-1", post.CreatePostRequest{
		Title:   "media post",
		Content: "body",
	}, files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clip.mp4")
	assert.Len(t, storage.uploads, 1, "earlier uploads are not rolled back")
	assert.False(t, createCalled)
}

func TestCreatePostWithMediaNoFiles(t *testing.T) {
	svc := newTestService(&repoStub{posts: noopPostsStub(), comments: noopCommentsStub()}, &s3Stub{})

	_, err := svc.CreatePostWithMedia(context.Background(), "owner-1", post.CreatePostRequest{
		Title:   "media post",
		Content: "body",
	}, nil)
	assert.ErrorIs(t, err, post.ErrNoFilesProvided)
}

func TestDeletePostCascadesCommentsAndCleansStorage(t *testing.T) {
	owned := "https://blog-media.s3.us-east-1.amazonaws.com/images/a.jpg"
	external := "https://cdn.example.com/b.jpg"
	posts := noopPostsStub()
	posts.getAuthorAndMediaFn = func(_ context.Context, _ string) (string, []string, []string, error) {
		return "owner-1", []string{owned, external}, nil, nil
	}
	comments := noopCommentsStub()
	var deletedCommentsFor string
	comments.deleteByPostFn = func(_ context.Context, postID string) error {
		deletedCommentsFor = postID
		return nil
	}
	storage := &s3Stub{}
	svc := newTestService(&repoStub{posts: posts, comments: comments}, storage)

	err := svc.DeletePost(context.Background(), "post-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "post-1", deletedCommentsFor)
	assert.Equal(t, []string{"images/a.jpg"}, storage.deletes, "external URLs are left alone")
}
