package commentService

import (
	"ProjectBlog/internal/api/comment"
	commentRepository "ProjectBlog/internal/api/comment/repository"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/utils"
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentsStub is a stub for the Comments side of the repository client.
type commentsStub struct {
	createFn     func(context.Context, entity.Comment) error
	getByIDFn    func(context.Context, string) (entity.Comment, error)
	getByPostFn  func(context.Context, string) ([]entity.Comment, error)
	updateFn     func(context.Context, string, string) error
	deleteFn     func(context.Context, string) error
	postExistsFn func(context.Context, string) (bool, error)
}

func (s *commentsStub) CreateComment(ctx context.Context, c entity.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentsStub) GetCommentByID(ctx context.Context, id string) (entity.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentsStub) GetCommentsByPost(ctx context.Context, postID string) ([]entity.Comment, error) {
	return s.getByPostFn(ctx, postID)
}
func (s *commentsStub) UpdateComment(ctx context.Context, id, content string) error {
	return s.updateFn(ctx, id, content)
}
func (s *commentsStub) DeleteComment(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *commentsStub) PostExists(ctx context.Context, postID string) (bool, error) {
	return s.postExistsFn(ctx, postID)
}

func noopCommentsStub() *commentsStub {
	return &commentsStub{
		createFn: func(_ context.Context, _ entity.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id string) (entity.Comment, error) {
			return entity.Comment{ID: id, AuthorID: "owner-1", CreatedAt: time.Now()}, nil
		},
		getByPostFn:  func(_ context.Context, _ string) ([]entity.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _, _ string) error { return nil },
		deleteFn:     func(_ context.Context, _ string) error { return nil },
		postExistsFn: func(_ context.Context, _ string) (bool, error) { return true, nil },
	}
}

type repoStub struct {
	comments *commentsStub
}

func (r *repoStub) NewClient(tx bool) (commentRepository.Client, error) {
	return commentRepository.Client{
		Comments: r.comments,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestService(comments *commentsStub) ICommentService {
	return New(logrus.New(), &repoStub{comments: comments}, utils.New())
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	comments := noopCommentsStub()
	comments.postExistsFn = func(_ context.Context, _ string) (bool, error) { return false, nil }
	createCalled := false
	comments.createFn = func(_ context.Context, _ entity.Comment) error {
		createCalled = true
		return nil
	}
	svc := newTestService(comments)

	_, err := svc.CreateComment(context.Background(), "author-1", comment.CreateCommentRequest{
		Content: "first!",
		PostID:  "nope",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, comment.ErrPostNotFound)
	assert.False(t, createCalled)
}

func TestCreateCommentSetsAuthorAndPost(t *testing.T) {
	var created entity.Comment
	comments := noopCommentsStub()
	comments.createFn = func(_ context.Context, c entity.Comment) error {
		created = c
		return nil
	}
	comments.getByIDFn = func(_ context.Context, id string) (entity.Comment, error) {
		return created, nil
	}
	svc := newTestService(comments)

	res, err := svc.CreateComment(context.Background(), "author-1", comment.CreateCommentRequest{
		Content: "nice post",
		PostID:  "post-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "author-1", res.AuthorID)
	assert.Equal(t, "post-1", res.PostID)
	assert.NotEmpty(t, created.ID)
}

func TestUpdateCommentMissingReportedAsNotFound(t *testing.T) {
	comments := noopCommentsStub()
	comments.getByIDFn = func(_ context.Context, _ string) (entity.Comment, error) {
		return entity.Comment{}, comment.ErrCommentNotFound
	}
	svc := newTestService(comments)

	_, err := svc.UpdateComment(context.Background(), "missing", "anyone", comment.UpdateCommentRequest{Content: "edit"})
	assert.ErrorIs(t, err, comment.ErrCommentNotFound)
}

func TestUpdateCommentNonOwnerForbidden(t *testing.T) {
	comments := noopCommentsStub()
	updateCalled := false
	comments.updateFn = func(_ context.Context, _, _ string) error {
		updateCalled = true
		return nil
	}
	svc := newTestService(comments)

	_, err := svc.UpdateComment(context.Background(), "comment-1", "intruder", comment.UpdateCommentRequest{Content: "edit"})
	require.Error(t, err)
	assert.ErrorIs(t, err, comment.ErrCommentNotOwned)
	assert.False(t, updateCalled)
}

func TestDeleteCommentNonOwnerForbidden(t *testing.T) {
	comments := noopCommentsStub()
	deleteCalled := false
	comments.deleteFn = func(_ context.Context, _ string) error {
		deleteCalled = true
		return nil
	}
	svc := newTestService(comments)

	err := svc.DeleteComment(context.Background(), "comment-1", "intruder")
	assert.ErrorIs(t, err, comment.ErrCommentNotOwned)
	assert.False(t, deleteCalled)
}

func TestDeleteCommentByOwner(t *testing.T) {
	comments := noopCommentsStub()
	var deletedID string
	comments.deleteFn = func(_ context.Context, id string) error {
		deletedID = id
		return nil
	}
	svc := newTestService(comments)

	err := svc.DeleteComment(context.Background(), "comment-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "comment-1", deletedID)
}

func TestGetCommentsByPostMissingPost(t *testing.T) {
	comments := noopCommentsStub()
	comments.postExistsFn = func(_ context.Context, _ string) (bool, error) { return false, nil }
	svc := newTestService(comments)

	_, err := svc.GetCommentsByPost(context.Background(), "nope")
	assert.ErrorIs(t, err, comment.ErrPostNotFound)
}
