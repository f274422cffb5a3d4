package commentService

import (
	"ProjectBlog/internal/api/comment"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *commentService) CreateComment(ctx context.Context, authorID string, req comment.CreateCommentRequest) (comment.CommentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return comment.CommentResponse{}, err
	}

	// Comments only attach to posts that exist.
	exists, err := repo.Comments.PostExists(ctx, req.PostID)
	if err != nil {
		return comment.CommentResponse{}, err
	}
	if !exists {
		return comment.CommentResponse{}, comment.ErrPostNotFound
	}

	commentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return comment.CommentResponse{}, err
	}

	newComment := entity.Comment{
		ID:        commentID,
		Content:   req.Content,
		PostID:    req.PostID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}

	if err := repo.Comments.CreateComment(ctx, newComment); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create comment")
		return comment.CommentResponse{}, comment.ErrCreateComment
	}

	created, err := repo.Comments.GetCommentByID(ctx, commentID)
	if err != nil {
		return comment.CommentResponse{}, err
	}
	return makeCommentResponse(created), nil
}

func (s *commentService) GetCommentsByPost(ctx context.Context, postID string) ([]comment.CommentResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	exists, err := repo.Comments.PostExists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, comment.ErrPostNotFound
	}

	comments, err := repo.Comments.GetCommentsByPost(ctx, postID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to fetch comments")
		return nil, comment.ErrFetchComments
	}

	res := make([]comment.CommentResponse, 0, len(comments))
	for _, c := range comments {
		res = append(res, makeCommentResponse(c))
	}
	return res, nil
}

func (s *commentService) UpdateComment(ctx context.Context, id, callerID string, req comment.UpdateCommentRequest) (comment.CommentResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return comment.CommentResponse{}, err
	}

	// Existence before ownership, so a missing comment is reported as not
	// found rather than forbidden.
	existing, err := repo.Comments.GetCommentByID(ctx, id)
	if err != nil {
		return comment.CommentResponse{}, err
	}
	if existing.AuthorID != callerID {
		return comment.CommentResponse{}, comment.ErrCommentNotOwned
	}

	if err := repo.Comments.UpdateComment(ctx, id, req.Content); err != nil {
		return comment.CommentResponse{}, err
	}

	updated, err := repo.Comments.GetCommentByID(ctx, id)
	if err != nil {
		return comment.CommentResponse{}, err
	}
	return makeCommentResponse(updated), nil
}

func (s *commentService) DeleteComment(ctx context.Context, id, callerID string) error {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.Comments.GetCommentByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != callerID {
		return comment.ErrCommentNotOwned
	}

	return repo.Comments.DeleteComment(ctx, id)
}
