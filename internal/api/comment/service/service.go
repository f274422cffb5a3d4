package commentService

import (
	"ProjectBlog/internal/api/comment"
	commentRepository "ProjectBlog/internal/api/comment/repository"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type ICommentService interface {
	CreateComment(ctx context.Context, authorID string, req comment.CreateCommentRequest) (comment.CommentResponse, error)
	GetCommentsByPost(ctx context.Context, postID string) ([]comment.CommentResponse, error)
	UpdateComment(ctx context.Context, id, callerID string, req comment.UpdateCommentRequest) (comment.CommentResponse, error)
	DeleteComment(ctx context.Context, id, callerID string) error
}

type commentService struct {
	log   *logrus.Logger
	repo  commentRepository.Repository
	utils utils.IUtils
}

func New(log *logrus.Logger, repo commentRepository.Repository, utils utils.IUtils) ICommentService {
	return &commentService{
		log:   log,
		repo:  repo,
		utils: utils,
	}
}

func makeCommentResponse(c entity.Comment) comment.CommentResponse {
	return comment.CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
		Author: comment.AuthorResponse{
			ID:       c.Author.ID,
			Name:     c.Author.Name,
			Surname:  c.Author.Surname,
			Username: c.Author.Username,
			Email:    c.Author.Email,
		},
	}
}
