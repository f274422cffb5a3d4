package postService

import (
	"ProjectBlog/internal/api/post"
	postRepository "ProjectBlog/internal/api/post/repository"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/s3"
	"ProjectBlog/pkg/utils"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type IPostsService interface {
	CreatePost(ctx context.Context, authorID string, req post.CreatePostRequest) (post.PostResponse, error)
	CreatePostWithMedia(ctx context.Context, authorID string, req post.CreatePostRequest, files []*multipart.FileHeader) (post.PostResponse, error)
	GetAllPosts(ctx context.Context) ([]post.PostResponse, error)
	GetPostByID(ctx context.Context, id string) (post.PostResponse, error)
	GetPostsByAuthor(ctx context.Context, authorID string) ([]post.PostResponse, error)
	UpdatePost(ctx context.Context, id, callerID string, req post.UpdatePostRequest) (post.PostResponse, error)
	DeletePost(ctx context.Context, id, callerID string) error
	AddMediaToPost(ctx context.Context, id, callerID string, req post.AddMediaRequest) (post.PostResponse, error)
	RemoveMediaFromPost(ctx context.Context, id, callerID string, req post.RemoveMediaRequest) (post.PostResponse, error)
}

type postsService struct {
	log      *logrus.Logger
	repo     postRepository.Repository
	s3Client s3.ItfS3
	utils    utils.IUtils
}

func New(
	log *logrus.Logger,
	repo postRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IPostsService {
	return &postsService{
		log:      log,
		repo:     repo,
		s3Client: s3Client,
		utils:    utils,
	}
}

func makeAuthorResponse(a entity.Author) post.AuthorResponse {
	return post.AuthorResponse{
		ID:       a.ID,
		Name:     a.Name,
		Surname:  a.Surname,
		Username: a.Username,
		Email:    a.Email,
	}
}

func makePostResponse(p entity.BlogPost) post.PostResponse {
	imageURLs := p.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	videoURLs := p.VideoURLs
	if videoURLs == nil {
		videoURLs = []string{}
	}

	return post.PostResponse{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		AuthorID:     p.AuthorID,
		ImageURLs:    imageURLs,
		VideoURLs:    videoURLs,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Author:       makeAuthorResponse(p.Author),
		CommentCount: p.CommentCount,
	}
}

func makeCommentResponse(c entity.Comment) post.PostCommentResponse {
	return post.PostCommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
		Author:    makeAuthorResponse(c.Author),
	}
}
