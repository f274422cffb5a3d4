package postService

import (
	"ProjectBlog/internal/api/post"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *postsService) CreatePost(ctx context.Context, authorID string, req post.CreatePostRequest) (post.PostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return post.PostResponse{}, err
	}

	postID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return post.PostResponse{}, err
	}

	now := time.Now()
	newPost := entity.BlogPost{
		ID:        postID,
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  authorID,
		ImageURLs: req.ImageURLs,
		VideoURLs: req.VideoURLs,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Posts.CreatePost(ctx, newPost); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog post")
		return post.PostResponse{}, post.ErrCreatePost
	}

	created, err := repo.Posts.GetPostByID(ctx, postID)
	if err != nil {
		return post.PostResponse{}, err
	}

	return makePostResponse(created), nil
}

func (s *postsService) CreatePostWithMedia(ctx context.Context, authorID string, req post.CreatePostRequest, files []*multipart.FileHeader) (post.PostResponse, error) {
	if len(files) == 0 {
		return post.PostResponse{}, post.ErrNoFilesProvided
	}

	imageURLs, videoURLs, err := s.uploadFiles(ctx, files)
	if err != nil {
		return post.PostResponse{}, err
	}

	req.ImageURLs = append(req.ImageURLs, imageURLs...)
	req.VideoURLs = append(req.VideoURLs, videoURLs...)

	return s.CreatePost(ctx, authorID, req)
}

func (s *postsService) GetAllPosts(ctx context.Context) ([]post.PostResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	posts, err := repo.Posts.GetAllPosts(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to fetch blog posts")
		return nil, post.ErrFetchPosts
	}

	res := make([]post.PostResponse, 0, len(posts))
	for _, p := range posts {
		res = append(res, makePostResponse(p))
	}
	return res, nil
}

// GetPostByID returns the post detail, comments included, oldest first.
func (s *postsService) GetPostByID(ctx context.Context, id string) (post.PostResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return post.PostResponse{}, err
	}

	p, err := repo.Posts.GetPostByID(ctx, id)
	if err != nil {
		return post.PostResponse{}, err
	}

	comments, err := repo.Comments.GetCommentsByPost(ctx, id)
	if err != nil {
		return post.PostResponse{}, err
	}

	res := makePostResponse(p)
	res.Comments = make([]post.PostCommentResponse, 0, len(comments))
	for _, c := range comments {
		res.Comments = append(res.Comments, makeCommentResponse(c))
	}
	return res, nil
}

func (s *postsService) GetPostsByAuthor(ctx context.Context, authorID string) ([]post.PostResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	posts, err := repo.Posts.GetPostsByAuthor(ctx, authorID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to fetch blog posts by author")
		return nil, post.ErrFetchPosts
	}

	res := make([]post.PostResponse, 0, len(posts))
	for _, p := range posts {
		res = append(res, makePostResponse(p))
	}
	return res, nil
}

func (s *postsService) UpdatePost(ctx context.Context, id, callerID string, req post.UpdatePostRequest) (post.PostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return post.PostResponse{}, err
	}

	// Existence is checked before ownership so a missing post is reported
	// as not found, never as forbidden.
	authorID, _, _, err := repo.Posts.GetPostAuthorAndMedia(ctx, id)
	if err != nil {
		return post.PostResponse{}, err
	}
	if authorID != callerID {
		return post.PostResponse{}, post.ErrPostNotOwned
	}

	if err := repo.Posts.UpdatePost(ctx, entity.BlogPost{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
	}); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"post_id":    id,
			"error":      err.Error(),
		}).Error("Failed to update blog post")
		return post.PostResponse{}, err
	}

	updated, err := repo.Posts.GetPostByID(ctx, id)
	if err != nil {
		return post.PostResponse{}, err
	}
	return makePostResponse(updated), nil
}

func (s *postsService) DeletePost(ctx context.Context, id, callerID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	readRepo, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	authorID, imageURLs, videoURLs, err := readRepo.Posts.GetPostAuthorAndMedia(ctx, id)
	if err != nil {
		return err
	}
	if authorID != callerID {
		return post.ErrPostNotOwned
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		return err
	}

	if err := repo.Comments.DeleteCommentsByPost(ctx, id); err != nil {
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      rbErr.Error(),
			}).Error("Failed to rollback transaction")
		}
		return post.ErrDeletePost
	}

	if err := repo.Posts.DeletePost(ctx, id); err != nil {
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      rbErr.Error(),
			}).Error("Failed to rollback transaction")
		}
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return err
	}

	// Storage cleanup happens after the commit; a leaked object never
	// resurrects a deleted post.
	for _, fileURL := range append(imageURLs, videoURLs...) {
		s.deleteStoredFile(ctx, fileURL)
	}

	return nil
}
