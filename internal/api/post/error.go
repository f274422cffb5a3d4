package post

import "ProjectBlog/pkg/response"

var (
	ErrPostNotFound    = response.NewError(404, "blog post not found")
	ErrPostNotOwned    = response.NewError(403, "you do not own this blog post")
	ErrCreatePost      = response.NewError(400, "failed to create blog post")
	ErrUpdatePost      = response.NewError(400, "failed to update blog post")
	ErrDeletePost      = response.NewError(400, "failed to delete blog post")
	ErrFetchPosts      = response.NewError(400, "failed to fetch blog posts")
	ErrNoFilesProvided = response.NewError(400, "no files provided")
	ErrTooManyFiles    = response.NewError(400, "too many files in one upload")
)
