package comment

import "ProjectBlog/pkg/response"

var (
	ErrCommentNotFound = response.NewError(404, "comment not found")
	ErrCommentNotOwned = response.NewError(403, "you do not own this comment")
	ErrPostNotFound    = response.NewError(404, "blog post not found")
	ErrCreateComment   = response.NewError(400, "failed to create comment")
	ErrFetchComments   = response.NewError(400, "failed to fetch comments")
)
