package comment

import "time"

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2048"`
	PostID  string `json:"post_id" validate:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2048"`
}

type AuthorResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CommentResponse struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	PostID    string         `json:"post_id"`
	AuthorID  string         `json:"author_id"`
	CreatedAt time.Time      `json:"created_at"`
	Author    AuthorResponse `json:"author"`
}
