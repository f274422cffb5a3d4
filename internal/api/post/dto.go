package post

import "time"

type CreatePostRequest struct {
	Title     string   `json:"title" validate:"required,min=3,max=256"`
	Content   string   `json:"content" validate:"required"`
	ImageURLs []string `json:"image_urls" validate:"omitempty,dive,url"`
	VideoURLs []string `json:"video_urls" validate:"omitempty,dive,url"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" validate:"omitempty,min=3,max=256"`
	Content string `json:"content" validate:"omitempty"`
}

type AddMediaRequest struct {
	ImageURLs []string `json:"image_urls" validate:"omitempty,dive,url"`
	VideoURLs []string `json:"video_urls" validate:"omitempty,dive,url"`
}

// RemoveMediaRequest names at most one URL per list; each is removed from
// its own list only.
type RemoveMediaRequest struct {
	ImageURL string `json:"image_url" validate:"omitempty,url"`
	VideoURL string `json:"video_url" validate:"omitempty,url"`
}

type AuthorResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type PostCommentResponse struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	PostID    string         `json:"post_id"`
	AuthorID  string         `json:"author_id"`
	CreatedAt time.Time      `json:"created_at"`
	Author    AuthorResponse `json:"author"`
}

type PostResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Content      string                `json:"content"`
	AuthorID     string                `json:"author_id"`
	ImageURLs    []string              `json:"image_urls"`
	VideoURLs    []string              `json:"video_urls"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Author       AuthorResponse        `json:"author"`
	CommentCount int                   `json:"comment_count"`
	Comments     []PostCommentResponse `json:"comments,omitempty"`
}
