package entity

import "time"

type BlogPost struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	AuthorID  string    `db:"author_id"`
	ImageURLs []string  `db:"image_urls"`
	VideoURLs []string  `db:"video_urls"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Author       Author `db:"-"`
	CommentCount int    `db:"-"`
}
