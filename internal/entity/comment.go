package entity

import "time"

type Comment struct {
	ID        string    `db:"id"`
	Content   string    `db:"content"`
	PostID    string    `db:"post_id"`
	AuthorID  string    `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`

	Author Author `db:"-"`
}
