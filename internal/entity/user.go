package entity

import "time"

type User struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	Surname        string    `db:"surname"`
	Username       string    `db:"username"`
	Email          string    `db:"email"`
	Password       string    `db:"password"`
	ProfilePicture string    `db:"profile_picture"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// UserLoginData is the authenticated caller resolved from a bearer token.
type UserLoginData struct {
	ID       string
	Username string
	Email    string
}

// Author is the reduced projection joined onto posts and comments.
type Author struct {
	ID       string `db:"author_id"`
	Name     string `db:"author_name"`
	Surname  string `db:"author_surname"`
	Username string `db:"author_username"`
	Email    string `db:"author_email"`
}
