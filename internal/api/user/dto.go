package user

import "time"

type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"omitempty,min=1,max=255"`
	Surname string `json:"surname" validate:"omitempty,min=1,max=255"`
}

type UserResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
