package models

import "time"

type UserResponse struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ProfilePhoto *string   `json:"profile_photo"`
	CreatedAt    time.Time `json:"created_at"`
}
