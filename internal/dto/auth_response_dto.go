package dto

import "time"

// LoginResponse is returned after a successful authentication, regardless of
// provider (local password or Google OAuth).
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
