package domain

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents an application user who can own companies.
type User struct {
	UserID       string       `json:"userID"` // Primary Key (UUID)
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Empty for external providers
	AuthProvider AuthProvider `json:"authProvider"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}

// GoogleUserInfo is the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
