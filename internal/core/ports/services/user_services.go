package services

import (
	"context"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	"github.com/codejunkiedev/betterbooks-sub003/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// CreateUser creates a new local user with a hashed password.
	CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// GetOrCreateGoogleUser finds a user by the verified Google profile, or
	// creates one on first sign-in.
	GetOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// AuthenticateUser verifies email/password credentials and returns the
	// user when valid.
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)
}

// UserSvcFacade combines all user service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
