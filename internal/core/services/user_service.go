package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/codejunkiedev/betterbooks-sub003/internal/apperrors"
	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	portsrepo "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/repositories"
	portssvc "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/services"
	"github.com/codejunkiedev/betterbooks-sub003/internal/dto"
	"github.com/codejunkiedev/betterbooks-sub003/internal/middleware"
	"github.com/codejunkiedev/betterbooks-sub003/internal/utils"
)

// userService handles user creation and credential verification.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// CreateUser creates a new local user with a hashed password.
func (s *userService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields:  domain.NewAuditFields(userID, now),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", slog.String("email", req.Email), slog.String("error", err.Error()))
		return nil, err
	}

	return &user, nil
}

// GetOrCreateGoogleUser finds a user by the verified Google email, creating
// one on first sign-in.
func (s *userService) GetOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	userID := uuid.NewString()
	newUser := domain.User{
		UserID:       userID,
		Name:         info.Name,
		Email:        info.Email,
		AuthProvider: domain.ProviderGoogle,
		AuditFields:  domain.NewAuditFields(userID, now),
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create user from google profile: %w", err)
	}
	return &newUser, nil
}

// AuthenticateUser verifies email/password credentials.
func (s *userService) AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a bad password so callers cannot probe for
			// registered emails.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if user.AuthProvider != domain.ProviderLocal || user.PasswordHash == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
