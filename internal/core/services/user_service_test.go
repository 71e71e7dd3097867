package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/codejunkiedev/betterbooks-sub003/internal/apperrors"
	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	portssvc "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/services"
	"github.com/codejunkiedev/betterbooks-sub003/internal/core/services"
	"github.com/codejunkiedev/betterbooks-sub003/internal/dto"
	"github.com/codejunkiedev/betterbooks-sub003/internal/utils"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:     "Jordan",
		Email:    "jordan@example.com",
		Password: "correct horse battery staple",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Email, user.Email)
	suite.Equal(domain.ProviderLocal, user.AuthProvider)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.WithinDuration(time.Now(), user.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "s3cret-enough"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "jordan@example.com",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}
	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "jordan@example.com",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}
	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, "not-the-password")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail_SameError() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_GoogleUserHasNoPassword() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "jordan@example.com",
		AuthProvider: domain.ProviderGoogle,
	}
	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestGetOrCreateGoogleUser_ExistingUser() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "jordan@example.com",
		AuthProvider: domain.ProviderGoogle,
	}
	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.GetOrCreateGoogleUser(ctx, domain.GoogleUserInfo{Email: user.Email, Name: "Jordan"})

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetOrCreateGoogleUser_FirstSignIn() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{Email: "new@example.com", Name: "New User"}

	suite.mockRepo.On("FindUserByEmail", ctx, info.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	got, err := suite.service.GetOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(info.Email, got.Email)
	suite.Equal(domain.ProviderGoogle, got.AuthProvider)
	suite.Empty(got.PasswordHash)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
