package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	domainerrors "github.com/lreale4125-ux/taplinknfc/internal/domain/errors"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
	mockRepo "github.com/lreale4125-ux/taplinknfc/internal/mocks/repository"
	mockSvc "github.com/lreale4125-ux/taplinknfc/internal/mocks/service"
	"github.com/lreale4125-ux/taplinknfc/internal/usecase"

	"github.com/google/uuid"
)

func newAuthService(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       testLogger(),
	})

	return service, userRepo, hasher, tokenService
}

func TestAuthService_Register(t *testing.T) {
	service, userRepo, hasher, tokenService := newAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)

	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "mario", user.Username)
			assert.Equal(t, "mario@example.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Equal(t, entity.RoleUser, user.Role)
			assert.Nil(t, user.CompanyID)
			assert.False(t, user.CanAccessWallet)
			user.ID = userID
		}).
		Return(nil)

	tokenService.EXPECT().
		Generate(mock.AnythingOfType("*entity.User")).
		Return("signed-token", nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Username: "mario",
		Email:    "mario@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, userID, output.User.UserID)
	assert.Equal(t, entity.RoleUser, output.User.Role)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	service, userRepo, hasher, _ := newAuthService(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Username: "mario",
		Email:    "mario@example.com",
		Password: "s3cretpass",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	service, userRepo, hasher, tokenService := newAuthService(t)
	ctx := context.Background()
	companyID := uuid.New()

	user := &entity.User{
		ID:                 uuid.New(),
		Username:           "mario",
		Email:              "mario@example.com",
		PasswordHash:       "hashed",
		Role:               entity.RoleUser,
		CompanyID:          &companyID,
		CanAccessAnalytics: true,
	}

	userRepo.EXPECT().FindByEmail(ctx, "mario@example.com").Return(user, nil)
	hasher.EXPECT().Check("s3cretpass", "hashed").Return(true)
	tokenService.EXPECT().Generate(user).Return("signed-token", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "mario@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, user.ID, output.User.UserID)
	assert.Equal(t, &companyID, output.User.CompanyID)
	assert.True(t, output.User.CanAccessAnalytics)
	assert.False(t, output.User.CanAccessWallet)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service, userRepo, _, _ := newAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, userRepo, hasher, _ := newAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "mario@example.com",
		PasswordHash: "hashed",
	}

	userRepo.EXPECT().FindByEmail(ctx, "mario@example.com").Return(user, nil)
	hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "mario@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	// Unknown email and wrong password must be indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
