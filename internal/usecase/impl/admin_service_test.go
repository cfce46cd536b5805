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

type adminTestEnv struct {
	service       usecase.AdminUsecase
	userRepo      *mockRepo.MockUserRepository
	companyRepo   *mockRepo.MockCompanyRepository
	linkRepo      *mockRepo.MockLinkRepository
	selectorRepo  *mockRepo.MockSelectorRepository
	keychainRepo  *mockRepo.MockKeychainRepository
	analyticsRepo *mockRepo.MockAnalyticsRepository
	hasher        *mockSvc.MockPasswordHasher
	qrcodeService *mockSvc.MockQRCodeService
}

func newAdminEnv(t *testing.T) *adminTestEnv {
	env := &adminTestEnv{
		userRepo:      mockRepo.NewMockUserRepository(t),
		companyRepo:   mockRepo.NewMockCompanyRepository(t),
		linkRepo:      mockRepo.NewMockLinkRepository(t),
		selectorRepo:  mockRepo.NewMockSelectorRepository(t),
		keychainRepo:  mockRepo.NewMockKeychainRepository(t),
		analyticsRepo: mockRepo.NewMockAnalyticsRepository(t),
		hasher:        mockSvc.NewMockPasswordHasher(t),
		qrcodeService: mockSvc.NewMockQRCodeService(t),
	}

	env.service = NewAdminService(AdminServiceParams{
		UserRepo:      env.userRepo,
		CompanyRepo:   env.companyRepo,
		LinkRepo:      env.linkRepo,
		SelectorRepo:  env.selectorRepo,
		KeychainRepo:  env.keychainRepo,
		AnalyticsRepo: env.analyticsRepo,
		Hasher:        env.hasher,
		QRCodeService: env.qrcodeService,
		Logger:        testLogger(),
	})

	return env
}

func TestAdminService_CreateUser(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	companyID := uuid.New()

	env.companyRepo.EXPECT().
		FindByID(ctx, companyID).
		Return(&entity.Company{ID: companyID, Name: "Acme"}, nil)
	env.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	env.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := env.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username:           "vendor1",
		Email:              "vendor1@example.com",
		Password:           "s3cretpass",
		Role:               "user",
		CompanyID:          &companyID,
		CanAccessAnalytics: true,
		CanAccessPOS:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, &companyID, user.CompanyID)
	assert.True(t, user.CanAccessAnalytics)
	assert.True(t, user.CanAccessPOS)
	assert.False(t, user.CanAccessWallet)
}

func TestAdminService_CreateUser_InvalidRole(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()

	user, err := env.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "vendor1",
		Email:    "vendor1@example.com",
		Password: "s3cretpass",
		Role:     "superadmin",
	})
	require.Error(t, err)
	assert.Nil(t, user)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAdminService_CreateUser_UnknownCompany(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	companyID := uuid.New()

	env.companyRepo.EXPECT().
		FindByID(ctx, companyID).
		Return(nil, repository.ErrCompanyNotFound)

	user, err := env.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username:  "vendor1",
		Email:     "vendor1@example.com",
		Password:  "s3cretpass",
		Role:      "user",
		CompanyID: &companyID,
	})
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyNotFound)
}

func TestAdminService_DeleteUser(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	actorID := uuid.New()
	targetID := uuid.New()

	env.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID}, nil)
	env.userRepo.EXPECT().Delete(ctx, targetID).Return(nil)

	err := env.service.DeleteUser(ctx, actorID, targetID)
	require.NoError(t, err)
}

func TestAdminService_DeleteUser_Self(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	actorID := uuid.New()

	err := env.service.DeleteUser(ctx, actorID, actorID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSelfDelete)
}

func TestAdminService_DeleteUser_Protected(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	targetID := uuid.New()

	env.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, Protected: true}, nil)

	err := env.service.DeleteUser(ctx, uuid.New(), targetID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProtectedUser)
}

func TestAdminService_CreateLink_DirectURL(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	companyID := uuid.New()
	url := "https://example.com/menu"

	env.companyRepo.EXPECT().
		FindByID(ctx, companyID).
		Return(&entity.Company{ID: companyID}, nil)
	env.linkRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Link")).
		Return(nil)

	link, err := env.service.CreateLink(ctx, &usecase.CreateLinkInput{
		Name:      "Menu",
		CompanyID: companyID,
		URL:       &url,
	})
	require.NoError(t, err)
	assert.Equal(t, &url, link.URL)
	assert.Nil(t, link.SelectorID)
}

func TestAdminService_CreateLink_ViaSelector(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	companyID := uuid.New()
	selectorID := uuid.New()

	env.companyRepo.EXPECT().
		FindByID(ctx, companyID).
		Return(&entity.Company{ID: companyID}, nil)
	env.selectorRepo.EXPECT().
		FindByID(ctx, selectorID).
		Return(&entity.Selector{ID: selectorID}, nil)
	env.linkRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Link")).
		Return(nil)

	link, err := env.service.CreateLink(ctx, &usecase.CreateLinkInput{
		Name:       "Campaign",
		CompanyID:  companyID,
		SelectorID: &selectorID,
	})
	require.NoError(t, err)
	assert.Nil(t, link.URL)
	assert.Equal(t, &selectorID, link.SelectorID)
}

func TestAdminService_CreateLink_BothOrNeitherDestination(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	companyID := uuid.New()
	selectorID := uuid.New()
	url := "https://example.com/menu"

	// Neither destination.
	link, err := env.service.CreateLink(ctx, &usecase.CreateLinkInput{
		Name:      "Broken",
		CompanyID: companyID,
	})
	require.Error(t, err)
	assert.Nil(t, link)
	assert.ErrorIs(t, err, domainerrors.ErrLinkTargetInvalid)

	// Both destinations.
	link, err = env.service.CreateLink(ctx, &usecase.CreateLinkInput{
		Name:       "Broken",
		CompanyID:  companyID,
		URL:        &url,
		SelectorID: &selectorID,
	})
	require.Error(t, err)
	assert.Nil(t, link)
	assert.ErrorIs(t, err, domainerrors.ErrLinkTargetInvalid)
}

func TestAdminService_UpdateSelector(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	selectorID := uuid.New()

	env.selectorRepo.EXPECT().
		UpdateRedirectURL(ctx, selectorID, "https://example.com/new").
		Return(nil)
	env.selectorRepo.EXPECT().
		FindByID(ctx, selectorID).
		Return(&entity.Selector{ID: selectorID, RedirectURL: "https://example.com/new"}, nil)

	selector, err := env.service.UpdateSelector(ctx, selectorID, &usecase.UpdateSelectorInput{
		RedirectURL: "https://example.com/new",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/new", selector.RedirectURL)
}

func TestAdminService_UpdateSelector_NotFound(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	selectorID := uuid.New()

	env.selectorRepo.EXPECT().
		UpdateRedirectURL(ctx, selectorID, "https://example.com/new").
		Return(repository.ErrSelectorNotFound)

	selector, err := env.service.UpdateSelector(ctx, selectorID, &usecase.UpdateSelectorInput{
		RedirectURL: "https://example.com/new",
	})
	require.Error(t, err)
	assert.Nil(t, selector)
	assert.ErrorIs(t, err, domainerrors.ErrSelectorNotFound)
}

func TestAdminService_CreateKeychain_NormalizesNumber(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	linkID := uuid.New()

	env.linkRepo.EXPECT().
		FindByID(ctx, linkID).
		Return(&entity.Link{ID: linkID}, nil)
	env.keychainRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Keychain")).
		Run(func(ctx context.Context, keychain *entity.Keychain) {
			// The QR prefix is stripped before storage.
			assert.Equal(t, "KC-042", keychain.KeychainNumber)
		}).
		Return(nil)

	keychain, err := env.service.CreateKeychain(ctx, &usecase.CreateKeychainInput{
		KeychainNumber: "AQKC-042",
		LinkID:         linkID,
	})
	require.NoError(t, err)
	assert.Equal(t, "KC-042", keychain.KeychainNumber)
}

func TestAdminService_CreateKeychain_UnknownLink(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	linkID := uuid.New()

	env.linkRepo.EXPECT().
		FindByID(ctx, linkID).
		Return(nil, repository.ErrLinkNotFound)

	keychain, err := env.service.CreateKeychain(ctx, &usecase.CreateKeychainInput{
		KeychainNumber: "KC-042",
		LinkID:         linkID,
	})
	require.Error(t, err)
	assert.Nil(t, keychain)
	assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
}

func TestAdminService_KeychainQR(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	keychainID := uuid.New()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	env.keychainRepo.EXPECT().
		FindByID(ctx, keychainID).
		Return(&entity.Keychain{ID: keychainID, KeychainNumber: "KC-042"}, nil)
	env.qrcodeService.EXPECT().GenerateKeychainQR("KC-042").Return(png, nil)

	output, err := env.service.KeychainQR(ctx, keychainID)
	require.NoError(t, err)
	assert.Equal(t, png, output)
}

func TestAdminService_AnalyticsSummary(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	linkID := uuid.New()
	country := "Italy"

	env.linkRepo.EXPECT().
		FindByID(ctx, linkID).
		Return(&entity.Link{ID: linkID}, nil)

	rows := []repository.LocationClicks{{Country: &country, TotalClicks: 12}}
	env.analyticsRepo.EXPECT().SummaryByLocation(ctx, linkID).Return(rows, nil)

	output, err := env.service.AnalyticsSummary(ctx, linkID)
	require.NoError(t, err)
	assert.Equal(t, rows, output)
}

func TestAdminService_AnalyticsDetail_UnknownLink(t *testing.T) {
	env := newAdminEnv(t)
	ctx := context.Background()
	linkID := uuid.New()

	env.linkRepo.EXPECT().
		FindByID(ctx, linkID).
		Return(nil, repository.ErrLinkNotFound)

	output, err := env.service.AnalyticsDetail(ctx, linkID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
}
