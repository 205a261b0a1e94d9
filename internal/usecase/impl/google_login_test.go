package impl

import (
	"context"
	"testing"

	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"
	mockRepo "authd/internal/mocks/repository"
	"authd/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testGoogleProfile() *service.GoogleProfile {
	return &service.GoogleProfile{
		GoogleID:   "108256789012345678901",
		Email:      "alice@example.com",
		Name:       "Alice Example",
		GivenName:  "Alice",
		FamilyName: "Example",
		Picture:    "https://lh3.example.com/photo.jpg",
		Locale:     "en",
	}
}

func TestAuthService_LoginWithGoogle_MissingCode(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.LoginWithGoogle(context.Background(), &usecase.GoogleLoginInput{Code: "   "})

	assert.ErrorIs(t, err, domainerrors.ErrMissingAuthorizationCode)
}

func TestAuthService_LoginWithGoogle_ExchangeFailed(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	exchangeErr := domainerrors.ErrOAuthExchangeFailed.WrapMessage("invalid_grant")

	fx.oauthService.EXPECT().ExchangeCode(ctx, "bad-code").Return(nil, exchangeErr)

	_, err := fx.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{Code: "bad-code"})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthExchangeFailed)
}

func TestAuthService_LoginWithGoogle_ExistingIdentity(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser()
	profile := testGoogleProfile()

	fx.oauthService.EXPECT().ExchangeCode(ctx, "good-code").Return(profile, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockGoogleRepo := mockRepo.NewMockGoogleUserRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().GoogleUserRepo().Return(mockGoogleRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

			mockGoogleRepo.EXPECT().
				FindByGoogleID(ctx, profile.GoogleID).
				Return(&entity.GoogleUser{GoogleID: profile.GoogleID, UserID: user.ID}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			expectTokenPairIssued(t, fx, mockTokenRepo, ctx, user)

			return fn(mockFactory)
		})

	output, err := fx.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{Code: "good-code"})

	require.NoError(t, err)
	assert.Equal(t, "signed-access", output.AccessToken)
	assert.Equal(t, "signed-refresh", output.RefreshToken)
}

func TestAuthService_LoginWithGoogle_SignUp(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	profile := testGoogleProfile()

	fx.oauthService.EXPECT().ExchangeCode(ctx, "good-code").Return(profile, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockGoogleRepo := mockRepo.NewMockGoogleUserRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().GoogleUserRepo().Return(mockGoogleRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

			mockGoogleRepo.EXPECT().
				FindByGoogleID(ctx, profile.GoogleID).
				Return(nil, repository.ErrGoogleUserNotFound)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, profile.Name).
				Return(nil, repository.ErrUserNotFound)

			var createdUser *entity.User
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, profile.Name, user.Username)
					assert.True(t, user.Active)
					assert.Equal(t, entity.RoleUser, user.Role)
					user.ID = 77
					createdUser = user
				}).
				Return(nil)

			mockGoogleRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.GoogleUser")).
				Run(func(ctx context.Context, binding *entity.GoogleUser) {
					assert.Equal(t, profile.GoogleID, binding.GoogleID)
					assert.Equal(t, profile.Email, binding.Email)
					assert.Equal(t, int64(77), binding.UserID)
				}).
				Return(nil)

			fx.tokenIssuer.EXPECT().
				IssueAccessToken(mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(user *entity.User) (*service.IssuedToken, error) {
					assert.Same(t, createdUser, user)
					return issuedToken(user, entity.TokenKindAccess, "signed-access"), nil
				})
			fx.tokenIssuer.EXPECT().
				IssueRefreshToken(mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(user *entity.User) (*service.IssuedToken, error) {
					return issuedToken(user, entity.TokenKindRefresh, "signed-refresh"), nil
				})
			mockTokenRepo.EXPECT().
				Record(ctx, mock.AnythingOfType("*entity.TokenRecord")).
				Return(nil).
				Twice()

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).
		Run(func(ctx context.Context, event *service.AuthEvent) {
			assert.Equal(t, service.EventUserCreated, event.Type)
			assert.Equal(t, profile.Name, event.Username)
		}).
		Return(nil)

	output, err := fx.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{Code: "good-code"})

	require.NoError(t, err)
	assert.Equal(t, "signed-access", output.AccessToken)
}

func TestAuthService_LoginWithGoogle_SignUpUsernameCollision(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	profile := testGoogleProfile()

	fx.oauthService.EXPECT().ExchangeCode(ctx, "good-code").Return(profile, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockGoogleRepo := mockRepo.NewMockGoogleUserRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().GoogleUserRepo().Return(mockGoogleRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

			mockGoogleRepo.EXPECT().
				FindByGoogleID(ctx, profile.GoogleID).
				Return(nil, repository.ErrGoogleUserNotFound)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, profile.Name).
				Return(&entity.User{ID: 1, Username: profile.Name}, nil)

			var user *entity.User
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, u *entity.User) {
					// Suffix comes from the tail of the Google subject id,
					// so retries land on the same name.
					assert.Equal(t, profile.Name+"-678901", u.Username)
					u.ID = 78
					user = u
				}).
				Return(nil)

			mockGoogleRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.GoogleUser")).
				Return(nil)

			fx.tokenIssuer.EXPECT().
				IssueAccessToken(mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(u *entity.User) (*service.IssuedToken, error) {
					return issuedToken(user, entity.TokenKindAccess, "signed-access"), nil
				})
			fx.tokenIssuer.EXPECT().
				IssueRefreshToken(mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(u *entity.User) (*service.IssuedToken, error) {
					return issuedToken(user, entity.TokenKindRefresh, "signed-refresh"), nil
				})
			mockTokenRepo.EXPECT().
				Record(ctx, mock.AnythingOfType("*entity.TokenRecord")).
				Return(nil).
				Twice()

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).
		Return(nil)

	_, err := fx.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{Code: "good-code"})

	require.NoError(t, err)
}

func TestAuthService_LoginWithGoogle_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := testUser()
	user.Active = false
	profile := testGoogleProfile()

	fx.oauthService.EXPECT().ExchangeCode(ctx, "good-code").Return(profile, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockGoogleRepo := mockRepo.NewMockGoogleUserRepository(t)

			mockFactory.EXPECT().GoogleUserRepo().Return(mockGoogleRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockGoogleRepo.EXPECT().
				FindByGoogleID(ctx, profile.GoogleID).
				Return(&entity.GoogleUser{GoogleID: profile.GoogleID, UserID: user.ID}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{Code: "good-code"})

	assert.ErrorIs(t, err, domainerrors.ErrBadCredentials)
}

func TestAuthService_LoginWithGoogle_BindingLookupError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	profile := testGoogleProfile()
	dbErr := errors.New("connection lost")

	fx.oauthService.EXPECT().ExchangeCode(ctx, "good-code").Return(profile, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGoogleRepo := mockRepo.NewMockGoogleUserRepository(t)

			mockFactory.EXPECT().GoogleUserRepo().Return(mockGoogleRepo)
			mockGoogleRepo.EXPECT().FindByGoogleID(ctx, profile.GoogleID).Return(nil, dbErr)

			return fn(mockFactory)
		})

	_, err := fx.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{Code: "good-code"})

	assert.ErrorIs(t, err, dbErr)
}
