package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"authd/internal/domain/constants"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"
	mockRepo "authd/internal/mocks/repository"
	mockSvc "authd/internal/mocks/service"
	"authd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	publisher *mockSvc.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Publisher: publisher,
		Logger:    logger,
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		publisher: publisher,
	}
}

func strPtr(s string) *string       { return &s }
func boolPtr(b bool) *bool          { return &b }
func rolePtr(r entity.Role) *entity.Role { return &r }

func TestUserService_GetByUUID_WithCredential(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testUser()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockInternalRepo := mockRepo.NewMockInternalUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().InternalUserRepo().Return(mockInternalRepo)

			mockUserRepo.EXPECT().FindByExternalID(ctx, user.ExternalID).Return(user, nil)
			mockInternalRepo.EXPECT().
				FindByUserID(ctx, user.ID).
				Return(&entity.InternalUser{Login: user.Username, Email: "alice@example.com", UserID: user.ID}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.GetByUUID(ctx, user.ExternalID)

	require.NoError(t, err)
	assert.Equal(t, user.ExternalID, output.UUID)
	assert.Equal(t, user.Username, output.Username)
	assert.Equal(t, "alice@example.com", output.Email)
}

func TestUserService_GetByUUID_GoogleOnlyAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testUser()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockInternalRepo := mockRepo.NewMockInternalUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().InternalUserRepo().Return(mockInternalRepo)

			mockUserRepo.EXPECT().FindByExternalID(ctx, user.ExternalID).Return(user, nil)
			mockInternalRepo.EXPECT().
				FindByUserID(ctx, user.ID).
				Return(nil, repository.ErrInternalUserNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.GetByUUID(ctx, user.ExternalID)

	require.NoError(t, err)
	assert.Empty(t, output.Email)
}

func TestUserService_GetByUUID_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	externalID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByExternalID(ctx, externalID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.GetByUUID(ctx, externalID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Upsert_CreateWithCredential(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	externalID := uuid.New()
	input := &usecase.UpsertUserInput{
		Username: strPtr("bob"),
		Email:    strPtr("bob@example.com"),
		Password: strPtr("Password123!"),
		Role:     rolePtr(entity.RoleTech),
		Resources: &[]string{"reports:read"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockInternalRepo := mockRepo.NewMockInternalUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().InternalUserRepo().Return(mockInternalRepo)

			mockUserRepo.EXPECT().FindByExternalID(ctx, externalID).Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					// The new row carries exactly the addressed identifier.
					assert.Equal(t, externalID, user.ExternalID)
					assert.Equal(t, "bob", user.Username)
					assert.Equal(t, entity.RoleTech, user.Role)
					assert.True(t, user.Active)
					user.ID = 7
				}).
				Return(nil)

			fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)

			mockInternalRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.InternalUser")).
				Run(func(ctx context.Context, internalUser *entity.InternalUser) {
					assert.Equal(t, "bob", internalUser.Login)
					assert.Equal(t, "bob@example.com", internalUser.Email)
					assert.Equal(t, "hashed", internalUser.PasswordHash)
					assert.Equal(t, int64(7), internalUser.UserID)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).
		Run(func(ctx context.Context, event *service.AuthEvent) {
			assert.Equal(t, service.EventUserCreated, event.Type)
			assert.Equal(t, externalID.String(), event.UserUUID)
		}).
		Return(nil)

	output, err := fx.service.Upsert(ctx, externalID, input)

	require.NoError(t, err)
	assert.Equal(t, externalID, output.UUID)
	assert.Equal(t, "bob@example.com", output.Email)
	assert.Equal(t, entity.RoleTech, output.Role)
}

func TestUserService_Upsert_CreateRequiresUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	externalID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByExternalID(ctx, externalID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.Upsert(ctx, externalID, &usecase.UpsertUserInput{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Upsert_CreateRejectsLonePassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	externalID := uuid.New()
	input := &usecase.UpsertUserInput{
		Username: strPtr("bob"),
		Password: strPtr("Password123!"),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByExternalID(ctx, externalID).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Upsert(ctx, externalID, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Upsert_UpdatePartial(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testUser()
	input := &usecase.UpsertUserInput{
		Username: strPtr("alice-renamed"),
		Active:   boolPtr(false),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockInternalRepo := mockRepo.NewMockInternalUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().InternalUserRepo().Return(mockInternalRepo)

			mockUserRepo.EXPECT().FindByExternalID(ctx, user.ExternalID).Return(user, nil)
			mockInternalRepo.EXPECT().
				FindByUserID(ctx, user.ID).
				Return(&entity.InternalUser{Login: "alice", Email: "alice@example.com", UserID: user.ID}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.Equal(t, "alice-renamed", updated.Username)
					assert.False(t, updated.Active)
					// The role was not in the payload, so it stays.
					assert.Equal(t, entity.RoleUser, updated.Role)
				}).
				Return(nil)

			// Renaming the user also renames the credential login.
			mockInternalRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.InternalUser")).
				Run(func(ctx context.Context, internalUser *entity.InternalUser) {
					assert.Equal(t, "alice-renamed", internalUser.Login)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Upsert(ctx, user.ExternalID, input)

	require.NoError(t, err)
	assert.Equal(t, "alice-renamed", output.Username)
	assert.False(t, output.Active)
}

func TestUserService_Upsert_UpdateCredentialOnGoogleOnlyAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testUser()
	input := &usecase.UpsertUserInput{Password: strPtr("NewPassword123!")}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockInternalRepo := mockRepo.NewMockInternalUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().InternalUserRepo().Return(mockInternalRepo)

			mockUserRepo.EXPECT().FindByExternalID(ctx, user.ExternalID).Return(user, nil)
			mockInternalRepo.EXPECT().
				FindByUserID(ctx, user.ID).
				Return(nil, repository.ErrInternalUserNotFound)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Upsert(ctx, user.ExternalID, input)

	assert.ErrorIs(t, err, domainerrors.ErrNoInternalCredential)
}

func TestUserService_Upsert_UpdateAddsCredential(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testUser()
	input := &usecase.UpsertUserInput{
		Email:    strPtr("alice@example.com"),
		Password: strPtr("Password123!"),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockInternalRepo := mockRepo.NewMockInternalUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().InternalUserRepo().Return(mockInternalRepo)

			mockUserRepo.EXPECT().FindByExternalID(ctx, user.ExternalID).Return(user, nil)
			mockInternalRepo.EXPECT().
				FindByUserID(ctx, user.ID).
				Return(nil, repository.ErrInternalUserNotFound)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)
			mockInternalRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.InternalUser")).
				Run(func(ctx context.Context, internalUser *entity.InternalUser) {
					assert.Equal(t, user.Username, internalUser.Login)
					assert.Equal(t, "alice@example.com", internalUser.Email)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Upsert(ctx, user.ExternalID, input)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", output.Email)
}

func TestUserService_Upsert_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testUser()
	badRole := entity.Role("superuser")
	input := &usecase.UpsertUserInput{Role: &badRole}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockInternalRepo := mockRepo.NewMockInternalUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().InternalUserRepo().Return(mockInternalRepo)

			mockUserRepo.EXPECT().FindByExternalID(ctx, user.ExternalID).Return(user, nil)
			mockInternalRepo.EXPECT().
				FindByUserID(ctx, user.ID).
				Return(nil, repository.ErrInternalUserNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.Upsert(ctx, user.ExternalID, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Delete_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testUser()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockInternalRepo := mockRepo.NewMockInternalUserRepository(t)
			mockGoogleRepo := mockRepo.NewMockGoogleUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().InternalUserRepo().Return(mockInternalRepo)
			mockFactory.EXPECT().GoogleUserRepo().Return(mockGoogleRepo)

			mockUserRepo.EXPECT().FindByExternalID(ctx, user.ExternalID).Return(user, nil)
			mockInternalRepo.EXPECT().DeleteByUserID(ctx, user.ID).Return(nil)
			mockGoogleRepo.EXPECT().DeleteByUserID(ctx, user.ID).Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, user.ID).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).
		Run(func(ctx context.Context, event *service.AuthEvent) {
			assert.Equal(t, service.EventUserDeleted, event.Type)
			assert.Equal(t, user.Username, event.Username)
		}).
		Return(nil)

	err := fx.service.Delete(ctx, user.ExternalID)

	require.NoError(t, err)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	externalID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByExternalID(ctx, externalID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, externalID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_List_DefaultsAndCap(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	users := []*entity.User{testUser()}

	fx.userRepo.EXPECT().
		List(ctx, constants.DefaultPage, constants.DefaultPerPage).
		Return(users, int64(1), nil)

	output, err := fx.service.List(ctx, &usecase.ListUsersInput{})

	require.NoError(t, err)
	assert.Len(t, output.Users, 1)
	assert.Equal(t, int64(1), output.Total)
	assert.Equal(t, constants.DefaultPage, output.Page)
	assert.Equal(t, constants.DefaultPerPage, output.PerPage)

	fx.userRepo.EXPECT().
		List(ctx, 2, constants.MaxPerPage).
		Return(nil, int64(0), nil)

	output, err = fx.service.List(ctx, &usecase.ListUsersInput{Page: 2, PerPage: 100000})

	require.NoError(t, err)
	assert.Equal(t, constants.MaxPerPage, output.PerPage)
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testUser()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockInternalRepo := mockRepo.NewMockInternalUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().InternalUserRepo().Return(mockInternalRepo)

			mockUserRepo.EXPECT().FindByExternalID(ctx, user.ExternalID).Return(user, nil)
			mockInternalRepo.EXPECT().
				FindByUserID(ctx, user.ID).
				Return(&entity.InternalUser{Login: user.Username, PasswordHash: "old", UserID: user.ID}, nil)

			fx.hasher.EXPECT().Hash("NewPassword123!").Return("new-hash", nil)

			mockInternalRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.InternalUser")).
				Run(func(ctx context.Context, internalUser *entity.InternalUser) {
					assert.Equal(t, "new-hash", internalUser.PasswordHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ChangePassword(ctx, user.ExternalID, "NewPassword123!")

	require.NoError(t, err)
}

func TestUserService_ChangePassword_NoCredential(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testUser()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockInternalRepo := mockRepo.NewMockInternalUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().InternalUserRepo().Return(mockInternalRepo)

			mockUserRepo.EXPECT().FindByExternalID(ctx, user.ExternalID).Return(user, nil)
			mockInternalRepo.EXPECT().
				FindByUserID(ctx, user.ID).
				Return(nil, repository.ErrInternalUserNotFound)

			return fn(mockFactory)
		})

	err := fx.service.ChangePassword(ctx, user.ExternalID, "NewPassword123!")

	assert.ErrorIs(t, err, domainerrors.ErrNoInternalCredential)
}

func TestUserService_GetPublicInfo_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userA := testUser()
	userB := testUser()
	userB.ID = 43
	userB.ExternalID = uuid.New()
	userB.Username = "bob"

	// Duplicates collapse before the lookup.
	ids := []uuid.UUID{userA.ExternalID, userB.ExternalID, userA.ExternalID}

	fx.userRepo.EXPECT().
		FindByExternalIDs(ctx, []uuid.UUID{userA.ExternalID, userB.ExternalID}).
		Return([]*entity.User{userA, userB}, nil)

	infos, err := fx.service.GetPublicInfo(ctx, ids)

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, userA.Username, infos[0].Username)
	assert.Equal(t, userB.ExternalID, infos[1].UUID)
}

func TestUserService_GetPublicInfo_AnyMissFailsAll(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	known := testUser()
	unknown := uuid.New()

	fx.userRepo.EXPECT().
		FindByExternalIDs(ctx, []uuid.UUID{known.ExternalID, unknown}).
		Return([]*entity.User{known}, nil)

	infos, err := fx.service.GetPublicInfo(ctx, []uuid.UUID{known.ExternalID, unknown})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, infos)
}

func TestUserService_GetPublicInfo_RepositoryError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	dbErr := errors.New("connection lost")
	ids := []uuid.UUID{uuid.New()}

	fx.userRepo.EXPECT().FindByExternalIDs(ctx, ids).Return(nil, dbErr)

	_, err := fx.service.GetPublicInfo(ctx, ids)

	assert.ErrorIs(t, err, dbErr)
}
