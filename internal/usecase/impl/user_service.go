package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "authd/internal/delivery/context"
	"authd/internal/domain/constants"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"
	"authd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	publisher service.EventPublisher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetByUUID returns the management view of one user, including the credential
// email when a password credential exists.
func (srv *userService) GetByUUID(ctx context.Context, externalID uuid.UUID) (*usecase.UserOutput, error) {
	var output *usecase.UserOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByExternalID(ctx, externalID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("get user")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		internalUser, err := repoFactory.InternalUserRepo().FindByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, repository.ErrInternalUserNotFound) {
			return errors.Wrap(err, "failed to load credential for user")
		}

		output = toUserOutput(user, internalUser)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Upsert applies PUT semantics to the addressed user.
func (srv *userService) Upsert(ctx context.Context, externalID uuid.UUID, input *usecase.UpsertUserInput) (*usecase.UserOutput, error) {
	var (
		output  *usecase.UserOutput
		created bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByExternalID(ctx, externalID)
		if errors.Is(err, repository.ErrUserNotFound) {
			created = true
			output, err = srv.createUser(ctx, repoFactory, externalID, input)

			return err
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user for upsert")
		}

		output, err = srv.updateUser(ctx, repoFactory, user, input)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Upsert failed", slog.String("userUUID", externalID.String()), slog.Any("error", err))

		return nil, err
	}

	if created {
		srv.publishUserEvent(ctx, service.EventUserCreated, externalID, output.Username)
	}

	return output, nil
}

// createUser handles the unknown-identifier branch of Upsert: a brand new
// user carrying exactly the requested external id.
func (srv *userService) createUser(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	externalID uuid.UUID,
	input *usecase.UpsertUserInput,
) (*usecase.UserOutput, error) {
	if input.Username == nil || *input.Username == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username is required to create a user")
	}

	user := &entity.User{
		ExternalID: externalID,
		Username:   *input.Username,
		Active:     true,
		Role:       entity.RoleUser,
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
		}
		user.Role = *input.Role
	}
	if input.Resources != nil {
		user.Resources = *input.Resources
	}

	if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
		return nil, err
	}

	var internalUser *entity.InternalUser
	switch {
	case input.Password != nil && input.Email != nil:
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		internalUser = &entity.InternalUser{
			Login:        user.Username,
			Email:        *input.Email,
			PasswordHash: hash,
			UserID:       user.ID,
		}
		if err := repoFactory.InternalUserRepo().Create(ctx, internalUser); err != nil {
			return nil, err
		}
	case input.Password != nil || input.Email != nil:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password must be provided together")
	}

	return toUserOutput(user, internalUser), nil
}

// updateUser handles the known-identifier branch of Upsert: a partial update
// where nil input fields keep their stored values.
func (srv *userService) updateUser(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	user *entity.User,
	input *usecase.UpsertUserInput,
) (*usecase.UserOutput, error) {
	internalUser, err := repoFactory.InternalUserRepo().FindByUserID(ctx, user.ID)
	if errors.Is(err, repository.ErrInternalUserNotFound) {
		internalUser = nil
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to load credential for upsert")
	}

	if input.Username != nil && *input.Username != "" {
		user.Username = *input.Username
		if internalUser != nil {
			internalUser.Login = *input.Username
		}
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
		}
		user.Role = *input.Role
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.Resources != nil {
		user.Resources = *input.Resources
	}

	if err := repoFactory.UserRepo().Update(ctx, user); err != nil {
		return nil, err
	}

	credentialChanged := input.Username != nil || input.Email != nil || input.Password != nil
	if internalUser == nil {
		switch {
		case input.Email != nil && input.Password != nil:
			hash, err := srv.hasher.Hash(*input.Password)
			if err != nil {
				return nil, errors.Wrap(err, "failed to hash password")
			}
			internalUser = &entity.InternalUser{
				Login:        user.Username,
				Email:        *input.Email,
				PasswordHash: hash,
				UserID:       user.ID,
			}
			if err := repoFactory.InternalUserRepo().Create(ctx, internalUser); err != nil {
				return nil, err
			}
		case input.Email != nil || input.Password != nil:
			return nil, domainerrors.ErrNoInternalCredential.WrapMessage("upsert user")
		}

		return toUserOutput(user, internalUser), nil
	}

	if input.Email != nil {
		internalUser.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		internalUser.PasswordHash = hash
	}
	if credentialChanged {
		if err := repoFactory.InternalUserRepo().Update(ctx, internalUser); err != nil {
			return nil, err
		}
	}

	return toUserOutput(user, internalUser), nil
}

// Delete removes a user together with its credential bindings.
func (srv *userService) Delete(ctx context.Context, externalID uuid.UUID) error {
	var username string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByExternalID(ctx, externalID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("delete user")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user for deletion")
		}
		username = user.Username

		// Credential rows go first; the user row is the anchor of the cascade.
		if err := repoFactory.InternalUserRepo().DeleteByUserID(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to delete credential")
		}
		if err := repoFactory.GoogleUserRepo().DeleteByUserID(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to delete google identity")
		}

		return repoFactory.UserRepo().Delete(ctx, user.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("Delete failed", slog.String("userUUID", externalID.String()), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("User deleted", slog.String("userUUID", externalID.String()))
	srv.publishUserEvent(ctx, service.EventUserDeleted, externalID, username)

	return nil
}

// List returns one page of users. The listing view carries no credential
// email; fetching it per row is not worth the extra queries.
func (srv *userService) List(ctx context.Context, input *usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	page := input.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = constants.DefaultPerPage
	}
	if perPage > constants.MaxPerPage {
		perPage = constants.MaxPerPage
	}

	users, total, err := srv.userRepo.List(ctx, page, perPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, toUserOutput(user, nil))
	}

	return &usecase.ListUsersOutput{
		Users:   outputs,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// ChangePassword rehashes the password credential of the addressed user.
func (srv *userService) ChangePassword(ctx context.Context, externalID uuid.UUID, newPassword string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByExternalID(ctx, externalID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("change password")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user for password change")
		}

		internalUser, err := repoFactory.InternalUserRepo().FindByUserID(ctx, user.ID)
		if errors.Is(err, repository.ErrInternalUserNotFound) {
			return domainerrors.ErrNoInternalCredential.WrapMessage("change password")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load credential for password change")
		}

		hash, err := srv.hasher.Hash(newPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}
		internalUser.PasswordHash = hash

		return repoFactory.InternalUserRepo().Update(ctx, internalUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.String("userUUID", externalID.String()), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password changed", slog.String("userUUID", externalID.String()))

	return nil
}

// GetPublicInfo resolves public identity pairs. Every requested identifier
// must resolve, otherwise the whole lookup fails with not-found.
func (srv *userService) GetPublicInfo(ctx context.Context, externalIDs []uuid.UUID) ([]*usecase.PublicUserInfo, error) {
	unique := make([]uuid.UUID, 0, len(externalIDs))
	seen := make(map[uuid.UUID]struct{}, len(externalIDs))
	for _, id := range externalIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	users, err := srv.userRepo.FindByExternalIDs(ctx, unique)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve public info")
	}
	if len(users) != len(unique) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("public info")
	}

	infos := make([]*usecase.PublicUserInfo, 0, len(users))
	for _, user := range users {
		infos = append(infos, &usecase.PublicUserInfo{
			UUID:     user.ExternalID,
			Username: user.Username,
		})
	}

	return infos, nil
}

// publishUserEvent sends a lifecycle event best-effort.
func (srv *userService) publishUserEvent(ctx context.Context, eventType string, externalID uuid.UUID, username string) {
	if srv.publisher == nil {
		return
	}

	event := &service.AuthEvent{
		Type:       eventType,
		UserUUID:   externalID.String(),
		Username:   username,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
	}
	if err := srv.publisher.PublishAuthEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish auth event",
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}

// toUserOutput assembles the management view from the user row and its
// optional credential.
func toUserOutput(user *entity.User, internalUser *entity.InternalUser) *usecase.UserOutput {
	output := &usecase.UserOutput{
		UUID:      user.ExternalID,
		Username:  user.Username,
		Active:    user.Active,
		Role:      user.Role,
		Resources: user.Resources,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if internalUser != nil {
		output.Email = internalUser.Email
	}

	return output
}
