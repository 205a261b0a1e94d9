// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "authd/internal/delivery/context"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"
	"authd/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPasswordHash is a well-formed bcrypt hash that matches no password the
// service ever issued. Comparing against it keeps the unknown-login path as
// slow as the wrong-password path.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	tokenRepo    repository.TokenRepository
	hasher       service.PasswordHasher
	tokenIssuer  service.TokenIssuer
	oauthService service.OAuthService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenRepo    repository.TokenRepository
	Hasher       service.PasswordHasher
	TokenIssuer  service.TokenIssuer
	OAuthService service.OAuthService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		tokenRepo:    params.TokenRepo,
		hasher:       params.Hasher,
		tokenIssuer:  params.TokenIssuer,
		oauthService: params.OAuthService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates a password credential and returns a new token pair.
// Both tokens are registered in the same transaction that validated the
// credential, so a token can never reach the client unrecorded.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	var output *usecase.TokenPairOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		internalUser, err := repoFactory.InternalUserRepo().FindByLogin(ctx, input.Username)
		if errors.Is(err, repository.ErrInternalUserNotFound) {
			// Burn a bcrypt comparison so the miss takes as long as a mismatch.
			srv.hasher.Check(input.Password, dummyPasswordHash)

			return domainerrors.ErrBadCredentials.WrapMessage("unknown login")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find credential for login")
		}

		if !srv.hasher.Check(input.Password, internalUser.PasswordHash) {
			return domainerrors.ErrBadCredentials.WrapMessage("password mismatch")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, internalUser.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load user for login")
		}
		if !user.Active {
			return domainerrors.ErrBadCredentials.WrapMessage("inactive account")
		}

		output, err = srv.issueTokenPair(ctx, repoFactory.TokenRepo(), user)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.String("username", input.Username))

	return output, nil
}

// Refresh mints a new access token from verified refresh token claims. The
// user is re-read so the fresh access token carries current role and
// resources, not the ones captured at login time.
func (srv *authService) Refresh(ctx context.Context, claims *service.TokenClaims) (*usecase.RefreshOutput, error) {
	var output *usecase.RefreshOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrTokenInvalid.WrapMessage("token subject no longer exists")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user for refresh")
		}
		if !user.Active {
			return domainerrors.ErrTokenInvalid.WrapMessage("inactive account")
		}

		accessToken, err := srv.tokenIssuer.IssueAccessToken(user)
		if err != nil {
			return errors.Wrap(err, "failed to issue access token")
		}
		if err := repoFactory.TokenRepo().Record(ctx, accessToken.Record()); err != nil {
			return errors.Wrap(err, "failed to record access token")
		}

		output = &usecase.RefreshOutput{AccessToken: accessToken.Value}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Int64("userID", claims.UserID), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// RevokeToken marks the token behind the verified claims as revoked.
func (srv *authService) RevokeToken(ctx context.Context, claims *service.TokenClaims) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.TokenRepo().Revoke(ctx, claims.JTI)
	})
	if err != nil {
		srv.log(ctx).Error("Token revocation failed", slog.String("jti", claims.JTI), slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke token")
	}

	srv.log(ctx).Info("Token revoked",
		slog.String("jti", claims.JTI),
		slog.String("kind", claims.Kind.String()),
	)

	srv.publishEvent(ctx, &service.AuthEvent{
		Type:       service.EventTokenRevoked,
		UserUUID:   claims.UUID.String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

// IsTokenRevoked reports whether the given jti was explicitly revoked.
func (srv *authService) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	revoked, err := srv.tokenRepo.IsRevoked(ctx, jti)
	if err != nil {
		return false, errors.Wrap(err, "failed to check token revocation")
	}

	return revoked, nil
}

// issueTokenPair creates and registers an access and refresh token for the user.
func (srv *authService) issueTokenPair(ctx context.Context, tokenRepo repository.TokenRepository, user *entity.User) (*usecase.TokenPairOutput, error) {
	accessToken, err := srv.tokenIssuer.IssueAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}
	refreshToken, err := srv.tokenIssuer.IssueRefreshToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	if err := tokenRepo.Record(ctx, accessToken.Record()); err != nil {
		return nil, errors.Wrap(err, "failed to record access token")
	}
	if err := tokenRepo.Record(ctx, refreshToken.Record()); err != nil {
		return nil, errors.Wrap(err, "failed to record refresh token")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken.Value,
		RefreshToken: refreshToken.Value,
	}, nil
}

// publishEvent sends an auth event best-effort: failures are logged, never
// propagated to the caller.
func (srv *authService) publishEvent(ctx context.Context, event *service.AuthEvent) {
	if srv.publisher == nil {
		return
	}

	if err := srv.publisher.PublishAuthEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish auth event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
