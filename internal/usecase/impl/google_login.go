package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "authd/internal/delivery/context"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"
	"authd/internal/usecase"

	"github.com/pkg/errors"
)

// usernameSuffixLen is how many trailing characters of the Google subject id
// are appended to dodge a username collision on first sign-in.
const usernameSuffixLen = 6

// LoginWithGoogle runs the full Google sign-in flow: exchange the
// authorization code for a profile, reconcile the Google identity with the
// user store, then issue and register a token pair. The reconciliation and
// the token registration share one transaction, so a half-created account
// can never leak out of a failed sign-in.
func (srv *authService) LoginWithGoogle(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.TokenPairOutput, error) {
	if strings.TrimSpace(input.Code) == "" {
		return nil, domainerrors.ErrMissingAuthorizationCode.WrapMessage("google login")
	}

	profile, err := srv.oauthService.ExchangeCode(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Google code exchange failed", slog.Any("error", err))

		return nil, err
	}

	var (
		output  *usecase.TokenPairOutput
		user    *entity.User
		created bool
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, created, err = srv.reconcileGoogleIdentity(ctx, repoFactory, profile)
		if err != nil {
			return err
		}

		output, err = srv.issueTokenPair(ctx, repoFactory.TokenRepo(), user)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Google login failed", slog.String("googleID", profile.GoogleID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Google login succeeded",
		slog.String("googleID", profile.GoogleID),
		slog.Bool("signedUp", created),
	)

	if created {
		srv.publishEvent(ctx, &service.AuthEvent{
			Type:       service.EventUserCreated,
			UserUUID:   user.ExternalID.String(),
			Username:   user.Username,
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			OccurredAt: time.Now().UTC(),
		})
	}

	return output, nil
}

// reconcileGoogleIdentity maps a Google profile onto a user account. A known
// subject signs in to its existing account; an unknown one gets a fresh
// account plus an identity binding. The stored binding is never refreshed
// from later profiles.
func (srv *authService) reconcileGoogleIdentity(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	profile *service.GoogleProfile,
) (*entity.User, bool, error) {
	googleUser, err := repoFactory.GoogleUserRepo().FindByGoogleID(ctx, profile.GoogleID)
	if err == nil {
		user, err := repoFactory.UserRepo().FindByID(ctx, googleUser.UserID)
		if err != nil {
			return nil, false, errors.Wrap(err, "failed to load user for google identity")
		}
		if !user.Active {
			return nil, false, domainerrors.ErrBadCredentials.WrapMessage("inactive account")
		}

		return user, false, nil
	}
	if !errors.Is(err, repository.ErrGoogleUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to look up google identity")
	}

	username, err := srv.resolveUsername(ctx, repoFactory.UserRepo(), profile)
	if err != nil {
		return nil, false, err
	}

	user := &entity.User{
		Username: username,
		Active:   true,
		Role:     entity.RoleUser,
	}
	if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
		return nil, false, errors.Wrap(err, "failed to create user for google sign-up")
	}

	binding := &entity.GoogleUser{
		GoogleID:   profile.GoogleID,
		Email:      profile.Email,
		Name:       profile.Name,
		GivenName:  profile.GivenName,
		FamilyName: profile.FamilyName,
		Picture:    profile.Picture,
		Locale:     profile.Locale,
		UserID:     user.ID,
	}
	if err := repoFactory.GoogleUserRepo().Create(ctx, binding); err != nil {
		return nil, false, errors.Wrap(err, "failed to create google identity binding")
	}

	return user, true, nil
}

// resolveUsername picks a username for a first Google sign-in. The profile
// display name is used as-is; on collision a short suffix from the Google
// subject id is appended, which is stable across retries.
func (srv *authService) resolveUsername(ctx context.Context, userRepo repository.UserRepository, profile *service.GoogleProfile) (string, error) {
	username := strings.TrimSpace(profile.Name)
	if username == "" {
		username = profile.Email
	}

	_, err := userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return username, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to check username availability")
	}

	suffix := profile.GoogleID
	if len(suffix) > usernameSuffixLen {
		suffix = suffix[len(suffix)-usernameSuffixLen:]
	}

	return fmt.Sprintf("%s-%s", username, suffix), nil
}
