// Package google implements the OAuth code exchange against Google's endpoints.
package google

import (
	"context"
	"log/slog"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"authd/config"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/service"
	"authd/internal/errors"
)

// Scopes requested alongside the authorization code; the sign-in flow only
// needs identity and profile data.
var defaultScopes = []string{"openid", "email", "profile"}

// oauthService exchanges authorization codes and fetches the userinfo profile.
type oauthService struct {
	oauth   *oauth2.Config
	logger  *slog.Logger
	apiOpts []option.ClientOption
}

// NewOAuthService creates the Google-backed OAuthService.
func NewOAuthService(cfg *config.Config, logger *slog.Logger) (service.OAuthService, error) {
	if cfg.GoogleOAuth == nil {
		return nil, errors.New("googleOAuth config section is required")
	}

	return newOAuthService(cfg, logger, googleoauth.Endpoint), nil
}

// newOAuthService allows endpoint and userinfo overrides, used by tests.
func newOAuthService(cfg *config.Config, logger *slog.Logger, endpoint oauth2.Endpoint, apiOpts ...option.ClientOption) service.OAuthService {
	return &oauthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.RedirectURI,
			Scopes:       defaultScopes,
			Endpoint:     endpoint,
		},
		logger:  logger,
		apiOpts: apiOpts,
	}
}

// ExchangeCode trades the authorization code for an access token, then reads
// the userinfo profile with it. A rejection by Google at either step surfaces
// as the single exchange-failed error so clients learn nothing more.
func (s *oauthService) ExchangeCode(ctx context.Context, code string) (*service.GoogleProfile, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		s.logger.Warn("authorization code exchange rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthExchangeFailed.WrapMessage("exchange authorization code")
	}

	opts := append([]option.ClientOption{option.WithHTTPClient(s.oauth.Client(ctx, token))}, s.apiOpts...)
	api, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "build userinfo client")
	}

	info, err := api.Userinfo.V2.Me.Get().Context(ctx).Do()
	if err != nil {
		s.logger.Warn("userinfo request failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthExchangeFailed.WrapMessage("fetch userinfo")
	}

	return &service.GoogleProfile{
		GoogleID:   info.Id,
		Email:      info.Email,
		Name:       info.Name,
		GivenName:  info.GivenName,
		FamilyName: info.FamilyName,
		Picture:    info.Picture,
		Locale:     info.Locale,
	}, nil
}
