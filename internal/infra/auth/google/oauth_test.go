package google

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	"authd/config"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOAuthConfig() *config.Config {
	return &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "test-client-id",
			ClientSecret: "test-client-secret",
			RedirectURI:  "http://localhost/callback",
		},
	}
}

// fakeGoogle stands in for both the token endpoint and the userinfo API.
func fakeGoogle(t *testing.T, rejectCode string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.FormValue("code") == rejectCode {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"fake-access-token","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo/v2/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer fake-access-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "109876543210",
			"email": "carol@example.com",
			"name": "Carol Example",
			"given_name": "Carol",
			"family_name": "Example",
			"picture": "https://example.com/carol.png",
			"locale": "en"
		}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestOAuthService_ExchangeCode(t *testing.T) {
	server := fakeGoogle(t, "")

	svc := newOAuthService(testOAuthConfig(), slog.Default(), oauth2.Endpoint{
		AuthURL:  server.URL + "/auth",
		TokenURL: server.URL + "/token",
	}, option.WithEndpoint(server.URL))

	profile, err := svc.ExchangeCode(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "109876543210", profile.GoogleID)
	assert.Equal(t, "carol@example.com", profile.Email)
	assert.Equal(t, "Carol Example", profile.Name)
	assert.Equal(t, "Carol", profile.GivenName)
	assert.Equal(t, "Example", profile.FamilyName)
	assert.Equal(t, "https://example.com/carol.png", profile.Picture)
	assert.Equal(t, "en", profile.Locale)
}

func TestOAuthService_ExchangeCodeRejected(t *testing.T) {
	server := fakeGoogle(t, "bad-code")

	svc := newOAuthService(testOAuthConfig(), slog.Default(), oauth2.Endpoint{
		AuthURL:  server.URL + "/auth",
		TokenURL: server.URL + "/token",
	}, option.WithEndpoint(server.URL))

	profile, err := svc.ExchangeCode(context.Background(), "bad-code")
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthExchangeFailed))
}

func TestNewOAuthService_MissingConfigSection(t *testing.T) {
	svc, err := NewOAuthService(&config.Config{}, slog.Default())

	assert.Nil(t, svc)
	assert.Error(t, err)
}
