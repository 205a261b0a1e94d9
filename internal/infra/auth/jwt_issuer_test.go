package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"authd/config"
	"authd/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Algorithm:         "HS256",
			Secret:            "test_secret_key_very_long_for_testing",
			UserAccessExpire:  900,
			UserRefreshExpire: 1800,
			TechAccessExpire:  30,
			TechRefreshExpire: 60,
		},
	}
}

func testUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:         42,
		ExternalID: uuid.New(),
		Username:   "carol",
		Role:       role,
		Resources:  []string{"reports", "exports"},
	}
}

func TestJWTIssuer_IssueAndParseAccessToken(t *testing.T) {
	issuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)

	user := testUser(entity.RoleUser)
	issued, err := issuer.IssueAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Value)
	assert.NotEmpty(t, issued.JTI)
	assert.Equal(t, entity.TokenKindAccess, issued.Kind)
	assert.Equal(t, user.ID, issued.UserID)

	claims, err := issuer.Parse(issued.Value)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.ExternalID, claims.UUID)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.Equal(t, user.Resources, claims.Resources)
	assert.Equal(t, entity.TokenKindAccess, claims.Kind)
	assert.Equal(t, issued.JTI, claims.JTI)
}

func TestJWTIssuer_RefreshTokenCarriesNoAuthorization(t *testing.T) {
	issuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)

	issued, err := issuer.IssueRefreshToken(testUser(entity.RoleAdmin))
	require.NoError(t, err)

	claims, err := issuer.Parse(issued.Value)
	require.NoError(t, err)
	assert.Equal(t, entity.TokenKindRefresh, claims.Kind)
	assert.Empty(t, claims.Role)
	assert.Empty(t, claims.Resources)
}

func TestJWTIssuer_RoleDependentLifetimes(t *testing.T) {
	issuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)

	now := time.Now()

	userAccess, err := issuer.IssueAccessToken(testUser(entity.RoleUser))
	require.NoError(t, err)
	techAccess, err := issuer.IssueAccessToken(testUser(entity.RoleTech))
	require.NoError(t, err)
	userRefresh, err := issuer.IssueRefreshToken(testUser(entity.RoleUser))
	require.NoError(t, err)
	techRefresh, err := issuer.IssueRefreshToken(testUser(entity.RoleTech))
	require.NoError(t, err)

	// Tech tokens expire on their own, much shorter schedule.
	assert.WithinDuration(t, now.Add(900*time.Second), userAccess.ExpiresAt, 5*time.Second)
	assert.WithinDuration(t, now.Add(30*time.Second), techAccess.ExpiresAt, 5*time.Second)
	assert.WithinDuration(t, now.Add(1800*time.Second), userRefresh.ExpiresAt, 5*time.Second)
	assert.WithinDuration(t, now.Add(60*time.Second), techRefresh.ExpiresAt, 5*time.Second)

	// Admin lifetimes match the user ones.
	adminAccess, err := issuer.IssueAccessToken(testUser(entity.RoleAdmin))
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(900*time.Second), adminAccess.ExpiresAt, 5*time.Second)
}

func TestJWTIssuer_FreshJTIPerToken(t *testing.T) {
	issuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)

	user := testUser(entity.RoleUser)
	first, err := issuer.IssueAccessToken(user)
	require.NoError(t, err)
	second, err := issuer.IssueAccessToken(user)
	require.NoError(t, err)
	assert.NotEqual(t, first.JTI, second.JTI)
}

func TestJWTIssuer_ParseRejectsGarbage(t *testing.T) {
	issuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)

	claims, err := issuer.Parse("clearly-not-a-jwt")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTIssuer_ParseRejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)

	other := testJWTConfig()
	other.JWT.Secret = "a_completely_different_secret_key"
	otherIssuer, err := NewJWTIssuer(other)
	require.NoError(t, err)

	issued, err := otherIssuer.IssueAccessToken(testUser(entity.RoleUser))
	require.NoError(t, err)

	claims, err := issuer.Parse(issued.Value)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTIssuer_ParseRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.JWT.UserAccessExpire = -10
	issuer, err := NewJWTIssuer(cfg)
	require.NoError(t, err)

	issued, err := issuer.IssueAccessToken(testUser(entity.RoleUser))
	require.NoError(t, err)

	claims, err := issuer.Parse(issued.Value)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTIssuer_RSAKeyPair(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicDER,
	})

	cfg := testJWTConfig()
	cfg.JWT.Algorithm = "RS256"
	cfg.JWT.Secret = ""
	cfg.JWT.PrivateKey = string(privatePEM)
	cfg.JWT.PublicKey = string(publicPEM)

	issuer, err := NewJWTIssuer(cfg)
	require.NoError(t, err)

	user := testUser(entity.RoleUser)
	issued, err := issuer.IssueAccessToken(user)
	require.NoError(t, err)

	claims, err := issuer.Parse(issued.Value)
	require.NoError(t, err)
	assert.Equal(t, user.ExternalID, claims.UUID)
	assert.Equal(t, entity.TokenKindAccess, claims.Kind)

	// RSA tokens must not verify against a different keypair's issuer.
	hmacIssuer, err := NewJWTIssuer(testJWTConfig())
	require.NoError(t, err)
	_, err = hmacIssuer.Parse(issued.Value)
	assert.Error(t, err)
}

func TestNewJWTIssuer_RejectsBadConfig(t *testing.T) {
	cfg := testJWTConfig()
	cfg.JWT.Secret = ""
	_, err := NewJWTIssuer(cfg)
	assert.Error(t, err)

	cfg = testJWTConfig()
	cfg.JWT.Algorithm = "none-of-the-above"
	_, err = NewJWTIssuer(cfg)
	assert.Error(t, err)
}
