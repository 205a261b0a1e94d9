// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"authd/config"
	"authd/internal/domain/entity"
	"authd/internal/domain/service"
	"authd/internal/errors"
)

// jwtIssuer is a concrete implementation of the TokenIssuer interface using the JWT standard.
// The signing algorithm is selected by configuration; HMAC variants sign with the
// shared secret, RSA variants with a PEM keypair.
type jwtIssuer struct {
	method     jwt.SigningMethod
	signKey    any // []byte for HMAC, *rsa.PrivateKey for RSA.
	verifyKey  any // []byte for HMAC, *rsa.PublicKey for RSA.
	accessTTL  map[entity.Role]time.Duration
	refreshTTL map[entity.Role]time.Duration
}

// NewJWTIssuer is the constructor for jwtIssuer.
// Token lifetimes come from configuration in seconds; tech accounts carry
// their own pair of durations, user and admin accounts share the other.
func NewJWTIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	method := jwt.GetSigningMethod(cfg.JWT.Algorithm)
	if method == nil {
		return nil, errors.Errorf("unsupported jwt algorithm: %s", cfg.JWT.Algorithm)
	}

	issuer := &jwtIssuer{
		method: method,
		accessTTL: map[entity.Role]time.Duration{
			entity.RoleUser:  time.Duration(cfg.JWT.UserAccessExpire) * time.Second,
			entity.RoleAdmin: time.Duration(cfg.JWT.UserAccessExpire) * time.Second,
			entity.RoleTech:  time.Duration(cfg.JWT.TechAccessExpire) * time.Second,
		},
		refreshTTL: map[entity.Role]time.Duration{
			entity.RoleUser:  time.Duration(cfg.JWT.UserRefreshExpire) * time.Second,
			entity.RoleAdmin: time.Duration(cfg.JWT.UserRefreshExpire) * time.Second,
			entity.RoleTech:  time.Duration(cfg.JWT.TechRefreshExpire) * time.Second,
		},
	}

	switch method.(type) {
	case *jwt.SigningMethodHMAC:
		if cfg.JWT.Secret == "" {
			return nil, errors.New("jwt secret must be provided for HMAC signing")
		}
		issuer.signKey = []byte(cfg.JWT.Secret)
		issuer.verifyKey = []byte(cfg.JWT.Secret)
	case *jwt.SigningMethodRSA:
		privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
		if err != nil {
			return nil, errors.Wrap(err, "parse jwt private key")
		}
		publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.JWT.PublicKey))
		if err != nil {
			return nil, errors.Wrap(err, "parse jwt public key")
		}
		issuer.signKey = privateKey
		issuer.verifyKey = publicKey
	default:
		return nil, errors.Errorf("unsupported jwt algorithm: %s", cfg.JWT.Algorithm)
	}

	return issuer, nil
}

// IssueAccessToken creates a signed access token embedding the user's role,
// public identifier and resource capabilities.
func (s *jwtIssuer) IssueAccessToken(user *entity.User) (*service.IssuedToken, error) {
	return s.issue(user, entity.TokenKindAccess, s.accessTTL[user.Role])
}

// IssueRefreshToken creates a signed refresh token carrying identity only.
func (s *jwtIssuer) IssueRefreshToken(user *entity.User) (*service.IssuedToken, error) {
	return s.issue(user, entity.TokenKindRefresh, s.refreshTTL[user.Role])
}

// Parse verifies signature and expiry and returns the token's claims.
// Any verification failure surfaces as a single invalid-token error.
func (s *jwtIssuer) Parse(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.verifyKey, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	return claimsFromMap(mapClaims)
}

// issue builds and signs one token. The subject is the internal storage key;
// the public identifier and authorization claims ride alongside it. Every
// token gets a fresh jti so it can be revoked independently.
func (s *jwtIssuer) issue(user *entity.User, kind entity.TokenKind, ttl time.Duration) (*service.IssuedToken, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	jti := uuid.NewString()

	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(user.ID, 10),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
		"jti":  jti,
		"kind": kind.String(),
		"uuid": user.ExternalID.String(),
	}
	// Authorization claims only belong on access tokens; refresh tokens are
	// exchanged for a fresh read of the user anyway.
	if kind == entity.TokenKindAccess {
		claims["role"] = user.Role.String()
		claims["resources"] = user.Resources
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.signKey)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	return &service.IssuedToken{
		Value:     signed,
		JTI:       jti,
		Kind:      kind,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}, nil
}

// claimsFromMap converts raw JWT claims into the typed domain view.
func claimsFromMap(mapClaims jwt.MapClaims) (*service.TokenClaims, error) {
	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "token subject")
	}
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "token subject")
	}

	jti, _ := mapClaims["jti"].(string)
	if jti == "" {
		return nil, errors.New("token missing jti")
	}

	kindValue, _ := mapClaims["kind"].(string)
	kind := entity.TokenKind(kindValue)
	if !kind.IsValid() {
		return nil, errors.New("token missing kind")
	}

	claims := &service.TokenClaims{
		UserID: userID,
		JTI:    jti,
		Kind:   kind,
	}

	if raw, ok := mapClaims["uuid"].(string); ok {
		externalID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrap(err, "token uuid")
		}
		claims.UUID = externalID
	}

	if raw, ok := mapClaims["role"].(string); ok {
		claims.Role = entity.Role(raw)
	}
	if raw, ok := mapClaims["resources"].([]any); ok {
		resources := make([]string, 0, len(raw))
		for _, item := range raw {
			if value, ok := item.(string); ok {
				resources = append(resources, value)
			}
		}
		claims.Resources = resources
	}

	expiresAt, err := mapClaims.GetExpirationTime()
	if err == nil && expiresAt != nil {
		claims.ExpiresAt = expiresAt.Time
	}

	return claims, nil
}
