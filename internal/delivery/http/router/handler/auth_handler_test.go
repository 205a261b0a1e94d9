package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "authd/internal/delivery/context"
	"authd/internal/delivery/http/validator"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/service"
	mockUc "authd/internal/mocks/usecase"
	"authd/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockUc.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testLogger())

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "Password123!"}).
		Return(&usecase.TokenPairOutput{AccessToken: "access", RefreshToken: "refresh"}, nil)

	c, rec := postJSON(newTestEcho(), "/auth/login", `{"username":"alice","password":"Password123!"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access"`)
	assert.Contains(t, rec.Body.String(), `"refresh_token":"refresh"`)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	uc := mockUc.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testLogger())

	c, _ := postJSON(newTestEcho(), "/auth/login", `{"username":"alice"}`)

	err := h.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	uc := mockUc.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testLogger())

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrBadCredentials.WrapMessage("password mismatch"))

	c, _ := postJSON(newTestEcho(), "/auth/login", `{"username":"alice","password":"nope"}`)

	err := h.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrBadCredentials)
}

func TestAuthHandler_GoogleLogin_Success(t *testing.T) {
	uc := mockUc.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testLogger())

	uc.EXPECT().
		LoginWithGoogle(mock.Anything, &usecase.GoogleLoginInput{Code: "auth-code"}).
		Return(&usecase.TokenPairOutput{AccessToken: "access", RefreshToken: "refresh"}, nil)

	c, rec := postJSON(newTestEcho(), "/auth/login/google", `{"code":"auth-code"}`)

	require.NoError(t, h.GoogleLogin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_GoogleLogin_MissingCode(t *testing.T) {
	uc := mockUc.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testLogger())

	// The usecase owns the missing-code decision; the handler passes it through.
	uc.EXPECT().
		LoginWithGoogle(mock.Anything, &usecase.GoogleLoginInput{Code: ""}).
		Return(nil, domainerrors.ErrMissingAuthorizationCode.WrapMessage("google login"))

	c, _ := postJSON(newTestEcho(), "/auth/login/google", `{}`)

	err := h.GoogleLogin(c)

	assert.ErrorIs(t, err, domainerrors.ErrMissingAuthorizationCode)
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	uc := mockUc.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testLogger())

	claims := &service.TokenClaims{
		UserID: 42,
		UUID:   uuid.New(),
		Kind:   entity.TokenKindRefresh,
		JTI:    uuid.NewString(),
	}

	uc.EXPECT().
		Refresh(mock.Anything, claims).
		Return(&usecase.RefreshOutput{AccessToken: "fresh-access"}, nil)

	c, rec := postJSON(newTestEcho(), "/auth/refresh", "")
	deliverycontext.SetClaims(c, claims)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"fresh-access"`)
}

func TestAuthHandler_Refresh_NoClaims(t *testing.T) {
	uc := mockUc.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testLogger())

	c, _ := postJSON(newTestEcho(), "/auth/refresh", "")

	err := h.Refresh(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthHandler_Revoke_Success(t *testing.T) {
	uc := mockUc.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, testLogger())

	claims := &service.TokenClaims{
		UserID: 42,
		UUID:   uuid.New(),
		Kind:   entity.TokenKindAccess,
		JTI:    uuid.NewString(),
	}

	uc.EXPECT().RevokeToken(mock.Anything, claims).Return(nil)

	c, rec := postJSON(newTestEcho(), "/auth/revoke_access", "")
	deliverycontext.SetClaims(c, claims)

	require.NoError(t, h.Revoke(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token revoked")
}

func TestHealthCheck(t *testing.T) {
	c, rec := postJSON(newTestEcho(), "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
