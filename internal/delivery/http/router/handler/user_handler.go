package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"authd/internal/delivery/http/response"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user management handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type upsertUserRequest struct {
	Username  *string   `json:"username"`
	Email     *string   `json:"email" validate:"omitempty,email"`
	Password  *string   `json:"password" validate:"omitempty,min=8"`
	Role      *string   `json:"role"`
	Active    *bool     `json:"active"`
	Resources *[]string `json:"resources"`
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type publicInfoRequest struct {
	UUIDs []string `json:"uuids" validate:"required,min=1,dive,uuid"`
}

type userResponse struct {
	UUID      string    `json:"uuid"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Active    bool      `json:"active"`
	Role      string    `json:"role"`
	Resources []string  `json:"resources,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listUsersResponse struct {
	Users   []userResponse `json:"users"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

type publicInfoResponse struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}

func toUserResponse(output *usecase.UserOutput) userResponse {
	return userResponse{
		UUID:      output.UUID.String(),
		Username:  output.Username,
		Email:     output.Email,
		Active:    output.Active,
		Role:      output.Role.String(),
		Resources: output.Resources,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}

// pathUserUUID parses the :user_uuid route parameter.
func pathUserUUID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("user_uuid"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("user_uuid must be a valid UUID")
	}

	return id, nil
}

// GetUser returns the management view of one user.
func (h *UserHandler) GetUser(c echo.Context) error {
	externalID, err := pathUserUUID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetByUUID(c.Request().Context(), externalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(output), "User retrieved successfully")
}

// UpsertUser creates or replaces the addressed user with PUT semantics.
func (h *UserHandler) UpsertUser(c echo.Context) error {
	externalID, err := pathUserUUID(c)
	if err != nil {
		return err
	}

	var req upsertUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpsertUserInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Active:    req.Active,
		Resources: req.Resources,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	output, err := h.uc.Upsert(c.Request().Context(), externalID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(output), "User saved successfully")
}

// DeleteUser removes the addressed user and its credential bindings.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	externalID, err := pathUserUUID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), externalID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListUsers returns one page of users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	input := &usecase.ListUsersInput{}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("page must be an integer")
		}
		input.Page = page
	}
	if raw := c.QueryParam("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("per_page must be an integer")
		}
		input.PerPage = perPage
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	users := make([]userResponse, 0, len(output.Users))
	for _, user := range output.Users {
		users = append(users, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, listUsersResponse{
		Users:   users,
		Total:   output.Total,
		Page:    output.Page,
		PerPage: output.PerPage,
	}, "Users retrieved successfully")
}

// ChangePassword rehashes the password credential of the addressed user.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	externalID, err := pathUserUUID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), externalID, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetPublicInfo resolves public identity pairs for a batch of identifiers.
func (h *UserHandler) GetPublicInfo(c echo.Context) error {
	var req publicInfoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid public info payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ids := make([]uuid.UUID, 0, len(req.UUIDs))
	for _, raw := range req.UUIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("uuids must contain valid UUIDs")
		}
		ids = append(ids, id)
	}

	infos, err := h.uc.GetPublicInfo(c.Request().Context(), ids)
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]publicInfoResponse, 0, len(infos))
	for _, info := range infos {
		result = append(result, publicInfoResponse{
			UUID:     info.UUID.String(),
			Username: info.Username,
		})
	}

	return response.Success(c, http.StatusOK, result, "Public info retrieved successfully")
}
