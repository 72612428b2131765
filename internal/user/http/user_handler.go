// Package http provides HTTP handlers for user-related operations.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/contacts/internal/httputil"
	"github.com/allisson/contacts/internal/metrics"
	"github.com/allisson/contacts/internal/user/http/dto"
	"github.com/allisson/contacts/internal/user/usecase"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase     usecase.UseCase
	businessMetrics metrics.BusinessMetrics
	logger          *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	userUseCase usecase.UseCase,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase:     userUseCase,
		businessMetrics: businessMetrics,
		logger:          logger,
	}
}

// RegisterUser handles POST /v1/users. Registration is public.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	start := time.Now()
	ctx := c.Request.Context()

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.RegisterUser(ctx, dto.ToRegisterUserInput(req))
	if err != nil {
		h.businessMetrics.RecordOperation(ctx, "users", "user_register", "error")
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.businessMetrics.RecordOperation(ctx, "users", "user_register", "success")
	h.businessMetrics.RecordDuration(ctx, "users", "user_register", time.Since(start), "success")

	h.logger.Info("user registered", slog.Int64("user_id", user.ID))

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetUser handles GET /v1/users/:uid. The owner guard runs before this handler.
func (h *UserHandler) GetUser(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := httputil.ParseIDParam(c.Param("uid"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.GetUserByID(ctx, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateUser handles PATCH /v1/users/:uid. Fields absent from the body are
// left unchanged.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := httputil.ParseIDParam(c.Param("uid"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.UpdateUser(ctx, id, dto.ToUpdateUserInput(req))
	if err != nil {
		h.businessMetrics.RecordOperation(ctx, "users", "user_update", "error")
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.businessMetrics.RecordOperation(ctx, "users", "user_update", "success")

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser handles DELETE /v1/users/:uid.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := httputil.ParseIDParam(c.Param("uid"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.userUseCase.DeleteUser(ctx, id); err != nil {
		h.businessMetrics.RecordOperation(ctx, "users", "user_delete", "error")
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.businessMetrics.RecordOperation(ctx, "users", "user_delete", "success")

	h.logger.Info("user deleted", slog.Int64("user_id", id))

	c.Status(http.StatusNoContent)
}
