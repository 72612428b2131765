// Package http provides HTTP handlers for contact-related operations.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/contacts/internal/auth/http"
	"github.com/allisson/contacts/internal/contact/http/dto"
	"github.com/allisson/contacts/internal/contact/usecase"
	apperrors "github.com/allisson/contacts/internal/errors"
	"github.com/allisson/contacts/internal/httputil"
	"github.com/allisson/contacts/internal/metrics"
)

// ContactHandler handles contact-related HTTP requests.
//
// Routes under /users/:uid/contacts run behind the owner guard, so the
// principal in the request context is the owner. Routes under /contacts/:cid
// only require authentication; ownership is enforced by the user-scoped
// repository queries.
type ContactHandler struct {
	contactUseCase  usecase.UseCase
	businessMetrics metrics.BusinessMetrics
	logger          *slog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(
	contactUseCase usecase.UseCase,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) *ContactHandler {
	return &ContactHandler{
		contactUseCase:  contactUseCase,
		businessMetrics: businessMetrics,
		logger:          logger,
	}
}

// principal returns the authenticated user id from the request context.
func (h *ContactHandler) principal(c *gin.Context) (int64, bool) {
	userID, ok := authHTTP.GetUserID(c.Request.Context())
	if !ok || userID <= 0 {
		// Guards run first; reaching here anonymously is a wiring bug.
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return 0, false
	}
	return userID, true
}

// CreateContact handles POST /v1/users/:uid/contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	start := time.Now()
	ctx := c.Request.Context()

	userID, ok := h.principal(c)
	if !ok {
		return
	}

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	contact, err := h.contactUseCase.CreateContact(ctx, userID, dto.ToCreateContactInput(req))
	if err != nil {
		h.businessMetrics.RecordOperation(ctx, "contacts", "contact_create", "error")
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.businessMetrics.RecordOperation(ctx, "contacts", "contact_create", "success")
	h.businessMetrics.RecordDuration(ctx, "contacts", "contact_create", time.Since(start), "success")

	h.logger.Info("contact created",
		slog.Int64("user_id", userID),
		slog.Int64("contact_id", contact.ID))

	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

// ListContacts handles GET /v1/users/:uid/contacts
func (h *ContactHandler) ListContacts(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.principal(c)
	if !ok {
		return
	}

	contacts, err := h.contactUseCase.ListContacts(ctx, userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactListResponse(contacts))
}

// GetContact handles GET /v1/contacts/:cid
func (h *ContactHandler) GetContact(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.principal(c)
	if !ok {
		return
	}

	contactID, err := httputil.ParseIDParam(c.Param("cid"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	contact, err := h.contactUseCase.GetContact(ctx, userID, contactID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

// UpdateContact handles PATCH /v1/contacts/:cid
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.principal(c)
	if !ok {
		return
	}

	contactID, err := httputil.ParseIDParam(c.Param("cid"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	contact, err := h.contactUseCase.UpdateContact(ctx, userID, contactID, dto.ToUpdateContactInput(req))
	if err != nil {
		h.businessMetrics.RecordOperation(ctx, "contacts", "contact_update", "error")
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.businessMetrics.RecordOperation(ctx, "contacts", "contact_update", "success")

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

// DeleteContact handles DELETE /v1/contacts/:cid
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.principal(c)
	if !ok {
		return
	}

	contactID, err := httputil.ParseIDParam(c.Param("cid"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.contactUseCase.DeleteContact(ctx, userID, contactID); err != nil {
		h.businessMetrics.RecordOperation(ctx, "contacts", "contact_delete", "error")
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.businessMetrics.RecordOperation(ctx, "contacts", "contact_delete", "success")

	h.logger.Info("contact deleted",
		slog.Int64("user_id", userID),
		slog.Int64("contact_id", contactID))

	c.Status(http.StatusNoContent)
}
