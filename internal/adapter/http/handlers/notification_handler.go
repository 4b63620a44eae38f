package handlers

import (
	"errors"
	"log"
	"net/http"

	request "ikhaya/internal/adapter/http/dto/request"
	response "ikhaya/internal/adapter/http/dto/response"
	"ikhaya/internal/adapter/http/middleware"
	"ikhaya/internal/usecase"
	"ikhaya/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidNotificationPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// ListNotifications godoc
// @Summary   List the caller's notifications, newest first
// @Tags      notifications
// @Produce   json
// @Success   200  {array}  response.NotificationResponse
// @Security  Bearer
// @Router    /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	list, err := h.usecase.ListNotifications(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(list))
}

// MarkNotificationRead godoc
// @Summary   Mark one of the caller's notifications as read
// @Tags      notifications
// @Produce   json
// @Param     id   path      string  true  "Notification ID"
// @Success   200  {object}  response.NotificationResponse
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	n, err := h.usecase.MarkNotificationRead(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}

// GetPreferences godoc
// @Summary   Get the caller's email preferences
// @Tags      notifications
// @Produce   json
// @Success   200  {object}  response.PreferencesResponse
// @Security  Bearer
// @Router    /notifications/preferences [get]
func (h *NotificationHandler) GetPreferences(c *gin.Context) {
	p, err := h.usecase.GetPreferences(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPreferences(p))
}

// UpdatePreferences godoc
// @Summary   Replace the caller's email preferences
// @Tags      notifications
// @Accept    json
// @Produce   json
// @Param     preferences  body      request.UpdatePreferencesRequest  true  "Preferences"
// @Success   200          {object}  response.PreferencesResponse
// @Security  Bearer
// @Router    /notifications/preferences [put]
func (h *NotificationHandler) UpdatePreferences(c *gin.Context) {
	var payload request.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}
	saved, err := h.usecase.UpdatePreferences(c.Request.Context(), payload.ToEntity(middleware.UserID(c)))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPreferences(saved))
}

// SendEmailNotification godoc
// @Summary      Queue an email to a user, honouring their preferences
// @Description  Returns sent=false with a reason when the user's preferences block the email.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        email  body      request.SendEmailRequest  true  "Email"
// @Success      200    {object}  usecase.EmailDispatchResult
// @Failure      400    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /notifications/email [post]
func (h *NotificationHandler) SendEmailNotification(c *gin.Context) {
	var payload request.SendEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}
	res, err := h.usecase.SendEmailNotification(c.Request.Context(), payload.ToInput(middleware.UserID(c)))
	if err != nil {
		log.Printf("[notification][handler] send email failed user_id=%s type=%s err=%v", payload.UserID, payload.Type, err)
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEmailFieldsRequired), errors.Is(err, usecase.ErrNotificationUser), errors.Is(err, usecase.ErrUnknownNotificationType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserHasNoEmail):
		return pkg.NewDomainErrorSimple("USER_HAS_NO_EMAIL", "User has no email address", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmailSenderNotEnabled):
		return pkg.NewDomainError("EMAIL_UNAVAILABLE", "Email delivery is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPreferencesNotConfigured):
		return pkg.NewDomainError("PREFERENCES_UNAVAILABLE", "Notification preferences are not available", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
