package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sehatin/progress-api/internal/application/usecase/notification"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
	"github.com/sehatin/progress-api/internal/integration/entrypoint/dto"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	createUseCase *notification.CreateNotificationUseCase
	listUseCase   *notification.ListNotificationsUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	createUseCase *notification.CreateNotificationUseCase,
	listUseCase *notification.ListNotificationsUseCase,
) *NotificationController {
	return &NotificationController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /:user_id/notifications/ requests.
func (c *NotificationController) Create(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, string(domainerror.ErrCodeInvalidNotificationInput), err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), notification.CreateNotificationInput{
		UserID:  userID,
		Message: req.Message,
	})
	if err != nil {
		var notificationErr *domainerror.NotificationError
		if errors.As(err, &notificationErr) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
				Error: notificationErr.Message,
				Code:  string(notificationErr.Code),
			})
			return
		}
		respondInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNotificationResponse(output.Notification))
}

// List handles GET /:user_id/notifications/ requests.
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), notification.ListNotificationsInput{UserID: userID})
	if err != nil {
		respondInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(output.Notifications))
}
