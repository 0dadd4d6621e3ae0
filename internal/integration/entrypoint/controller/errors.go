package controller

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerror "github.com/sehatin/progress-api/internal/domain/error"
	"github.com/sehatin/progress-api/internal/integration/entrypoint/dto"
	"github.com/sehatin/progress-api/internal/integration/entrypoint/middleware"
)

// respondInternalError logs an unexpected failure and hides it from the caller.
func respondInternalError(ctx *gin.Context, err error) {
	slog.ErrorContext(ctx.Request.Context(), "Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"request_id", middleware.GetRequestID(ctx),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// respondValidationError writes a 422 for a request that failed binding.
func respondValidationError(ctx *gin.Context, code string, err error) {
	ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    code,
		Details: err.Error(),
	})
}

// parseGoalID reads the goal_id path parameter, writing a 422 when it is not a positive integer.
func parseGoalID(ctx *gin.Context) (uint, bool) {
	raw := ctx.Param("goal_id")
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: "Invalid goal ID: " + raw,
			Code:  string(domainerror.ErrCodeInvalidGoalID),
		})
		return 0, false
	}
	return uint(id), true
}

// parseUserID reads the user_id path parameter, writing a 422 when it is not a positive integer.
func parseUserID(ctx *gin.Context) (int64, bool) {
	raw := ctx.Param("user_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: "Invalid user ID: " + raw,
			Code:  string(domainerror.ErrCodeInvalidUserID),
		})
		return 0, false
	}
	return id, true
}
