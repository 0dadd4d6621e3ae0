package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sehatin/progress-api/internal/application/usecase/progress"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
	"github.com/sehatin/progress-api/internal/integration/entrypoint/dto"
)

// ProgressController handles user progress endpoints.
type ProgressController struct {
	createUseCase *progress.CreateUserProgressUseCase
	getUseCase    *progress.GetUserProgressUseCase
	clearUseCase  *progress.ClearUserProgressUseCase
}

// NewProgressController creates a new progress controller instance.
func NewProgressController(
	createUseCase *progress.CreateUserProgressUseCase,
	getUseCase *progress.GetUserProgressUseCase,
	clearUseCase *progress.ClearUserProgressUseCase,
) *ProgressController {
	return &ProgressController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		clearUseCase:  clearUseCase,
	}
}

// Create handles POST /:user_id/create-progress/ requests.
// Responds 201 when the record is new and 200 when it already existed.
func (c *ProgressController) Create(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), progress.CreateUserProgressInput{UserID: userID})
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToUserProgressResponse(output.UserProgress))
}

// Get handles GET /:user_id/progress/ requests.
func (c *ProgressController) Get(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), progress.GetUserProgressInput{UserID: userID})
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserProgressResponse(output.UserProgress))
}

// Clear handles DELETE /:user_id/clear-progress/ requests.
func (c *ProgressController) Clear(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	if _, err := c.clearUseCase.Execute(ctx.Request.Context(), progress.ClearUserProgressInput{UserID: userID}); err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Progress of user with id %d has been cleared.", userID),
	})
}

// handleProgressError handles progress errors and returns appropriate HTTP responses.
func (c *ProgressController) handleProgressError(ctx *gin.Context, err error) {
	var progressErr *domainerror.ProgressError
	if errors.As(err, &progressErr) {
		status := http.StatusInternalServerError
		switch progressErr.Code {
		case domainerror.ErrCodeUserProgressNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeInvalidUserID:
			status = http.StatusUnprocessableEntity
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: progressErr.Message,
			Code:  string(progressErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}
