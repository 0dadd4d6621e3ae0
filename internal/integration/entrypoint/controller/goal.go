// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sehatin/progress-api/internal/application/usecase/goal"
	"github.com/sehatin/progress-api/internal/domain/entity"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
	"github.com/sehatin/progress-api/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	getUseCase    *goal.GetGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// ListByUser handles GET /:user_id/goals/ requests.
func (c *GoalController) ListByUser(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{UserID: userID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Create handles POST /goals/new-goal/ requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, string(domainerror.ErrCodeInvalidGoalInput), err)
		return
	}

	input := goal.CreateGoalInput{
		UserID:      req.UserID,
		GoalType:    entity.GoalType(req.GoalType),
		Value:       req.Value,
		Period:      req.Period,
		PeriodUnit:  entity.PeriodUnit(req.PeriodUnit),
		Progress:    req.Progress,
		IsCompleted: req.IsCompleted,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /goals/:goal_id/ requests.
func (c *GoalController) Get(ctx *gin.Context) {
	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: goalID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Update handles PUT /goals/:goal_id/update-goal/ requests.
func (c *GoalController) Update(ctx *gin.Context) {
	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	// An absent body is treated like an empty object and rejected by the use case.
	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondValidationError(ctx, string(domainerror.ErrCodeInvalidGoalInput), err)
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:      goalID,
		Value:       req.Value,
		Period:      req.Period,
		Progress:    req.Progress,
		IsCompleted: req.IsCompleted,
	}
	if req.GoalType != nil {
		goalType := entity.GoalType(*req.GoalType)
		input.GoalType = &goalType
	}
	if req.PeriodUnit != nil {
		unit := entity.PeriodUnit(*req.PeriodUnit)
		input.PeriodUnit = &unit
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:goal_id/delete-goal/ requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{GoalID: goalID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Goal with id %d has been deleted.", output.GoalID),
	})
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound, domainerror.ErrCodeUserHasNoGoals:
		return http.StatusNotFound
	case domainerror.ErrCodeEmptyGoalUpdate:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidGoalValue,
		domainerror.ErrCodeInvalidGoalPeriod,
		domainerror.ErrCodeInvalidPeriodUnit,
		domainerror.ErrCodeInvalidGoalType,
		domainerror.ErrCodeInvalidProgress,
		domainerror.ErrCodeInvalidGoalInput,
		domainerror.ErrCodeInvalidGoalID:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
