package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehatin/progress-api/internal/application/adapter/adaptertest"
	"github.com/sehatin/progress-api/internal/application/usecase/progress"
	"github.com/sehatin/progress-api/internal/domain/entity"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
)

type fixture struct {
	store   *adaptertest.Store
	cache   *adaptertest.Cache
	create  *CreateGoalUseCase
	update  *UpdateGoalUseCase
	delete  *DeleteGoalUseCase
	get     *GetGoalUseCase
	list    *ListGoalsUseCase
	initial *progress.CreateUserProgressUseCase
}

func newFixture() *fixture {
	store := adaptertest.NewStore()
	cache := adaptertest.NewCache()
	progressRepo := store.Progress()
	recalculator := progress.NewRecalculator(store, progressRepo, cache)

	return &fixture{
		store:   store,
		cache:   cache,
		create:  NewCreateGoalUseCase(store, store, recalculator),
		update:  NewUpdateGoalUseCase(store, store, recalculator),
		delete:  NewDeleteGoalUseCase(store, store, recalculator),
		get:     NewGetGoalUseCase(store),
		list:    NewListGoalsUseCase(store),
		initial: progress.NewCreateUserProgressUseCase(store, progressRepo, store, recalculator),
	}
}

func ptr[T any](v T) *T { return &v }

func goalInput(userID int64, value, progressValue float64) CreateGoalInput {
	return CreateGoalInput{
		UserID:     userID,
		GoalType:   entity.GoalTypeLoseWeight,
		Value:      value,
		Period:     4,
		PeriodUnit: entity.PeriodUnitWeek,
		Progress:   ptr(progressValue),
	}
}

func requireGoalCode(t *testing.T, err error, code domainerror.GoalErrorCode) {
	t.Helper()
	var goalErr *domainerror.GoalError
	require.True(t, errors.As(err, &goalErr), "expected GoalError, got %v", err)
	assert.Equal(t, code, goalErr.Code)
}

func TestCreateGoal_WithoutProgressRecord(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	out, err := f.create.Execute(ctx, CreateGoalInput{
		UserID:     1,
		GoalType:   entity.GoalTypeCalorieIntake,
		Value:      2000,
		Period:     1,
		PeriodUnit: entity.PeriodUnitDay,
	})
	require.NoError(t, err)

	assert.NotZero(t, out.Goal.ID)
	assert.Equal(t, 0.0, out.Goal.Progress)
	assert.Equal(t, 0.0, out.Goal.ProgressPercentage)
	assert.False(t, out.Goal.IsCompleted)
	assert.Nil(t, out.UserProgress)
}

func TestCreateGoal_RecomputesOverallProgress(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.initial.Execute(ctx, progress.CreateUserProgressInput{UserID: 1})
	require.NoError(t, err)

	out, err := f.create.Execute(ctx, goalInput(1, 10, 5))
	require.NoError(t, err)
	assert.Equal(t, 50.0, out.Goal.ProgressPercentage)
	require.NotNil(t, out.UserProgress)
	assert.Equal(t, 50.0, out.UserProgress.OverallProgressPercentage)

	out, err = f.create.Execute(ctx, goalInput(1, 4, 4))
	require.NoError(t, err)
	assert.Equal(t, 75.0, out.UserProgress.OverallProgressPercentage)

	cached, err := f.cache.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 75.0, cached.OverallProgressPercentage)
}

func TestCreateGoal_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateGoalInput
		code  domainerror.GoalErrorCode
	}{
		{name: "zero value", input: goalInput(1, 0, 0), code: domainerror.ErrCodeInvalidGoalValue},
		{name: "negative value", input: goalInput(1, -3, 0), code: domainerror.ErrCodeInvalidGoalValue},
		{name: "progress above value", input: goalInput(1, 10, 11), code: domainerror.ErrCodeInvalidProgress},
		{name: "negative progress", input: goalInput(1, 10, -1), code: domainerror.ErrCodeInvalidProgress},
		{
			name: "zero period",
			input: CreateGoalInput{
				UserID: 1, GoalType: entity.GoalTypeGainWeight, Value: 3, Period: 0, PeriodUnit: entity.PeriodUnitMonth,
			},
			code: domainerror.ErrCodeInvalidGoalPeriod,
		},
		{
			name: "unknown goal type",
			input: CreateGoalInput{
				UserID: 1, GoalType: "sleep_more", Value: 8, Period: 1, PeriodUnit: entity.PeriodUnitDay,
			},
			code: domainerror.ErrCodeInvalidGoalType,
		},
		{
			name: "unknown period unit",
			input: CreateGoalInput{
				UserID: 1, GoalType: entity.GoalTypeCalorieBurned, Value: 300, Period: 2, PeriodUnit: "fortnight",
			},
			code: domainerror.ErrCodeInvalidPeriodUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.create.Execute(context.Background(), tt.input)
			requireGoalCode(t, err, tt.code)
			assert.Equal(t, 0, f.store.GoalCount())
		})
	}
}

func TestCreateGoal_RollsBackWhenRecomputeFails(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.initial.Execute(ctx, progress.CreateUserProgressInput{UserID: 1})
	require.NoError(t, err)

	f.store.FailProgressUpdate = errors.New("disk full")
	_, err = f.create.Execute(ctx, goalInput(1, 10, 5))
	require.Error(t, err)
	assert.Equal(t, 0, f.store.GoalCount())
}

func TestUpdateGoal_UsesUpdatedValues(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.initial.Execute(ctx, progress.CreateUserProgressInput{UserID: 1})
	require.NoError(t, err)
	created, err := f.create.Execute(ctx, goalInput(1, 10, 2))
	require.NoError(t, err)

	out, err := f.update.Execute(ctx, UpdateGoalInput{
		GoalID:   created.Goal.ID,
		Value:    ptr(20.0),
		Progress: ptr(15.0),
	})
	require.NoError(t, err)

	assert.Equal(t, 20.0, out.Goal.Value)
	assert.Equal(t, 15.0, out.Goal.Progress)
	assert.Equal(t, 75.0, out.Goal.ProgressPercentage)
	require.NotNil(t, out.UserProgress)
	assert.Equal(t, 75.0, out.UserProgress.OverallProgressPercentage)

	stored, err := f.get.Execute(ctx, GetGoalInput{GoalID: created.Goal.ID})
	require.NoError(t, err)
	assert.Equal(t, 75.0, stored.Goal.ProgressPercentage)
}

func TestUpdateGoal_LeavesOmittedFieldsUnchanged(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.create.Execute(ctx, goalInput(1, 10, 2))
	require.NoError(t, err)

	out, err := f.update.Execute(ctx, UpdateGoalInput{GoalID: created.Goal.ID, IsCompleted: ptr(true)})
	require.NoError(t, err)

	assert.True(t, out.Goal.IsCompleted)
	assert.Equal(t, entity.GoalTypeLoseWeight, out.Goal.GoalType)
	assert.Equal(t, 10.0, out.Goal.Value)
	assert.Equal(t, 2.0, out.Goal.Progress)
	assert.Equal(t, 20.0, out.Goal.ProgressPercentage)
	assert.Nil(t, out.UserProgress)
}

func TestUpdateGoal_Errors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.create.Execute(ctx, goalInput(1, 10, 2))
	require.NoError(t, err)

	_, err = f.update.Execute(ctx, UpdateGoalInput{GoalID: created.Goal.ID})
	requireGoalCode(t, err, domainerror.ErrCodeEmptyGoalUpdate)

	_, err = f.update.Execute(ctx, UpdateGoalInput{GoalID: 999, Progress: ptr(1.0)})
	requireGoalCode(t, err, domainerror.ErrCodeGoalNotFound)
	assert.EqualError(t, err, "Goal with id 999 not found.: goal not found")

	// Progress is bounded by the stored value when value is omitted.
	_, err = f.update.Execute(ctx, UpdateGoalInput{GoalID: created.Goal.ID, Progress: ptr(11.0)})
	requireGoalCode(t, err, domainerror.ErrCodeInvalidProgress)

	_, err = f.update.Execute(ctx, UpdateGoalInput{GoalID: created.Goal.ID, Value: ptr(0.0)})
	requireGoalCode(t, err, domainerror.ErrCodeInvalidGoalValue)

	stored, err := f.get.Execute(ctx, GetGoalInput{GoalID: created.Goal.ID})
	require.NoError(t, err)
	assert.Equal(t, 10.0, stored.Goal.Value)
	assert.Equal(t, 2.0, stored.Goal.Progress)
}

func TestDeleteGoal_RecomputesOverallProgress(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.initial.Execute(ctx, progress.CreateUserProgressInput{UserID: 1})
	require.NoError(t, err)
	first, err := f.create.Execute(ctx, goalInput(1, 10, 10))
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, goalInput(1, 10, 0))
	require.NoError(t, err)

	out, err := f.delete.Execute(ctx, DeleteGoalInput{GoalID: first.Goal.ID})
	require.NoError(t, err)
	assert.Equal(t, first.Goal.ID, out.GoalID)
	require.NotNil(t, out.UserProgress)
	assert.Equal(t, 0.0, out.UserProgress.OverallProgressPercentage)

	_, err = f.get.Execute(ctx, GetGoalInput{GoalID: first.Goal.ID})
	requireGoalCode(t, err, domainerror.ErrCodeGoalNotFound)
}

func TestDeleteGoal_LastGoalResetsToZero(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.initial.Execute(ctx, progress.CreateUserProgressInput{UserID: 1})
	require.NoError(t, err)
	created, err := f.create.Execute(ctx, goalInput(1, 10, 5))
	require.NoError(t, err)

	out, err := f.delete.Execute(ctx, DeleteGoalInput{GoalID: created.Goal.ID})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.UserProgress.OverallProgressPercentage)
}

func TestDeleteGoal_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.delete.Execute(context.Background(), DeleteGoalInput{GoalID: 42})
	requireGoalCode(t, err, domainerror.ErrCodeGoalNotFound)
}

func TestListGoals(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.list.Execute(ctx, ListGoalsInput{UserID: 5})
	requireGoalCode(t, err, domainerror.ErrCodeUserHasNoGoals)
	assert.ErrorContains(t, err, "User with id 5 has not set any goal.")

	a, err := f.create.Execute(ctx, goalInput(5, 10, 1))
	require.NoError(t, err)
	b, err := f.create.Execute(ctx, goalInput(5, 20, 2))
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, goalInput(6, 30, 3))
	require.NoError(t, err)

	out, err := f.list.Execute(ctx, ListGoalsInput{UserID: 5})
	require.NoError(t, err)
	require.Len(t, out.Goals, 2)
	assert.Equal(t, a.Goal.ID, out.Goals[0].ID)
	assert.Equal(t, b.Goal.ID, out.Goals[1].ID)
}
