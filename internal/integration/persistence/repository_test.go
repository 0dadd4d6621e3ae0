package persistence

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sehatin/progress-api/config"
	"github.com/sehatin/progress-api/internal/domain/entity"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
	"github.com/sehatin/progress-api/internal/infra/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver: db.DriverSQLite,
		URL:    filepath.Join(t.TempDir(), "progress.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate())
	t.Cleanup(func() { _ = database.Close() })

	return database.DB()
}

func TestGoalRepository_CRUD(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGoalRepository(gdb)
	ctx := context.Background()

	goal := entity.NewGoal(1, entity.GoalTypeLoseWeight, 10, 4, entity.PeriodUnitWeek, 5, false)
	require.NoError(t, repo.Create(ctx, goal))
	assert.NotZero(t, goal.ID)

	found, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.GoalTypeLoseWeight, found.GoalType)
	assert.Equal(t, entity.PeriodUnitWeek, found.PeriodUnit)
	assert.Equal(t, 50.0, found.ProgressPercentage)

	found.Progress = 10
	found.RefreshPercentage()
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, updated.ProgressPercentage)

	require.NoError(t, repo.Delete(ctx, goal.ID))
	_, err = repo.FindByID(ctx, goal.ID)
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
}

func TestGoalRepository_FindAndDeleteByUserID(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGoalRepository(gdb)
	ctx := context.Background()

	var ids []uint
	for _, v := range []float64{10, 20, 30} {
		g := entity.NewGoal(2, entity.GoalTypeCalorieIntake, v, 1, entity.PeriodUnitDay, 0, false)
		require.NoError(t, repo.Create(ctx, g))
		ids = append(ids, g.ID)
	}
	require.NoError(t, repo.Create(ctx, entity.NewGoal(3, entity.GoalTypeGainWeight, 5, 1, entity.PeriodUnitMonth, 1, false)))

	goals, err := repo.FindByUserID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, goals, 3)
	for i, g := range goals {
		assert.Equal(t, ids[i], g.ID)
	}

	none, err := repo.FindByUserID(ctx, 404)
	require.NoError(t, err)
	assert.Empty(t, none)

	deleted, err := repo.DeleteByUserID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	remaining, err := repo.FindByUserID(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestUserProgressRepository(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserProgressRepository(gdb)
	ctx := context.Background()

	_, err := repo.FindByUserID(ctx, 7)
	assert.ErrorIs(t, err, domainerror.ErrUserProgressNotFound)

	p := entity.NewUserProgress(7)
	require.NoError(t, repo.Create(ctx, p))

	err = repo.Create(ctx, entity.NewUserProgress(7))
	assert.ErrorIs(t, err, domainerror.ErrUserProgressAlreadyExists)

	p.Recompute([]*entity.Goal{
		entity.NewGoal(7, entity.GoalTypeLoseWeight, 10, 4, entity.PeriodUnitWeek, 5, false),
	})
	require.NoError(t, repo.Update(ctx, p))

	require.NoError(t, repo.LockUser(ctx, 7))
	locked, err := repo.FindByUserIDForUpdate(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 50.0, locked.OverallProgressPercentage)
	assert.Equal(t, int64(2), locked.Version)

	err = repo.Update(ctx, entity.NewUserProgress(8))
	assert.ErrorIs(t, err, domainerror.ErrUserProgressNotFound)
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	gdb := newTestDB(t)
	goals := NewGoalRepository(gdb)
	tx := NewTransactor(gdb)
	ctx := context.Background()

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		g := entity.NewGoal(1, entity.GoalTypeLoseWeight, 10, 1, entity.PeriodUnitWeek, 0, false)
		if err := goals.Create(ctx, g); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	found, err := goals.FindByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestTransactor_CommitsAndJoinsOuterTransaction(t *testing.T) {
	gdb := newTestDB(t)
	goals := NewGoalRepository(gdb)
	tx := NewTransactor(gdb)
	ctx := context.Background()

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := goals.Create(ctx, entity.NewGoal(1, entity.GoalTypeLoseWeight, 10, 1, entity.PeriodUnitWeek, 0, false)); err != nil {
			return err
		}
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return goals.Create(ctx, entity.NewGoal(1, entity.GoalTypeGainWeight, 3, 1, entity.PeriodUnitMonth, 0, false))
		})
	})
	require.NoError(t, err)

	found, err := goals.FindByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestNotificationRepository_NewestFirst(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewNotificationRepository(gdb)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, msg := range []string{"oldest", "middle", "newest"} {
		n := entity.NewNotification(5, msg)
		n.Timestamp = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, n))
	}
	require.NoError(t, repo.Create(ctx, entity.NewNotification(6, "someone else")))

	found, err := repo.FindByUserID(ctx, 5)
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, "newest", found[0].Message)
	assert.Equal(t, "oldest", found[2].Message)
}
