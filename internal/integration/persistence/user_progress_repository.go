package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sehatin/progress-api/internal/application/adapter"
	"github.com/sehatin/progress-api/internal/domain/entity"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
	"github.com/sehatin/progress-api/internal/integration/persistence/model"
)

// userProgressRepository implements the adapter.UserProgressRepository interface.
type userProgressRepository struct {
	db *gorm.DB
}

// NewUserProgressRepository creates a new user progress repository instance.
func NewUserProgressRepository(db *gorm.DB) adapter.UserProgressRepository {
	return &userProgressRepository{
		db: db,
	}
}

// Create inserts a progress row.
func (r *userProgressRepository) Create(ctx context.Context, progress *entity.UserProgress) error {
	result := dbFromContext(ctx, r.db).Create(model.UserProgressFromEntity(progress))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrUserProgressAlreadyExists
		}
		return result.Error
	}
	return nil
}

// LockUser takes a transaction-scoped advisory lock on the user's progress.
// SQLite serializes writers on its own, so the lock only exists on PostgreSQL.
func (r *userProgressRepository) LockUser(ctx context.Context, userID int64) error {
	db := dbFromContext(ctx, r.db)
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	return db.Exec("SELECT pg_advisory_xact_lock(?)", userID).Error
}

// FindByUserID retrieves the progress row of a user.
func (r *userProgressRepository) FindByUserID(ctx context.Context, userID int64) (*entity.UserProgress, error) {
	return r.find(dbFromContext(ctx, r.db), userID)
}

// FindByUserIDForUpdate retrieves the progress row of a user with a row lock.
// SQLite has no row locks and serializes writers on its own.
func (r *userProgressRepository) FindByUserIDForUpdate(ctx context.Context, userID int64) (*entity.UserProgress, error) {
	db := dbFromContext(ctx, r.db)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.find(db, userID)
}

func (r *userProgressRepository) find(db *gorm.DB, userID int64) (*entity.UserProgress, error) {
	var progressModel model.UserProgressModel
	result := db.Where("user_id = ?", userID).First(&progressModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserProgressNotFound
		}
		return nil, result.Error
	}
	return progressModel.ToEntity(), nil
}

// Update persists the overall percentage of an existing progress row.
func (r *userProgressRepository) Update(ctx context.Context, progress *entity.UserProgress) error {
	result := dbFromContext(ctx, r.db).
		Model(&model.UserProgressModel{}).
		Where("user_id = ?", progress.UserID).
		Updates(map[string]interface{}{
			"overall_progress_percentage": progress.OverallProgressPercentage,
			"version":                     progress.Version,
			"updated_at":                  progress.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrUserProgressNotFound
	}
	return nil
}
