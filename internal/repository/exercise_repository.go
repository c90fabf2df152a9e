package repository

import (
	"Tecnofit/internal/config"
	"Tecnofit/internal/models"
	"context"
	"gorm.io/gorm"
)

type ExerciseRepository interface {
	GenericRepository[models.Exercise]
	DeleteAllExercisesByTrainingID(ctx context.Context, trainingID uint) (int64, error)
}

type ExerciseRepositoryImpl struct {
	GenericRepository[models.Exercise]
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB, cfg *config.Configuration) ExerciseRepository {
	return &ExerciseRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Exercise](db, cfg.Pagination),
		db:                db,
	}
}

// DeleteAllExercisesByTrainingID soft deletes every exercise of the training
// and reports how many rows were affected.
func (r *ExerciseRepositoryImpl) DeleteAllExercisesByTrainingID(ctx context.Context, trainingID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("training_id = ?", trainingID).Delete(&models.Exercise{})
	return result.RowsAffected, result.Error
}
