package repository

import (
	"Tecnofit/internal/config"
	"Tecnofit/internal/models"
	"context"
	"errors"
	"gorm.io/gorm"
)

type TrainingRepository interface {
	GenericRepository[models.Training]
	FindWithExercises(ctx context.Context, id uint) (*models.Training, error)
}

type TrainingRepositoryImpl struct {
	GenericRepository[models.Training]
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB, cfg *config.Configuration) TrainingRepository {
	return &TrainingRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Training](db, cfg.Pagination),
		db:                db,
	}
}

func (r *TrainingRepositoryImpl) FindWithExercises(ctx context.Context, id uint) (*models.Training, error) {
	var training models.Training
	err := r.db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		First(&training, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &training, nil
}
