package services

import (
	"Tecnofit/internal/models"
	"Tecnofit/internal/repository"
	"context"
	"fmt"
)

type ExerciseService interface {
	ListExercises(ctx context.Context, criteria repository.SearchCriteria) (*repository.Pagination[models.Exercise], error)
	GetExercise(ctx context.Context, id uint) (*models.Exercise, error)
	CreateExercise(ctx context.Context, data repository.Attributes) (*models.Exercise, error)
	CreateExercises(ctx context.Context, data []repository.Attributes) error
	UpdateExercise(ctx context.Context, id uint, data repository.Attributes) (*models.Exercise, error)
	DeleteExercise(ctx context.Context, id uint) error
	DeleteExercisesByTraining(ctx context.Context, trainingID uint) (int64, error)
}

func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseServiceImpl{exerciseRepo: exerciseRepo}
}

type exerciseServiceImpl struct {
	exerciseRepo repository.ExerciseRepository
}

func (s *exerciseServiceImpl) ListExercises(ctx context.Context, criteria repository.SearchCriteria) (*repository.Pagination[models.Exercise], error) {
	return s.exerciseRepo.FindBy(ctx, criteria)
}

func (s *exerciseServiceImpl) GetExercise(ctx context.Context, id uint) (*models.Exercise, error) {
	exercise, err := s.exerciseRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, fmt.Errorf("exercise %d: %w", id, repository.ErrNotFound)
	}
	return exercise, nil
}

func (s *exerciseServiceImpl) CreateExercise(ctx context.Context, data repository.Attributes) (*models.Exercise, error) {
	return s.exerciseRepo.Create(ctx, data)
}

func (s *exerciseServiceImpl) CreateExercises(ctx context.Context, data []repository.Attributes) error {
	return s.exerciseRepo.Insert(ctx, data)
}

func (s *exerciseServiceImpl) UpdateExercise(ctx context.Context, id uint, data repository.Attributes) (*models.Exercise, error) {
	return s.exerciseRepo.Update(ctx, id, data)
}

func (s *exerciseServiceImpl) DeleteExercise(ctx context.Context, id uint) error {
	exercise, err := s.GetExercise(ctx, id)
	if err != nil {
		return err
	}
	deleted, err := s.exerciseRepo.Delete(ctx, exercise)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("exercise %d: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (s *exerciseServiceImpl) DeleteExercisesByTraining(ctx context.Context, trainingID uint) (int64, error) {
	return s.exerciseRepo.DeleteAllExercisesByTrainingID(ctx, trainingID)
}
