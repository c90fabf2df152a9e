package services

import (
	"Tecnofit/internal/models"
	"Tecnofit/internal/repository"
	"context"
	"fmt"
	"github.com/sirupsen/logrus"
)

type TrainingService interface {
	ListTrainings(ctx context.Context, criteria repository.SearchCriteria) (*repository.Pagination[models.Training], error)
	GetTraining(ctx context.Context, id uint) (*models.Training, error)
	CreateTraining(ctx context.Context, data repository.Attributes) (*models.Training, error)
	UpdateTraining(ctx context.Context, id uint, data repository.Attributes) (*models.Training, error)
	DeleteTraining(ctx context.Context, id uint) error
}

func NewTrainingService(
	trainingRepo repository.TrainingRepository,
	exerciseRepo repository.ExerciseRepository,
	logService LogService,
) TrainingService {
	return &trainingServiceImpl{
		trainingRepo: trainingRepo,
		exerciseRepo: exerciseRepo,
		logService:   logService,
	}
}

type trainingServiceImpl struct {
	trainingRepo repository.TrainingRepository
	exerciseRepo repository.ExerciseRepository
	logService   LogService
}

func (s *trainingServiceImpl) ListTrainings(ctx context.Context, criteria repository.SearchCriteria) (*repository.Pagination[models.Training], error) {
	return s.trainingRepo.FindBy(ctx, criteria)
}

func (s *trainingServiceImpl) GetTraining(ctx context.Context, id uint) (*models.Training, error) {
	training, err := s.trainingRepo.FindWithExercises(ctx, id)
	if err != nil {
		return nil, err
	}
	if training == nil {
		return nil, fmt.Errorf("training %d: %w", id, repository.ErrNotFound)
	}
	return training, nil
}

func (s *trainingServiceImpl) CreateTraining(ctx context.Context, data repository.Attributes) (*models.Training, error) {
	return s.trainingRepo.Create(ctx, data)
}

func (s *trainingServiceImpl) UpdateTraining(ctx context.Context, id uint, data repository.Attributes) (*models.Training, error) {
	return s.trainingRepo.Update(ctx, id, data)
}

// DeleteTraining removes the training's exercises before the training itself.
func (s *trainingServiceImpl) DeleteTraining(ctx context.Context, id uint) error {
	training, err := s.trainingRepo.Find(ctx, id)
	if err != nil {
		return err
	}
	if training == nil {
		return fmt.Errorf("training %d: %w", id, repository.ErrNotFound)
	}
	count, err := s.exerciseRepo.DeleteAllExercisesByTrainingID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete exercises of training %d: %w", id, err)
	}
	if _, err := s.trainingRepo.Delete(ctx, training); err != nil {
		return err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"training":  id,
		"exercises": count,
	}).Info("training deleted")
	return nil
}
