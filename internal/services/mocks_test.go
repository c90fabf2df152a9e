package services

import (
	"Tecnofit/internal/config"
	"Tecnofit/internal/models"
	"Tecnofit/internal/repository"
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

// mockGenericRepository uses MethodCalled because testify cannot derive the
// method name of a generic receiver reliably.
type mockGenericRepository[T models.Entity] struct {
	mock.Mock
}

func (m *mockGenericRepository[T]) All(ctx context.Context) ([]T, error) {
	args := m.MethodCalled("All", ctx)
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockGenericRepository[T]) Find(ctx context.Context, id uint) (*T, error) {
	args := m.MethodCalled("Find", ctx, id)
	entity, _ := args.Get(0).(*T)
	return entity, args.Error(1)
}

func (m *mockGenericRepository[T]) FindOneBy(ctx context.Context, criteria map[string]interface{}) (*T, error) {
	args := m.MethodCalled("FindOneBy", ctx, criteria)
	entity, _ := args.Get(0).(*T)
	return entity, args.Error(1)
}

func (m *mockGenericRepository[T]) FindIn(ctx context.Context, key string, values []interface{}) ([]T, error) {
	args := m.MethodCalled("FindIn", ctx, key, values)
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockGenericRepository[T]) FindBy(ctx context.Context, criteria repository.SearchCriteria) (*repository.Pagination[T], error) {
	args := m.MethodCalled("FindBy", ctx, criteria)
	page, _ := args.Get(0).(*repository.Pagination[T])
	return page, args.Error(1)
}

func (m *mockGenericRepository[T]) Create(ctx context.Context, data repository.Attributes) (*T, error) {
	args := m.MethodCalled("Create", ctx, data)
	entity, _ := args.Get(0).(*T)
	return entity, args.Error(1)
}

func (m *mockGenericRepository[T]) Insert(ctx context.Context, data []repository.Attributes) error {
	args := m.MethodCalled("Insert", ctx, data)
	return args.Error(0)
}

func (m *mockGenericRepository[T]) Update(ctx context.Context, id uint, data repository.Attributes) (*T, error) {
	args := m.MethodCalled("Update", ctx, id, data)
	entity, _ := args.Get(0).(*T)
	return entity, args.Error(1)
}

func (m *mockGenericRepository[T]) Delete(ctx context.Context, entity *T) (bool, error) {
	args := m.MethodCalled("Delete", ctx, entity)
	return args.Bool(0), args.Error(1)
}

func (m *mockGenericRepository[T]) FindDeleted(ctx context.Context) ([]T, error) {
	args := m.MethodCalled("FindDeleted", ctx)
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockGenericRepository[T]) Purge(ctx context.Context, before time.Time) (int64, error) {
	args := m.MethodCalled("Purge", ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockExerciseRepository struct {
	mockGenericRepository[models.Exercise]
}

func (m *MockExerciseRepository) DeleteAllExercisesByTrainingID(ctx context.Context, trainingID uint) (int64, error) {
	args := m.MethodCalled("DeleteAllExercisesByTrainingID", ctx, trainingID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTrainingRepository struct {
	mockGenericRepository[models.Training]
}

func (m *MockTrainingRepository) FindWithExercises(ctx context.Context, id uint) (*models.Training, error) {
	args := m.MethodCalled("FindWithExercises", ctx, id)
	training, _ := args.Get(0).(*models.Training)
	return training, args.Error(1)
}

type MockUserRepository struct {
	mockGenericRepository[models.User]
}

func (m *MockUserRepository) GetAllCustomers(ctx context.Context) ([]models.User, error) {
	args := m.MethodCalled("GetAllCustomers", ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) AssignRole(ctx context.Context, user *models.User, role string) error {
	args := m.MethodCalled("AssignRole", ctx, user, role)
	return args.Error(0)
}

func testLogService() LogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return LogService{Log: log}
}

func testConfiguration() *config.Configuration {
	return &config.Configuration{
		Cleanup: config.CleanupConfig{Retention: "24h"},
	}
}
