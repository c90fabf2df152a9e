package handlers

import (
	"Tecnofit/internal/models"
	"Tecnofit/internal/repository"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExerciseService struct {
	mock.Mock
}

func (m *MockExerciseService) ListExercises(ctx context.Context, criteria repository.SearchCriteria) (*repository.Pagination[models.Exercise], error) {
	args := m.Called(criteria)
	page, _ := args.Get(0).(*repository.Pagination[models.Exercise])
	return page, args.Error(1)
}

func (m *MockExerciseService) GetExercise(ctx context.Context, id uint) (*models.Exercise, error) {
	args := m.Called(id)
	exercise, _ := args.Get(0).(*models.Exercise)
	return exercise, args.Error(1)
}

func (m *MockExerciseService) CreateExercise(ctx context.Context, data repository.Attributes) (*models.Exercise, error) {
	args := m.Called(data)
	exercise, _ := args.Get(0).(*models.Exercise)
	return exercise, args.Error(1)
}

func (m *MockExerciseService) CreateExercises(ctx context.Context, data []repository.Attributes) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockExerciseService) UpdateExercise(ctx context.Context, id uint, data repository.Attributes) (*models.Exercise, error) {
	args := m.Called(id, data)
	exercise, _ := args.Get(0).(*models.Exercise)
	return exercise, args.Error(1)
}

func (m *MockExerciseService) DeleteExercise(ctx context.Context, id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockExerciseService) DeleteExercisesByTraining(ctx context.Context, trainingID uint) (int64, error) {
	args := m.Called(trainingID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTrainingService struct {
	mock.Mock
}

func (m *MockTrainingService) ListTrainings(ctx context.Context, criteria repository.SearchCriteria) (*repository.Pagination[models.Training], error) {
	args := m.Called(criteria)
	page, _ := args.Get(0).(*repository.Pagination[models.Training])
	return page, args.Error(1)
}

func (m *MockTrainingService) GetTraining(ctx context.Context, id uint) (*models.Training, error) {
	args := m.Called(id)
	training, _ := args.Get(0).(*models.Training)
	return training, args.Error(1)
}

func (m *MockTrainingService) CreateTraining(ctx context.Context, data repository.Attributes) (*models.Training, error) {
	args := m.Called(data)
	training, _ := args.Get(0).(*models.Training)
	return training, args.Error(1)
}

func (m *MockTrainingService) UpdateTraining(ctx context.Context, id uint, data repository.Attributes) (*models.Training, error) {
	args := m.Called(id, data)
	training, _ := args.Get(0).(*models.Training)
	return training, args.Error(1)
}

func (m *MockTrainingService) DeleteTraining(ctx context.Context, id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, data repository.Attributes, role string) (*models.User, error) {
	args := m.Called(data, role)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserService) ListCustomers(ctx context.Context) ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

type MockPurge struct {
	mock.Mock
}

func (m *MockPurge) ForcePurge() error {
	return m.Called().Error(0)
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}
