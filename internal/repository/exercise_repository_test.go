package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseRepository_DeleteAllExercisesByTrainingID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExerciseRepository(db, testConfig())
	ctx := context.Background()
	for _, trainingID := range []uint{1, 1, 1, 2, 2} {
		_, err := repo.Create(ctx, Attributes{"name": "Burpee", "training_id": trainingID})
		require.NoError(t, err)
	}

	deleted, err := repo.DeleteAllExercisesByTrainingID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	remaining, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
	for _, exercise := range remaining {
		assert.Equal(t, uint(2), exercise.TrainingID)
	}

	deleted, err = repo.DeleteAllExercisesByTrainingID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestExerciseRepository_DeleteAllExercisesByUnknownTraining(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExerciseRepository(db, testConfig())

	deleted, err := repo.DeleteAllExercisesByTrainingID(context.Background(), 99)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
