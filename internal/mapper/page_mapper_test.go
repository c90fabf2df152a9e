package mapper

import (
	"Tecnofit/internal/models"
	"Tecnofit/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPageDTO(t *testing.T) {
	page := &repository.Pagination[models.Exercise]{
		Items:    []models.Exercise{{Name: "a"}, {Name: "b"}, {Name: "c"}},
		Page:     2,
		PerPage:  5,
		Total:    8,
		LastPage: 2,
	}

	result := ToPageDTO(page)

	assert.Len(t, result.Data, 3)
	assert.Equal(t, 2, result.Meta.CurrentPage)
	assert.Equal(t, int64(8), result.Meta.Total)
	require.NotNil(t, result.Meta.From)
	require.NotNil(t, result.Meta.To)
	assert.Equal(t, 6, *result.Meta.From)
	assert.Equal(t, 8, *result.Meta.To)
}

func TestToPageDTO_Empty(t *testing.T) {
	result := ToPageDTO(&repository.Pagination[models.User]{Page: 3, PerPage: 15, LastPage: 1})

	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Nil(t, result.Meta.From)
	assert.Nil(t, result.Meta.To)
}
