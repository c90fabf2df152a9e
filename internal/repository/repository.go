package repository

import (
	"Tecnofit/internal/models"
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")
)

// Attributes maps column names to values supplied by a caller. Keys outside
// the entity's fillable list are dropped on write.
type Attributes map[string]interface{}

// SearchCriteria maps column names to raw filter values. A value holding
// commas matches any of its tokens. The page and per_page keys control
// pagination and never become filters.
type SearchCriteria map[string]string

type Pagination[T any] struct {
	Items    []T
	Page     int
	PerPage  int
	Total    int64
	LastPage int
}

func newPagination[T any](page, perPage int) *Pagination[T] {
	return &Pagination[T]{Items: make([]T, 0), Page: page, PerPage: perPage, LastPage: 1}
}

type GenericRepository[T models.Entity] interface {
	All(ctx context.Context) ([]T, error)
	Find(ctx context.Context, id uint) (*T, error)
	FindOneBy(ctx context.Context, criteria map[string]interface{}) (*T, error)
	FindIn(ctx context.Context, key string, values []interface{}) ([]T, error)
	FindBy(ctx context.Context, criteria SearchCriteria) (*Pagination[T], error)
	Create(ctx context.Context, data Attributes) (*T, error)
	Insert(ctx context.Context, data []Attributes) error
	Update(ctx context.Context, id uint, data Attributes) (*T, error)
	Delete(ctx context.Context, entity *T) (bool, error)
	FindDeleted(ctx context.Context) ([]T, error)
	Purge(ctx context.Context, before time.Time) (int64, error)
}
