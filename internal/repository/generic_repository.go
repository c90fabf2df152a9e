package repository

import (
	"Tecnofit/internal/config"
	"Tecnofit/internal/models"
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

const insertBatchSize = 100

var byPrimaryKey = clause.OrderByColumn{
	Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey},
}

type GenericRepositoryImpl[T models.Entity] struct {
	db         *gorm.DB
	perPage    int
	maxPerPage int
}

// NewGenericRepository binds a repository to T. pagination.PerPage is the page
// size used by FindBy when the criteria carry none and pagination.MaxPerPage
// caps what a caller may ask for; values below 1 select the defaults.
func NewGenericRepository[T models.Entity](db *gorm.DB, pagination config.PaginationConfig) GenericRepository[T] {
	perPage, maxPerPage := pagination.PerPage, pagination.MaxPerPage
	if perPage < 1 {
		perPage = config.DefaultPerPage
	}
	if maxPerPage < 1 {
		maxPerPage = config.DefaultMaxPerPage
	}
	if maxPerPage < perPage {
		maxPerPage = perPage
	}
	return &GenericRepositoryImpl[T]{db: db, perPage: perPage, maxPerPage: maxPerPage}
}

func (r *GenericRepositoryImpl[T]) All(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Order(byPrimaryKey).Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) Find(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *GenericRepositoryImpl[T]) FindOneBy(ctx context.Context, criteria map[string]interface{}) (*T, error) {
	sch, err := r.schema()
	if err != nil {
		return nil, err
	}
	exprs := make([]clause.Expression, 0, len(criteria))
	for key, value := range criteria {
		column, err := lookupColumn(sch, key)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: column}, Value: value})
	}

	var entity T
	tx := r.db.WithContext(ctx)
	if len(exprs) > 0 {
		tx = tx.Clauses(clause.Where{Exprs: exprs})
	}
	err = tx.First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *GenericRepositoryImpl[T]) FindIn(ctx context.Context, key string, values []interface{}) ([]T, error) {
	sch, err := r.schema()
	if err != nil {
		return nil, err
	}
	column, err := lookupColumn(sch, key)
	if err != nil {
		return nil, err
	}
	entities := make([]T, 0)
	if len(values) == 0 {
		return entities, nil
	}
	err = r.db.WithContext(ctx).
		Where(clause.IN{Column: clause.Column{Table: clause.CurrentTable, Name: column}, Values: values}).
		Order(byPrimaryKey).
		Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) FindBy(ctx context.Context, criteria SearchCriteria) (*Pagination[T], error) {
	sch, err := r.schema()
	if err != nil {
		return nil, err
	}
	query := ParseCriteria(criteria, r.perPage, r.maxPerPage)
	exprs := make([]clause.Expression, 0, len(query.Filters))
	for _, filter := range query.Filters {
		column, err := lookupColumn(sch, filter.Field)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, filter.Expression(column))
	}
	filtered := func(db *gorm.DB) *gorm.DB {
		if len(exprs) == 0 {
			return db
		}
		return db.Clauses(clause.Where{Exprs: exprs})
	}

	pagination := newPagination[T](query.Page, query.PerPage)
	var total int64
	if err := r.db.WithContext(ctx).Model(new(T)).Scopes(filtered).Count(&total).Error; err != nil {
		return nil, err
	}
	pagination.Total = total
	pagination.LastPage = query.LastPage(total)
	if total == 0 || query.Page > pagination.LastPage {
		return pagination, nil
	}
	err = r.db.WithContext(ctx).
		Scopes(filtered).
		Order(byPrimaryKey).
		Limit(query.PerPage).
		Offset(query.Offset()).
		Find(&pagination.Items).Error
	if err != nil {
		return nil, err
	}
	return pagination, nil
}

func (r *GenericRepositoryImpl[T]) Create(ctx context.Context, data Attributes) (*T, error) {
	entity := new(T)
	if _, err := r.fill(ctx, entity, data); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

// Insert filters every row independently and writes them in batches. The
// input slice and its maps are left untouched.
func (r *GenericRepositoryImpl[T]) Insert(ctx context.Context, data []Attributes) error {
	if len(data) == 0 {
		return nil
	}
	entities := make([]T, len(data))
	for i, item := range data {
		if _, err := r.fill(ctx, &entities[i], item); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return r.db.WithContext(ctx).CreateInBatches(&entities, insertBatchSize).Error
}

func (r *GenericRepositoryImpl[T]) Update(ctx context.Context, id uint, data Attributes) (*T, error) {
	entity, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	columns, err := r.fill(ctx, entity, data)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return entity, nil
	}
	if err := r.db.WithContext(ctx).Model(entity).Select(columns).Updates(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *GenericRepositoryImpl[T]) Delete(ctx context.Context, entity *T) (bool, error) {
	result := r.db.WithContext(ctx).Delete(entity)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GenericRepositoryImpl[T]) FindDeleted(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Order(byPrimaryKey).
		Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) Purge(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Delete(new(T))
	return result.RowsAffected, result.Error
}

func (r *GenericRepositoryImpl[T]) schema() (*schema.Schema, error) {
	stmt := &gorm.Statement{DB: r.db}
	if err := stmt.Parse(new(T)); err != nil {
		return nil, err
	}
	return stmt.Schema, nil
}

// fill copies the fillable keys of data onto entity and returns the columns
// it wrote. Everything else in data is ignored.
func (r *GenericRepositoryImpl[T]) fill(ctx context.Context, entity *T, data Attributes) ([]string, error) {
	sch, err := r.schema()
	if err != nil {
		return nil, err
	}
	target := reflect.ValueOf(entity).Elem()
	columns := make([]string, 0, len(data))
	for key, value := range data {
		if !models.IsFillable(*entity, key) {
			continue
		}
		field := sch.LookUpField(key)
		if field == nil || field.DBName == "" {
			continue
		}
		if field.DataType == schema.Uint && negative(value) {
			return nil, fmt.Errorf("%w: %s: negative value for unsigned column", ErrInvalidValue, key)
		}
		if err := field.Set(ctx, target, value); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, key, err)
		}
		columns = append(columns, field.DBName)
	}
	return columns, nil
}

func negative(value interface{}) bool {
	switch v := value.(type) {
	case int:
		return v < 0
	case int8:
		return v < 0
	case int16:
		return v < 0
	case int32:
		return v < 0
	case int64:
		return v < 0
	case float32:
		return v < 0
	case float64:
		return v < 0
	}
	return false
}

func lookupColumn(sch *schema.Schema, name string) (string, error) {
	field := sch.LookUpField(name)
	if field == nil || field.DBName == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return field.DBName, nil
}
