package repository

import (
	"Tecnofit/internal/config"
	"Tecnofit/internal/models"
	"context"
	"gorm.io/gorm"
)

type UserRepository interface {
	GenericRepository[models.User]
	GetAllCustomers(ctx context.Context) ([]models.User, error)
	AssignRole(ctx context.Context, user *models.User, role string) error
}

type UserRepositoryImpl struct {
	GenericRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB, cfg *config.Configuration) UserRepository {
	return &UserRepositoryImpl{
		GenericRepository: NewGenericRepository[models.User](db, cfg.Pagination),
		db:                db,
	}
}

func (r *UserRepositoryImpl) GetAllCustomers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := r.db.WithContext(ctx).Where("role = ?", models.RoleCustomer).Order("id").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// AssignRole writes the role column directly; role is never mass-assignable.
func (r *UserRepositoryImpl) AssignRole(ctx context.Context, user *models.User, role string) error {
	if err := r.db.WithContext(ctx).Model(user).Update("role", role).Error; err != nil {
		return err
	}
	user.Role = role
	return nil
}
