package services

import (
	"Tecnofit/internal/models"
	"Tecnofit/internal/repository"
	"context"
	"errors"
	"fmt"
)

var ErrInvalidRole = errors.New("invalid role")

type UserService interface {
	CreateUser(ctx context.Context, data repository.Attributes, role string) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	ListCustomers(ctx context.Context) ([]models.User, error)
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

// CreateUser creates a customer unless another role is given.
func (s *userServiceImpl) CreateUser(ctx context.Context, data repository.Attributes, role string) (*models.User, error) {
	switch role {
	case "", models.RoleCustomer, models.RoleTrainer, models.RoleAdmin:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}
	user, err := s.userRepo.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	if role != "" && role != user.Role {
		if err := s.userRepo.AssignRole(ctx, user, role); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, repository.ErrNotFound)
	}
	return user, nil
}

func (s *userServiceImpl) ListCustomers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAllCustomers(ctx)
}
