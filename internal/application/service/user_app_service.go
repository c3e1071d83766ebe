package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/turtacn/opspulse/internal/application/dto"
	"github.com/turtacn/opspulse/internal/domain/models"
	"github.com/turtacn/opspulse/internal/domain/repository"
	"github.com/turtacn/opspulse/pkg/logger"
)

// UserAppService owns the use cases behind the /api/users endpoints.
type UserAppService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) int
}

type userAppService struct {
	repo repository.UserRepository
	log  logger.Logger
}

// NewUserAppService creates the user application service.
func NewUserAppService(repo repository.UserRepository, log logger.Logger) UserAppService {
	return &userAppService{
		repo: repo,
		log:  log,
	}
}

func (s *userAppService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	now := time.Now().UTC()
	role := req.Role
	if role == "" {
		role = "member"
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "User created", logger.Fields{"user_id": user.ID})
	return user, nil
}

func (s *userAppService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userAppService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.List(ctx)
}

func (s *userAppService) UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "User updated", logger.Fields{"user_id": user.ID})
	return user, nil
}

func (s *userAppService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "User deleted", logger.Fields{"user_id": id})
	return nil
}

func (s *userAppService) CountUsers(ctx context.Context) int {
	return s.repo.Count(ctx)
}
