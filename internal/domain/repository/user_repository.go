package repository

import (
	"context"

	"github.com/turtacn/opspulse/internal/domain/models"
)

// UserRepository abstracts storage for demo user records.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) int
	Flush(ctx context.Context) error
}
