package repository

import (
	"context"

	"github.com/turtacn/opspulse/internal/domain/models"
)

// DataRepository abstracts storage for demo data entries.
type DataRepository interface {
	Create(ctx context.Context, entry *models.DataEntry) error
	GetByID(ctx context.Context, id string) (*models.DataEntry, error)
	List(ctx context.Context) ([]*models.DataEntry, error)
	Update(ctx context.Context, entry *models.DataEntry) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) int
	Flush(ctx context.Context) error
}
