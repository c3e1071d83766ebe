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

// DataAppService owns the use cases behind the /api/data endpoints.
type DataAppService interface {
	CreateEntry(ctx context.Context, req *dto.CreateDataRequest) (*models.DataEntry, error)
	GetEntry(ctx context.Context, id string) (*models.DataEntry, error)
	ListEntries(ctx context.Context) ([]*models.DataEntry, error)
	UpdateEntry(ctx context.Context, id string, req *dto.UpdateDataRequest) (*models.DataEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	CountEntries(ctx context.Context) int
}

type dataAppService struct {
	repo repository.DataRepository
	log  logger.Logger
}

// NewDataAppService creates the data application service.
func NewDataAppService(repo repository.DataRepository, log logger.Logger) DataAppService {
	return &dataAppService{
		repo: repo,
		log:  log,
	}
}

func (s *dataAppService) CreateEntry(ctx context.Context, req *dto.CreateDataRequest) (*models.DataEntry, error) {
	now := time.Now().UTC()
	entry := &models.DataEntry{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Value:     req.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "Data entry created", logger.Fields{"entry_id": entry.ID})
	return entry, nil
}

func (s *dataAppService) GetEntry(ctx context.Context, id string) (*models.DataEntry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *dataAppService) ListEntries(ctx context.Context) ([]*models.DataEntry, error) {
	return s.repo.List(ctx)
}

func (s *dataAppService) UpdateEntry(ctx context.Context, id string, req *dto.UpdateDataRequest) (*models.DataEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		entry.Name = req.Name
	}
	if req.Value != nil {
		entry.Value = req.Value
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "Data entry updated", logger.Fields{"entry_id": entry.ID})
	return entry, nil
}

func (s *dataAppService) DeleteEntry(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "Data entry deleted", logger.Fields{"entry_id": id})
	return nil
}

func (s *dataAppService) CountEntries(ctx context.Context) int {
	return s.repo.Count(ctx)
}
