package memory

import (
	"context"
	"sort"

	gocache "github.com/patrickmn/go-cache"
	"github.com/turtacn/opspulse/internal/config"
	"github.com/turtacn/opspulse/internal/domain/models"
	"github.com/turtacn/opspulse/internal/domain/repository"
	"github.com/turtacn/opspulse/pkg/errors"
	"github.com/turtacn/opspulse/pkg/logger"
)

// DataStore is the in-memory repository.DataRepository implementation.
type DataStore struct {
	cache *gocache.Cache
	log   logger.Logger
}

// NewDataStore creates a data-entry store with the same TTL semantics as
// the user store.
func NewDataStore(cfg *config.StoreConfig, log logger.Logger) repository.DataRepository {
	return &DataStore{
		cache: newCache(cfg),
		log:   log,
	}
}

func (s *DataStore) Create(ctx context.Context, entry *models.DataEntry) error {
	if _, found := s.cache.Get(entry.ID); found {
		return errors.ErrConflict.WithDetail("id", entry.ID)
	}
	s.cache.Set(entry.ID, cloneEntry(entry), gocache.DefaultExpiration)
	s.log.Debug(ctx, "Data entry created", logger.Fields{"entry_id": entry.ID})
	return nil
}

func (s *DataStore) GetByID(ctx context.Context, id string) (*models.DataEntry, error) {
	v, found := s.cache.Get(id)
	if !found {
		return nil, errors.ErrNotFound.WithDetail("id", id)
	}
	return cloneEntry(v.(*models.DataEntry)), nil
}

func (s *DataStore) List(ctx context.Context) ([]*models.DataEntry, error) {
	items := s.cache.Items()
	entries := make([]*models.DataEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, cloneEntry(item.Object.(*models.DataEntry)))
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

func (s *DataStore) Update(ctx context.Context, entry *models.DataEntry) error {
	if _, found := s.cache.Get(entry.ID); !found {
		return errors.ErrNotFound.WithDetail("id", entry.ID)
	}
	s.cache.Set(entry.ID, cloneEntry(entry), gocache.DefaultExpiration)
	s.log.Debug(ctx, "Data entry updated", logger.Fields{"entry_id": entry.ID})
	return nil
}

func (s *DataStore) Delete(ctx context.Context, id string) error {
	if _, found := s.cache.Get(id); !found {
		return errors.ErrNotFound.WithDetail("id", id)
	}
	s.cache.Delete(id)
	s.log.Debug(ctx, "Data entry deleted", logger.Fields{"entry_id": id})
	return nil
}

func (s *DataStore) Count(ctx context.Context) int {
	return s.cache.ItemCount()
}

func (s *DataStore) Flush(ctx context.Context) error {
	s.cache.Flush()
	return nil
}

func cloneEntry(e *models.DataEntry) *models.DataEntry {
	clone := *e
	if e.Value != nil {
		clone.Value = make(map[string]interface{}, len(e.Value))
		for k, v := range e.Value {
			clone.Value[k] = v
		}
	}
	return &clone
}
