// Package memory provides in-process implementations of the domain
// repositories, backed by go-cache. Nothing is persisted; process restart
// drops all records by design.
package memory

import (
	"context"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/turtacn/opspulse/internal/config"
	"github.com/turtacn/opspulse/internal/domain/models"
	"github.com/turtacn/opspulse/internal/domain/repository"
	"github.com/turtacn/opspulse/pkg/errors"
	"github.com/turtacn/opspulse/pkg/logger"
)

// UserStore is the in-memory repository.UserRepository implementation.
type UserStore struct {
	cache *gocache.Cache
	log   logger.Logger
}

// NewUserStore creates a user store. A zero TTL keeps entries until they
// are deleted or the store is flushed.
func NewUserStore(cfg *config.StoreConfig, log logger.Logger) repository.UserRepository {
	return &UserStore{
		cache: newCache(cfg),
		log:   log,
	}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if _, found := s.cache.Get(user.ID); found {
		return errors.ErrConflict.WithDetail("id", user.ID)
	}
	s.cache.Set(user.ID, cloneUser(user), gocache.DefaultExpiration)
	s.log.Debug(ctx, "User created", logger.Fields{"user_id": user.ID})
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	v, found := s.cache.Get(id)
	if !found {
		return nil, errors.ErrNotFound.WithDetail("id", id)
	}
	return cloneUser(v.(*models.User)), nil
}

func (s *UserStore) List(ctx context.Context) ([]*models.User, error) {
	items := s.cache.Items()
	users := make([]*models.User, 0, len(items))
	for _, item := range items {
		users = append(users, cloneUser(item.Object.(*models.User)))
	}
	// go-cache iteration order is undefined; present oldest-first.
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (s *UserStore) Update(ctx context.Context, user *models.User) error {
	if _, found := s.cache.Get(user.ID); !found {
		return errors.ErrNotFound.WithDetail("id", user.ID)
	}
	s.cache.Set(user.ID, cloneUser(user), gocache.DefaultExpiration)
	s.log.Debug(ctx, "User updated", logger.Fields{"user_id": user.ID})
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	if _, found := s.cache.Get(id); !found {
		return errors.ErrNotFound.WithDetail("id", id)
	}
	s.cache.Delete(id)
	s.log.Debug(ctx, "User deleted", logger.Fields{"user_id": id})
	return nil
}

func (s *UserStore) Count(ctx context.Context) int {
	return s.cache.ItemCount()
}

func (s *UserStore) Flush(ctx context.Context) error {
	s.cache.Flush()
	return nil
}

func cloneUser(u *models.User) *models.User {
	clone := *u
	return &clone
}

func newCache(cfg *config.StoreConfig) *gocache.Cache {
	ttl := gocache.NoExpiration
	if cfg != nil && cfg.EntryTTL > 0 {
		ttl = time.Duration(cfg.EntryTTL) * time.Second
	}
	cleanup := 10 * time.Minute
	if cfg != nil && cfg.CleanupInterval > 0 {
		cleanup = time.Duration(cfg.CleanupInterval) * time.Second
	}
	return gocache.New(ttl, cleanup)
}
