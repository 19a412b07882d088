package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-book/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-book/internal/models"
)

const catalogTTL = 5 * time.Minute

// CatalogCache is a read-through cache over the catalog lookups of the
// appointment repository. Appointment reads and writes pass straight
// through; only the slow-changing referenced entities are cached.
// Inside Transaction the inner repository is used directly, so the
// conflict-critical path never sees stale data.
type CatalogCache struct {
	domain.Repository
	rdb *redis.Client
	log *zap.Logger
}

func NewCatalogCache(repo domain.Repository, rdb *redis.Client, log *zap.Logger) *CatalogCache {
	return &CatalogCache{
		Repository: repo,
		rdb:        rdb,
		log:        log,
	}
}

func (c *CatalogCache) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var svc models.Service
	if c.fetch(ctx, "service:"+id.String(), &svc) {
		return &svc, nil
	}

	found, err := c.Repository.GetService(ctx, id)
	if err != nil || found == nil {
		return found, err
	}

	c.store(ctx, "service:"+id.String(), found)
	return found, nil
}

func (c *CatalogCache) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if c.fetch(ctx, "user:"+id.String(), &user) {
		return &user, nil
	}

	found, err := c.Repository.GetUser(ctx, id)
	if err != nil || found == nil {
		return found, err
	}

	c.store(ctx, "user:"+id.String(), found)
	return found, nil
}

func (c *CatalogCache) GetBarbershop(ctx context.Context, id uuid.UUID) (*models.Barbershop, error) {
	var shop models.Barbershop
	if c.fetch(ctx, "barbershop:"+id.String(), &shop) {
		return &shop, nil
	}

	found, err := c.Repository.GetBarbershop(ctx, id)
	if err != nil || found == nil {
		return found, err
	}

	c.store(ctx, "barbershop:"+id.String(), found)
	return found, nil
}

// InvalidateService is called by catalog write paths. Appointments keep the
// price captured at booking time, so stale reads here can only affect new
// bookings inside the TTL window.
func (c *CatalogCache) InvalidateService(ctx context.Context, id uuid.UUID) {
	c.invalidate(ctx, "service:"+id.String())
}

func (c *CatalogCache) InvalidateUser(ctx context.Context, id uuid.UUID) {
	c.invalidate(ctx, "user:"+id.String())
}

func (c *CatalogCache) InvalidateBarbershop(ctx context.Context, id uuid.UUID) {
	c.invalidate(ctx, "barbershop:"+id.String())
}

func (c *CatalogCache) fetch(ctx context.Context, key string, dest any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(b, dest) == nil
}

func (c *CatalogCache) store(ctx context.Context, key string, val any) {
	b, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, catalogTTL).Err(); err != nil {
		c.log.Debug("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *CatalogCache) invalidate(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.log.Debug("cache del failed", zap.String("key", key), zap.Error(err))
	}
}
