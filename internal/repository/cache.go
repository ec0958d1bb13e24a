package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/service"
)

const hotspotsKey = "hotspots:current"

// Cache - кэш карточек аварий и списка очагов в Redis
type Cache struct {
	redisClient *redis.Client
	outageTTL   time.Duration
}

var (
	_ service.OutageCache  = (*Cache)(nil)
	_ service.HotspotCache = (*Cache)(nil)
)

func NewCache(redisClient *redis.Client, outageTTL time.Duration) *Cache {
	return &Cache{
		redisClient: redisClient,
		outageTTL:   outageTTL,
	}
}

func outageKey(id int64) string {
	return fmt.Sprintf("outage:%d", id)
}

// GetOutage пытается получить аварию из Redis
func (c *Cache) GetOutage(ctx context.Context, id int64) (*models.Outage, error) {
	val, err := c.redisClient.Get(ctx, outageKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get outage from cache: %w", err)
	}

	outage := &models.Outage{}
	if err := json.Unmarshal(val, outage); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outage from cache: %w", err)
	}
	return outage, nil
}

// SetOutage сохраняет аварию в Redis
func (c *Cache) SetOutage(ctx context.Context, outage *models.Outage) error {
	val, err := json.Marshal(outage)
	if err != nil {
		return fmt.Errorf("failed to marshal outage for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, outageKey(outage.ID), val, c.outageTTL).Err(); err != nil {
		return fmt.Errorf("failed to set outage in cache: %w", err)
	}
	return nil
}

// InvalidateOutage удаляет аварию из кэша
func (c *Cache) InvalidateOutage(ctx context.Context, id int64) error {
	if err := c.redisClient.Del(ctx, outageKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate outage cache: %w", err)
	}
	return nil
}

func (c *Cache) GetHotspots(ctx context.Context) ([]models.Hotspot, error) {
	val, err := c.redisClient.Get(ctx, hotspotsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hotspots from cache: %w", err)
	}

	hotspots := make([]models.Hotspot, 0)
	if err := json.Unmarshal(val, &hotspots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hotspots from cache: %w", err)
	}
	return hotspots, nil
}

func (c *Cache) SetHotspots(ctx context.Context, hotspots []models.Hotspot, ttl time.Duration) error {
	if hotspots == nil {
		hotspots = []models.Hotspot{}
	}
	val, err := json.Marshal(hotspots)
	if err != nil {
		return fmt.Errorf("failed to marshal hotspots for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, hotspotsKey, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set hotspots in cache: %w", err)
	}
	return nil
}
