package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	statusQueueKey = "outage_status_events"
)

// Publisher - интерфейс для публикации событий смены статуса сбоя
type Publisher interface {
	Publish(ctx context.Context, event models.StatusTransition) error
}

// RedisPublisher - реализация Publisher, использующая очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event models.StatusTransition) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, statusQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish status event to Redis: %w", err)
	}
	return nil
}

// LogPublisher только пишет событие в лог
type LogPublisher struct {
	logger *logrus.Logger
}

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event models.StatusTransition) error {
	p.logger.WithFields(logrus.Fields{
		"event_id":     event.EventID,
		"outage_id":    event.OutageID,
		"operator":     event.Operator,
		"incident_key": event.IncidentKey,
		"from":         event.From,
		"to":           event.To,
	}).Info("Outage status changed")
	return nil
}
