package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "webhook_events"
)

// EventType - тип события жизненного цикла
type EventType string

const (
	EventIncidentReported    EventType = "incident.reported"
	EventIncidentDispatched  EventType = "incident.dispatched"
	EventIncidentRejected    EventType = "incident.rejected"
	EventIncidentCompleted   EventType = "incident.completed"
	EventAssignmentArrived   EventType = "assignment.arrived"
	EventAssignmentCompleted EventType = "assignment.completed"
)

// Event - структура данных вебхука о переходе машины состояний
type Event struct {
	ID            uuid.UUID `json:"id"`
	Type          EventType `json:"type"`
	IncidentID    int64     `json:"incident_id"`
	InstitutionID int64     `json:"institution_id,omitempty"`
	VehicleIDs    []int64   `json:"vehicle_ids,omitempty"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewEvent заполняет идентификатор и отметку времени события
func NewEvent(eventType EventType, incidentID int64, status string) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		IncidentID: incidentID,
		Status:     status,
		Timestamp:  time.Now().UTC(),
	}
}

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
