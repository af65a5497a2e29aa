package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/JustJay7/court-case-sync/internal/calendar"
	"github.com/JustJay7/court-case-sync/pkg/logger"
)

// Redis lists drained by the delivery workers.
const (
	NotificationQueue = "casesync:notifications"
	CalendarQueue     = "casesync:calendar"
)

// Envelope is the JSON document pushed for each case pass.
type Envelope struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	CaseID     string          `json:"caseId"`
	CaseNumber string          `json:"caseNumber"`
	CreatedAt  time.Time       `json:"createdAt"`
	Payload    json.RawMessage `json:"payload"`
}

// Publisher hands qualifying updates and calendar intents to delivery.
type Publisher interface {
	PublishUpdates(ctx context.Context, caseID, caseNumber string, items []Item) error
	PublishCalendar(ctx context.Context, caseID, caseNumber string, intents []calendar.Intent) error
	Close() error
}

func newEnvelope(kind, caseID, caseNumber string, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", kind, err)
	}
	data, err := json.Marshal(Envelope{
		ID:         uuid.New().String(),
		Kind:       kind,
		CaseID:     caseID,
		CaseNumber: caseNumber,
		CreatedAt:  time.Now().UTC(),
		Payload:    raw,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal %s envelope: %w", kind, err)
	}
	return data, nil
}

// RedisPublisher pushes envelopes onto Redis lists.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher connects to redisURL and verifies the connection.
func NewRedisPublisher(redisURL string) (*RedisPublisher, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisPublisher{client: client}, nil
}

// NewRedisPublisherWithClient wraps an existing client.
func NewRedisPublisherWithClient(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) PublishUpdates(ctx context.Context, caseID, caseNumber string, items []Item) error {
	if len(items) == 0 {
		return nil
	}
	data, err := newEnvelope("updates", caseID, caseNumber, items)
	if err != nil {
		return err
	}
	if err := p.client.RPush(ctx, NotificationQueue, data).Err(); err != nil {
		return fmt.Errorf("push notification: %w", err)
	}
	return nil
}

func (p *RedisPublisher) PublishCalendar(ctx context.Context, caseID, caseNumber string, intents []calendar.Intent) error {
	if len(intents) == 0 {
		return nil
	}
	data, err := newEnvelope("calendar", caseID, caseNumber, intents)
	if err != nil {
		return err
	}
	if err := p.client.RPush(ctx, CalendarQueue, data).Err(); err != nil {
		return fmt.Errorf("push calendar intents: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// LogPublisher writes notifications to the log. Used when no queue is
// configured.
type LogPublisher struct {
	log *logger.Logger
}

func NewLogPublisher(log *logger.Logger) *LogPublisher {
	if log == nil {
		log = logger.NewNop()
	}
	return &LogPublisher{log: log}
}

func (p *LogPublisher) PublishUpdates(_ context.Context, caseID, caseNumber string, items []Item) error {
	for _, it := range items {
		p.log.Info("Case update notification",
			"case_id", caseID,
			"case_number", caseNumber,
			"type", it.Update.Type,
			"importance", it.Update.Importance,
			"category", it.Category,
			"urgent", it.Urgent,
			"summary", it.Update.Summary)
	}
	return nil
}

func (p *LogPublisher) PublishCalendar(_ context.Context, caseID, caseNumber string, intents []calendar.Intent) error {
	for _, in := range intents {
		p.log.Info("Calendar intent",
			"case_id", caseID,
			"case_number", caseNumber,
			"action", in.Action,
			"hearing_key", in.Event.HearingKey,
			"start", in.Event.Start)
	}
	return nil
}

func (p *LogPublisher) Close() error { return nil }
