package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sbindex/internal/model"
)

// ResultCache keeps the most recent diagnosis per user in Redis so the
// dashboard can show it without a Mongo round trip.
type ResultCache interface {
	GetLatest(ctx context.Context, userEmail string) (*model.DiagnosisRecord, error)
	SetLatest(ctx context.Context, record *model.DiagnosisRecord) error
}

type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a new result cache
func NewResultCache(client *redis.Client) ResultCache {
	return &resultCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *resultCache) key(userEmail string) string {
	return fmt.Sprintf("diagnosis:%s:latest", userEmail)
}

func (c *resultCache) GetLatest(ctx context.Context, userEmail string) (*model.DiagnosisRecord, error) {
	data, err := c.client.Get(ctx, c.key(userEmail)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var record model.DiagnosisRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *resultCache) SetLatest(ctx context.Context, record *model.DiagnosisRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(record.UserEmail), data, c.ttl).Err()
}
