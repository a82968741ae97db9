package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"sbindex/internal/model"
)

// KnowledgeCache memoizes keyword-search results. The knowledge base changes
// slowly (collector runs, not request traffic), so a short TTL is enough.
type KnowledgeCache interface {
	Get(ctx context.Context, sourceType string, keywords []string) ([]model.KnowledgeRow, bool, error)
	Set(ctx context.Context, sourceType string, keywords []string, rows []model.KnowledgeRow) error
}

type knowledgeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewKnowledgeCache creates a new knowledge search cache
func NewKnowledgeCache(client *redis.Client) KnowledgeCache {
	return &knowledgeCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *knowledgeCache) key(sourceType string, keywords []string) string {
	sum := sha1.Sum([]byte(strings.Join(keywords, "|")))
	return fmt.Sprintf("knowledge:%s:%s", sourceType, hex.EncodeToString(sum[:8]))
}

func (c *knowledgeCache) Get(ctx context.Context, sourceType string, keywords []string) ([]model.KnowledgeRow, bool, error) {
	data, err := c.client.Get(ctx, c.key(sourceType, keywords)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var rows []model.KnowledgeRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, false, err
	}
	return rows, true, nil
}

func (c *knowledgeCache) Set(ctx context.Context, sourceType string, keywords []string, rows []model.KnowledgeRow) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(sourceType, keywords), data, c.ttl).Err()
}
