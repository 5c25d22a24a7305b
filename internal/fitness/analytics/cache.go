package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/strength"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const findingsKeyPrefix = "strength-findings"

// FindingsCache keeps computed imbalance findings in redis, one entry per user
// and calendar day. Redis failures are logged and treated as cache misses.
type FindingsCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	clock       Clock
}

func NewFindingsCache(redisClient *redis.Client, ttl time.Duration, clock Clock) *FindingsCache {
	return &FindingsCache{
		redisClient: redisClient,
		ttl:         ttl,
		clock:       clock,
	}
}

func FindingsKey(userID string, day time.Time) string {
	return fmt.Sprintf("%s::%s::%s", findingsKeyPrefix, userID, day.Format("2006-01-02"))
}

func (c *FindingsCache) Get(ctx context.Context, userID string, day time.Time) ([]strength.Finding, bool) {
	key := FindingsKey(userID, day)
	cached, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Errorf("get cached findings [%s]: %s", key, err)
		}
		return nil, false
	}

	var findings []strength.Finding
	if err := json.Unmarshal(cached, &findings); err != nil {
		log.Errorf("unmarshal cached findings [%s]: %s", key, err)
		return nil, false
	}
	return findings, true
}

func (c *FindingsCache) Set(ctx context.Context, userID string, day time.Time, findings []strength.Finding) {
	key := FindingsKey(userID, day)
	findingsJson, err := json.Marshal(findings)
	if err != nil {
		log.Errorf("marshal findings [%s]: %s", key, err)
		return
	}
	if err := c.redisClient.Set(ctx, key, findingsJson, c.ttl).Err(); err != nil {
		log.Errorf("cache findings [%s]: %s", key, err)
	}
}

// Invalidate drops today's findings of the user, e.g. after a new workout
// or a profile change.
func (c *FindingsCache) Invalidate(ctx context.Context, userID string) {
	key := FindingsKey(userID, c.clock.Now())
	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		log.Errorf("invalidate cached findings [%s]: %s", key, err)
	}
}
