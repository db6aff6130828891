package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"clinic-manager/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	practitionerCacheKey = "directory:practitioners"
	practitionerCacheTTL = 5 * time.Minute
)

// ErrCacheMiss is returned when the directory is not in the cache, including
// when the cache is disabled entirely.
var ErrCacheMiss = errors.New("practitioner directory not cached")

// PractitionerCache is a cache-aside layer over the practitioner directory.
// Redis being unreachable is never an error a clinic operator sees: every
// failure degrades to a miss and the caller reads the database instead.
type PractitionerCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

// NewPractitionerCache accepts a nil client, which disables the cache.
func NewPractitionerCache(redisClient *redis.Client, log *logrus.Logger) *PractitionerCache {
	return &PractitionerCache{
		redisClient: redisClient,
		log:         log,
	}
}

// Get returns the cached directory, or ErrCacheMiss.
func (c *PractitionerCache) Get(ctx context.Context) ([]dto.PractitionerSummary, error) {
	if c.redisClient == nil {
		return nil, ErrCacheMiss
	}

	payload, err := c.redisClient.Get(ctx, practitionerCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read practitioner cache: %+v", err)
		}
		return nil, ErrCacheMiss
	}

	var summaries []dto.PractitionerSummary
	if err := json.Unmarshal(payload, &summaries); err != nil {
		c.log.Warnf("Failed to decode practitioner cache, dropping it: %+v", err)
		c.Invalidate(ctx)
		return nil, ErrCacheMiss
	}

	return summaries, nil
}

// Set stores the directory with a TTL. Failures are logged and swallowed.
func (c *PractitionerCache) Set(ctx context.Context, summaries []dto.PractitionerSummary) {
	if c.redisClient == nil {
		return
	}

	payload, err := json.Marshal(summaries)
	if err != nil {
		c.log.Warnf("Failed to encode practitioner cache: %+v", err)
		return
	}

	if err := c.redisClient.Set(ctx, practitionerCacheKey, payload, practitionerCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to write practitioner cache: %+v", err)
	}
}

// Invalidate drops the cached directory, called after a user registration.
func (c *PractitionerCache) Invalidate(ctx context.Context) {
	if c.redisClient == nil {
		return
	}

	if err := c.redisClient.Del(ctx, practitionerCacheKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate practitioner cache: %+v", err)
	}
}
