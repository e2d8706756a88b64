// Package feedcache caches serialized feed responses in a TTL key-value
// store. A cache failure is never surfaced: errors degrade to a miss so
// the feed is simply recomputed.
package feedcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/arXiv/arxiv-feed/internal/domain"
	"github.com/arXiv/arxiv-feed/internal/domain/query"
	"github.com/arXiv/arxiv-feed/internal/kv"
	"github.com/arXiv/arxiv-feed/internal/serialize"
)

const keyPrefix = "feed:"

// Cache stores serialized feeds keyed by normalized query.
type Cache struct {
	store      kv.Store
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a feed cache over the given store.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(store kv.Store, cacheTotal *prometheus.CounterVec, logger *zap.Logger) *Cache {
	return &Cache{store: store, cacheTotal: cacheTotal, logger: logger}
}

func (c *Cache) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// Key derives the cache key for a query and feed version. Tokens are
// lowercased, deduplicated, and sorted first, so "cs.CV+math" and
// "math+CS.cv" share one entry.
func Key(version domain.FeedVersion, rawQuery string) string {
	tokens := strings.Split(strings.ToLower(rawQuery), query.Delimiter)
	sort.Strings(tokens)
	unique := tokens[:0]
	for _, tok := range tokens {
		if len(unique) == 0 || unique[len(unique)-1] != tok {
			unique = append(unique, tok)
		}
	}

	sum := sha256.Sum256([]byte(string(version) + "\n" + strings.Join(unique, query.Delimiter)))
	return keyPrefix + hex.EncodeToString(sum[:])
}

type envelope struct {
	Body        []byte `json:"body"`
	ContentType string `json:"content_type"`
	ETag        string `json:"etag"`
}

// Get returns the cached feed for the query, if any.
func (c *Cache) Get(ctx context.Context, version domain.FeedVersion, rawQuery string) (serialize.Feed, bool) {
	key := Key(version, rawQuery)
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			c.logger.Warn("feed cache read failed", zap.Error(err))
		}
		c.incCache("miss")
		return serialize.Feed{}, false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		c.logger.Warn("feed cache entry is corrupt", zap.String("key", key), zap.Error(err))
		c.incCache("miss")
		return serialize.Feed{}, false
	}
	c.incCache("hit")
	return serialize.Feed{Body: env.Body, ContentType: env.ContentType, ETag: env.ETag}, true
}

// Set stores a feed for the query until ttl expires.
func (c *Cache) Set(
	ctx context.Context, version domain.FeedVersion, rawQuery string,
	feed serialize.Feed, ttl time.Duration,
) {
	if ttl <= 0 {
		return
	}
	key := Key(version, rawQuery)
	data, err := json.Marshal(envelope{
		Body:        feed.Body,
		ContentType: feed.ContentType,
		ETag:        feed.ETag,
	})
	if err != nil {
		c.logger.Warn("feed cache encode failed", zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, ttl); err != nil {
		c.logger.Warn("feed cache write failed", zap.Error(err))
	}
}
