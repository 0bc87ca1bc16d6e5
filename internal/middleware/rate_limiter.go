package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"catalogo/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const MsgTooManyRequests = "Demasiadas solicitudes. Intente nuevamente en un momento."

// RateStore counts hits per key inside fixed windows. Hit returns the number
// of hits in the current window (including this one) and when it resets.
type RateStore interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

// RateLimiter returns a fixed-window per-IP rate limiter. Store failures fail
// open: the request is served and a warning logged.
func RateLimiter(store RateStore, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, resetAt, err := store.Hit(c.Request.Context(), c.ClientIP(), window)
		if err != nil {
			log.Warn().
				Str("request_id", c.GetString(RequestIDKey)).
				Err(err).
				Msg("rate limiter store unavailable")
			c.Next()
			return
		}

		if count > int64(limit) {
			secs := int(time.Until(resetAt).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(MsgTooManyRequests))
			return
		}
		c.Next()
	}
}

// ── In-memory store ───────────────────────────────────────────────────────────

const purgeInterval = 5 * time.Minute

type rateEntry struct {
	count     int64
	windowEnd time.Time
}

// MemoryRateStore keeps counters in process memory. Expired entries are
// purged lazily, at most once per purgeInterval, so IPs that never return do
// not accumulate.
type MemoryRateStore struct {
	mu        sync.Mutex
	entries   map[string]*rateEntry
	lastPurge time.Time
	now       func() time.Time
}

func NewMemoryRateStore() *MemoryRateStore {
	return &MemoryRateStore{entries: make(map[string]*rateEntry), now: time.Now}
}

func (s *MemoryRateStore) Hit(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastPurge) > purgeInterval {
		s.purge(now)
	}

	entry, ok := s.entries[key]
	if !ok || now.After(entry.windowEnd) {
		entry = &rateEntry{windowEnd: now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.windowEnd, nil
}

func (s *MemoryRateStore) purge(now time.Time) {
	purged := 0
	for key, entry := range s.entries {
		if now.After(entry.windowEnd) {
			delete(s.entries, key)
			purged++
		}
	}
	s.lastPurge = now
	if purged > 0 {
		log.Debug().
			Int("entries_purged", purged).
			Int("entries_remaining", len(s.entries)).
			Msg("rate limiter entries purged")
	}
}

// ── Redis store ───────────────────────────────────────────────────────────────

// RedisRateStore shares counters between server replicas.
type RedisRateStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisRateStore(rdb *redis.Client) *RedisRateStore {
	return &RedisRateStore{rdb: rdb, prefix: "ratelimit:"}
}

func (s *RedisRateStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	k := s.prefix + key

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	ttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	remaining := ttl.Val()
	if remaining <= 0 {
		// first hit of the window: the key has no expiry yet
		if err := s.rdb.PExpire(ctx, k, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		remaining = window
	}
	return incr.Val(), time.Now().Add(remaining), nil
}
