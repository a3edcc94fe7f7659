package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/liceo-connect/liceo-api/pkg/errors"
)

// CacheRepository abstracts persistence for cached listings.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Generation(ctx context.Context, key string) (int64, error)
	Bump(ctx context.Context, keys ...string) error
}

// CacheService is a best-effort read cache. Failures are logged and
// reported as misses so the store stays the source of truth.
//
// Listings live in slots named after the generation of their key. Writes bump
// the generation, so a listing loaded before a write is stored in a slot that
// no reader after the write will look at.
type CacheService struct {
	repo    CacheRepository
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
	enabled bool
}

// NewCacheService constructs a cache service.
func NewCacheService(repo CacheRepository, metrics *MetricsService, ttl time.Duration, logger *zap.Logger, enabled bool) *CacheService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheService{repo: repo, metrics: metrics, ttl: ttl, logger: logger, enabled: enabled}
}

// Enabled indicates whether caching is active. A nil service is disabled.
func (s *CacheService) Enabled() bool {
	return s != nil && s.enabled && s.repo != nil
}

// Get fills dest and reports true on a hit. On a miss it returns the slot the
// caller must pass to Set once the listing is loaded; an empty slot means the
// result must not be cached.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (string, bool) {
	if !s.Enabled() {
		return "", false
	}
	start := time.Now()
	gen, err := s.repo.Generation(ctx, generationKey(key))
	if err != nil {
		s.metrics.RecordCacheOperation(false, time.Since(start))
		s.logger.Warn("cache generation lookup failed", zap.String("key", key), zap.Error(err))
		return "", false
	}

	slot := fmt.Sprintf("%s:g%d", key, gen)
	err = s.repo.Get(ctx, slot, dest)
	s.metrics.RecordCacheOperation(err == nil, time.Since(start))
	if err != nil {
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("cache get failed", zap.String("key", slot), zap.Error(err))
		}
		return slot, false
	}
	return slot, true
}

// Set stores value in slot with the configured TTL.
func (s *CacheService) Set(ctx context.Context, slot string, value interface{}) {
	if !s.Enabled() || slot == "" {
		return
	}
	if err := s.repo.Set(ctx, slot, value, s.ttl); err != nil {
		s.logger.Warn("cache set failed", zap.String("key", slot), zap.Error(err))
	}
}

// Invalidate moves keys to a new generation after a write.
func (s *CacheService) Invalidate(ctx context.Context, keys ...string) {
	if !s.Enabled() || len(keys) == 0 {
		return
	}
	genKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		genKeys = append(genKeys, generationKey(key))
	}
	if err := s.repo.Bump(ctx, genKeys...); err != nil {
		s.logger.Warn("cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func generationKey(key string) string { return key + ":gen" }

func attendanceKey(studentID int64) string { return fmt.Sprintf("liceo:asistencia:%d", studentID) }
func gradesKey(studentID int64) string     { return fmt.Sprintf("liceo:calificaciones:%d", studentID) }
func messagesKey(userID int64) string      { return fmt.Sprintf("liceo:mensajes:%d", userID) }
