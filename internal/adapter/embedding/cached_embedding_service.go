package embedding

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"virtual-interviewer/internal/cache"
	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultEmbeddingTTL = 168 * time.Hour

// CachedEmbeddingService stores embeddings in the cache keyed by a hash of the
// text, the backend and the model. Concurrent requests for the same text share
// one backend call.
type CachedEmbeddingService struct {
	next    domain.EmbeddingService
	cache   domain.Cache
	ttl     time.Duration
	params  []string
	sfGroup singleflight.Group
}

func NewCachedEmbeddingService(next domain.EmbeddingService, c domain.Cache, ttl time.Duration, source, model string) *CachedEmbeddingService {
	if ttl <= 0 {
		ttl = defaultEmbeddingTTL
	}
	return &CachedEmbeddingService{
		next:   next,
		cache:  c,
		ttl:    ttl,
		params: []string{source, model},
	}
}

func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func (s *CachedEmbeddingService) key(text string) string {
	return cache.EmbeddingKey(hashString(text), s.params...)
}

func (s *CachedEmbeddingService) lookup(ctx context.Context, key string) ([]float32, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("embedding cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var vec []float32
	if err := gob.NewDecoder(bytes.NewReader([]byte(raw))).Decode(&vec); err != nil || len(vec) == 0 {
		logger.Get().Warn("discarding undecodable cached embedding", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return vec, true
}

func (s *CachedEmbeddingService) store(ctx context.Context, key string, vec []float32) {
	if s.cache == nil {
		return
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(vec); err != nil {
		logger.Get().Warn("failed to encode embedding for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, buf.String(), s.ttl); err != nil {
		logger.Get().Warn("failed to cache embedding", zap.String("key", key), zap.Error(err))
	}
}

// Generate implements domain.EmbeddingService.
func (s *CachedEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	key := s.key(text)
	if vec, ok := s.lookup(ctx, key); ok {
		return vec, nil
	}

	res, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		vec, err := s.next.Generate(ctx, text)
		if err != nil {
			return nil, err
		}
		s.store(ctx, key, vec)
		return vec, nil
	})
	if err != nil {
		return nil, err
	}

	vec, ok := res.([]float32)
	if !ok {
		return nil, domain.NewInternalError(fmt.Sprintf("unexpected embedding type %T", res), nil)
	}
	return vec, nil
}

// GenerateBatch serves cached texts from the cache and sends only the misses to the backend.
func (s *CachedEmbeddingService) GenerateBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	keys := make([]string, len(texts))
	var missIdx []int
	var missTexts []string

	for i, t := range texts {
		keys[i] = s.key(t)
		if vec, ok := s.lookup(ctx, keys[i]); ok {
			out[i] = vec
			continue
		}
		missIdx = append(missIdx, i)
		missTexts = append(missTexts, t)
	}
	if len(missTexts) == 0 {
		return out, nil
	}

	vecs, err := s.next.GenerateBatch(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	for j, i := range missIdx {
		out[i] = vecs[j]
		s.store(ctx, keys[i], vecs[j])
	}

	logger.Get().Debug("embedded batch",
		zap.Int("requested", len(texts)),
		zap.Int("cache_hits", len(texts)-len(missTexts)))
	return out, nil
}
