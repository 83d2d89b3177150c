package storage

import (
	"context"
	"fmt"
	"sync"

	"go-slug-shortener/metrics"
	"go-slug-shortener/types"
	"go-slug-shortener/urlgen"
	"go.uber.org/zap"
)

// InMemoryStorage implements the Storage interface using an in-memory map.
// Records live until the process exits.
type InMemoryStorage struct {
	urls        map[string]string // slug to original URL
	mu          sync.RWMutex      // guards urls; Put holds it across check and insert
	gen         *urlgen.Generator
	maxAttempts int // slugs tried per Put; <= 0 means no limit
	logger      *zap.Logger
}

// Note: URL validation is performed at the handler level, not in the storage layer.

// NewInMemoryStorage creates and returns a new InMemoryStorage instance.
// A nil gen selects a default generator.
func NewInMemoryStorage(gen *urlgen.Generator, maxAttempts int, logger *zap.Logger) *InMemoryStorage {
	if gen == nil {
		gen = urlgen.New(nil, urlgen.DefaultLength)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryStorage{
		urls:        make(map[string]string),
		gen:         gen,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Put generates slugs until one is free, then stores originalURL under it.
func (s *InMemoryStorage) Put(ctx context.Context, originalURL string) (types.URLRecord, error) {
	select {
	case <-ctx.Done():
		s.logger.Warn("Put operation cancelled", zap.String("originalURL", originalURL))
		return types.URLRecord{}, ctx.Err()
	default:
		s.mu.Lock()
		defer s.mu.Unlock()

		for attempt := 1; s.maxAttempts <= 0 || attempt <= s.maxAttempts; attempt++ {
			slug := s.gen.Generate()
			if _, exists := s.urls[slug]; exists {
				s.logger.Warn("Slug collision", zap.String("slug", slug), zap.Int("attempt", attempt))
				metrics.RecordCollision()
				continue
			}

			s.urls[slug] = originalURL
			s.logger.Debug("Slug stored",
				zap.String("slug", slug),
				zap.String("originalURL", originalURL),
				zap.Int("attempts", attempt))
			return types.URLRecord{Slug: slug, URL: originalURL}, nil
		}

		s.logger.Error("Slug space exhausted",
			zap.Int("maxAttempts", s.maxAttempts),
			zap.Int("stored", len(s.urls)))
		return types.URLRecord{}, fmt.Errorf("%w after %d attempts", ErrSlugSpaceExhausted, s.maxAttempts)
	}
}

// Get retrieves the record stored under slug.
func (s *InMemoryStorage) Get(ctx context.Context, slug string) (types.URLRecord, error) {
	select {
	case <-ctx.Done():
		s.logger.Warn("Get operation cancelled", zap.String("slug", slug))
		return types.URLRecord{}, ctx.Err()
	default:
		s.mu.RLock()
		defer s.mu.RUnlock()

		if originalURL, exists := s.urls[slug]; exists {
			return types.URLRecord{Slug: slug, URL: originalURL}, nil
		}
		return types.URLRecord{}, ErrSlugNotFound
	}
}

// Len returns the number of stored records.
func (s *InMemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.urls)
}
