package services

import (
	"context"
	"errors"

	"go-slug-shortener/metrics"
	"go-slug-shortener/storage"
	"go-slug-shortener/types"
)

func handleStorageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrSlugNotFound):
		return ErrSlugNotFound
	case errors.Is(err, storage.ErrSlugSpaceExhausted):
		return ErrSlugSpaceExhausted
	default:
		return err
	}
}

var (
	ErrSlugNotFound       = errors.New("slug not found")
	ErrSlugSpaceExhausted = errors.New("could not allocate a unique slug")
)

type URLService interface {
	Shorten(ctx context.Context, originalURL string) (types.URLRecord, error)
	Resolve(ctx context.Context, slug string) (types.URLRecord, error)
}

type urlService struct {
	store storage.Storage
}

func NewURLService(store storage.Storage) URLService {
	return &urlService{store: store}
}

func (s *urlService) Shorten(ctx context.Context, originalURL string) (types.URLRecord, error) {
	record, err := s.store.Put(ctx, originalURL)
	if err != nil {
		return types.URLRecord{}, handleStorageError(err)
	}

	metrics.RecordURLCreated(s.store.Len())
	return record, nil
}

func (s *urlService) Resolve(ctx context.Context, slug string) (types.URLRecord, error) {
	record, err := s.store.Get(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrSlugNotFound) {
			metrics.RecordLookup(false)
		}
		return types.URLRecord{}, handleStorageError(err)
	}

	metrics.RecordLookup(true)
	return record, nil
}
