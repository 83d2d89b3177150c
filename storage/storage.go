// Package storage provides interfaces and common errors for slug storage operations.
package storage

import (
	"context"
	"errors"

	"go-slug-shortener/types"
)

// Common errors returned by storage operations.
var (
	ErrSlugNotFound       = errors.New("slug not found")
	ErrSlugSpaceExhausted = errors.New("no free slug found")
)

// Storage interface defines the methods for slug storage operations.
type Storage interface {
	// Put stores originalURL under a freshly generated slug that is not yet in use.
	Put(ctx context.Context, originalURL string) (types.URLRecord, error)
	// Get returns the record stored under slug, or ErrSlugNotFound.
	Get(ctx context.Context, slug string) (types.URLRecord, error)
	// Len returns the number of stored records.
	Len() int
}
