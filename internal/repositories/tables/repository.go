// Package tables caches raw lookup table payloads so a console start does
// not refetch multi-megabyte dumps every time.
package tables

//go:generate mockgen -destination=mock/mock_repository.go -package=tablesmock github.com/osrsdps/dps-console/internal/repositories/tables Repository

import (
	"context"
	"time"
)

// Repository stores raw table bytes keyed by table kind and source location
type Repository interface {
	// Get returns the cached payload.
	// Returns errors.InvalidArgument for an empty kind or location
	// Returns errors.NotFound when nothing is cached or the entry expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Put stores a payload with a TTL; zero TTL keeps it until deleted
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)

	// Delete drops a cached payload. Deleting a missing entry is not an error.
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// Purge drops every cached payload matching the input
	Purge(ctx context.Context, input *PurgeInput) (*PurgeOutput, error)
}

// GetInput defines the input for reading a cached table
type GetInput struct {
	Kind     string
	Location string
}

// GetOutput defines the output for reading a cached table
type GetOutput struct {
	Data     []byte
	CachedAt time.Time
}

// PutInput defines the input for caching a table
type PutInput struct {
	Kind     string
	Location string
	Data     []byte
	TTL      time.Duration
}

// PutOutput defines the output for caching a table
type PutOutput struct{}

// DeleteInput defines the input for dropping a cached table
type DeleteInput struct {
	Kind     string
	Location string
}

// DeleteOutput defines the output for dropping a cached table
type DeleteOutput struct {
	Deleted bool
}

// PurgeInput selects the cached tables to drop
type PurgeInput struct {
	// Kind limits the purge to one table kind; empty matches every kind
	Kind string
	// CorruptOnly keeps entries whose payload is valid JSON
	CorruptOnly bool
}

// PurgeOutput defines the output for purging cached tables
type PurgeOutput struct {
	Checked int
	Removed []string
}
