package tables

//go:generate mockgen -destination=mock/mock_fetcher.go -package=tablesmock github.com/osrsdps/dps-console/internal/tables Fetcher

import (
	"context"
	"os"
	"strings"

	"github.com/osrsdps/dps-console/internal/errors"
)

// Fetcher retrieves a raw table payload from a location
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// HTTPGetter downloads a table over HTTP
type HTTPGetter interface {
	FetchTable(ctx context.Context, tableURL string) ([]byte, error)
}

// SourceFetcher sends http(s) locations to an HTTPGetter and reads
// anything else from disk
type SourceFetcher struct {
	HTTP HTTPGetter
}

// Fetch implements Fetcher
func (f *SourceFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if location == "" {
		return nil, errors.InvalidArgument("location cannot be empty")
	}

	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		if f.HTTP == nil {
			return nil, errors.FailedPreconditionf("no http client for %s", location)
		}
		return f.HTTP.FetchTable(ctx, location)
	}

	path := strings.TrimPrefix(location, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("table file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read table file %s", path)
	}
	return data, nil
}
