package tables

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/logger"
	tablesrepo "github.com/osrsdps/dps-console/internal/repositories/tables"
)

// LoaderConfig holds the dependencies for the Loader
type LoaderConfig struct {
	Fetcher Fetcher
	// Cache is optional
	Cache        tablesrepo.Repository
	CacheTTL     time.Duration
	Sources      map[Kind]string
	FetchTimeout time.Duration
	Logger       *zap.SugaredLogger
}

// Validate ensures all required dependencies are provided
func (c *LoaderConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Fetcher == nil {
		vb.RequiredField("Fetcher")
	}
	for kind := range c.Sources {
		if !knownKind(kind) {
			vb.InvalidField("Sources", "unknown table kind "+string(kind))
		}
	}
	if c.CacheTTL < 0 {
		vb.Field("CacheTTL", "cannot be negative")
	}
	return vb.Build()
}

func knownKind(k Kind) bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Loader fetches all tables in parallel. A table that cannot be fetched or
// decoded falls back to empty so the console keeps working with partial
// data.
type Loader struct {
	fetcher      Fetcher
	cache        tablesrepo.Repository
	cacheTTL     time.Duration
	sources      map[Kind]string
	fetchTimeout time.Duration
	log          *zap.SugaredLogger
}

// NewLoader creates a Loader
func NewLoader(cfg *LoaderConfig) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Loader{
		fetcher:      cfg.Fetcher,
		cache:        cfg.Cache,
		cacheTTL:     cfg.CacheTTL,
		sources:      cfg.Sources,
		fetchTimeout: cfg.FetchTimeout,
		log:          logger.OrNop(cfg.Logger),
	}, nil
}

// LoadInput defines the request for loading tables
type LoadInput struct {
	// Refresh skips cached payloads
	Refresh bool
}

// LoadOutput defines the response for loading tables
type LoadOutput struct {
	Catalog *Catalog
	// Origin records where each table came from: "cache", "source" or "empty"
	Origin map[Kind]string
	// Failed lists tables that fell back to empty because of an error
	Failed []Kind
}

// Load fetches every configured table. It only fails when ctx ends.
func (l *Loader) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		input = &LoadInput{}
	}

	catalog := NewCatalog()
	out := &LoadOutput{
		Catalog: catalog,
		Origin:  make(map[Kind]string, len(Kinds)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range Kinds {
		kind := kind
		g.Go(func() error {
			origin, err := l.loadOne(gctx, catalog, kind, input.Refresh)

			mu.Lock()
			defer mu.Unlock()
			out.Origin[kind] = origin
			if err != nil {
				out.Failed = append(out.Failed, kind)
				l.log.Warnw("table unavailable, using empty table",
					"kind", kind,
					"location", l.sources[kind],
					"error", err,
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "table load interrupted")
	}

	l.log.Infow("tables loaded", "counts", catalog.Counts(), "origin", out.Origin)
	return out, nil
}

func (l *Loader) loadOne(ctx context.Context, catalog *Catalog, kind Kind, refresh bool) (string, error) {
	location := l.sources[kind]
	if location == "" {
		return "empty", nil
	}

	if l.cache != nil && !refresh {
		cached, err := l.cache.Get(ctx, &tablesrepo.GetInput{Kind: string(kind), Location: location})
		switch {
		case err == nil:
			if err := catalog.Load(kind, cached.Data); err == nil {
				return "cache", nil
			}
			l.log.Debugw("discarding undecodable cached table", "kind", kind)
			if _, err := l.cache.Delete(ctx, &tablesrepo.DeleteInput{Kind: string(kind), Location: location}); err != nil {
				l.log.Debugw("table cache delete failed", "kind", kind, "error", err)
			}
		case !errors.IsNotFound(err):
			l.log.Debugw("table cache read failed", "kind", kind, "error", err)
		}
	}

	fetchCtx := ctx
	if l.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, l.fetchTimeout)
		defer cancel()
	}

	data, err := l.fetcher.Fetch(fetchCtx, location)
	if err != nil {
		return "empty", err
	}
	if err := catalog.Load(kind, data); err != nil {
		return "empty", err
	}

	if l.cache != nil {
		_, err := l.cache.Put(ctx, &tablesrepo.PutInput{
			Kind:     string(kind),
			Location: location,
			Data:     data,
			TTL:      l.cacheTTL,
		})
		if err != nil {
			l.log.Debugw("table cache write failed", "kind", kind, "error", err)
		}
	}

	return "source", nil
}
