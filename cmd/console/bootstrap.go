package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/osrsdps/dps-console/internal/clients/osrs"
	"github.com/osrsdps/dps-console/internal/clients/wikisync"
	"github.com/osrsdps/dps-console/internal/config"
	"github.com/osrsdps/dps-console/internal/engine/grpcengine"
	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/logger"
	"github.com/osrsdps/dps-console/internal/orchestrators/session"
	"github.com/osrsdps/dps-console/internal/pkg/idgen"
	redisclient "github.com/osrsdps/dps-console/internal/redis"
	tablesrepo "github.com/osrsdps/dps-console/internal/repositories/tables"
	"github.com/osrsdps/dps-console/internal/tables"
)

// app is one fully wired session plus the resources behind it
type app struct {
	cfg     *config.Config
	log     *zap.SugaredLogger
	session session.Service

	engine *grpcengine.Client
	redis  redisclient.Client
}

// newApp loads the configuration, connects the collaborators, loads the
// tables and applies the configured profile
func newApp(ctx context.Context, notifier session.Notifier) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if engineAddress != "" {
		cfg.Engine.Address = engineAddress
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid config")
		}
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}
	a := &app{cfg: cfg, log: log}

	web, err := osrs.New(&osrs.Config{
		HiscoresBaseURL: cfg.Hiscores.BaseURL,
		Timeout:         cfg.Hiscores.Timeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create web client")
	}

	companion, err := wikisync.New(&wikisync.Config{
		Host:           cfg.Companion.Host,
		FirstPort:      cfg.Companion.FirstPort,
		PortCount:      cfg.Companion.PortCount,
		AttemptTimeout: cfg.Companion.AttemptTimeout,
		Origin:         cfg.Companion.Origin,
		Logger:         log,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create companion client")
	}

	loader, err := a.newLoader(web)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	a.engine, err = grpcengine.New(&grpcengine.Config{
		Address:         cfg.Engine.Address,
		CallTimeout:     cfg.Engine.CallTimeout,
		MaxRetries:      cfg.Engine.MaxRetries,
		MaxMessageBytes: cfg.Engine.MaxMessageBytes,
		Logger:          log,
	})
	if err != nil {
		a.Close(ctx)
		return nil, errors.Wrap(err, "failed to create engine client")
	}

	if notifier == nil {
		notifier = session.LogNotifier{Log: log}
	}
	a.session, err = session.NewOrchestrator(&session.Config{
		Loader:            loader,
		Engine:            a.engine,
		Hiscores:          web,
		Companion:         companion,
		Notifier:          notifier,
		IDGenerator:       idgen.NewUUID("session"),
		Logger:            log,
		TTKSamples:        cfg.Simulation.TTKSamples,
		BatchCount:        cfg.Simulation.BatchCount,
		YieldDelay:        cfg.Simulation.YieldDelay,
		UpgradeBudget:     cfg.Upgrades.Budget,
		CompanionDeadline: cfg.Companion.Deadline,
	})
	if err != nil {
		a.Close(ctx)
		return nil, errors.Wrap(err, "failed to create session")
	}

	if _, err := a.session.LoadTables(ctx, &session.LoadTablesInput{}); err != nil {
		a.Close(ctx)
		return nil, err
	}
	if _, err := a.session.ApplyProfile(ctx, profileInput(&cfg.Profile)); err != nil {
		a.Close(ctx)
		return nil, errors.Wrap(err, "failed to apply profile")
	}

	return a, nil
}

func (a *app) newLoader(web osrs.Client) (*tables.Loader, error) {
	loaderCfg := &tables.LoaderConfig{
		Fetcher:  &tables.SourceFetcher{HTTP: web},
		CacheTTL: a.cfg.Redis.CacheTTL,
		Sources: map[tables.Kind]string{
			tables.KindItems:    a.cfg.Tables.Items,
			tables.KindMonsters: a.cfg.Tables.Monsters,
			tables.KindBosses:   a.cfg.Tables.Bosses,
			tables.KindPrices:   a.cfg.Tables.Prices,
		},
		FetchTimeout: a.cfg.Tables.FetchTimeout,
		Logger:       a.log,
	}

	if a.cfg.Redis.Endpoint != "" {
		client, err := redisclient.NewClient(a.cfg.Redis.Endpoint, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}
		cache, err := tablesrepo.NewRedis(&tablesrepo.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, errors.Wrap(err, "failed to create table cache")
		}
		a.redis = client
		loaderCfg.Cache = cache
	}

	loader, err := tables.NewLoader(loaderCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create table loader")
	}
	return loader, nil
}

func profileInput(p *config.Profile) *session.ApplyProfileInput {
	input := &session.ApplyProfileInput{
		Username:  p.Username,
		Stats:     p.Stats,
		Buffs:     p.Buffs,
		Equipment: p.Equipment,
	}
	if p.Target != nil {
		input.Target = &session.SetTargetInput{Name: p.Target.Name, Source: p.Target.Source}
	}
	return input
}

// Close releases engine handles and closes connections
func (a *app) Close(ctx context.Context) {
	if a.session != nil {
		_ = a.session.Close(ctx)
	}
	if a.engine != nil {
		if err := a.engine.Close(); err != nil {
			a.log.Warnw("failed to close engine connection", "error", err)
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warnw("failed to close redis client", "error", err)
		}
	}
	_ = a.log.Sync()
}
