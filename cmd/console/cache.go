package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osrsdps/dps-console/internal/config"
	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/logger"
	redisclient "github.com/osrsdps/dps-console/internal/redis"
	tablesrepo "github.com/osrsdps/dps-console/internal/repositories/tables"
	"github.com/osrsdps/dps-console/internal/tables"
)

var (
	purgeKind        string
	purgeCorruptOnly bool
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the redis table cache",
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Drop cached lookup tables",
	Long: `purge removes cached tables from redis so the next load fetches them from
their source. With --corrupt-only only entries that no longer decode are removed.`,
	RunE: runCachePurge,
}

func init() {
	cachePurgeCmd.Flags().StringVar(&purgeKind, "kind", "", "table kind: items, monsters, bosses or prices (default all)")
	cachePurgeCmd.Flags().BoolVar(&purgeCorruptOnly, "corrupt-only", false, "only remove entries that are not valid JSON")
	cacheCmd.AddCommand(cachePurgeCmd)
}

func runCachePurge(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if cfg.Redis.Endpoint == "" {
		return errors.FailedPrecondition("redis endpoint is not configured")
	}
	if purgeKind != "" && !validKind(tables.Kind(purgeKind)) {
		return errors.InvalidArgumentf("unknown table kind %q", purgeKind)
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	defer func() { _ = log.Sync() }()

	client, err := redisclient.NewClient(cfg.Redis.Endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create redis client")
	}
	defer func() { _ = client.Close() }()

	cache, err := tablesrepo.NewRedis(&tablesrepo.RedisConfig{Client: client})
	if err != nil {
		return errors.Wrap(err, "failed to create table cache")
	}

	out, err := cache.Purge(cmd.Context(), &tablesrepo.PurgeInput{
		Kind:        purgeKind,
		CorruptOnly: purgeCorruptOnly,
	})
	if err != nil {
		return err
	}

	log.Infow("table cache purged", "checked", out.Checked, "removed", len(out.Removed))
	for _, key := range out.Removed {
		fmt.Printf("removed %s\n", key)
	}
	fmt.Printf("%d of %d cached tables removed\n", len(out.Removed), out.Checked)
	return nil
}

func validKind(k tables.Kind) bool {
	for _, known := range tables.Kinds {
		if k == known {
			return true
		}
	}
	return false
}
