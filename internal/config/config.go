// Package config loads console settings from defaults, an optional YAML
// file and the environment (including a .env file), in that order.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/logger"
)

// Defaults
const (
	DefaultEngineAddress    = "localhost:50061"
	DefaultServerPort       = 50051
	DefaultHiscoresURL      = "https://secure.runescape.com/m=hiscore_oldschool"
	DefaultCompanionHost    = "localhost"
	DefaultCompanionPort    = 37767
	DefaultCompanionPorts   = 10
	DefaultCompanionOrigin  = "https://tools.runescape.wiki"
	DefaultTTKSamples       = 1000
	DefaultBatchSimulations = 1000
	DefaultYieldDelay       = 10 * time.Millisecond
	DefaultCacheTTL         = 6 * time.Hour

	// 64 MiB covers the full item table sent to the advisor
	DefaultMaxMessageBytes = 64 << 20
)

// Config is the full console configuration
type Config struct {
	Engine     EngineConfig     `yaml:"engine"`
	Redis      RedisConfig      `yaml:"redis"`
	Tables     TablesConfig     `yaml:"tables"`
	Hiscores   HiscoresConfig   `yaml:"hiscores"`
	Companion  CompanionConfig  `yaml:"companion"`
	Simulation SimulationConfig `yaml:"simulation"`
	Upgrades   UpgradesConfig   `yaml:"upgrades"`
	Server     ServerConfig     `yaml:"server"`
	Log        logger.Config    `yaml:"log"`
	Profile    Profile          `yaml:"profile"`
}

// EngineConfig points at the simulation engine service
type EngineConfig struct {
	Address         string        `yaml:"address"`
	CallTimeout     time.Duration `yaml:"callTimeout"`
	MaxRetries      uint          `yaml:"maxRetries"`
	MaxMessageBytes int           `yaml:"maxMessageBytes"`
}

// RedisConfig enables the table cache when Endpoint is set
type RedisConfig struct {
	Endpoint string        `yaml:"endpoint"`
	CacheTTL time.Duration `yaml:"cacheTTL"`
}

// TablesConfig holds the location of each lookup table: an http(s) URL or
// a local path.
type TablesConfig struct {
	Items        string        `yaml:"items"`
	Monsters     string        `yaml:"monsters"`
	Bosses       string        `yaml:"bosses"`
	Prices       string        `yaml:"prices"`
	FetchTimeout time.Duration `yaml:"fetchTimeout"`
}

// HiscoresConfig configures the hiscores lookup
type HiscoresConfig struct {
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout"`
}

// CompanionConfig configures the companion app discovery scan
type CompanionConfig struct {
	Host           string        `yaml:"host"`
	FirstPort      int           `yaml:"firstPort"`
	PortCount      int           `yaml:"portCount"`
	AttemptTimeout time.Duration `yaml:"attemptTimeout"`
	Deadline       time.Duration `yaml:"deadline"`
	Origin         string        `yaml:"origin"`
}

// SimulationConfig sizes the engine sampling calls
type SimulationConfig struct {
	TTKSamples int           `yaml:"ttkSamples"`
	BatchCount int           `yaml:"batchCount"`
	YieldDelay time.Duration `yaml:"yieldDelay"`
}

// UpgradesConfig holds advisor defaults
type UpgradesConfig struct {
	Budget            int64 `yaml:"budget"`
	ExcludeThrowables bool  `yaml:"excludeThrowables"`
	ExcludeAmmo       bool  `yaml:"excludeAmmo"`
}

// ServerConfig configures the console gRPC server
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Default returns the built in configuration
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Address:         DefaultEngineAddress,
			CallTimeout:     30 * time.Second,
			MaxRetries:      3,
			MaxMessageBytes: DefaultMaxMessageBytes,
		},
		Redis: RedisConfig{
			CacheTTL: DefaultCacheTTL,
		},
		Tables: TablesConfig{
			Items:        "data/items-complete.json",
			Monsters:     "data/monsters-nodrops.json",
			Bosses:       "data/bosses_complete.json",
			Prices:       "data/latest_prices.json",
			FetchTimeout: 30 * time.Second,
		},
		Hiscores: HiscoresConfig{
			BaseURL: DefaultHiscoresURL,
			Timeout: 10 * time.Second,
		},
		Companion: CompanionConfig{
			Host:           DefaultCompanionHost,
			FirstPort:      DefaultCompanionPort,
			PortCount:      DefaultCompanionPorts,
			AttemptTimeout: time.Second,
			Deadline:       15 * time.Second,
			Origin:         DefaultCompanionOrigin,
		},
		Simulation: SimulationConfig{
			TTKSamples: DefaultTTKSamples,
			BatchCount: DefaultBatchSimulations,
			YieldDelay: DefaultYieldDelay,
		},
		Upgrades: UpgradesConfig{
			Budget: 10_000_000,
		},
		Server: ServerConfig{
			Port: DefaultServerPort,
		},
		Log: logger.Config{
			Level: "info",
		},
		Profile: Profile{
			Stats: map[string]int{},
		},
	}
}

// Load builds a Config. path may be empty; DPS_CONFIG is used when it is.
func Load(path string) (*Config, error) {
	// a missing .env is normal
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("DPS_CONFIG")
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("config file %s not found", path)
		}
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config file %s", path)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Engine.Address = getEnv("DPS_ENGINE_ADDR", c.Engine.Address)
	c.Redis.Endpoint = getEnv("DPS_REDIS_ADDR", c.Redis.Endpoint)
	c.Tables.Items = getEnv("DPS_ITEMS_SOURCE", c.Tables.Items)
	c.Tables.Monsters = getEnv("DPS_MONSTERS_SOURCE", c.Tables.Monsters)
	c.Tables.Bosses = getEnv("DPS_BOSSES_SOURCE", c.Tables.Bosses)
	c.Tables.Prices = getEnv("DPS_PRICES_SOURCE", c.Tables.Prices)
	c.Hiscores.BaseURL = getEnv("DPS_HISCORES_URL", c.Hiscores.BaseURL)
	c.Companion.Host = getEnv("DPS_COMPANION_HOST", c.Companion.Host)
	c.Log.Level = getEnv("DPS_LOG_LEVEL", c.Log.Level)
	c.Log.File = getEnv("DPS_LOG_FILE", c.Log.File)

	var err error
	if c.Redis.CacheTTL, err = getEnvDuration("DPS_CACHE_TTL", c.Redis.CacheTTL); err != nil {
		return err
	}
	if c.Simulation.TTKSamples, err = getEnvInt("DPS_TTK_SAMPLES", c.Simulation.TTKSamples); err != nil {
		return err
	}
	if c.Simulation.BatchCount, err = getEnvInt("DPS_SIM_COUNT", c.Simulation.BatchCount); err != nil {
		return err
	}
	if c.Server.Port, err = getEnvInt("DPS_SERVER_PORT", c.Server.Port); err != nil {
		return err
	}
	return nil
}

// Validate checks the values the console cannot run without
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("Engine.Address", c.Engine.Address, vb)
	errors.ValidatePositive("Engine.CallTimeout", int64(c.Engine.CallTimeout), vb)
	errors.ValidatePositive("Engine.MaxMessageBytes", c.Engine.MaxMessageBytes, vb)
	if c.Redis.Endpoint != "" {
		errors.ValidatePositive("Redis.CacheTTL", int64(c.Redis.CacheTTL), vb)
	}
	errors.ValidateRequired("Hiscores.BaseURL", c.Hiscores.BaseURL, vb)
	errors.ValidateRequired("Companion.Host", c.Companion.Host, vb)
	errors.ValidateRange("Companion.FirstPort", c.Companion.FirstPort, 1, 65535, vb)
	errors.ValidateRange("Companion.PortCount", c.Companion.PortCount, 1, 100, vb)
	errors.ValidatePositive("Companion.AttemptTimeout", int64(c.Companion.AttemptTimeout), vb)
	errors.ValidatePositive("Simulation.TTKSamples", c.Simulation.TTKSamples, vb)
	errors.ValidatePositive("Simulation.BatchCount", c.Simulation.BatchCount, vb)
	if c.Simulation.YieldDelay < 0 {
		vb.Field("Simulation.YieldDelay", "cannot be negative")
	}
	if c.Upgrades.Budget < 0 {
		vb.Field("Upgrades.Budget", "cannot be negative")
	}
	errors.ValidateRange("Server.Port", c.Server.Port, 1, 65535, vb)
	if c.Log.Level != "" {
		errors.ValidateEnum("Log.Level", c.Log.Level, logger.Levels, vb)
	}
	c.Profile.validate(vb)

	return vb.Build()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.InvalidArgumentf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.InvalidArgumentf("%s must be a duration, got %q", key, v)
	}
	return d, nil
}
