package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/osrsdps/dps-console/internal/config"
	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv("DPS_CONFIG", "")
}

func (s *ConfigTestSuite) writeFile(body string) string {
	path := filepath.Join(s.dir, "console.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal(config.DefaultEngineAddress, cfg.Engine.Address)
	s.Equal(37767, cfg.Companion.FirstPort)
	s.Equal(10, cfg.Companion.PortCount)
	s.Equal(time.Second, cfg.Companion.AttemptTimeout)
	s.Equal(1000, cfg.Simulation.TTKSamples)
	s.Equal(1000, cfg.Simulation.BatchCount)
	s.Equal(10*time.Millisecond, cfg.Simulation.YieldDelay)
	s.Empty(cfg.Redis.Endpoint)
}

func (s *ConfigTestSuite) TestFileThenEnv() {
	path := s.writeFile(`
engine:
  address: engine.internal:7000
  callTimeout: 5s
simulation:
  ttkSamples: 500
profile:
  username: Zezima
  stats:
    Attack: 75
  buffs:
    piety: true
  equipment:
    weapon: "4151"
  target:
    name: Vorkath
    source: boss
`)
	s.T().Setenv("DPS_ENGINE_ADDR", "override:9000")
	s.T().Setenv("DPS_CACHE_TTL", "1h")

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal("override:9000", cfg.Engine.Address)
	s.Equal(5*time.Second, cfg.Engine.CallTimeout)
	s.Equal(500, cfg.Simulation.TTKSamples)
	s.Equal(time.Hour, cfg.Redis.CacheTTL)
	s.Equal("Zezima", cfg.Profile.Username)
	s.Equal(75, cfg.Profile.Stats[entities.SkillAttack])
	s.True(cfg.Profile.Buffs.Piety)
	s.Equal("4151", cfg.Profile.Equipment[entities.SlotWeapon])
	s.Require().NotNil(cfg.Profile.Target)
	s.Equal(entities.SourceBoss, cfg.Profile.Target.Source)
}

func (s *ConfigTestSuite) TestTargetSourceDefaultsToMonster() {
	path := s.writeFile("profile:\n  target:\n    name: Goblin\n")

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal(entities.SourceMonster, cfg.Profile.Target.Source)
}

func (s *ConfigTestSuite) TestErrors() {
	testCases := []struct {
		name  string
		setup func() string
		check func(err error)
	}{
		{
			name:  "missing file",
			setup: func() string { return filepath.Join(s.dir, "nope.yaml") },
			check: func(err error) { s.True(errors.IsNotFound(err)) },
		},
		{
			name:  "bad yaml",
			setup: func() string { return s.writeFile("engine: [") },
			check: func(err error) { s.True(errors.IsInvalidArgument(err)) },
		},
		{
			name: "bad env int",
			setup: func() string {
				s.T().Setenv("DPS_TTK_SAMPLES", "many")
				return ""
			},
			check: func(err error) { s.True(errors.IsInvalidArgument(err)) },
		},
		{
			name:  "unknown profile skill",
			setup: func() string { return s.writeFile("profile:\n  stats:\n    Cooking: 99\n") },
			check: func(err error) {
				s.True(errors.IsInvalidArgument(err))
				s.Contains(err.Error(), "Profile.Stats.Cooking")
			},
		},
		{
			name:  "bad target source",
			setup: func() string { return s.writeFile("profile:\n  target:\n    name: Goblin\n    source: npc\n") },
			check: func(err error) { s.Contains(err.Error(), "Profile.Target.Source") },
		},
		{
			name:  "zero port count",
			setup: func() string { return s.writeFile("companion:\n  portCount: 0\n") },
			check: func(err error) { s.Contains(err.Error(), "Companion.PortCount") },
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.Load(tc.setup())
			s.Require().Error(err)
			s.Nil(cfg)
			tc.check(err)
		})
	}
}
