// Package session owns one analysis session: the build, the target and
// everything derived from them. Every UI event is a method on Service.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/osrsdps/dps-console/internal/orchestrators/session Service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/osrsdps/dps-console/internal/clients/osrs"
	"github.com/osrsdps/dps-console/internal/clients/wikisync"
	"github.com/osrsdps/dps-console/internal/combat"
	"github.com/osrsdps/dps-console/internal/engine"
	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/equipment"
	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/logger"
	"github.com/osrsdps/dps-console/internal/pkg/clock"
	"github.com/osrsdps/dps-console/internal/pkg/idgen"
	"github.com/osrsdps/dps-console/internal/tables"
	"github.com/osrsdps/dps-console/internal/ttk"
	"github.com/osrsdps/dps-console/internal/upgrades"
)

const (
	// DefaultTTKSamples is the kill time sample count per recompute
	DefaultTTKSamples = 1000
	// DefaultBatchCount is the number of kills a batch simulation runs
	DefaultBatchCount = 1000
	// DefaultUpgradeBudget is the advisor budget in gp
	DefaultUpgradeBudget int64 = 10_000_000
	// DefaultCompanionDeadline bounds a whole companion app scan
	DefaultCompanionDeadline = 15 * time.Second

	// AlertNoTarget is raised when an action needs a target
	AlertNoTarget = "Select a monster first"
)

// Service defines the operations of one session
type Service interface {
	// Tables
	LoadTables(ctx context.Context, input *LoadTablesInput) (*LoadTablesOutput, error)
	SearchItems(ctx context.Context, input *SearchItemsInput) (*SearchItemsOutput, error)
	SearchMonsters(ctx context.Context, input *SearchMonstersInput) (*SearchMonstersOutput, error)

	// Build edits; each one recomputes
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)
	Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)
	SetStat(ctx context.Context, input *SetStatInput) (*SetStatOutput, error)
	SetBuff(ctx context.Context, input *SetBuffInput) (*SetBuffOutput, error)
	SetTarget(ctx context.Context, input *SetTargetInput) (*SetTargetOutput, error)
	ApplyProfile(ctx context.Context, input *ApplyProfileInput) (*ApplyProfileOutput, error)
	ImportHiscores(ctx context.Context, input *ImportHiscoresInput) (*ImportHiscoresOutput, error)
	SyncCompanion(ctx context.Context) (*SyncCompanionOutput, error)

	// Analysis
	Recompute(ctx context.Context) (*RecomputeOutput, error)
	RunSimulation(ctx context.Context, input *RunSimulationInput) (*RunSimulationOutput, error)
	FindUpgrades(ctx context.Context, input *FindUpgradesInput) (*FindUpgradesOutput, error)
	SetRanking(ctx context.Context, input *SetRankingInput) (*UpgradesViewOutput, error)
	SetExcludeDuo(ctx context.Context, input *SetExcludeDuoInput) (*UpgradesViewOutput, error)
	EquipmentBonuses(ctx context.Context) (*EquipmentBonusesOutput, error)

	GetState(ctx context.Context) (*State, error)
	Close(ctx context.Context) error
}

// Config holds the dependencies for the session orchestrator. Everything
// except IDGenerator is optional; missing collaborators turn the matching
// operations into no-ops or FailedPrecondition errors.
type Config struct {
	Catalog   *tables.Catalog
	Loader    *tables.Loader
	Engine    engine.Engine
	Hiscores  osrs.Client
	Companion wikisync.Client
	Notifier  Notifier

	IDGenerator idgen.Generator
	Clock       clock.Clock
	Logger      *zap.SugaredLogger

	TTKSamples        int
	BatchCount        int
	YieldDelay        time.Duration
	UpgradeBudget     int64
	CompanionDeadline time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.TTKSamples < 0 {
		vb.InvalidField("TTKSamples", "cannot be negative")
	}
	if c.BatchCount < 0 {
		vb.InvalidField("BatchCount", "cannot be negative")
	}
	if c.YieldDelay < 0 {
		vb.InvalidField("YieldDelay", "cannot be negative")
	}
	if c.UpgradeBudget < 0 {
		vb.InvalidField("UpgradeBudget", "cannot be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	mu sync.Mutex

	id        string
	loader    *tables.Loader
	hiscores  osrs.Client
	companion wikisync.Client
	notifier  Notifier
	clock     clock.Clock
	log       *zap.SugaredLogger

	ttkSamples        int
	batchCount        int
	yieldDelay        time.Duration
	upgradeBudget     int64
	companionDeadline time.Duration

	catalog     *tables.Catalog
	store       *equipment.Store
	invoker     *combat.Invoker
	recommender *upgrades.Recommender

	username string
	stats    map[string]int
	buffs    entities.Buffs

	distribution []entities.CDFPoint
	simulation   *entities.SimulationSummary
}

// NewOrchestrator creates a session with default levels, no gear and no
// target
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = tables.NewCatalog()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	id := cfg.IDGenerator.Generate()
	log := logger.OrNop(cfg.Logger).With("session", id)

	invoker, err := combat.NewInvoker(&combat.InvokerConfig{
		Engine: cfg.Engine,
		Tables: catalog,
		Clock:  clk,
		Logger: log,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create invoker")
	}

	return &orchestrator{
		id:                id,
		loader:            cfg.Loader,
		hiscores:          cfg.Hiscores,
		companion:         cfg.Companion,
		notifier:          notifier,
		clock:             clk,
		log:               log,
		ttkSamples:        orDefault(cfg.TTKSamples, DefaultTTKSamples),
		batchCount:        orDefault(cfg.BatchCount, DefaultBatchCount),
		yieldDelay:        cfg.YieldDelay,
		upgradeBudget:     orDefault(cfg.UpgradeBudget, DefaultUpgradeBudget),
		companionDeadline: orDefault(cfg.CompanionDeadline, DefaultCompanionDeadline),
		catalog:           catalog,
		store:             equipment.NewStore(catalog),
		invoker:           invoker,
		recommender:       upgrades.NewRecommender(),
		stats:             entities.DefaultStats(),
	}, nil
}

func orDefault[T int | int64 | time.Duration](v, def T) T {
	if v == 0 {
		return def
	}
	return v
}

// build assembles the current build. Callers hold mu.
func (o *orchestrator) build() *entities.Build {
	stats := make(map[string]int, len(o.stats))
	for k, v := range o.stats {
		stats[k] = v
	}
	return &entities.Build{
		Username:  o.username,
		Stats:     stats,
		Buffs:     o.buffs,
		Equipment: o.store.Snapshot(),
	}
}

// recomputeLocked refreshes the combat result and, when it changed, the kill
// time distribution. Callers hold mu.
func (o *orchestrator) recomputeLocked(ctx context.Context) combat.Status {
	build := o.build()
	out := o.invoker.Recompute(ctx, &combat.RecomputeInput{Build: build})

	switch out.Status {
	case combat.StatusUpdated:
		o.notifier.CombatResult(out.Result)
		o.refreshDistribution(ctx, build)
	case combat.StatusEngineError:
		o.log.Errorw("recompute failed, keeping previous result", "error", out.Err)
	default:
		o.log.Debugw("recompute skipped", "status", out.Status)
	}
	return out.Status
}

func (o *orchestrator) refreshDistribution(ctx context.Context, build *entities.Build) {
	samples, err := o.invoker.TTKSamples(ctx, build, o.ttkSamples)
	if err != nil {
		o.log.Warnw("kill time sampling failed", "error", err)
		return
	}
	o.distribution = ttk.Transform(samples)
	o.notifier.Distribution(o.distribution)
}

// clearDerived drops everything computed against the previous target
func (o *orchestrator) clearDerived() {
	o.distribution = nil
	o.simulation = nil
	o.recommender.SetRaw(nil)
	o.notifier.Distribution(nil)
	o.notifier.Upgrades(nil)
}

// yield pauses before a heavy engine call so a UI can repaint
func (o *orchestrator) yield(ctx context.Context) error {
	if o.yieldDelay <= 0 {
		return nil
	}

	if err := o.clock.Sleep(ctx, o.yieldDelay); err != nil {
		return errors.Wrap(err, "interrupted")
	}
	return nil
}

func (o *orchestrator) GetState(_ context.Context) (*State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	state := &State{
		ID:           o.id,
		Build:        o.build(),
		Target:       o.invoker.Target(),
		Result:       o.invoker.Result(),
		Distribution: o.distribution,
		Simulation:   o.simulation,
		Upgrades:     o.recommender.DerivedView(),
		Ranking:      o.recommender.Ranking(),
		ExcludeDuo:   o.recommender.ExcludeDuo(),
		TableCount:   o.catalog.Counts(),
	}
	return state, nil
}

func (o *orchestrator) Close(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.invoker.Close(ctx)
	o.log.Debugw("session closed")
	return nil
}
