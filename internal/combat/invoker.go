// Package combat keeps the engine's player, monster and battle objects in
// step with the session's build and target, and turns engine payloads into
// typed results.
package combat

import (
	"context"

	"go.uber.org/zap"

	"github.com/osrsdps/dps-console/internal/engine"
	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/logger"
	"github.com/osrsdps/dps-console/internal/pkg/clock"
	"github.com/osrsdps/dps-console/internal/tables"
)

// Status reports what a Recompute did
type Status string

// Statuses
const (
	StatusUpdated       Status = "updated"
	StatusMissingEngine Status = "missing_engine"
	StatusMissingBuild  Status = "missing_build"
	StatusMissingTarget Status = "missing_target"
	StatusEngineError   Status = "engine_error"
)

// older item tables report melee strength under this name
const legacyStrengthBonus = "strength_bonus"

// TableSource exposes the raw tables the engine consumes
type TableSource interface {
	RawTable(kind tables.Kind) []byte
	SourceTable(source entities.TargetSource) []byte
}

// InvokerConfig holds the dependencies for the Invoker
type InvokerConfig struct {
	// Engine may be nil; every call then reports StatusMissingEngine
	Engine engine.Engine
	Tables TableSource
	Clock  clock.Clock
	Logger *zap.SugaredLogger
}

// Validate ensures all required dependencies are provided
func (c *InvokerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Tables == nil {
		vb.RequiredField("Tables")
	}
	return vb.Build()
}

// Invoker owns the engine handles of one session. It is not safe for
// concurrent use.
type Invoker struct {
	engine engine.Engine
	tables TableSource
	clock  clock.Clock
	log    *zap.SugaredLogger

	playerID string
	// synced is the build last pushed to playerID
	synced *entities.Build

	target    *entities.Target
	monsterID string

	result *entities.CombatResult
}

// NewInvoker creates an Invoker
func NewInvoker(cfg *InvokerConfig) (*Invoker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Invoker{
		engine: cfg.Engine,
		tables: cfg.Tables,
		clock:  c,
		log:    logger.OrNop(cfg.Logger),
	}, nil
}

// SetTables swaps the table source, for example after a reload
func (i *Invoker) SetTables(t TableSource) {
	if t != nil {
		i.tables = t
	}
}

// Target returns the active target
func (i *Invoker) Target() *entities.Target {
	return i.target
}

// Result returns the last successful result
func (i *Invoker) Result() *entities.CombatResult {
	return i.result
}

// DiscardResult forgets the last result
func (i *Invoker) DiscardResult() {
	i.result = nil
}

// RecomputeInput carries the build to evaluate
type RecomputeInput struct {
	Build *entities.Build
}

// RecomputeOutput reports the outcome of a recompute. Result is the latest
// successful result, which is the previous one on StatusEngineError.
type RecomputeOutput struct {
	Status Status
	Result *entities.CombatResult
	Err    error
}

// precondition returns the no-op status for a missing dependency, or ""
func (i *Invoker) precondition(build *entities.Build, needTarget bool) Status {
	switch {
	case i.engine == nil:
		return StatusMissingEngine
	case build == nil:
		return StatusMissingBuild
	case needTarget && i.target == nil:
		return StatusMissingTarget
	default:
		return ""
	}
}

func preconditionError(status Status) error {
	return errors.FailedPreconditionf("cannot reach the engine: %s", status).WithMeta("status", string(status))
}

// Recompute syncs the build to the engine and reads fresh results through
// a transient battle. Engine failures are logged and leave the previous
// result in place.
func (i *Invoker) Recompute(ctx context.Context, input *RecomputeInput) *RecomputeOutput {
	var build *entities.Build
	if input != nil {
		build = input.Build
	}
	if status := i.precondition(build, true); status != "" {
		return &RecomputeOutput{Status: status, Result: i.result}
	}

	var result *entities.CombatResult
	err := i.withBattle(ctx, build, func(battleID string) error {
		out, err := i.engine.GetBattleResults(ctx, &engine.GetBattleResultsInput{BattleID: battleID})
		if err != nil {
			return err
		}
		result, err = engine.DecodeResults(out.Payload)
		return err
	})
	if err != nil {
		i.log.Errorw("recompute failed", "target", i.target.Name, "error", err)
		return &RecomputeOutput{Status: StatusEngineError, Result: i.result, Err: err}
	}

	result.ComputedAt = i.clock.Now()
	i.result = result
	i.log.Debugw("recomputed", "target", i.target.Name, "dps", result.DPS, "max_hit", result.MaxHit)
	return &RecomputeOutput{Status: StatusUpdated, Result: result}
}

// SetTarget replaces the target. The old monster handle is released and the
// previous result discarded. A nil target clears it.
func (i *Invoker) SetTarget(ctx context.Context, target *entities.Target) error {
	i.releaseMonster(ctx)
	i.result = nil
	i.target = target
	if target == nil || i.engine == nil {
		return nil
	}
	return i.ensureMonster(ctx)
}

// TTKSamples returns count kill time samples in ascending order
func (i *Invoker) TTKSamples(ctx context.Context, build *entities.Build, count int) ([]float64, error) {
	if status := i.precondition(build, true); status != "" {
		return nil, preconditionError(status)
	}
	if count <= 0 {
		return nil, errors.InvalidArgument("sample count must be positive")
	}

	var samples []float64
	err := i.withBattle(ctx, build, func(battleID string) error {
		out, err := i.engine.GetTTKDistribution(ctx, &engine.GetTTKDistributionInput{
			BattleID: battleID,
			Samples:  count,
		})
		if err != nil {
			return err
		}
		samples, err = engine.DecodeSamples(out.Payload)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sample kill times")
	}
	return samples, nil
}

// RunBatchSimulation optimizes the attack style and simulates count kills
func (i *Invoker) RunBatchSimulation(
	ctx context.Context,
	build *entities.Build,
	count int,
) (*entities.SimulationSummary, error) {
	if status := i.precondition(build, true); status != "" {
		return nil, preconditionError(status)
	}
	if count <= 0 {
		return nil, errors.InvalidArgument("simulation count must be positive")
	}

	var meanTicks float64
	err := i.withBattle(ctx, build, func(battleID string) error {
		if _, err := i.engine.OptimizeAttackStyle(ctx, &engine.OptimizeAttackStyleInput{BattleID: battleID}); err != nil {
			return err
		}
		out, err := i.engine.RunSimulations(ctx, &engine.RunSimulationsInput{BattleID: battleID, Count: count})
		if err != nil {
			return err
		}
		meanTicks = out.MeanTicks
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to run simulations")
	}

	summary := entities.NewSimulationSummary(count, meanTicks, i.targetHitpoints(ctx))
	return &summary, nil
}

// targetHitpoints asks the engine first and falls back to the table record
func (i *Invoker) targetHitpoints(ctx context.Context) int {
	out, err := i.engine.GetMonsterField(ctx, &engine.GetMonsterFieldInput{
		MonsterID: i.monsterID,
		Field:     engine.FieldHitpoints,
	})
	if err == nil && out.Value > 0 {
		return out.Value
	}
	if err != nil {
		i.log.Debugw("hitpoints lookup failed, using table value", "target", i.target.Name, "error", err)
	}
	return i.target.Monster.Hitpoints
}

// SuggestInput holds the advisor options
type SuggestInput struct {
	Budget            int64
	ExcludeThrowables bool
	ExcludeAmmo       bool
}

// SuggestUpgrades runs the upgrade advisor for the build against the target
func (i *Invoker) SuggestUpgrades(
	ctx context.Context,
	build *entities.Build,
	input *SuggestInput,
) ([]entities.UpgradeSuggestion, error) {
	if status := i.precondition(build, true); status != "" {
		return nil, preconditionError(status)
	}
	if input == nil {
		input = &SuggestInput{}
	}
	if input.Budget < 0 {
		return nil, errors.InvalidArgument("budget cannot be negative")
	}

	if err := i.syncPlayer(ctx, build); err != nil {
		return nil, errors.Wrap(err, "failed to sync player")
	}
	if err := i.ensureMonster(ctx); err != nil {
		return nil, err
	}

	advisor, err := i.engine.NewAdvisor(ctx, &engine.NewAdvisorInput{
		PlayerID:  i.playerID,
		MonsterID: i.monsterID,
		Items:     i.tables.RawTable(tables.KindItems),
		Prices:    i.tables.RawTable(tables.KindPrices),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create advisor")
	}
	defer i.release(ctx, advisor.AdvisorID)

	out, err := i.engine.SuggestUpgrades(ctx, &engine.SuggestUpgradesInput{
		AdvisorID:         advisor.AdvisorID,
		Budget:            input.Budget,
		ExcludeThrowables: input.ExcludeThrowables,
		ExcludeAmmo:       input.ExcludeAmmo,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest upgrades")
	}

	suggestions, err := engine.DecodeSuggestions(out.Payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode suggestions")
	}
	return suggestions, nil
}

// EquipmentBonuses reads every summed gear bonus. No target is needed.
func (i *Invoker) EquipmentBonuses(ctx context.Context, build *entities.Build) (map[string]int, error) {
	if status := i.precondition(build, false); status != "" {
		return nil, preconditionError(status)
	}
	if err := i.syncPlayer(ctx, build); err != nil {
		return nil, errors.Wrap(err, "failed to sync player")
	}

	bonuses := make(map[string]int, len(entities.EquipmentBonusNames))
	for _, name := range entities.EquipmentBonusNames {
		value, err := i.bonus(ctx, name)
		if err != nil {
			return nil, err
		}
		if value == 0 && name == "melee_strength" {
			if value, err = i.bonus(ctx, legacyStrengthBonus); err != nil {
				return nil, err
			}
		}
		bonuses[name] = value
	}
	return bonuses, nil
}

func (i *Invoker) bonus(ctx context.Context, name string) (int, error) {
	out, err := i.engine.GetEquipmentBonus(ctx, &engine.GetEquipmentBonusInput{PlayerID: i.playerID, Name: name})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read bonus %s", name)
	}
	return out.Value, nil
}

// Close releases every handle the invoker holds
func (i *Invoker) Close(ctx context.Context) {
	if i.engine == nil {
		return
	}
	i.release(ctx, i.playerID, i.monsterID)
	i.playerID, i.synced, i.monsterID = "", nil, ""
}

// withBattle syncs the player and monster, then runs fn against a battle
// that is released afterwards
func (i *Invoker) withBattle(ctx context.Context, build *entities.Build, fn func(battleID string) error) error {
	if err := i.syncPlayer(ctx, build); err != nil {
		return errors.Wrap(err, "failed to sync player")
	}
	if err := i.ensureMonster(ctx); err != nil {
		return err
	}

	battle, err := i.engine.NewBattle(ctx, &engine.NewBattleInput{PlayerID: i.playerID, MonsterID: i.monsterID})
	if err != nil {
		return errors.Wrap(err, "failed to create battle")
	}
	defer i.release(ctx, battle.BattleID)

	return fn(battle.BattleID)
}

func (i *Invoker) ensureMonster(ctx context.Context) error {
	if i.monsterID != "" {
		return nil
	}

	out, err := i.engine.NewMonster(ctx, &engine.NewMonsterInput{
		Name:   i.target.Name,
		Source: string(i.target.Source),
		Table:  i.tables.SourceTable(i.target.Source),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to load monster %s", i.target.Name)
	}
	i.monsterID = out.MonsterID
	return nil
}

func (i *Invoker) releaseMonster(ctx context.Context) {
	if i.monsterID == "" {
		return
	}
	i.release(ctx, i.monsterID)
	i.monsterID = ""
}

// release frees handles, ignoring empty ones. Failures only leak engine
// memory so they are logged.
func (i *Invoker) release(ctx context.Context, handles ...string) {
	var live []string
	for _, h := range handles {
		if h != "" {
			live = append(live, h)
		}
	}
	if len(live) == 0 {
		return
	}
	if _, err := i.engine.Release(context.WithoutCancel(ctx), &engine.ReleaseInput{Handles: live}); err != nil {
		i.log.Warnw("failed to release engine handles", "handles", live, "error", err)
	}
}
