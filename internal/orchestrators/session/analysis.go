package session

import (
	"context"

	"github.com/osrsdps/dps-console/internal/combat"
	"github.com/osrsdps/dps-console/internal/errors"
)

func (o *orchestrator) Recompute(ctx context.Context) (*RecomputeOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	status := o.recomputeLocked(ctx)
	return &RecomputeOutput{
		Status:       status,
		Result:       o.invoker.Result(),
		Distribution: o.distribution,
	}, nil
}

// requireTarget raises the no target alert. Callers hold mu.
func (o *orchestrator) requireTarget() error {
	if o.invoker.Target() != nil {
		return nil
	}
	o.notifier.Alert(AlertNoTarget)
	return errors.FailedPrecondition("no target selected").WithMeta("status", string(combat.StatusMissingTarget))
}

func (o *orchestrator) RunSimulation(ctx context.Context, input *RunSimulationInput) (*RunSimulationOutput, error) {
	count := o.batchCount
	if input != nil && input.Count != 0 {
		count = input.Count
	}
	if count < 0 {
		return nil, errors.InvalidArgument("simulation count cannot be negative")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireTarget(); err != nil {
		return nil, err
	}
	if err := o.yield(ctx); err != nil {
		return nil, err
	}

	summary, err := o.invoker.RunBatchSimulation(ctx, o.build(), count)
	if err != nil {
		o.log.Errorw("batch simulation failed", "count", count, "error", err)
		return nil, err
	}

	o.simulation = summary
	o.log.Infow("batch simulation finished",
		"count", summary.Simulations,
		"avg_seconds", summary.AvgSeconds,
		"kills_per_hour", summary.KillsPerHour,
	)
	return &RunSimulationOutput{Summary: summary}, nil
}

func (o *orchestrator) FindUpgrades(ctx context.Context, input *FindUpgradesInput) (*FindUpgradesOutput, error) {
	if input == nil {
		input = &FindUpgradesInput{}
	}
	if input.Budget < 0 {
		return nil, errors.InvalidArgument("budget cannot be negative")
	}
	budget := input.Budget
	if budget == 0 {
		budget = o.upgradeBudget
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireTarget(); err != nil {
		return nil, err
	}
	if err := o.yield(ctx); err != nil {
		return nil, err
	}

	raw, err := o.invoker.SuggestUpgrades(ctx, o.build(), &combat.SuggestInput{
		Budget:            budget,
		ExcludeThrowables: input.ExcludeThrowables,
		ExcludeAmmo:       input.ExcludeAmmo,
	})
	if err != nil {
		o.log.Errorw("upgrade advisor failed", "budget", budget, "error", err)
		o.notifier.Alert("Failed to find upgrades: " + errors.GetMessage(err))
		return nil, err
	}

	o.recommender.SetRaw(raw)
	view := o.recommender.DerivedView()
	o.notifier.Upgrades(view)
	o.log.Infow("upgrades found", "budget", budget, "count", len(raw))

	return &FindUpgradesOutput{Raw: o.recommender.Raw(), View: view}, nil
}

func (o *orchestrator) SetRanking(_ context.Context, input *SetRankingInput) (*UpgradesViewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.recommender.SetActiveRanking(input.Mode); err != nil {
		return nil, err
	}
	return o.publishViewLocked(), nil
}

func (o *orchestrator) SetExcludeDuo(_ context.Context, input *SetExcludeDuoInput) (*UpgradesViewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.recommender.SetExcludeDuo(input.Exclude)
	return o.publishViewLocked(), nil
}

func (o *orchestrator) publishViewLocked() *UpgradesViewOutput {
	view := o.recommender.DerivedView()
	o.notifier.Upgrades(view)
	return &UpgradesViewOutput{View: view}
}

func (o *orchestrator) EquipmentBonuses(ctx context.Context) (*EquipmentBonusesOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	bonuses, err := o.invoker.EquipmentBonuses(ctx, o.build())
	if err != nil {
		return nil, err
	}
	return &EquipmentBonusesOutput{Bonuses: bonuses}, nil
}
