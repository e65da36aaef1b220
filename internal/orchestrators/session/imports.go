package session

import (
	"context"
	"strings"

	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/hiscores"
	"github.com/osrsdps/dps-console/internal/tables"
)

// Alerts raised by the import operations
const (
	AlertHiscoresFailed  = "Failed to fetch hiscores"
	AlertCompanionFailed = "Could not reach the companion app"
)

func (o *orchestrator) LoadTables(ctx context.Context, input *LoadTablesInput) (*LoadTablesOutput, error) {
	if o.loader == nil {
		return nil, errors.FailedPrecondition("no table loader configured")
	}
	if input == nil {
		input = &LoadTablesInput{}
	}

	loaded, err := o.loader.Load(ctx, &tables.LoadInput{Refresh: input.Refresh})
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.catalog = loaded.Catalog
	o.store.SetItems(loaded.Catalog)
	o.invoker.SetTables(loaded.Catalog)

	out := &LoadTablesOutput{
		Counts: loaded.Catalog.Counts(),
		Origin: loaded.Origin,
		Failed: loaded.Failed,
	}

	// monster handles embed the old table record
	if current := o.invoker.Target(); current != nil {
		next, ok := o.catalog.FindTarget(current.Name, current.Source)
		if !ok {
			next = nil
			out.TargetDropped = true
			o.log.Warnw("target missing from reloaded tables", "target", current.Name, "source", current.Source)
		}
		if err := o.invoker.SetTarget(ctx, next); err != nil {
			o.log.Warnw("failed to create monster", "target", current.Name, "error", err)
		}
		o.clearDerived()
	}

	o.recomputeLocked(ctx)
	return out, nil
}

func (o *orchestrator) ImportHiscores(ctx context.Context, input *ImportHiscoresInput) (*ImportHiscoresOutput, error) {
	if input == nil || strings.TrimSpace(input.Username) == "" {
		return nil, errors.InvalidArgument("username is required")
	}
	if o.hiscores == nil {
		return nil, errors.FailedPrecondition("no hiscores client configured")
	}
	username := strings.TrimSpace(input.Username)

	body, err := o.hiscores.FetchHiscores(ctx, username)
	if err != nil {
		o.log.Warnw("hiscores lookup failed", "username", username, "error", err)
		o.notifier.Alert(AlertHiscoresFailed + " for " + username)
		return nil, errors.Wrapf(err, "failed to import hiscores for %s", username)
	}
	levels := hiscores.CombatLevels(hiscores.Parse(body))

	o.mu.Lock()
	defer o.mu.Unlock()

	for skill, level := range levels {
		o.stats[skill] = level
	}
	o.username = username
	o.log.Infow("hiscores imported", "username", username, "levels", levels)

	return &ImportHiscoresOutput{
		Levels:    levels,
		Recompute: o.recomputeLocked(ctx),
	}, nil
}

func (o *orchestrator) SyncCompanion(ctx context.Context) (*SyncCompanionOutput, error) {
	if o.companion == nil {
		return nil, errors.FailedPrecondition("no companion client configured")
	}

	scanCtx, cancel := context.WithTimeout(ctx, o.companionDeadline)
	defer cancel()

	player, err := o.companion.FetchPlayer(scanCtx)
	if err != nil {
		o.log.Warnw("companion sync failed", "error", err)
		o.notifier.Alert(AlertCompanionFailed)
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	out := &SyncCompanionOutput{
		Port:    player.Port,
		Applied: make(map[string]string, len(player.Equipment)),
	}
	out.Unknown = o.equipAllLocked(player.Equipment, out.Applied)
	if len(out.Applied) > 0 {
		out.Recompute = o.recomputeLocked(ctx)
	}
	return out, nil
}
