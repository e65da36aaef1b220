package session

import (
	"go.uber.org/zap"

	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/logger"
)

//go:generate mockgen -destination=mock/mock_notifier.go -package=sessionmock github.com/osrsdps/dps-console/internal/orchestrators/session Notifier

// Notifier receives derived state as it changes. Calls happen while the
// session lock is held, so implementations must not call back into the
// session.
type Notifier interface {
	CombatResult(result *entities.CombatResult)
	Distribution(points []entities.CDFPoint)
	Upgrades(view []entities.UpgradeSuggestion)
	// Alert carries a message the user has to see
	Alert(message string)
}

// NopNotifier drops every event
type NopNotifier struct{}

// CombatResult implements Notifier
func (NopNotifier) CombatResult(*entities.CombatResult) {}

// Distribution implements Notifier
func (NopNotifier) Distribution([]entities.CDFPoint) {}

// Upgrades implements Notifier
func (NopNotifier) Upgrades([]entities.UpgradeSuggestion) {}

// Alert implements Notifier
func (NopNotifier) Alert(string) {}

// LogNotifier writes events to a logger, for headless runs
type LogNotifier struct {
	Log *zap.SugaredLogger
}

// CombatResult implements Notifier
func (n LogNotifier) CombatResult(r *entities.CombatResult) {
	if r == nil {
		return
	}
	logger.OrNop(n.Log).Infow("combat result",
		"dps", r.DPS,
		"max_hit", r.MaxHit,
		"hit_chance", r.HitChance,
		"style", r.Style,
		"avg_ttk", r.AvgTTK,
	)
}

// Distribution implements Notifier
func (n LogNotifier) Distribution(points []entities.CDFPoint) {
	logger.OrNop(n.Log).Debugw("kill time distribution", "points", len(points))
}

// Upgrades implements Notifier
func (n LogNotifier) Upgrades(view []entities.UpgradeSuggestion) {
	logger.OrNop(n.Log).Infow("upgrades", "count", len(view))
}

// Alert implements Notifier
func (n LogNotifier) Alert(message string) {
	logger.OrNop(n.Log).Warnw(message)
}
