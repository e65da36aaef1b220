package entities

import "time"

// TickSeconds is the duration of one engine tick
const TickSeconds = 0.6

// CombatResult is the derived view of a build against a target. It is
// replaced wholesale on every recompute.
type CombatResult struct {
	DPS          float64 `json:"dps"`
	MaxHit       int     `json:"maxHit"`
	HitChance    float64 `json:"hitChance"`
	Style        string  `json:"style"`
	Stance       string  `json:"stance"`
	AttackSpeed  int     `json:"attackSpeed"`
	AvgTTK       float64 `json:"avgTTK"`
	KillsPerHour float64 `json:"killsPerHour"`
	// Effects names the gear and target effects the engine applied, such
	// as "tbow" or "salve"
	Effects    []string  `json:"effects,omitempty"`
	ActiveSet  string    `json:"activeSet,omitempty"`
	ComputedAt time.Time `json:"computedAt"`
}

// CDFPoint is one step of a kill time distribution
type CDFPoint struct {
	Time    float64 `json:"time"`
	Percent float64 `json:"percent"`
}

// SimulationSummary is the outcome of a batch simulation with an optimized
// attack style
type SimulationSummary struct {
	Simulations  int     `json:"simulations"`
	MeanTicks    float64 `json:"meanTicks"`
	AvgSeconds   float64 `json:"avgSeconds"`
	KillsPerHour float64 `json:"killsPerHour"`
}

// NewSimulationSummary converts mean ticks into seconds and kills per hour.
// Kills per hour is zero unless the target has hitpoints and the kill takes
// measurable time.
func NewSimulationSummary(simulations int, meanTicks float64, targetHitpoints int) SimulationSummary {
	avgSeconds := meanTicks * TickSeconds
	var kph float64
	if targetHitpoints > 0 && avgSeconds > 0 {
		kph = 3600 / avgSeconds
	}
	return SimulationSummary{
		Simulations:  simulations,
		MeanTicks:    meanTicks,
		AvgSeconds:   avgSeconds,
		KillsPerHour: kph,
	}
}
