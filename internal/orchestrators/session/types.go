package session

import (
	"github.com/osrsdps/dps-console/internal/combat"
	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/equipment"
	"github.com/osrsdps/dps-console/internal/tables"
	"github.com/osrsdps/dps-console/internal/upgrades"
)

// State is a snapshot of everything the session owns
type State struct {
	ID           string
	Build        *entities.Build
	Target       *entities.Target
	Result       *entities.CombatResult
	Distribution []entities.CDFPoint
	Simulation   *entities.SimulationSummary
	// Upgrades is the filtered and ranked view of the last advisor run
	Upgrades   []entities.UpgradeSuggestion
	Ranking    upgrades.Ranking
	ExcludeDuo bool
	TableCount map[tables.Kind]int
}

// LoadTablesInput defines the request for (re)loading the lookup tables
type LoadTablesInput struct {
	Refresh bool
}

// LoadTablesOutput defines the response for loading tables
type LoadTablesOutput struct {
	Counts map[tables.Kind]int
	Origin map[tables.Kind]string
	Failed []tables.Kind
	// TargetDropped is set when the active target is missing from the new tables
	TargetDropped bool
}

// EquipInput defines the request for equipping an item
type EquipInput struct {
	Slot   string
	ItemID string
}

// EquipOutput defines the response for equipping an item
type EquipOutput struct {
	Status        equipment.Status
	Slot          string
	ClearedShield bool
	Recompute     combat.Status
}

// UnequipInput defines the request for emptying a slot
type UnequipInput struct {
	Slot string
}

// UnequipOutput defines the response for emptying a slot
type UnequipOutput struct {
	Status    equipment.Status
	Removed   *entities.EquippedItem
	Recompute combat.Status
}

// SetStatInput defines the request for changing a skill level
type SetStatInput struct {
	Skill string
	Level int
}

// SetStatOutput defines the response for changing a skill level
type SetStatOutput struct {
	Recompute combat.Status
}

// SetBuffInput defines the request for toggling a buff
type SetBuffInput struct {
	Buff    entities.Buff
	Enabled bool
}

// SetBuffOutput defines the response for toggling a buff
type SetBuffOutput struct {
	Recompute combat.Status
}

// SetTargetInput defines the request for selecting a target
type SetTargetInput struct {
	Name   string
	Source entities.TargetSource
}

// SetTargetOutput defines the response for selecting a target. Found is
// false when the name is not in the table; the previous target is kept.
type SetTargetOutput struct {
	Found     bool
	Target    *entities.Target
	Recompute combat.Status
}

// RecomputeOutput defines the response for an explicit recompute
type RecomputeOutput struct {
	Status       combat.Status
	Result       *entities.CombatResult
	Distribution []entities.CDFPoint
}

// RunSimulationInput defines the request for a batch simulation
type RunSimulationInput struct {
	// Count defaults to the configured batch size
	Count int
}

// RunSimulationOutput defines the response for a batch simulation
type RunSimulationOutput struct {
	Summary *entities.SimulationSummary
}

// FindUpgradesInput defines the request for an advisor run
type FindUpgradesInput struct {
	// Budget in gp; zero uses the configured default
	Budget            int64
	ExcludeThrowables bool
	ExcludeAmmo       bool
}

// FindUpgradesOutput defines the response for an advisor run
type FindUpgradesOutput struct {
	Raw  []entities.UpgradeSuggestion
	View []entities.UpgradeSuggestion
}

// SetRankingInput defines the request for switching the ranking mode
type SetRankingInput struct {
	Mode string
}

// SetExcludeDuoInput defines the request for toggling duo suggestions
type SetExcludeDuoInput struct {
	Exclude bool
}

// UpgradesViewOutput carries the re-derived upgrade view
type UpgradesViewOutput struct {
	View []entities.UpgradeSuggestion
}

// ImportHiscoresInput defines the request for importing levels
type ImportHiscoresInput struct {
	Username string
}

// ImportHiscoresOutput defines the response for importing levels
type ImportHiscoresOutput struct {
	Levels    map[string]int
	Recompute combat.Status
}

// SyncCompanionOutput defines the response for a companion app sync
type SyncCompanionOutput struct {
	Port int
	// Applied maps slot to the item id that was equipped
	Applied map[string]string
	// Unknown lists slots whose item ids are not in the item table
	Unknown   []string
	Recompute combat.Status
}

// SearchItemsInput defines the request for an item search
type SearchItemsInput struct {
	Query string
	Slot  string
}

// SearchItemsOutput defines the response for an item search
type SearchItemsOutput struct {
	Items []entities.Item
}

// SearchMonstersInput defines the request for a monster search
type SearchMonstersInput struct {
	Query string
}

// SearchMonstersOutput defines the response for a monster search
type SearchMonstersOutput struct {
	Monsters []entities.Monster
}

// EquipmentBonusesOutput defines the response for the bonus readout
type EquipmentBonusesOutput struct {
	Bonuses map[string]int
}

// ApplyProfileInput defines the request for applying a starting build
type ApplyProfileInput struct {
	Username  string
	Stats     map[string]int
	Buffs     entities.Buffs
	Equipment map[string]string
	Target    *SetTargetInput
}

// ApplyProfileOutput defines the response for applying a starting build
type ApplyProfileOutput struct {
	UnknownItems []string
	TargetFound  bool
	Recompute    combat.Status
}
