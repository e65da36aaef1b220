package v1

import "github.com/osrsdps/dps-console/internal/entities"

// Messages travel as JSON through the grpcjson codec

// Empty is the request of calls that take no arguments
type Empty struct{}

// SessionState is the full view a UI renders
type SessionState struct {
	SessionID    string                       `json:"sessionId"`
	Build        *entities.Build              `json:"build"`
	Target       *entities.Target             `json:"target,omitempty"`
	Result       *entities.CombatResult       `json:"result,omitempty"`
	Distribution []entities.CDFPoint          `json:"distribution,omitempty"`
	Simulation   *entities.SimulationSummary  `json:"simulation,omitempty"`
	Upgrades     []entities.UpgradeSuggestion `json:"upgrades,omitempty"`
	Ranking      string                       `json:"ranking"`
	ExcludeDuo   bool                         `json:"excludeDuo"`
	TableCounts  map[string]int               `json:"tableCounts"`
}

// LoadTablesRequest reloads the lookup tables
type LoadTablesRequest struct {
	Refresh bool `json:"refresh"`
}

// LoadTablesResponse reports what was loaded
type LoadTablesResponse struct {
	Counts        map[string]int    `json:"counts"`
	Origin        map[string]string `json:"origin"`
	Failed        []string          `json:"failed,omitempty"`
	TargetDropped bool              `json:"targetDropped"`
}

// SearchItemsRequest searches equipable items
type SearchItemsRequest struct {
	Query string `json:"query"`
	Slot  string `json:"slot,omitempty"`
}

// SearchItemsResponse lists matching items
type SearchItemsResponse struct {
	Items []entities.Item `json:"items"`
}

// SearchMonstersRequest searches both target tables
type SearchMonstersRequest struct {
	Query string `json:"query"`
}

// SearchMonstersResponse lists matching targets
type SearchMonstersResponse struct {
	Monsters []entities.Monster `json:"monsters"`
}

// EquipRequest puts an item in a slot
type EquipRequest struct {
	Slot   string `json:"slot,omitempty"`
	ItemID string `json:"itemId"`
}

// UnequipRequest empties a slot
type UnequipRequest struct {
	Slot string `json:"slot"`
}

// SetStatRequest changes a skill level
type SetStatRequest struct {
	Skill string `json:"skill"`
	Level int    `json:"level"`
}

// SetBuffRequest toggles a buff
type SetBuffRequest struct {
	Buff    string `json:"buff"`
	Enabled bool   `json:"enabled"`
}

// SetTargetRequest selects a target
type SetTargetRequest struct {
	Name   string `json:"name"`
	Source string `json:"source,omitempty"`
}

// SetTargetResponse reports whether the target changed
type SetTargetResponse struct {
	Found bool          `json:"found"`
	State *SessionState `json:"state"`
}

// ChangeResponse carries the outcome of a build edit
type ChangeResponse struct {
	// Status is the equipment status for equip and unequip calls
	Status    string        `json:"status,omitempty"`
	Recompute string        `json:"recompute,omitempty"`
	State     *SessionState `json:"state"`
}

// RunSimulationRequest runs a batch simulation
type RunSimulationRequest struct {
	Count int `json:"count,omitempty"`
}

// RunSimulationResponse carries the batch summary
type RunSimulationResponse struct {
	Summary *entities.SimulationSummary `json:"summary"`
}

// FindUpgradesRequest runs the upgrade advisor
type FindUpgradesRequest struct {
	Budget            int64 `json:"budget,omitempty"`
	ExcludeThrowables bool  `json:"excludeThrowables"`
	ExcludeAmmo       bool  `json:"excludeAmmo"`
}

// UpgradesResponse carries the ranked upgrade view
type UpgradesResponse struct {
	Upgrades []entities.UpgradeSuggestion `json:"upgrades"`
}

// SetRankingRequest switches the ranking mode
type SetRankingRequest struct {
	Mode string `json:"mode"`
}

// SetExcludeDuoRequest toggles duo suggestions
type SetExcludeDuoRequest struct {
	Exclude bool `json:"exclude"`
}

// ImportHiscoresRequest imports levels for a player
type ImportHiscoresRequest struct {
	Username string `json:"username"`
}

// ImportHiscoresResponse reports the imported levels
type ImportHiscoresResponse struct {
	Levels map[string]int `json:"levels"`
	State  *SessionState  `json:"state"`
}

// SyncCompanionResponse reports the companion app import
type SyncCompanionResponse struct {
	Port    int               `json:"port"`
	Applied map[string]string `json:"applied"`
	Unknown []string          `json:"unknown,omitempty"`
	State   *SessionState     `json:"state"`
}

// EquipmentBonusesResponse carries the summed gear bonuses
type EquipmentBonusesResponse struct {
	Bonuses map[string]int `json:"bonuses"`
}
