package engine

import "encoding/json"

// Prayer names accepted by SetPrayer
const (
	PrayerPiety  = "piety"
	PrayerRigour = "rigour"
)

// Monster fields readable through GetMonsterField
const (
	FieldHitpoints    = "hitpoints"
	FieldCombatLevel  = "combat_level"
	FieldDefenceLevel = "defence_level"
)

// NewPlayerInput creates a player with engine defaults
type NewPlayerInput struct{}

// NewPlayerOutput returns the player handle
type NewPlayerOutput struct {
	PlayerID string `json:"playerId"`
}

// SetStatInput sets one skill level
type SetStatInput struct {
	PlayerID string `json:"playerId"`
	Skill    string `json:"skill"`
	Level    int    `json:"level"`
}

// SetStatOutput is empty
type SetStatOutput struct{}

// SetUsernameInput names the player
type SetUsernameInput struct {
	PlayerID string `json:"playerId"`
	Username string `json:"username"`
}

// SetUsernameOutput is empty
type SetUsernameOutput struct{}

// SetPrayerInput toggles a prayer
type SetPrayerInput struct {
	PlayerID string `json:"playerId"`
	Prayer   string `json:"prayer"`
	Enabled  bool   `json:"enabled"`
}

// SetPrayerOutput is empty
type SetPrayerOutput struct{}

// SetSuperCombatInput toggles the super combat potion boost
type SetSuperCombatInput struct {
	PlayerID string `json:"playerId"`
	Enabled  bool   `json:"enabled"`
}

// SetSuperCombatOutput is empty
type SetSuperCombatOutput struct{}

// EquipInput puts an item table record into a slot
type EquipInput struct {
	PlayerID string          `json:"playerId"`
	Slot     string          `json:"slot"`
	ItemID   string          `json:"itemId"`
	Item     json.RawMessage `json:"item"`
}

// EquipOutput is empty
type EquipOutput struct{}

// UnequipInput empties a slot
type UnequipInput struct {
	PlayerID string `json:"playerId"`
	Slot     string `json:"slot"`
}

// UnequipOutput is empty
type UnequipOutput struct{}

// GetEquipmentBonusInput reads one summed gear bonus
type GetEquipmentBonusInput struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

// GetEquipmentBonusOutput carries the bonus value
type GetEquipmentBonusOutput struct {
	Value int `json:"value"`
}

// NewMonsterInput builds a monster by name from a raw monster or boss table
type NewMonsterInput struct {
	Name   string          `json:"name"`
	Source string          `json:"source"`
	Table  json.RawMessage `json:"table"`
}

// NewMonsterOutput returns the monster handle
type NewMonsterOutput struct {
	MonsterID string `json:"monsterId"`
}

// GetMonsterFieldInput reads an integer field of a monster
type GetMonsterFieldInput struct {
	MonsterID string `json:"monsterId"`
	Field     string `json:"field"`
}

// GetMonsterFieldOutput carries the field value, zero when absent
type GetMonsterFieldOutput struct {
	Value int `json:"value"`
}

// NewBattleInput pairs a player with a monster
type NewBattleInput struct {
	PlayerID  string `json:"playerId"`
	MonsterID string `json:"monsterId"`
}

// NewBattleOutput returns the battle handle
type NewBattleOutput struct {
	BattleID string `json:"battleId"`
}

// GetBattleResultsInput reads the expected-value results of a battle
type GetBattleResultsInput struct {
	BattleID string `json:"battleId"`
}

// GetBattleResultsOutput carries the results object, decoded with
// DecodeResults
type GetBattleResultsOutput struct {
	Payload json.RawMessage `json:"payload"`
}

// GetTTKDistributionInput samples kill times
type GetTTKDistributionInput struct {
	BattleID string `json:"battleId"`
	Samples  int    `json:"samples"`
}

// GetTTKDistributionOutput carries the ascending samples array, decoded
// with DecodeSamples
type GetTTKDistributionOutput struct {
	Payload json.RawMessage `json:"payload"`
}

// OptimizeAttackStyleInput picks the best style for a battle
type OptimizeAttackStyleInput struct {
	BattleID string `json:"battleId"`
}

// OptimizeAttackStyleOutput is empty
type OptimizeAttackStyleOutput struct{}

// RunSimulationsInput runs full fight simulations
type RunSimulationsInput struct {
	BattleID string `json:"battleId"`
	Count    int    `json:"count"`
}

// RunSimulationsOutput carries the mean kill time in ticks
type RunSimulationsOutput struct {
	MeanTicks float64 `json:"meanTicks"`
}

// NewAdvisorInput builds an upgrade advisor for a player and monster
type NewAdvisorInput struct {
	PlayerID  string          `json:"playerId"`
	MonsterID string          `json:"monsterId"`
	Items     json.RawMessage `json:"items"`
	Prices    json.RawMessage `json:"prices"`
}

// NewAdvisorOutput returns the advisor handle
type NewAdvisorOutput struct {
	AdvisorID string `json:"advisorId"`
}

// SuggestUpgradesInput asks for upgrades within a budget. A zero budget
// means unlimited.
type SuggestUpgradesInput struct {
	AdvisorID         string `json:"advisorId"`
	Budget            int64  `json:"budget"`
	ExcludeThrowables bool   `json:"excludeThrowables"`
	ExcludeAmmo       bool   `json:"excludeAmmo"`
}

// SuggestUpgradesOutput carries the suggestion array, decoded with
// DecodeSuggestions
type SuggestUpgradesOutput struct {
	Payload json.RawMessage `json:"payload"`
}

// ReleaseInput lists handles to free
type ReleaseInput struct {
	Handles []string `json:"handles"`
}

// ReleaseOutput counts the handles that existed
type ReleaseOutput struct {
	Released int `json:"released"`
}
