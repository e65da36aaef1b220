// Package engine defines the contract of the combat engine the console
// drives. The engine owns all combat math; the console holds opaque
// handles to the objects it creates and releases them when done.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/osrsdps/dps-console/internal/engine Engine

import (
	"context"
)

// Engine is the set of operations the console calls on the combat engine.
// Handles returned by the New* methods stay valid until passed to Release.
type Engine interface {
	// Player
	NewPlayer(ctx context.Context, input *NewPlayerInput) (*NewPlayerOutput, error)
	SetStat(ctx context.Context, input *SetStatInput) (*SetStatOutput, error)
	SetUsername(ctx context.Context, input *SetUsernameInput) (*SetUsernameOutput, error)
	SetPrayer(ctx context.Context, input *SetPrayerInput) (*SetPrayerOutput, error)
	SetSuperCombat(ctx context.Context, input *SetSuperCombatInput) (*SetSuperCombatOutput, error)
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)
	Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)
	GetEquipmentBonus(ctx context.Context, input *GetEquipmentBonusInput) (*GetEquipmentBonusOutput, error)

	// Monster
	NewMonster(ctx context.Context, input *NewMonsterInput) (*NewMonsterOutput, error)
	GetMonsterField(ctx context.Context, input *GetMonsterFieldInput) (*GetMonsterFieldOutput, error)

	// Battle
	NewBattle(ctx context.Context, input *NewBattleInput) (*NewBattleOutput, error)
	GetBattleResults(ctx context.Context, input *GetBattleResultsInput) (*GetBattleResultsOutput, error)
	GetTTKDistribution(ctx context.Context, input *GetTTKDistributionInput) (*GetTTKDistributionOutput, error)
	OptimizeAttackStyle(
		ctx context.Context,
		input *OptimizeAttackStyleInput,
	) (*OptimizeAttackStyleOutput, error)
	RunSimulations(ctx context.Context, input *RunSimulationsInput) (*RunSimulationsOutput, error)

	// Advisor
	NewAdvisor(ctx context.Context, input *NewAdvisorInput) (*NewAdvisorOutput, error)
	SuggestUpgrades(ctx context.Context, input *SuggestUpgradesInput) (*SuggestUpgradesOutput, error)

	// Release frees handles. Unknown handles are ignored.
	Release(ctx context.Context, input *ReleaseInput) (*ReleaseOutput, error)
}
