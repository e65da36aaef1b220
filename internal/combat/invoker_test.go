package combat_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/osrsdps/dps-console/internal/combat"
	"github.com/osrsdps/dps-console/internal/engine"
	enginemock "github.com/osrsdps/dps-console/internal/engine/mock"
	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/errors"
	mockclock "github.com/osrsdps/dps-console/internal/pkg/clock/mock"
	"github.com/osrsdps/dps-console/internal/tables"
	"github.com/osrsdps/dps-console/internal/testutils"
)

const resultsPayload = `{"dps":5.25,"maxHit":48,"hitChance":0.74,"style":"slash","stance":"accurate",` +
	`"attackSpeed":4,"avgTTK":31.2,"killsPerHour":88.4}`

type InvokerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockEngine *enginemock.MockEngine
	mockClock  *mockclock.MockClock
	catalog    *tables.Catalog
	invoker    *combat.Invoker
	ctx        context.Context
	now        time.Time
	build      *entities.Build
	vorkath    *entities.Target
}

func TestInvokerSuite(t *testing.T) {
	suite.Run(t, new(InvokerTestSuite))
}

func (s *InvokerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	s.catalog = tables.NewCatalog()
	s.Require().NoError(s.catalog.Load(tables.KindItems, []byte(testutils.ItemTableJSON)))
	s.Require().NoError(s.catalog.Load(tables.KindMonsters, []byte(testutils.MonsterTableJSON)))
	s.Require().NoError(s.catalog.Load(tables.KindBosses, []byte(testutils.BossTableJSON)))
	s.Require().NoError(s.catalog.Load(tables.KindPrices, []byte(testutils.PriceTableJSON)))

	invoker, err := combat.NewInvoker(&combat.InvokerConfig{
		Engine: s.mockEngine,
		Tables: s.catalog,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.invoker = invoker

	whip, _ := s.catalog.Item("4151")
	s.build = &entities.Build{
		Stats: entities.DefaultStats(),
		Equipment: map[string]entities.EquippedItem{
			entities.SlotWeapon: {ID: whip.ID, Name: whip.Name, Item: whip},
		},
	}

	target, ok := s.catalog.FindTarget("Vorkath", entities.SourceBoss)
	s.Require().True(ok)
	s.vorkath = target
}

func (s *InvokerTestSuite) expectFreshPlayer(id string) {
	s.mockEngine.EXPECT().NewPlayer(s.ctx, gomock.Any()).Return(&engine.NewPlayerOutput{PlayerID: id}, nil)
	s.mockEngine.EXPECT().SetStat(s.ctx, gomock.Any()).Return(&engine.SetStatOutput{}, nil).Times(len(entities.CombatSkills))
	s.mockEngine.EXPECT().Equip(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.EquipInput) (*engine.EquipOutput, error) {
			s.Equal(id, in.PlayerID)
			s.Equal(entities.SlotWeapon, in.Slot)
			s.Equal("4151", in.ItemID)
			s.Contains(string(in.Item), "Abyssal whip")
			return &engine.EquipOutput{}, nil
		})
}

func (s *InvokerTestSuite) expectTarget(id string) {
	s.mockEngine.EXPECT().NewMonster(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.NewMonsterInput) (*engine.NewMonsterOutput, error) {
			s.Equal("Vorkath", in.Name)
			s.Equal("boss", in.Source)
			s.JSONEq(testutils.BossTableJSON, string(in.Table))
			return &engine.NewMonsterOutput{MonsterID: id}, nil
		})
	s.Require().NoError(s.invoker.SetTarget(s.ctx, s.vorkath))
}

func (s *InvokerTestSuite) expectBattle(id string) {
	s.mockEngine.EXPECT().NewBattle(s.ctx, &engine.NewBattleInput{PlayerID: "player-1", MonsterID: "monster-1"}).
		Return(&engine.NewBattleOutput{BattleID: id}, nil)
	s.mockEngine.EXPECT().Release(gomock.Any(), &engine.ReleaseInput{Handles: []string{id}}).
		Return(&engine.ReleaseOutput{Released: 1}, nil)
}

func (s *InvokerTestSuite) TestNewInvokerValidation() {
	_, err := combat.NewInvoker(nil)
	s.Error(err)

	_, err = combat.NewInvoker(&combat.InvokerConfig{Engine: s.mockEngine})
	s.Require().Error(err)
	s.Contains(err.Error(), "Tables")
}

func (s *InvokerTestSuite) TestRecomputeMissingDependencies() {
	noEngine, err := combat.NewInvoker(&combat.InvokerConfig{Tables: s.catalog})
	s.Require().NoError(err)
	s.Require().NoError(noEngine.SetTarget(s.ctx, s.vorkath))
	s.Equal(combat.StatusMissingEngine, noEngine.Recompute(s.ctx, &combat.RecomputeInput{Build: s.build}).Status)

	s.Equal(combat.StatusMissingBuild, s.invoker.Recompute(s.ctx, nil).Status)
	s.Equal(combat.StatusMissingTarget, s.invoker.Recompute(s.ctx, &combat.RecomputeInput{Build: s.build}).Status)
}

func (s *InvokerTestSuite) TestRecompute() {
	s.expectTarget("monster-1")
	s.expectFreshPlayer("player-1")
	s.expectBattle("battle-1")
	s.mockEngine.EXPECT().GetBattleResults(s.ctx, &engine.GetBattleResultsInput{BattleID: "battle-1"}).
		Return(&engine.GetBattleResultsOutput{Payload: json.RawMessage(resultsPayload)}, nil)

	out := s.invoker.Recompute(s.ctx, &combat.RecomputeInput{Build: s.build})

	s.Equal(combat.StatusUpdated, out.Status)
	s.Require().NotNil(out.Result)
	s.Equal(5.25, out.Result.DPS)
	s.Equal(48, out.Result.MaxHit)
	s.Equal("slash", out.Result.Style)
	s.Equal(s.now, out.Result.ComputedAt)
	s.Same(out.Result, s.invoker.Result())
}

func (s *InvokerTestSuite) TestRecomputeUnchangedBuildSkipsSync() {
	s.expectTarget("monster-1")
	s.expectFreshPlayer("player-1")
	s.expectBattle("battle-1")
	s.expectBattle("battle-2")
	s.mockEngine.EXPECT().GetBattleResults(s.ctx, gomock.Any()).
		Return(&engine.GetBattleResultsOutput{Payload: json.RawMessage(resultsPayload)}, nil).Times(2)

	first := s.invoker.Recompute(s.ctx, &combat.RecomputeInput{Build: s.build})
	second := s.invoker.Recompute(s.ctx, &combat.RecomputeInput{Build: s.build.Clone()})

	s.Equal(first.Result.DPS, second.Result.DPS)
}

func (s *InvokerTestSuite) TestRecomputePushesOnlyChanges() {
	s.expectTarget("monster-1")
	s.expectFreshPlayer("player-1")
	s.expectBattle("battle-1")
	s.expectBattle("battle-2")
	s.mockEngine.EXPECT().GetBattleResults(s.ctx, gomock.Any()).
		Return(&engine.GetBattleResultsOutput{Payload: json.RawMessage(resultsPayload)}, nil).Times(2)
	s.invoker.Recompute(s.ctx, &combat.RecomputeInput{Build: s.build})

	next := s.build.Clone()
	next.Stats[entities.SkillAttack] = 80
	next.Buffs = next.Buffs.With(entities.BuffPiety, true)
	next.Username = "Zezima"
	delete(next.Equipment, entities.SlotWeapon)

	s.mockEngine.EXPECT().SetStat(s.ctx, &engine.SetStatInput{PlayerID: "player-1", Skill: "Attack", Level: 80}).
		Return(&engine.SetStatOutput{}, nil)
	s.mockEngine.EXPECT().SetUsername(s.ctx, &engine.SetUsernameInput{PlayerID: "player-1", Username: "Zezima"}).
		Return(&engine.SetUsernameOutput{}, nil)
	s.mockEngine.EXPECT().SetPrayer(s.ctx, &engine.SetPrayerInput{PlayerID: "player-1", Prayer: "piety", Enabled: true}).
		Return(&engine.SetPrayerOutput{}, nil)
	s.mockEngine.EXPECT().Unequip(s.ctx, &engine.UnequipInput{PlayerID: "player-1", Slot: "weapon"}).
		Return(&engine.UnequipOutput{}, nil)

	out := s.invoker.Recompute(s.ctx, &combat.RecomputeInput{Build: next})
	s.Equal(combat.StatusUpdated, out.Status)
}

func (s *InvokerTestSuite) TestRecomputeEngineErrorKeepsResult() {
	s.expectTarget("monster-1")
	s.expectFreshPlayer("player-1")
	s.expectBattle("battle-1")
	s.expectBattle("battle-2")
	gomock.InOrder(
		s.mockEngine.EXPECT().GetBattleResults(s.ctx, gomock.Any()).
			Return(&engine.GetBattleResultsOutput{Payload: json.RawMessage(resultsPayload)}, nil),
		s.mockEngine.EXPECT().GetBattleResults(s.ctx, gomock.Any()).
			Return(nil, errors.Unavailable("engine gone")),
	)

	first := s.invoker.Recompute(s.ctx, &combat.RecomputeInput{Build: s.build})
	second := s.invoker.Recompute(s.ctx, &combat.RecomputeInput{Build: s.build})

	s.Equal(combat.StatusEngineError, second.Status)
	s.True(errors.IsUnavailable(second.Err))
	s.Same(first.Result, second.Result)
}

func (s *InvokerTestSuite) TestSyncFailureRebuildsPlayer() {
	s.expectTarget("monster-1")

	s.mockEngine.EXPECT().NewPlayer(s.ctx, gomock.Any()).Return(&engine.NewPlayerOutput{PlayerID: "player-0"}, nil)
	s.mockEngine.EXPECT().SetStat(s.ctx, gomock.Any()).Return(nil, errors.Internal("bad skill"))
	s.mockEngine.EXPECT().Release(gomock.Any(), &engine.ReleaseInput{Handles: []string{"player-0"}}).
		Return(&engine.ReleaseOutput{Released: 1}, nil)

	out := s.invoker.Recompute(s.ctx, &combat.RecomputeInput{Build: s.build})
	s.Equal(combat.StatusEngineError, out.Status)
	s.Nil(out.Result)

	s.expectFreshPlayer("player-1")
	s.expectBattle("battle-1")
	s.mockEngine.EXPECT().GetBattleResults(s.ctx, gomock.Any()).
		Return(&engine.GetBattleResultsOutput{Payload: json.RawMessage(resultsPayload)}, nil)

	s.Equal(combat.StatusUpdated, s.invoker.Recompute(s.ctx, &combat.RecomputeInput{Build: s.build}).Status)
}

func (s *InvokerTestSuite) TestSetTargetReleasesMonsterAndDiscardsResult() {
	s.expectTarget("monster-1")
	s.expectFreshPlayer("player-1")
	s.expectBattle("battle-1")
	s.mockEngine.EXPECT().GetBattleResults(s.ctx, gomock.Any()).
		Return(&engine.GetBattleResultsOutput{Payload: json.RawMessage(resultsPayload)}, nil)
	s.invoker.Recompute(s.ctx, &combat.RecomputeInput{Build: s.build})
	s.Require().NotNil(s.invoker.Result())

	goblin, ok := s.catalog.FindTarget("Goblin", entities.SourceMonster)
	s.Require().True(ok)
	s.mockEngine.EXPECT().Release(gomock.Any(), &engine.ReleaseInput{Handles: []string{"monster-1"}}).
		Return(&engine.ReleaseOutput{Released: 1}, nil)
	s.mockEngine.EXPECT().NewMonster(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.NewMonsterInput) (*engine.NewMonsterOutput, error) {
			s.Equal("Goblin", in.Name)
			s.Equal("monster", in.Source)
			return &engine.NewMonsterOutput{MonsterID: "monster-2"}, nil
		})

	s.Require().NoError(s.invoker.SetTarget(s.ctx, goblin))
	s.Nil(s.invoker.Result())
	s.Equal("Goblin", s.invoker.Target().Name)
}

func (s *InvokerTestSuite) TestTTKSamples() {
	s.expectTarget("monster-1")
	s.expectFreshPlayer("player-1")
	s.expectBattle("battle-1")
	s.mockEngine.EXPECT().GetTTKDistribution(s.ctx, &engine.GetTTKDistributionInput{BattleID: "battle-1", Samples: 6}).
		Return(&engine.GetTTKDistributionOutput{Payload: json.RawMessage(`[2,2,3,5,5,5]`)}, nil)

	samples, err := s.invoker.TTKSamples(s.ctx, s.build, 6)
	s.Require().NoError(err)
	s.Equal([]float64{2, 2, 3, 5, 5, 5}, samples)

	_, err = s.invoker.TTKSamples(s.ctx, s.build, 0)
	s.True(errors.IsInvalidArgument(err))
}

func (s *InvokerTestSuite) TestRunBatchSimulation() {
	s.expectTarget("monster-1")
	s.expectFreshPlayer("player-1")
	s.expectBattle("battle-1")
	s.mockEngine.EXPECT().OptimizeAttackStyle(s.ctx, &engine.OptimizeAttackStyleInput{BattleID: "battle-1"}).
		Return(&engine.OptimizeAttackStyleOutput{}, nil)
	s.mockEngine.EXPECT().RunSimulations(s.ctx, &engine.RunSimulationsInput{BattleID: "battle-1", Count: 500}).
		Return(&engine.RunSimulationsOutput{MeanTicks: 50}, nil)
	s.mockEngine.EXPECT().GetMonsterField(s.ctx, &engine.GetMonsterFieldInput{MonsterID: "monster-1", Field: "hitpoints"}).
		Return(nil, errors.Unimplemented("no fields"))

	summary, err := s.invoker.RunBatchSimulation(s.ctx, s.build, 500)
	s.Require().NoError(err)
	s.Equal(500, summary.Simulations)
	s.InDelta(30.0, summary.AvgSeconds, 1e-9)
	s.InDelta(120.0, summary.KillsPerHour, 1e-9)
}

func (s *InvokerTestSuite) TestRunBatchSimulationWithoutTarget() {
	_, err := s.invoker.RunBatchSimulation(s.ctx, s.build, 100)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(string(combat.StatusMissingTarget), errors.GetMeta(err)["status"])
}

func (s *InvokerTestSuite) TestSuggestUpgrades() {
	s.expectTarget("monster-1")
	s.expectFreshPlayer("player-1")
	s.mockEngine.EXPECT().NewAdvisor(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.NewAdvisorInput) (*engine.NewAdvisorOutput, error) {
			s.Equal("player-1", in.PlayerID)
			s.Equal("monster-1", in.MonsterID)
			s.JSONEq(testutils.ItemTableJSON, string(in.Items))
			s.JSONEq(testutils.PriceTableJSON, string(in.Prices))
			return &engine.NewAdvisorOutput{AdvisorID: "advisor-1"}, nil
		})
	s.mockEngine.EXPECT().SuggestUpgrades(s.ctx, &engine.SuggestUpgradesInput{
		AdvisorID: "advisor-1", Budget: 10_000_000, ExcludeAmmo: true,
	}).Return(&engine.SuggestUpgradesOutput{
		Payload: json.RawMessage(`[{"itemNames":["Dragon defender"],"itemIds":[12954],"dpsIncrease":0.4,"dpsPerMillionGP":0.02}]`),
	}, nil)
	s.mockEngine.EXPECT().Release(gomock.Any(), &engine.ReleaseInput{Handles: []string{"advisor-1"}}).
		Return(&engine.ReleaseOutput{Released: 1}, nil)

	suggestions, err := s.invoker.SuggestUpgrades(s.ctx, s.build, &combat.SuggestInput{Budget: 10_000_000, ExcludeAmmo: true})
	s.Require().NoError(err)
	s.Require().Len(suggestions, 1)
	s.Equal([]string{"Dragon defender"}, suggestions[0].ItemNames)

	_, err = s.invoker.SuggestUpgrades(s.ctx, s.build, &combat.SuggestInput{Budget: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *InvokerTestSuite) TestEquipmentBonuses() {
	s.expectFreshPlayer("player-1")
	s.mockEngine.EXPECT().GetEquipmentBonus(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.GetEquipmentBonusInput) (*engine.GetEquipmentBonusOutput, error) {
			switch in.Name {
			case "attack_slash":
				return &engine.GetEquipmentBonusOutput{Value: 82}, nil
			case "strength_bonus":
				return &engine.GetEquipmentBonusOutput{Value: 82}, nil
			default:
				return &engine.GetEquipmentBonusOutput{}, nil
			}
		}).Times(len(entities.EquipmentBonusNames) + 1)

	bonuses, err := s.invoker.EquipmentBonuses(s.ctx, s.build)
	s.Require().NoError(err)
	s.Len(bonuses, len(entities.EquipmentBonusNames))
	s.Equal(82, bonuses["attack_slash"])
	s.Equal(82, bonuses["melee_strength"])
	s.Zero(bonuses["prayer"])
}

func (s *InvokerTestSuite) TestClose() {
	s.expectTarget("monster-1")
	s.expectFreshPlayer("player-1")
	s.expectBattle("battle-1")
	s.mockEngine.EXPECT().GetBattleResults(s.ctx, gomock.Any()).
		Return(&engine.GetBattleResultsOutput{Payload: json.RawMessage(resultsPayload)}, nil)
	s.invoker.Recompute(s.ctx, &combat.RecomputeInput{Build: s.build})

	s.mockEngine.EXPECT().Release(gomock.Any(), &engine.ReleaseInput{Handles: []string{"player-1", "monster-1"}}).
		Return(&engine.ReleaseOutput{Released: 2}, nil)
	s.invoker.Close(s.ctx)
}
