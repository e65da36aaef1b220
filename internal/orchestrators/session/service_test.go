package session_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	osrsmock "github.com/osrsdps/dps-console/internal/clients/osrs/mock"
	"github.com/osrsdps/dps-console/internal/clients/wikisync"
	wikisyncmock "github.com/osrsdps/dps-console/internal/clients/wikisync/mock"
	"github.com/osrsdps/dps-console/internal/combat"
	"github.com/osrsdps/dps-console/internal/engine"
	enginemock "github.com/osrsdps/dps-console/internal/engine/mock"
	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/equipment"
	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/logger"
	"github.com/osrsdps/dps-console/internal/orchestrators/session"
	sessionmock "github.com/osrsdps/dps-console/internal/orchestrators/session/mock"
	mockclock "github.com/osrsdps/dps-console/internal/pkg/clock/mock"
	"github.com/osrsdps/dps-console/internal/pkg/idgen"
	"github.com/osrsdps/dps-console/internal/tables"
	tablesmock "github.com/osrsdps/dps-console/internal/tables/mock"
	"github.com/osrsdps/dps-console/internal/testutils"
	"github.com/osrsdps/dps-console/internal/upgrades"
)

const (
	resultsPayload = `{"dps":5.25,"maxHit":48,"hitChance":0.74,"style":"slash","avgTTK":31.2}`
	samplesPayload = `[5,2,3,5,2,5]`

	suggestionsPayload = `[
  {"itemNames":["Dragon defender"],"slots":["shield"],"price":18000000,"dpsIncrease":0.4,"dpsPerMillionGP":0.02},
  {"itemNames":["Abyssal whip","Dragon defender"],"slots":["weapon","shield"],"price":19500000,
   "dpsIncrease":1.9,"dpsPerMillionGP":0.097,"isDuo":true},
  {"itemName":"Dragon arrow","slot":"ammo","price":2500,"dpsIncrease":0.1,"dpsPerMillionGP":40}
]`
)

type SessionTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockEngine    *enginemock.MockEngine
	mockNotifier  *sessionmock.MockNotifier
	mockHiscores  *osrsmock.MockClient
	mockCompanion *wikisyncmock.MockClient
	catalog       *tables.Catalog
	svc           session.Service
	ctx           context.Context
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockNotifier = sessionmock.NewMockNotifier(s.ctrl)
	s.mockHiscores = osrsmock.NewMockClient(s.ctrl)
	s.mockCompanion = wikisyncmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()
	s.catalog = loadedCatalog(s.T())
	s.svc = s.newService(s.mockEngine, nil)
}

func loadedCatalog(t *testing.T) *tables.Catalog {
	t.Helper()
	catalog := tables.NewCatalog()
	for kind, data := range map[tables.Kind]string{
		tables.KindItems:    testutils.ItemTableJSON,
		tables.KindMonsters: testutils.MonsterTableJSON,
		tables.KindBosses:   testutils.BossTableJSON,
		tables.KindPrices:   testutils.PriceTableJSON,
	} {
		if err := catalog.Load(kind, []byte(data)); err != nil {
			t.Fatalf("load %s: %v", kind, err)
		}
	}
	return catalog
}

func (s *SessionTestSuite) newService(eng engine.Engine, loader *tables.Loader) session.Service {
	cfg := &session.Config{
		Catalog:     s.catalog,
		Loader:      loader,
		Hiscores:    s.mockHiscores,
		Companion:   s.mockCompanion,
		Notifier:    s.mockNotifier,
		IDGenerator: idgen.NewSequential("session"),
		Logger:      logger.Nop(),
		TTKSamples:  6,
		BatchCount:  500,
	}
	if eng != nil {
		cfg.Engine = eng
	}
	svc, err := session.NewOrchestrator(cfg)
	s.Require().NoError(err)
	return svc
}

// allowPlayer accepts every player sync and handle release
func (s *SessionTestSuite) allowPlayer() {
	s.mockEngine.EXPECT().NewPlayer(gomock.Any(), gomock.Any()).Return(&engine.NewPlayerOutput{PlayerID: "player-1"}, nil).AnyTimes()
	s.mockEngine.EXPECT().SetStat(gomock.Any(), gomock.Any()).Return(&engine.SetStatOutput{}, nil).AnyTimes()
	s.mockEngine.EXPECT().SetUsername(gomock.Any(), gomock.Any()).Return(&engine.SetUsernameOutput{}, nil).AnyTimes()
	s.mockEngine.EXPECT().SetPrayer(gomock.Any(), gomock.Any()).Return(&engine.SetPrayerOutput{}, nil).AnyTimes()
	s.mockEngine.EXPECT().SetSuperCombat(gomock.Any(), gomock.Any()).Return(&engine.SetSuperCombatOutput{}, nil).AnyTimes()
	s.mockEngine.EXPECT().Equip(gomock.Any(), gomock.Any()).Return(&engine.EquipOutput{}, nil).AnyTimes()
	s.mockEngine.EXPECT().Unequip(gomock.Any(), gomock.Any()).Return(&engine.UnequipOutput{}, nil).AnyTimes()
	s.mockEngine.EXPECT().Release(gomock.Any(), gomock.Any()).Return(&engine.ReleaseOutput{}, nil).AnyTimes()
}

// allowBattles answers every battle with the fixture results and samples
func (s *SessionTestSuite) allowBattles() {
	s.mockEngine.EXPECT().NewBattle(gomock.Any(), gomock.Any()).Return(&engine.NewBattleOutput{BattleID: "battle-1"}, nil).AnyTimes()
	s.mockEngine.EXPECT().GetBattleResults(gomock.Any(), gomock.Any()).
		Return(&engine.GetBattleResultsOutput{Payload: json.RawMessage(resultsPayload)}, nil).AnyTimes()
	s.mockEngine.EXPECT().GetTTKDistribution(gomock.Any(), &engine.GetTTKDistributionInput{BattleID: "battle-1", Samples: 6}).
		Return(&engine.GetTTKDistributionOutput{Payload: json.RawMessage(samplesPayload)}, nil).AnyTimes()
}

func (s *SessionTestSuite) allowNotifications() {
	s.mockNotifier.EXPECT().CombatResult(gomock.Any()).AnyTimes()
	s.mockNotifier.EXPECT().Distribution(gomock.Any()).AnyTimes()
	s.mockNotifier.EXPECT().Upgrades(gomock.Any()).AnyTimes()
}

// selectVorkath makes Vorkath the target with a working engine
func (s *SessionTestSuite) selectVorkath() {
	s.mockEngine.EXPECT().NewMonster(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.NewMonsterInput) (*engine.NewMonsterOutput, error) {
			s.Equal("Vorkath", in.Name)
			s.Equal("boss", in.Source)
			return &engine.NewMonsterOutput{MonsterID: "monster-1"}, nil
		})
	out, err := s.svc.SetTarget(s.ctx, &session.SetTargetInput{Name: "Vorkath", Source: entities.SourceBoss})
	s.Require().NoError(err)
	s.Require().True(out.Found)
}

func (s *SessionTestSuite) TestNewOrchestratorValidation() {
	_, err := session.NewOrchestrator(nil)
	s.Error(err)

	_, err = session.NewOrchestrator(&session.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "IDGenerator")

	_, err = session.NewOrchestrator(&session.Config{IDGenerator: idgen.NewSequential("s"), TTKSamples: -1})
	s.Require().Error(err)
	s.Contains(err.Error(), "TTKSamples")
}

func (s *SessionTestSuite) TestInitialState() {
	state, err := s.svc.GetState(s.ctx)
	s.Require().NoError(err)

	s.Equal("session_1", state.ID)
	s.Equal(entities.DefaultStats(), state.Build.Stats)
	s.Empty(state.Build.Equipment)
	s.Nil(state.Target)
	s.Nil(state.Result)
	s.Equal(upgrades.RankEfficiency, state.Ranking)
	s.Equal(8, state.TableCount[tables.KindItems])
}

func (s *SessionTestSuite) TestEquipWithoutTargetSkipsEngine() {
	out, err := s.svc.Equip(s.ctx, &session.EquipInput{Slot: entities.SlotWeapon, ItemID: "4151"})
	s.Require().NoError(err)

	s.Equal(equipment.StatusApplied, out.Status)
	s.Equal(entities.SlotWeapon, out.Slot)
	s.Equal(combat.StatusMissingTarget, out.Recompute)
}

func (s *SessionTestSuite) TestEquipWithoutEngine() {
	svc := s.newService(nil, nil)
	out, err := svc.Equip(s.ctx, &session.EquipInput{ItemID: "4151"})
	s.Require().NoError(err)
	s.Equal(combat.StatusMissingEngine, out.Recompute)
}

func (s *SessionTestSuite) TestEquipUnknownItem() {
	out, err := s.svc.Equip(s.ctx, &session.EquipInput{Slot: entities.SlotWeapon, ItemID: "424242"})
	s.Require().NoError(err)
	s.Equal(equipment.StatusUnknownItem, out.Status)
	s.Empty(out.Recompute)

	state, _ := s.svc.GetState(s.ctx)
	s.Empty(state.Build.Equipment)
}

func (s *SessionTestSuite) TestTwoHandedClearsShield() {
	_, err := s.svc.Equip(s.ctx, &session.EquipInput{ItemID: "12954"})
	s.Require().NoError(err)

	out, err := s.svc.Equip(s.ctx, &session.EquipInput{ItemID: "20997"})
	s.Require().NoError(err)
	s.True(out.ClearedShield)
	s.Equal(entities.SlotWeapon, out.Slot)

	state, _ := s.svc.GetState(s.ctx)
	s.Len(state.Build.Equipment, 1)
	s.Equal("Twisted bow", state.Build.Equipment[entities.SlotWeapon].Name)
}

func (s *SessionTestSuite) TestUnequip() {
	out, err := s.svc.Unequip(s.ctx, &session.UnequipInput{Slot: entities.SlotShield})
	s.Require().NoError(err)
	s.Equal(equipment.StatusNoop, out.Status)

	_, err = s.svc.Unequip(s.ctx, &session.UnequipInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestSetStatAndBuffValidation() {
	_, err := s.svc.SetStat(s.ctx, &session.SetStatInput{Skill: "Cooking", Level: 99})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.SetBuff(s.ctx, &session.SetBuffInput{Buff: "eagleEye", Enabled: true})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.SetStat(s.ctx, &session.SetStatInput{Skill: entities.SkillAttack, Level: 60})
	s.Require().NoError(err)
	_, err = s.svc.SetBuff(s.ctx, &session.SetBuffInput{Buff: entities.BuffPiety, Enabled: true})
	s.Require().NoError(err)

	state, _ := s.svc.GetState(s.ctx)
	s.Equal(60, state.Build.Stats[entities.SkillAttack])
	s.True(state.Build.Buffs.Piety)
}

func (s *SessionTestSuite) TestSetTargetNotFoundKeepsTarget() {
	out, err := s.svc.SetTarget(s.ctx, &session.SetTargetInput{Name: "Bryophyta"})
	s.Require().NoError(err)
	s.False(out.Found)
	s.Nil(out.Target)

	_, err = s.svc.SetTarget(s.ctx, &session.SetTargetInput{Name: "Vorkath", Source: "raid"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestSetTargetRecomputesAndPublishes() {
	s.allowPlayer()
	s.allowBattles()

	var published *entities.CombatResult
	var points []entities.CDFPoint
	s.mockNotifier.EXPECT().Upgrades(gomock.Nil())
	gomock.InOrder(
		s.mockNotifier.EXPECT().Distribution(gomock.Nil()),
		s.mockNotifier.EXPECT().CombatResult(gomock.Any()).Do(func(r *entities.CombatResult) { published = r }),
		s.mockNotifier.EXPECT().Distribution(gomock.Any()).Do(func(p []entities.CDFPoint) { points = p }),
	)

	s.selectVorkath()

	s.Require().NotNil(published)
	s.Equal(5.25, published.DPS)
	s.Equal(48, published.MaxHit)
	s.Equal([]entities.CDFPoint{
		{Time: 0, Percent: 0},
		{Time: 2, Percent: 100.0 / 3},
		{Time: 3, Percent: 50},
		{Time: 5, Percent: 100},
	}, points)

	state, err := s.svc.GetState(s.ctx)
	s.Require().NoError(err)
	s.Equal("Vorkath", state.Target.Name)
	s.Same(published, state.Result)
	s.Equal(points, state.Distribution)
}

func (s *SessionTestSuite) TestEngineErrorKeepsPreviousResult() {
	s.allowPlayer()
	s.allowNotifications()
	s.mockEngine.EXPECT().NewBattle(gomock.Any(), gomock.Any()).Return(&engine.NewBattleOutput{BattleID: "battle-1"}, nil).AnyTimes()
	s.mockEngine.EXPECT().GetTTKDistribution(gomock.Any(), gomock.Any()).
		Return(&engine.GetTTKDistributionOutput{Payload: json.RawMessage(samplesPayload)}, nil).AnyTimes()
	gomock.InOrder(
		s.mockEngine.EXPECT().GetBattleResults(gomock.Any(), gomock.Any()).
			Return(&engine.GetBattleResultsOutput{Payload: json.RawMessage(resultsPayload)}, nil),
		s.mockEngine.EXPECT().GetBattleResults(gomock.Any(), gomock.Any()).
			Return(nil, errors.Unavailable("engine restarting")),
	)
	s.selectVorkath()

	out, err := s.svc.SetStat(s.ctx, &session.SetStatInput{Skill: entities.SkillStrength, Level: 70})
	s.Require().NoError(err)
	s.Equal(combat.StatusEngineError, out.Recompute)

	state, _ := s.svc.GetState(s.ctx)
	s.Require().NotNil(state.Result)
	s.Equal(5.25, state.Result.DPS)
}

func (s *SessionTestSuite) TestRunSimulationWithoutTargetAlerts() {
	s.mockNotifier.EXPECT().Alert(session.AlertNoTarget)

	_, err := s.svc.RunSimulation(s.ctx, &session.RunSimulationInput{})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *SessionTestSuite) TestRunSimulation() {
	s.allowPlayer()
	s.allowBattles()
	s.allowNotifications()
	s.selectVorkath()

	s.mockEngine.EXPECT().OptimizeAttackStyle(gomock.Any(), &engine.OptimizeAttackStyleInput{BattleID: "battle-1"}).
		Return(&engine.OptimizeAttackStyleOutput{}, nil)
	s.mockEngine.EXPECT().RunSimulations(gomock.Any(), &engine.RunSimulationsInput{BattleID: "battle-1", Count: 500}).
		Return(&engine.RunSimulationsOutput{MeanTicks: 100}, nil)
	s.mockEngine.EXPECT().GetMonsterField(gomock.Any(), gomock.Any()).
		Return(&engine.GetMonsterFieldOutput{Value: 750}, nil)

	out, err := s.svc.RunSimulation(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(500, out.Summary.Simulations)
	s.InDelta(60.0, out.Summary.AvgSeconds, 1e-9)
	s.InDelta(60.0, out.Summary.KillsPerHour, 1e-9)

	state, _ := s.svc.GetState(s.ctx)
	s.Equal(out.Summary, state.Simulation)
}

func (s *SessionTestSuite) TestRunSimulationYieldsBeforeEngine() {
	mockClock := mockclock.NewMockClock(s.ctrl)
	mockClock.EXPECT().Now().Return(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()
	svc, err := session.NewOrchestrator(&session.Config{
		Catalog:     s.catalog,
		Engine:      s.mockEngine,
		Notifier:    s.mockNotifier,
		IDGenerator: idgen.NewSequential("session"),
		Clock:       mockClock,
		TTKSamples:  6,
		YieldDelay:  50 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.svc = svc

	s.allowPlayer()
	s.allowBattles()
	s.allowNotifications()
	s.selectVorkath()

	s.Run("interrupted pause skips the engine", func() {
		mockClock.EXPECT().Sleep(gomock.Any(), 50*time.Millisecond).Return(context.Canceled)

		_, err := s.svc.RunSimulation(s.ctx, &session.RunSimulationInput{Count: 10})
		s.Require().Error(err)
		s.ErrorIs(err, context.Canceled)

		state, _ := s.svc.GetState(s.ctx)
		s.Nil(state.Simulation)
	})
}

func (s *SessionTestSuite) expectAdvisor() {
	s.mockEngine.EXPECT().NewAdvisor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.NewAdvisorInput) (*engine.NewAdvisorOutput, error) {
			s.Equal("player-1", in.PlayerID)
			s.Equal("monster-1", in.MonsterID)
			return &engine.NewAdvisorOutput{AdvisorID: "advisor-1"}, nil
		})
}

func (s *SessionTestSuite) TestFindUpgradesAndReRank() {
	s.allowPlayer()
	s.allowBattles()
	s.allowNotifications()
	s.selectVorkath()
	s.expectAdvisor()
	s.mockEngine.EXPECT().SuggestUpgrades(gomock.Any(), &engine.SuggestUpgradesInput{
		AdvisorID:   "advisor-1",
		Budget:      session.DefaultUpgradeBudget,
		ExcludeAmmo: true,
	}).Return(&engine.SuggestUpgradesOutput{Payload: json.RawMessage(suggestionsPayload)}, nil)

	out, err := s.svc.FindUpgrades(s.ctx, &session.FindUpgradesInput{ExcludeAmmo: true})
	s.Require().NoError(err)
	s.Len(out.Raw, 3)
	s.Require().Len(out.View, 3)
	s.Equal([]string{"Dragon arrow"}, out.View[0].ItemNames)

	// re-deriving never calls the engine again
	view, err := s.svc.SetRanking(s.ctx, &session.SetRankingInput{Mode: string(upgrades.RankRawIncrease)})
	s.Require().NoError(err)
	s.True(view.View[0].Duo())

	view, err = s.svc.SetExcludeDuo(s.ctx, &session.SetExcludeDuoInput{Exclude: true})
	s.Require().NoError(err)
	s.Len(view.View, 2)
	s.Equal([]string{"Dragon defender"}, view.View[0].ItemNames)

	view, err = s.svc.SetExcludeDuo(s.ctx, &session.SetExcludeDuoInput{Exclude: false})
	s.Require().NoError(err)
	s.Len(view.View, 3)

	_, err = s.svc.SetRanking(s.ctx, &session.SetRankingInput{Mode: "cheapest"})
	s.True(errors.IsInvalidArgument(err))
	state, _ := s.svc.GetState(s.ctx)
	s.Equal(upgrades.RankRawIncrease, state.Ranking)
}

func (s *SessionTestSuite) TestFindUpgradesFailureAlerts() {
	s.allowPlayer()
	s.allowBattles()
	s.allowNotifications()
	s.selectVorkath()
	s.expectAdvisor()
	s.mockEngine.EXPECT().SuggestUpgrades(gomock.Any(), gomock.Any()).Return(nil, errors.Internal("advisor crashed"))
	s.mockNotifier.EXPECT().Alert(gomock.Any()).Do(func(msg string) {
		s.Contains(msg, "Failed to find upgrades")
	})

	_, err := s.svc.FindUpgrades(s.ctx, &session.FindUpgradesInput{Budget: 5_000_000})
	s.Error(err)

	_, err = s.svc.FindUpgrades(s.ctx, &session.FindUpgradesInput{Budget: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestImportHiscores() {
	s.mockHiscores.EXPECT().FetchHiscores(gomock.Any(), "Zezima").Return(testutils.HiscoresBody, nil)

	out, err := s.svc.ImportHiscores(s.ctx, &session.ImportHiscoresInput{Username: " Zezima "})
	s.Require().NoError(err)
	s.Equal(99, out.Levels[entities.SkillAttack])
	s.Equal(90, out.Levels[entities.SkillDefence])
	s.Equal(94, out.Levels[entities.SkillMagic])
	s.Len(out.Levels, len(entities.CombatSkills))
	s.Equal(combat.StatusMissingTarget, out.Recompute)

	state, _ := s.svc.GetState(s.ctx)
	s.Equal("Zezima", state.Build.Username)
	s.Equal(95, state.Build.Stats[entities.SkillStrength])
}

func (s *SessionTestSuite) TestImportHiscoresFailureAlerts() {
	s.mockHiscores.EXPECT().FetchHiscores(gomock.Any(), "nobody").Return("", errors.NotFound("player not found"))
	s.mockNotifier.EXPECT().Alert("Failed to fetch hiscores for nobody")

	_, err := s.svc.ImportHiscores(s.ctx, &session.ImportHiscoresInput{Username: "nobody"})
	s.True(errors.IsNotFound(err))

	state, _ := s.svc.GetState(s.ctx)
	s.Empty(state.Build.Username)
	s.Equal(entities.DefaultStats(), state.Build.Stats)

	_, err = s.svc.ImportHiscores(s.ctx, &session.ImportHiscoresInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestSyncCompanion() {
	s.mockCompanion.EXPECT().FetchPlayer(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*wikisync.Player, error) {
			_, ok := ctx.Deadline()
			s.True(ok)
			return &wikisync.Player{
				Port: 37768,
				Equipment: map[string]string{
					"weapon": "22325",
					"shield": "12954",
					"ring":   "777777",
				},
			}, nil
		})

	out, err := s.svc.SyncCompanion(s.ctx)
	s.Require().NoError(err)
	s.Equal(37768, out.Port)
	s.Equal([]string{"ring"}, out.Unknown)
	// shield sorts before weapon, so the scythe clears the defender
	s.Equal(map[string]string{"shield": "12954", "weapon": "22325"}, out.Applied)

	state, _ := s.svc.GetState(s.ctx)
	s.Len(state.Build.Equipment, 1)
	s.Equal("Scythe of vitur", state.Build.Equipment[entities.SlotWeapon].Name)
}

func (s *SessionTestSuite) TestSyncCompanionFailureAlerts() {
	s.mockCompanion.EXPECT().FetchPlayer(gomock.Any()).Return(nil, errors.Unavailable("no companion app answered"))
	s.mockNotifier.EXPECT().Alert(session.AlertCompanionFailed)

	_, err := s.svc.SyncCompanion(s.ctx)
	s.True(errors.IsUnavailable(err))
}

func (s *SessionTestSuite) TestOptionalClientsMissing() {
	svc, err := session.NewOrchestrator(&session.Config{IDGenerator: idgen.NewSequential("bare")})
	s.Require().NoError(err)

	_, err = svc.ImportHiscores(s.ctx, &session.ImportHiscoresInput{Username: "Zezima"})
	s.True(errors.IsFailedPrecondition(err))
	_, err = svc.SyncCompanion(s.ctx)
	s.True(errors.IsFailedPrecondition(err))
	_, err = svc.LoadTables(s.ctx, nil)
	s.True(errors.IsFailedPrecondition(err))
	_, err = svc.EquipmentBonuses(s.ctx)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *SessionTestSuite) TestLoadTablesReResolvesTarget() {
	s.allowPlayer()
	s.allowBattles()
	s.allowNotifications()

	fetcher := tablesmock.NewMockFetcher(s.ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), "items.json").Return([]byte(testutils.ItemTableJSON), nil)
	fetcher.EXPECT().Fetch(gomock.Any(), "bosses.json").Return([]byte(`[{"name": "Vorkath", "hitpoints": 750}]`), nil)
	loader, err := tables.NewLoader(&tables.LoaderConfig{
		Fetcher: fetcher,
		Sources: map[tables.Kind]string{
			tables.KindItems:  "items.json",
			tables.KindBosses: "bosses.json",
		},
		Logger: logger.Nop(),
	})
	s.Require().NoError(err)
	s.svc = s.newService(s.mockEngine, loader)
	s.selectVorkath()

	s.mockEngine.EXPECT().NewMonster(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.NewMonsterInput) (*engine.NewMonsterOutput, error) {
			s.JSONEq(`[{"name": "Vorkath", "hitpoints": 750}]`, string(in.Table))
			return &engine.NewMonsterOutput{MonsterID: "monster-2"}, nil
		})

	out, err := s.svc.LoadTables(s.ctx, &session.LoadTablesInput{})
	s.Require().NoError(err)
	s.False(out.TargetDropped)
	s.Equal(8, out.Counts[tables.KindItems])
	s.Equal(0, out.Counts[tables.KindMonsters])
	s.Equal("empty", out.Origin[tables.KindMonsters])

	state, _ := s.svc.GetState(s.ctx)
	s.Equal("Vorkath", state.Target.Name)
	s.Nil(state.Simulation)
}

func (s *SessionTestSuite) TestApplyProfile() {
	s.allowPlayer()
	s.allowBattles()
	s.allowNotifications()
	s.mockEngine.EXPECT().NewMonster(gomock.Any(), gomock.Any()).Return(&engine.NewMonsterOutput{MonsterID: "monster-1"}, nil)

	out, err := s.svc.ApplyProfile(s.ctx, &session.ApplyProfileInput{
		Username:  "Lynx Titan",
		Stats:     map[string]int{entities.SkillRanged: 90},
		Buffs:     entities.Buffs{Rigour: true},
		Equipment: map[string]string{"weapon": "20997", "ammo": "11212", "cape": "1"},
		Target:    &session.SetTargetInput{Name: "Abyssal demon"},
	})
	s.Require().NoError(err)
	s.True(out.TargetFound)
	s.Equal([]string{"cape"}, out.UnknownItems)
	s.Equal(combat.StatusUpdated, out.Recompute)

	state, _ := s.svc.GetState(s.ctx)
	s.Equal("Lynx Titan", state.Build.Username)
	s.Equal(90, state.Build.Stats[entities.SkillRanged])
	s.Equal(99, state.Build.Stats[entities.SkillMagic])
	s.True(state.Build.Buffs.Rigour)
	s.Len(state.Build.Equipment, 2)
	s.Equal(entities.SourceMonster, state.Target.Source)

	_, err = s.svc.ApplyProfile(s.ctx, &session.ApplyProfileInput{Stats: map[string]int{"Cooking": 1}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestSearch() {
	items, err := s.svc.SearchItems(s.ctx, &session.SearchItemsInput{Query: "dragon", Slot: "shield"})
	s.Require().NoError(err)
	s.Require().Len(items.Items, 1)
	s.Equal("Dragon defender", items.Items[0].Name)

	monsters, err := s.svc.SearchMonsters(s.ctx, &session.SearchMonstersInput{Query: "zulrah"})
	s.Require().NoError(err)
	s.Len(monsters.Monsters, 2)
}

func (s *SessionTestSuite) TestEquipmentBonuses() {
	s.allowPlayer()
	s.mockEngine.EXPECT().GetEquipmentBonus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.GetEquipmentBonusInput) (*engine.GetEquipmentBonusOutput, error) {
			if in.Name == "melee_strength" {
				return &engine.GetEquipmentBonusOutput{Value: 82}, nil
			}
			return &engine.GetEquipmentBonusOutput{}, nil
		}).Times(len(entities.EquipmentBonusNames))

	out, err := s.svc.EquipmentBonuses(s.ctx)
	s.Require().NoError(err)
	s.Equal(82, out.Bonuses["melee_strength"])
	s.Len(out.Bonuses, len(entities.EquipmentBonusNames))
}

func (s *SessionTestSuite) TestCloseReleasesHandles() {
	s.allowPlayer()
	s.allowBattles()
	s.allowNotifications()
	s.selectVorkath()

	s.NoError(s.svc.Close(s.ctx))
}
