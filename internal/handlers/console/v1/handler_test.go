package v1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/osrsdps/dps-console/internal/combat"
	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/equipment"
	"github.com/osrsdps/dps-console/internal/errors"
	v1 "github.com/osrsdps/dps-console/internal/handlers/console/v1"
	"github.com/osrsdps/dps-console/internal/orchestrators/session"
	sessionmock "github.com/osrsdps/dps-console/internal/orchestrators/session/mock"
	"github.com/osrsdps/dps-console/internal/pkg/grpcjson"
	"github.com/osrsdps/dps-console/internal/tables"
	"github.com/osrsdps/dps-console/internal/upgrades"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockSession *sessionmock.MockService
	handler     *v1.Handler
	ctx         context.Context
	state       *session.State
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSession = sessionmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1.NewHandler(&v1.HandlerConfig{Session: s.mockSession})
	s.Require().NoError(err)
	s.handler = handler

	s.state = &session.State{
		ID: "session_1",
		Build: &entities.Build{
			Stats: entities.DefaultStats(),
			Equipment: map[string]entities.EquippedItem{
				entities.SlotWeapon: {ID: "4151", Name: "Abyssal whip"},
			},
		},
		Target:     &entities.Target{Name: "Vorkath", Source: entities.SourceBoss},
		Result:     &entities.CombatResult{DPS: 5.25, MaxHit: 48},
		Ranking:    upgrades.RankEfficiency,
		TableCount: map[tables.Kind]int{tables.KindItems: 8},
	}
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := v1.NewHandler(nil)
	s.Error(err)
	_, err = v1.NewHandler(&v1.HandlerConfig{})
	s.Error(err)
}

func (s *HandlerTestSuite) TestGetState() {
	s.mockSession.EXPECT().GetState(s.ctx).Return(s.state, nil)

	resp, err := s.handler.GetState(s.ctx, &v1.Empty{})
	s.Require().NoError(err)
	s.Equal("session_1", resp.SessionID)
	s.Equal("efficiency", resp.Ranking)
	s.Equal(map[string]int{"items": 8}, resp.TableCounts)
	s.Equal(5.25, resp.Result.DPS)
}

func (s *HandlerTestSuite) TestEquip() {
	s.Run("requires an item id", func() {
		_, err := s.handler.Equip(s.ctx, &v1.EquipRequest{Slot: "weapon"})
		s.Equal(codes.InvalidArgument, status.Code(err))
	})

	s.Run("returns the new state", func() {
		s.mockSession.EXPECT().Equip(s.ctx, &session.EquipInput{Slot: "weapon", ItemID: "4151"}).
			Return(&session.EquipOutput{
				Status:    equipment.StatusApplied,
				Slot:      "weapon",
				Recompute: combat.StatusUpdated,
			}, nil)
		s.mockSession.EXPECT().GetState(s.ctx).Return(s.state, nil)

		resp, err := s.handler.Equip(s.ctx, &v1.EquipRequest{Slot: "weapon", ItemID: "4151"})
		s.Require().NoError(err)
		s.Equal("applied", resp.Status)
		s.Equal("updated", resp.Recompute)
		s.Equal("Abyssal whip", resp.State.Build.Equipment["weapon"].Name)
	})
}

func (s *HandlerTestSuite) TestSetStatMapsErrors() {
	s.mockSession.EXPECT().SetStat(s.ctx, &session.SetStatInput{Skill: "Cooking", Level: 99}).
		Return(nil, errors.InvalidArgument("unknown skill \"Cooking\""))

	_, err := s.handler.SetStat(s.ctx, &v1.SetStatRequest{Skill: "Cooking", Level: 99})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestSetTarget() {
	s.mockSession.EXPECT().SetTarget(s.ctx, &session.SetTargetInput{Name: "Vorkath", Source: entities.SourceBoss}).
		Return(&session.SetTargetOutput{Found: true}, nil)
	s.mockSession.EXPECT().GetState(s.ctx).Return(s.state, nil)

	resp, err := s.handler.SetTarget(s.ctx, &v1.SetTargetRequest{Name: "Vorkath", Source: "boss"})
	s.Require().NoError(err)
	s.True(resp.Found)
	s.Equal("Vorkath", resp.State.Target.Name)
}

func (s *HandlerTestSuite) TestRunSimulationWithoutTarget() {
	s.mockSession.EXPECT().RunSimulation(s.ctx, &session.RunSimulationInput{Count: 100}).
		Return(nil, errors.FailedPrecondition("no target selected"))

	_, err := s.handler.RunSimulation(s.ctx, &v1.RunSimulationRequest{Count: 100})
	s.Equal(codes.FailedPrecondition, status.Code(err))
}

func (s *HandlerTestSuite) TestFindUpgrades() {
	view := []entities.UpgradeSuggestion{{ItemNames: []string{"Dragon defender"}, Price: 18_000_000}}
	s.mockSession.EXPECT().FindUpgrades(s.ctx, &session.FindUpgradesInput{Budget: 20_000_000, ExcludeAmmo: true}).
		Return(&session.FindUpgradesOutput{View: view}, nil)

	resp, err := s.handler.FindUpgrades(s.ctx, &v1.FindUpgradesRequest{Budget: 20_000_000, ExcludeAmmo: true})
	s.Require().NoError(err)
	s.Equal(view, resp.Upgrades)
}

func (s *HandlerTestSuite) TestLoadTables() {
	s.mockSession.EXPECT().LoadTables(s.ctx, &session.LoadTablesInput{Refresh: true}).
		Return(&session.LoadTablesOutput{
			Counts: map[tables.Kind]int{tables.KindItems: 8, tables.KindPrices: 0},
			Origin: map[tables.Kind]string{tables.KindItems: "source", tables.KindPrices: "empty"},
			Failed: []tables.Kind{tables.KindPrices},
		}, nil)

	resp, err := s.handler.LoadTables(s.ctx, &v1.LoadTablesRequest{Refresh: true})
	s.Require().NoError(err)
	s.Equal(map[string]string{"items": "source", "prices": "empty"}, resp.Origin)
	s.Equal([]string{"prices"}, resp.Failed)
}

func (s *HandlerTestSuite) TestImportHiscoresUnavailable() {
	_, err := s.handler.ImportHiscores(s.ctx, &v1.ImportHiscoresRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	s.mockSession.EXPECT().ImportHiscores(s.ctx, &session.ImportHiscoresInput{Username: "Zezima"}).
		Return(nil, errors.NotFound("player not found"))
	_, err = s.handler.ImportHiscores(s.ctx, &v1.ImportHiscoresRequest{Username: "Zezima"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestServedOverGRPC() {
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1.RegisterConsoleServer(server, s.handler)
	go func() {
		_ = server.Serve(lis)
	}()
	defer server.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpcjson.CallOption()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.mockSession.EXPECT().SearchItems(gomock.Any(), &session.SearchItemsInput{Query: "whip"}).
		Return(&session.SearchItemsOutput{Items: []entities.Item{{ID: "4151", Name: "Abyssal whip", Slot: "weapon"}}}, nil)

	var resp v1.SearchItemsResponse
	err = conn.Invoke(s.ctx, grpcjson.FullMethod(v1.ServiceName, "SearchItems"), &v1.SearchItemsRequest{Query: "whip"}, &resp)
	s.Require().NoError(err)
	s.Require().Len(resp.Items, 1)
	s.Equal("Abyssal whip", resp.Items[0].Name)

	s.mockSession.EXPECT().SyncCompanion(gomock.Any()).Return(nil, errors.Unavailable("no companion app answered"))
	var syncResp v1.SyncCompanionResponse
	err = conn.Invoke(s.ctx, grpcjson.FullMethod(v1.ServiceName, "SyncCompanion"), &v1.Empty{}, &syncResp)
	s.Equal(codes.Unavailable, status.Code(err))
}
