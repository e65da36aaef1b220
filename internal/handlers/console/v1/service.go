package v1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/osrsdps/dps-console/internal/pkg/grpcjson"
)

// ServiceName is the gRPC service a UI process talks to
const ServiceName = "osrsdps.console.v1.Console"

// ConsoleServer is the server API for the console service
type ConsoleServer interface {
	GetState(context.Context, *Empty) (*SessionState, error)
	LoadTables(context.Context, *LoadTablesRequest) (*LoadTablesResponse, error)
	SearchItems(context.Context, *SearchItemsRequest) (*SearchItemsResponse, error)
	SearchMonsters(context.Context, *SearchMonstersRequest) (*SearchMonstersResponse, error)
	Equip(context.Context, *EquipRequest) (*ChangeResponse, error)
	Unequip(context.Context, *UnequipRequest) (*ChangeResponse, error)
	SetStat(context.Context, *SetStatRequest) (*ChangeResponse, error)
	SetBuff(context.Context, *SetBuffRequest) (*ChangeResponse, error)
	SetTarget(context.Context, *SetTargetRequest) (*SetTargetResponse, error)
	Recompute(context.Context, *Empty) (*ChangeResponse, error)
	RunSimulation(context.Context, *RunSimulationRequest) (*RunSimulationResponse, error)
	FindUpgrades(context.Context, *FindUpgradesRequest) (*UpgradesResponse, error)
	SetRanking(context.Context, *SetRankingRequest) (*UpgradesResponse, error)
	SetExcludeDuo(context.Context, *SetExcludeDuoRequest) (*UpgradesResponse, error)
	ImportHiscores(context.Context, *ImportHiscoresRequest) (*ImportHiscoresResponse, error)
	SyncCompanion(context.Context, *Empty) (*SyncCompanionResponse, error)
	GetEquipmentBonuses(context.Context, *Empty) (*EquipmentBonusesResponse, error)
}

// ServiceDesc describes the console service for grpc.Server
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ConsoleServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Unary(ServiceName, "GetState", ConsoleServer.GetState),
		grpcjson.Unary(ServiceName, "LoadTables", ConsoleServer.LoadTables),
		grpcjson.Unary(ServiceName, "SearchItems", ConsoleServer.SearchItems),
		grpcjson.Unary(ServiceName, "SearchMonsters", ConsoleServer.SearchMonsters),
		grpcjson.Unary(ServiceName, "Equip", ConsoleServer.Equip),
		grpcjson.Unary(ServiceName, "Unequip", ConsoleServer.Unequip),
		grpcjson.Unary(ServiceName, "SetStat", ConsoleServer.SetStat),
		grpcjson.Unary(ServiceName, "SetBuff", ConsoleServer.SetBuff),
		grpcjson.Unary(ServiceName, "SetTarget", ConsoleServer.SetTarget),
		grpcjson.Unary(ServiceName, "Recompute", ConsoleServer.Recompute),
		grpcjson.Unary(ServiceName, "RunSimulation", ConsoleServer.RunSimulation),
		grpcjson.Unary(ServiceName, "FindUpgrades", ConsoleServer.FindUpgrades),
		grpcjson.Unary(ServiceName, "SetRanking", ConsoleServer.SetRanking),
		grpcjson.Unary(ServiceName, "SetExcludeDuo", ConsoleServer.SetExcludeDuo),
		grpcjson.Unary(ServiceName, "ImportHiscores", ConsoleServer.ImportHiscores),
		grpcjson.Unary(ServiceName, "SyncCompanion", ConsoleServer.SyncCompanion),
		grpcjson.Unary(ServiceName, "GetEquipmentBonuses", ConsoleServer.GetEquipmentBonuses),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "osrsdps/console/v1/console.json",
}

// RegisterConsoleServer registers srv on s
func RegisterConsoleServer(s grpc.ServiceRegistrar, srv ConsoleServer) {
	s.RegisterService(&ServiceDesc, srv)
}
