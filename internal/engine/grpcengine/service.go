package grpcengine

import (
	"google.golang.org/grpc"

	"github.com/osrsdps/dps-console/internal/engine"
	"github.com/osrsdps/dps-console/internal/pkg/grpcjson"
)

// ServiceName is the gRPC service the engine process serves
const ServiceName = "osrsdps.engine.v1.Engine"

// ServiceDesc describes the engine service. Any engine.Engine can be
// registered with it; messages travel with the grpcjson codec.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*engine.Engine)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Unary(ServiceName, "NewPlayer", engine.Engine.NewPlayer),
		grpcjson.Unary(ServiceName, "SetStat", engine.Engine.SetStat),
		grpcjson.Unary(ServiceName, "SetUsername", engine.Engine.SetUsername),
		grpcjson.Unary(ServiceName, "SetPrayer", engine.Engine.SetPrayer),
		grpcjson.Unary(ServiceName, "SetSuperCombat", engine.Engine.SetSuperCombat),
		grpcjson.Unary(ServiceName, "Equip", engine.Engine.Equip),
		grpcjson.Unary(ServiceName, "Unequip", engine.Engine.Unequip),
		grpcjson.Unary(ServiceName, "GetEquipmentBonus", engine.Engine.GetEquipmentBonus),
		grpcjson.Unary(ServiceName, "NewMonster", engine.Engine.NewMonster),
		grpcjson.Unary(ServiceName, "GetMonsterField", engine.Engine.GetMonsterField),
		grpcjson.Unary(ServiceName, "NewBattle", engine.Engine.NewBattle),
		grpcjson.Unary(ServiceName, "GetBattleResults", engine.Engine.GetBattleResults),
		grpcjson.Unary(ServiceName, "GetTTKDistribution", engine.Engine.GetTTKDistribution),
		grpcjson.Unary(ServiceName, "OptimizeAttackStyle", engine.Engine.OptimizeAttackStyle),
		grpcjson.Unary(ServiceName, "RunSimulations", engine.Engine.RunSimulations),
		grpcjson.Unary(ServiceName, "NewAdvisor", engine.Engine.NewAdvisor),
		grpcjson.Unary(ServiceName, "SuggestUpgrades", engine.Engine.SuggestUpgrades),
		grpcjson.Unary(ServiceName, "Release", engine.Engine.Release),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "osrsdps/engine/v1/engine.json",
}

// RegisterServer registers an engine implementation on s
func RegisterServer(s grpc.ServiceRegistrar, srv engine.Engine) {
	s.RegisterService(&ServiceDesc, srv)
}
