// Package grpcengine talks to the combat engine over gRPC
package grpcengine

import (
	"context"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_retry "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/retry"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/osrsdps/dps-console/internal/engine"
	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/logger"
	"github.com/osrsdps/dps-console/internal/pkg/grpcjson"
)

var _ engine.Engine = (*Client)(nil)

// createMethods allocate an engine handle. They are attempted once: a retry
// after a lost reply would leave a second handle nobody releases.
var createMethods = map[string]bool{
	"NewPlayer":  true,
	"NewMonster": true,
	"NewBattle":  true,
	"NewAdvisor": true,
}

// Config configures the engine client
type Config struct {
	Address         string
	CallTimeout     time.Duration
	MaxRetries      uint
	MaxMessageBytes int
	Logger          *zap.SugaredLogger
	// DialOptions are appended to the defaults, mainly for tests
	DialOptions []grpc.DialOption
}

// Validate validates the Config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Address", c.Address, vb)
	errors.ValidatePositive("CallTimeout", int64(c.CallTimeout), vb)
	errors.ValidatePositive("MaxMessageBytes", c.MaxMessageBytes, vb)
	return vb.Build()
}

// Client implements engine.Engine over a gRPC connection
type Client struct {
	conn        *grpc.ClientConn
	callTimeout time.Duration
}

// New creates a Client. The connection is established lazily on the first
// call.
func New(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	log := logger.OrNop(cfg.Logger)
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpcjson.CallOption(),
			grpc.MaxCallRecvMsgSize(cfg.MaxMessageBytes),
			grpc.MaxCallSendMsgSize(cfg.MaxMessageBytes),
		),
		grpc.WithChainUnaryInterceptor(
			grpc_logging.UnaryClientInterceptor(
				logger.GRPC(log),
				grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
			),
			grpc_retry.UnaryClientInterceptor(
				grpc_retry.WithMax(cfg.MaxRetries),
				grpc_retry.WithCodes(errors.RetryableGRPCCodes()...),
				grpc_retry.WithBackoff(grpc_retry.BackoffExponential(50*time.Millisecond)),
			),
		),
	}
	opts = append(opts, cfg.DialOptions...)

	conn, err := grpc.NewClient(cfg.Address, opts...)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create engine connection")
	}

	return &Client{
		conn:        conn,
		callTimeout: cfg.CallTimeout,
	}, nil
}

// Close tears down the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) invoke(ctx context.Context, method string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	var opts []grpc.CallOption
	if createMethods[method] {
		opts = append(opts, grpc_retry.Disable())
	}

	if err := c.conn.Invoke(ctx, grpcjson.FullMethod(ServiceName, method), in, out, opts...); err != nil {
		return errors.Wrapf(errors.FromGRPCError(err), "engine %s failed", method)
	}
	return nil
}

// NewPlayer implements engine.Engine
func (c *Client) NewPlayer(ctx context.Context, input *engine.NewPlayerInput) (*engine.NewPlayerOutput, error) {
	if input == nil {
		input = &engine.NewPlayerInput{}
	}
	out := &engine.NewPlayerOutput{}
	if err := c.invoke(ctx, "NewPlayer", input, out); err != nil {
		return nil, err
	}
	if out.PlayerID == "" {
		return nil, errors.Internal("engine returned an empty player handle")
	}
	return out, nil
}

// SetStat implements engine.Engine
func (c *Client) SetStat(ctx context.Context, input *engine.SetStatInput) (*engine.SetStatOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player id is required")
	}
	out := &engine.SetStatOutput{}
	return out, c.invoke(ctx, "SetStat", input, out)
}

// SetUsername implements engine.Engine
func (c *Client) SetUsername(ctx context.Context, input *engine.SetUsernameInput) (*engine.SetUsernameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player id is required")
	}
	out := &engine.SetUsernameOutput{}
	return out, c.invoke(ctx, "SetUsername", input, out)
}

// SetPrayer implements engine.Engine
func (c *Client) SetPrayer(ctx context.Context, input *engine.SetPrayerInput) (*engine.SetPrayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player id is required")
	}
	out := &engine.SetPrayerOutput{}
	return out, c.invoke(ctx, "SetPrayer", input, out)
}

// SetSuperCombat implements engine.Engine
func (c *Client) SetSuperCombat(
	ctx context.Context,
	input *engine.SetSuperCombatInput,
) (*engine.SetSuperCombatOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player id is required")
	}
	out := &engine.SetSuperCombatOutput{}
	return out, c.invoke(ctx, "SetSuperCombat", input, out)
}

// Equip implements engine.Engine
func (c *Client) Equip(ctx context.Context, input *engine.EquipInput) (*engine.EquipOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player id is required")
	}
	out := &engine.EquipOutput{}
	return out, c.invoke(ctx, "Equip", input, out)
}

// Unequip implements engine.Engine
func (c *Client) Unequip(ctx context.Context, input *engine.UnequipInput) (*engine.UnequipOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player id is required")
	}
	out := &engine.UnequipOutput{}
	return out, c.invoke(ctx, "Unequip", input, out)
}

// GetEquipmentBonus implements engine.Engine
func (c *Client) GetEquipmentBonus(
	ctx context.Context,
	input *engine.GetEquipmentBonusInput,
) (*engine.GetEquipmentBonusOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player id is required")
	}
	out := &engine.GetEquipmentBonusOutput{}
	if err := c.invoke(ctx, "GetEquipmentBonus", input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// NewMonster implements engine.Engine
func (c *Client) NewMonster(ctx context.Context, input *engine.NewMonsterInput) (*engine.NewMonsterOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}
	out := &engine.NewMonsterOutput{}
	if err := c.invoke(ctx, "NewMonster", input, out); err != nil {
		return nil, err
	}
	if out.MonsterID == "" {
		return nil, errors.Internal("engine returned an empty monster handle")
	}
	return out, nil
}

// GetMonsterField implements engine.Engine
func (c *Client) GetMonsterField(
	ctx context.Context,
	input *engine.GetMonsterFieldInput,
) (*engine.GetMonsterFieldOutput, error) {
	if input == nil || input.MonsterID == "" {
		return nil, errors.InvalidArgument("monster id is required")
	}
	out := &engine.GetMonsterFieldOutput{}
	if err := c.invoke(ctx, "GetMonsterField", input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// NewBattle implements engine.Engine
func (c *Client) NewBattle(ctx context.Context, input *engine.NewBattleInput) (*engine.NewBattleOutput, error) {
	if input == nil || input.PlayerID == "" || input.MonsterID == "" {
		return nil, errors.InvalidArgument("player and monster ids are required")
	}
	out := &engine.NewBattleOutput{}
	if err := c.invoke(ctx, "NewBattle", input, out); err != nil {
		return nil, err
	}
	if out.BattleID == "" {
		return nil, errors.Internal("engine returned an empty battle handle")
	}
	return out, nil
}

// GetBattleResults implements engine.Engine
func (c *Client) GetBattleResults(
	ctx context.Context,
	input *engine.GetBattleResultsInput,
) (*engine.GetBattleResultsOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle id is required")
	}
	out := &engine.GetBattleResultsOutput{}
	if err := c.invoke(ctx, "GetBattleResults", input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTTKDistribution implements engine.Engine
func (c *Client) GetTTKDistribution(
	ctx context.Context,
	input *engine.GetTTKDistributionInput,
) (*engine.GetTTKDistributionOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle id is required")
	}
	out := &engine.GetTTKDistributionOutput{}
	if err := c.invoke(ctx, "GetTTKDistribution", input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// OptimizeAttackStyle implements engine.Engine
func (c *Client) OptimizeAttackStyle(
	ctx context.Context,
	input *engine.OptimizeAttackStyleInput,
) (*engine.OptimizeAttackStyleOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle id is required")
	}
	out := &engine.OptimizeAttackStyleOutput{}
	return out, c.invoke(ctx, "OptimizeAttackStyle", input, out)
}

// RunSimulations implements engine.Engine
func (c *Client) RunSimulations(
	ctx context.Context,
	input *engine.RunSimulationsInput,
) (*engine.RunSimulationsOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle id is required")
	}
	out := &engine.RunSimulationsOutput{}
	if err := c.invoke(ctx, "RunSimulations", input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// NewAdvisor implements engine.Engine
func (c *Client) NewAdvisor(ctx context.Context, input *engine.NewAdvisorInput) (*engine.NewAdvisorOutput, error) {
	if input == nil || input.PlayerID == "" || input.MonsterID == "" {
		return nil, errors.InvalidArgument("player and monster ids are required")
	}
	out := &engine.NewAdvisorOutput{}
	if err := c.invoke(ctx, "NewAdvisor", input, out); err != nil {
		return nil, err
	}
	if out.AdvisorID == "" {
		return nil, errors.Internal("engine returned an empty advisor handle")
	}
	return out, nil
}

// SuggestUpgrades implements engine.Engine
func (c *Client) SuggestUpgrades(
	ctx context.Context,
	input *engine.SuggestUpgradesInput,
) (*engine.SuggestUpgradesOutput, error) {
	if input == nil || input.AdvisorID == "" {
		return nil, errors.InvalidArgument("advisor id is required")
	}
	out := &engine.SuggestUpgradesOutput{}
	if err := c.invoke(ctx, "SuggestUpgrades", input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Release implements engine.Engine
func (c *Client) Release(ctx context.Context, input *engine.ReleaseInput) (*engine.ReleaseOutput, error) {
	if input == nil || len(input.Handles) == 0 {
		return &engine.ReleaseOutput{}, nil
	}
	out := &engine.ReleaseOutput{}
	if err := c.invoke(ctx, "Release", input, out); err != nil {
		return nil, err
	}
	return out, nil
}
