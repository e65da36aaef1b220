// Package v1 serves a session to a UI process over gRPC
package v1

import (
	"context"

	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/orchestrators/session"
	"github.com/osrsdps/dps-console/internal/tables"
)

// HandlerConfig holds dependencies for the console handler
type HandlerConfig struct {
	Session session.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.Session == nil {
		return errors.InvalidArgument("session service is required")
	}
	return nil
}

// Handler implements ConsoleServer on top of one session
type Handler struct {
	session session.Service
}

var _ ConsoleServer = (*Handler)(nil)

// NewHandler creates a new console handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{session: cfg.Session}, nil
}

// GetState returns the current session state
func (h *Handler) GetState(ctx context.Context, _ *Empty) (*SessionState, error) {
	state, err := h.state(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return state, nil
}

// LoadTables reloads the lookup tables
func (h *Handler) LoadTables(ctx context.Context, req *LoadTablesRequest) (*LoadTablesResponse, error) {
	out, err := h.session.LoadTables(ctx, &session.LoadTablesInput{Refresh: req.Refresh})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &LoadTablesResponse{
		Counts:        kindCounts(out.Counts),
		Origin:        make(map[string]string, len(out.Origin)),
		TargetDropped: out.TargetDropped,
	}
	for kind, origin := range out.Origin {
		resp.Origin[string(kind)] = origin
	}
	for _, kind := range out.Failed {
		resp.Failed = append(resp.Failed, string(kind))
	}
	return resp, nil
}

// SearchItems searches equipable items
func (h *Handler) SearchItems(ctx context.Context, req *SearchItemsRequest) (*SearchItemsResponse, error) {
	out, err := h.session.SearchItems(ctx, &session.SearchItemsInput{Query: req.Query, Slot: req.Slot})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SearchItemsResponse{Items: out.Items}, nil
}

// SearchMonsters searches the monster and boss tables
func (h *Handler) SearchMonsters(ctx context.Context, req *SearchMonstersRequest) (*SearchMonstersResponse, error) {
	out, err := h.session.SearchMonsters(ctx, &session.SearchMonstersInput{Query: req.Query})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SearchMonstersResponse{Monsters: out.Monsters}, nil
}

// Equip puts an item in a slot
func (h *Handler) Equip(ctx context.Context, req *EquipRequest) (*ChangeResponse, error) {
	if req.ItemID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	out, err := h.session.Equip(ctx, &session.EquipInput{Slot: req.Slot, ItemID: req.ItemID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.change(ctx, string(out.Status), string(out.Recompute))
}

// Unequip empties a slot
func (h *Handler) Unequip(ctx context.Context, req *UnequipRequest) (*ChangeResponse, error) {
	if req.Slot == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("slot is required"))
	}

	out, err := h.session.Unequip(ctx, &session.UnequipInput{Slot: req.Slot})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.change(ctx, string(out.Status), string(out.Recompute))
}

// SetStat changes a skill level
func (h *Handler) SetStat(ctx context.Context, req *SetStatRequest) (*ChangeResponse, error) {
	out, err := h.session.SetStat(ctx, &session.SetStatInput{Skill: req.Skill, Level: req.Level})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.change(ctx, "", string(out.Recompute))
}

// SetBuff toggles a buff
func (h *Handler) SetBuff(ctx context.Context, req *SetBuffRequest) (*ChangeResponse, error) {
	out, err := h.session.SetBuff(ctx, &session.SetBuffInput{Buff: entities.Buff(req.Buff), Enabled: req.Enabled})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.change(ctx, "", string(out.Recompute))
}

// SetTarget selects a target by name
func (h *Handler) SetTarget(ctx context.Context, req *SetTargetRequest) (*SetTargetResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.session.SetTarget(ctx, &session.SetTargetInput{
		Name:   req.Name,
		Source: entities.TargetSource(req.Source),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	state, err := h.state(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SetTargetResponse{Found: out.Found, State: state}, nil
}

// Recompute refreshes the combat result
func (h *Handler) Recompute(ctx context.Context, _ *Empty) (*ChangeResponse, error) {
	out, err := h.session.Recompute(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.change(ctx, "", string(out.Status))
}

// RunSimulation runs a batch simulation with an optimized style
func (h *Handler) RunSimulation(ctx context.Context, req *RunSimulationRequest) (*RunSimulationResponse, error) {
	out, err := h.session.RunSimulation(ctx, &session.RunSimulationInput{Count: req.Count})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &RunSimulationResponse{Summary: out.Summary}, nil
}

// FindUpgrades runs the upgrade advisor
func (h *Handler) FindUpgrades(ctx context.Context, req *FindUpgradesRequest) (*UpgradesResponse, error) {
	out, err := h.session.FindUpgrades(ctx, &session.FindUpgradesInput{
		Budget:            req.Budget,
		ExcludeThrowables: req.ExcludeThrowables,
		ExcludeAmmo:       req.ExcludeAmmo,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &UpgradesResponse{Upgrades: out.View}, nil
}

// SetRanking switches the upgrade ranking
func (h *Handler) SetRanking(ctx context.Context, req *SetRankingRequest) (*UpgradesResponse, error) {
	out, err := h.session.SetRanking(ctx, &session.SetRankingInput{Mode: req.Mode})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &UpgradesResponse{Upgrades: out.View}, nil
}

// SetExcludeDuo toggles duo suggestions
func (h *Handler) SetExcludeDuo(ctx context.Context, req *SetExcludeDuoRequest) (*UpgradesResponse, error) {
	out, err := h.session.SetExcludeDuo(ctx, &session.SetExcludeDuoInput{Exclude: req.Exclude})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &UpgradesResponse{Upgrades: out.View}, nil
}

// ImportHiscores imports combat levels from the hiscores
func (h *Handler) ImportHiscores(ctx context.Context, req *ImportHiscoresRequest) (*ImportHiscoresResponse, error) {
	if req.Username == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("username is required"))
	}

	out, err := h.session.ImportHiscores(ctx, &session.ImportHiscoresInput{Username: req.Username})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	state, err := h.state(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ImportHiscoresResponse{Levels: out.Levels, State: state}, nil
}

// SyncCompanion imports the worn gear from the companion app
func (h *Handler) SyncCompanion(ctx context.Context, _ *Empty) (*SyncCompanionResponse, error) {
	out, err := h.session.SyncCompanion(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	state, err := h.state(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SyncCompanionResponse{
		Port:    out.Port,
		Applied: out.Applied,
		Unknown: out.Unknown,
		State:   state,
	}, nil
}

// GetEquipmentBonuses reads the summed gear bonuses
func (h *Handler) GetEquipmentBonuses(ctx context.Context, _ *Empty) (*EquipmentBonusesResponse, error) {
	out, err := h.session.EquipmentBonuses(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &EquipmentBonusesResponse{Bonuses: out.Bonuses}, nil
}

func (h *Handler) change(ctx context.Context, status, recompute string) (*ChangeResponse, error) {
	state, err := h.state(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ChangeResponse{Status: status, Recompute: recompute, State: state}, nil
}

func (h *Handler) state(ctx context.Context) (*SessionState, error) {
	state, err := h.session.GetState(ctx)
	if err != nil {
		return nil, err
	}

	return &SessionState{
		SessionID:    state.ID,
		Build:        state.Build,
		Target:       state.Target,
		Result:       state.Result,
		Distribution: state.Distribution,
		Simulation:   state.Simulation,
		Upgrades:     state.Upgrades,
		Ranking:      string(state.Ranking),
		ExcludeDuo:   state.ExcludeDuo,
		TableCounts:  kindCounts(state.TableCount),
	}, nil
}

func kindCounts(counts map[tables.Kind]int) map[string]int {
	out := make(map[string]int, len(counts))
	for kind, n := range counts {
		out[string(kind)] = n
	}
	return out
}
