package session

import (
	"context"
	"sort"

	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/equipment"
	"github.com/osrsdps/dps-console/internal/errors"
)

func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item id is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	result := o.store.Equip(input.Slot, input.ItemID)
	out := &EquipOutput{
		Status:        result.Status,
		Slot:          result.Slot,
		ClearedShield: result.ClearedShield,
	}
	if result.Status != equipment.StatusApplied {
		o.log.Debugw("equip ignored", "slot", input.Slot, "item_id", input.ItemID, "status", result.Status)
		return out, nil
	}

	o.log.Debugw("equipped", "slot", result.Slot, "item", result.Item.Name, "cleared_shield", result.ClearedShield)
	out.Recompute = o.recomputeLocked(ctx)
	return out, nil
}

func (o *orchestrator) Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error) {
	if input == nil || input.Slot == "" {
		return nil, errors.InvalidArgument("slot is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	result := o.store.Unequip(input.Slot)
	out := &UnequipOutput{Status: result.Status, Removed: result.Removed}
	if result.Status != equipment.StatusApplied {
		return out, nil
	}

	out.Recompute = o.recomputeLocked(ctx)
	return out, nil
}

func (o *orchestrator) SetStat(ctx context.Context, input *SetStatInput) (*SetStatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !entities.IsCombatSkill(input.Skill) {
		return nil, errors.InvalidArgumentf("unknown skill %q", input.Skill)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.stats[input.Skill] = input.Level
	return &SetStatOutput{Recompute: o.recomputeLocked(ctx)}, nil
}

func (o *orchestrator) SetBuff(ctx context.Context, input *SetBuffInput) (*SetBuffOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, ok := o.buffs.Get(input.Buff); !ok {
		return nil, errors.InvalidArgumentf("unknown buff %q", input.Buff)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.buffs = o.buffs.With(input.Buff, input.Enabled)
	return &SetBuffOutput{Recompute: o.recomputeLocked(ctx)}, nil
}

func (o *orchestrator) SetTarget(ctx context.Context, input *SetTargetInput) (*SetTargetOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("target name is required")
	}
	source := input.Source
	if source == "" {
		source = entities.SourceMonster
	}
	if !source.Valid() {
		return nil, errors.InvalidArgumentf("unknown target source %q", source)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return o.setTargetLocked(ctx, input.Name, source), nil
}

func (o *orchestrator) setTargetLocked(ctx context.Context, name string, source entities.TargetSource) *SetTargetOutput {
	target, ok := o.catalog.FindTarget(name, source)
	if !ok {
		o.log.Infow("target not found", "name", name, "source", source)
		return &SetTargetOutput{Target: o.invoker.Target()}
	}

	if err := o.invoker.SetTarget(ctx, target); err != nil {
		// the monster is created again on the next engine call
		o.log.Warnw("failed to create monster", "target", target.Name, "error", err)
	}
	o.clearDerived()
	o.log.Infow("target selected", "target", target.Name, "source", target.Source)

	return &SetTargetOutput{
		Found:     true,
		Target:    target,
		Recompute: o.recomputeLocked(ctx),
	}
}

func (o *orchestrator) ApplyProfile(ctx context.Context, input *ApplyProfileInput) (*ApplyProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	for skill := range input.Stats {
		if !entities.IsCombatSkill(skill) {
			return nil, errors.InvalidArgumentf("unknown skill %q", skill)
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if input.Username != "" {
		o.username = input.Username
	}
	for skill, level := range input.Stats {
		o.stats[skill] = level
	}
	o.buffs = input.Buffs

	out := &ApplyProfileOutput{}
	out.UnknownItems = o.equipAllLocked(input.Equipment, nil)

	if input.Target != nil && input.Target.Name != "" {
		source := input.Target.Source
		if source == "" {
			source = entities.SourceMonster
		}
		targetOut := o.setTargetLocked(ctx, input.Target.Name, source)
		out.TargetFound = targetOut.Found
		if targetOut.Found {
			out.Recompute = targetOut.Recompute
			return out, nil
		}
	}

	out.Recompute = o.recomputeLocked(ctx)
	return out, nil
}

// equipAllLocked equips slot to item id pairs in slot-name order and returns
// the slots whose ids were unknown. applied, when set, receives the slots
// that changed.
func (o *orchestrator) equipAllLocked(gear map[string]string, applied map[string]string) []string {
	slots := make([]string, 0, len(gear))
	for slot := range gear {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	var unknown []string
	for _, slot := range slots {
		result := o.store.Equip(slot, gear[slot])
		if result.Status != equipment.StatusApplied {
			unknown = append(unknown, slot)
			continue
		}
		if applied != nil {
			applied[result.Slot] = gear[slot]
		}
	}
	if len(unknown) > 0 {
		o.log.Infow("skipped unknown items", "slots", unknown)
	}
	return unknown
}
