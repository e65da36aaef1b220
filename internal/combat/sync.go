package combat

import (
	"context"
	"sort"

	"github.com/osrsdps/dps-console/internal/engine"
	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/errors"
)

// syncPlayer pushes only what changed since the last sync. A fresh player
// starts from an empty build so every stat and item is sent. Any failure
// drops the handle so the next call rebuilds the player from scratch.
func (i *Invoker) syncPlayer(ctx context.Context, build *entities.Build) error {
	if i.playerID == "" {
		out, err := i.engine.NewPlayer(ctx, &engine.NewPlayerInput{})
		if err != nil {
			return err
		}
		i.playerID = out.PlayerID
		i.synced = &entities.Build{
			Stats:     map[string]int{},
			Equipment: map[string]entities.EquippedItem{},
		}
	}

	if err := i.pushBuild(ctx, build); err != nil {
		i.log.Warnw("player out of sync, discarding handle", "player", i.playerID, "error", err)
		i.release(ctx, i.playerID)
		i.playerID, i.synced = "", nil
		return err
	}

	i.synced = build.Clone()
	return nil
}

func (i *Invoker) pushBuild(ctx context.Context, build *entities.Build) error {
	prev := i.synced
	id := i.playerID

	for _, skill := range sortedKeys(build.Stats) {
		level := build.Stats[skill]
		if old, ok := prev.Stats[skill]; ok && old == level {
			continue
		}
		if _, err := i.engine.SetStat(ctx, &engine.SetStatInput{PlayerID: id, Skill: skill, Level: level}); err != nil {
			return errors.Wrapf(err, "failed to set %s", skill)
		}
	}

	if build.Username != prev.Username {
		if _, err := i.engine.SetUsername(ctx, &engine.SetUsernameInput{PlayerID: id, Username: build.Username}); err != nil {
			return errors.Wrap(err, "failed to set username")
		}
	}

	prayers := []struct {
		name      string
		now, then bool
	}{
		{engine.PrayerPiety, build.Buffs.Piety, prev.Buffs.Piety},
		{engine.PrayerRigour, build.Buffs.Rigour, prev.Buffs.Rigour},
	}
	for _, p := range prayers {
		if p.now == p.then {
			continue
		}
		if _, err := i.engine.SetPrayer(ctx, &engine.SetPrayerInput{PlayerID: id, Prayer: p.name, Enabled: p.now}); err != nil {
			return errors.Wrapf(err, "failed to toggle %s", p.name)
		}
	}

	if build.Buffs.SuperCombat != prev.Buffs.SuperCombat {
		_, err := i.engine.SetSuperCombat(ctx, &engine.SetSuperCombatInput{
			PlayerID: id,
			Enabled:  build.Buffs.SuperCombat,
		})
		if err != nil {
			return errors.Wrap(err, "failed to toggle super combat")
		}
	}

	// removals first so a two-handed swap never sees a stale shield
	for _, slot := range sortedKeys(prev.Equipment) {
		if _, ok := build.Equipment[slot]; ok {
			continue
		}
		if _, err := i.engine.Unequip(ctx, &engine.UnequipInput{PlayerID: id, Slot: slot}); err != nil {
			return errors.Wrapf(err, "failed to unequip %s", slot)
		}
	}
	for _, slot := range sortedKeys(build.Equipment) {
		item := build.Equipment[slot]
		if old, ok := prev.Equipment[slot]; ok && old.ID == item.ID {
			continue
		}
		_, err := i.engine.Equip(ctx, &engine.EquipInput{
			PlayerID: id,
			Slot:     slot,
			ItemID:   item.ID,
			Item:     item.Item.Record,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to equip %s", item.Name)
		}
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
