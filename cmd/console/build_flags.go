package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/equipment"
	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/orchestrators/session"
)

// buildFlags override the configured profile for one command
type buildFlags struct {
	target string
	source string
	stats  map[string]int
	equip  map[string]string
	buffs  []string
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.target, "target", "", "target name")
	cmd.Flags().StringVar(&f.source, "source", string(entities.SourceMonster), "target table: monster or boss")
	cmd.Flags().StringToIntVar(&f.stats, "stat", nil, "skill levels, e.g. --stat Attack=90,Strength=99")
	cmd.Flags().StringToStringVar(&f.equip, "equip", nil, "worn items by slot, e.g. --equip weapon=4151")
	cmd.Flags().StringSliceVar(&f.buffs, "buff", nil, "buffs to enable: piety, rigour, superCombat")
}

// apply pushes the flag values into the session
func (f *buildFlags) apply(ctx context.Context, svc session.Service) error {
	for _, skill := range sortedKeys(f.stats) {
		if _, err := svc.SetStat(ctx, &session.SetStatInput{Skill: skill, Level: f.stats[skill]}); err != nil {
			return err
		}
	}

	for _, buff := range f.buffs {
		if _, err := svc.SetBuff(ctx, &session.SetBuffInput{Buff: entities.Buff(buff), Enabled: true}); err != nil {
			return err
		}
	}

	for _, slot := range sortedKeys(f.equip) {
		out, err := svc.Equip(ctx, &session.EquipInput{Slot: slot, ItemID: f.equip[slot]})
		if err != nil {
			return err
		}
		if out.Status == equipment.StatusUnknownItem {
			fmt.Printf("Skipping unknown item %s for slot %s\n", f.equip[slot], slot)
		}
	}

	if f.target != "" {
		out, err := svc.SetTarget(ctx, &session.SetTargetInput{
			Name:   f.target,
			Source: entities.TargetSource(f.source),
		})
		if err != nil {
			return err
		}
		if !out.Found {
			return errors.NotFoundf("no %s named %q", f.source, f.target)
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
