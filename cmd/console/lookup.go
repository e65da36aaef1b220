package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/orchestrators/session"
)

var searchSlot string

var hiscoresCmd = &cobra.Command{
	Use:   "hiscores [username]",
	Short: "Import combat levels from the hiscores",
	Args:  cobra.ExactArgs(1),
	RunE:  runHiscores,
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Import worn gear from the companion app",
	Long:  `Scan the companion app ports on this machine and equip the gear of its first loadout.`,
	RunE:  runSync,
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the lookup tables",
}

var searchItemsCmd = &cobra.Command{
	Use:   "items [query]",
	Short: "Search equipable items by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchItems,
}

var searchMonstersCmd = &cobra.Command{
	Use:   "monsters [query]",
	Short: "Search monsters and bosses by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchMonsters,
}

func init() {
	searchItemsCmd.Flags().StringVar(&searchSlot, "slot", "", "only items for this slot")
	searchCmd.AddCommand(searchItemsCmd)
	searchCmd.AddCommand(searchMonstersCmd)
}

func runHiscores(cmd *cobra.Command, args []string) error {
	return withSession(cmd, nil, func(ctx context.Context, svc session.Service) error {
		out, err := svc.ImportHiscores(ctx, &session.ImportHiscoresInput{Username: args[0]})
		if err != nil {
			return err
		}

		fmt.Printf("\nCombat levels for %s:\n", args[0])
		fmt.Printf("====================\n")
		for _, skill := range entities.CombatSkills {
			if level, ok := out.Levels[skill]; ok {
				fmt.Printf("  %-10s %d\n", skill, level)
			}
		}
		return nil
	})
}

func runSync(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, nil, func(ctx context.Context, svc session.Service) error {
		out, err := svc.SyncCompanion(ctx)
		if err != nil {
			return err
		}
		state, err := svc.GetState(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("\nCompanion app on port %d:\n", out.Port)
		fmt.Printf("=========================\n")
		for _, slot := range sortedKeys(state.Build.Equipment) {
			fmt.Printf("  [%s] %s\n", slot, state.Build.Equipment[slot].Name)
		}
		for _, slot := range out.Unknown {
			fmt.Printf("  [%s] unknown item skipped\n", slot)
		}
		return nil
	})
}

func runSearchItems(cmd *cobra.Command, args []string) error {
	return withSession(cmd, nil, func(ctx context.Context, svc session.Service) error {
		out, err := svc.SearchItems(ctx, &session.SearchItemsInput{Query: args[0], Slot: searchSlot})
		if err != nil {
			return err
		}
		for _, item := range out.Items {
			fmt.Printf("  %-8s %-40s %s\n", item.ID, item.Name, item.Slot)
		}
		fmt.Printf("\n%d items\n", len(out.Items))
		return nil
	})
}

func runSearchMonsters(cmd *cobra.Command, args []string) error {
	return withSession(cmd, nil, func(ctx context.Context, svc session.Service) error {
		out, err := svc.SearchMonsters(ctx, &session.SearchMonstersInput{Query: args[0]})
		if err != nil {
			return err
		}
		for _, m := range out.Monsters {
			fmt.Printf("  %-40s %-8s hp %d, combat %d\n", m.Name, m.Source, m.Hitpoints, m.CombatLevel)
		}
		fmt.Printf("\n%d targets\n", len(out.Monsters))
		return nil
	})
}
