package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osrsdps/dps-console/internal/chart"
	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/orchestrators/session"
	"github.com/osrsdps/dps-console/internal/ttk"
	"github.com/osrsdps/dps-console/internal/upgrades"
)

var (
	calcFlags     buildFlags
	ttkFlags      buildFlags
	simulateFlags buildFlags
	upgradeFlags  buildFlags
	bonusFlags    buildFlags

	ttkOut        string
	simulateCount int

	upgradeBudget            int64
	upgradeExcludeThrowables bool
	upgradeExcludeAmmo       bool
	upgradeExcludeDuo        bool
	upgradeRank              string
	upgradeLimit             int
	upgradeChart             string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate DPS for a build against a target",
	Long: `Evaluate the configured profile, adjusted by flags, against a target. Examples:

  dps-console calc --target Vorkath --source boss --equip weapon=4151
  dps-console calc --target "Abyssal demon" --stat Attack=90 --buff piety`,
	RunE: runCalc,
}

var ttkCmd = &cobra.Command{
	Use:   "ttk",
	Short: "Plot the kill time distribution as an HTML chart",
	RunE:  runTTK,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a batch of kill simulations with the best attack style",
	RunE:  runSimulate,
}

var upgradesCmd = &cobra.Command{
	Use:   "upgrades",
	Short: "Rank gear upgrades within a budget",
	RunE:  runUpgrades,
}

var bonusesCmd = &cobra.Command{
	Use:   "bonuses",
	Short: "Show the summed equipment bonuses",
	RunE:  runBonuses,
}

func init() {
	calcFlags.register(calcCmd)

	ttkFlags.register(ttkCmd)
	ttkCmd.Flags().StringVar(&ttkOut, "out", "ttk.html", "chart output file")

	simulateFlags.register(simulateCmd)
	simulateCmd.Flags().IntVar(&simulateCount, "count", 0, "kills to simulate (defaults to the configured batch size)")

	upgradeFlags.register(upgradesCmd)
	upgradesCmd.Flags().Int64Var(&upgradeBudget, "budget", 0, "budget in gp (defaults to the configured budget)")
	upgradesCmd.Flags().BoolVar(&upgradeExcludeThrowables, "exclude-throwables", false, "skip throwable weapons")
	upgradesCmd.Flags().BoolVar(&upgradeExcludeAmmo, "exclude-ammo", false, "skip ammunition")
	upgradesCmd.Flags().BoolVar(&upgradeExcludeDuo, "exclude-duo", false, "hide two-item suggestions")
	upgradesCmd.Flags().StringVar(&upgradeRank, "rank", string(upgrades.RankEfficiency),
		"ranking: efficiency or rawIncrease")
	upgradesCmd.Flags().IntVar(&upgradeLimit, "limit", chart.DefaultUpgradeLimit, "suggestions to show")
	upgradesCmd.Flags().StringVar(&upgradeChart, "chart", "", "also write an HTML chart to this file")

	bonusFlags.register(bonusesCmd)
}

// withSession runs fn against a freshly wired session
func withSession(cmd *cobra.Command, flags *buildFlags, fn func(ctx context.Context, svc session.Service) error) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close(context.WithoutCancel(ctx))

	if flags != nil {
		if err := flags.apply(ctx, a.session); err != nil {
			return err
		}
	}
	return fn(ctx, a.session)
}

func runCalc(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, &calcFlags, func(ctx context.Context, svc session.Service) error {
		out, err := svc.Recompute(ctx)
		if err != nil {
			return err
		}
		state, err := svc.GetState(ctx)
		if err != nil {
			return err
		}
		if out.Result == nil {
			return fmt.Errorf("no result: %s", out.Status)
		}

		printBuild(state)
		printResult(out.Result)
		if p, ok := ttk.Percentile(out.Distribution, 90); ok {
			fmt.Printf("  90%% of kills within: %.1fs\n", p)
		}
		return nil
	})
}

func runTTK(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, &ttkFlags, func(ctx context.Context, svc session.Service) error {
		out, err := svc.Recompute(ctx)
		if err != nil {
			return err
		}
		if len(out.Distribution) <= 1 {
			return fmt.Errorf("no kill time distribution: %s", out.Status)
		}
		state, err := svc.GetState(ctx)
		if err != nil {
			return err
		}

		return writeChart(ttkOut, &chart.Report{
			Target: state.Target.Name,
			Result: out.Result,
			CDF:    out.Distribution,
		})
	})
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, &simulateFlags, func(ctx context.Context, svc session.Service) error {
		out, err := svc.RunSimulation(ctx, &session.RunSimulationInput{Count: simulateCount})
		if err != nil {
			return err
		}

		fmt.Printf("\nBatch Simulation:\n")
		fmt.Printf("=================\n")
		fmt.Printf("  Kills simulated: %d\n", out.Summary.Simulations)
		fmt.Printf("  Mean ticks: %.1f\n", out.Summary.MeanTicks)
		fmt.Printf("  Average kill time: %.1fs\n", out.Summary.AvgSeconds)
		fmt.Printf("  Kills per hour: %.1f\n", out.Summary.KillsPerHour)
		return nil
	})
}

func runUpgrades(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, &upgradeFlags, func(ctx context.Context, svc session.Service) error {
		if _, err := svc.SetRanking(ctx, &session.SetRankingInput{Mode: upgradeRank}); err != nil {
			return err
		}
		if _, err := svc.SetExcludeDuo(ctx, &session.SetExcludeDuoInput{Exclude: upgradeExcludeDuo}); err != nil {
			return err
		}

		out, err := svc.FindUpgrades(ctx, &session.FindUpgradesInput{
			Budget:            upgradeBudget,
			ExcludeThrowables: upgradeExcludeThrowables,
			ExcludeAmmo:       upgradeExcludeAmmo,
		})
		if err != nil {
			return err
		}

		fmt.Printf("\nUpgrades (%s):\n", upgradeRank)
		fmt.Printf("=============\n")
		if len(out.View) == 0 {
			fmt.Println("  No upgrades found within budget")
		}
		for i, u := range out.View {
			if i >= upgradeLimit {
				break
			}
			fmt.Printf("%3d. %-40s %8s  +%.2f dps  %.3f dps/M\n",
				i+1, strings.Join(u.ItemNames, " + "), upgrades.FormatPrice(u.Price), u.DPSIncrease, u.DPSPerMillionGP)
		}

		if upgradeChart == "" {
			return nil
		}
		state, err := svc.GetState(ctx)
		if err != nil {
			return err
		}
		return writeChart(upgradeChart, &chart.Report{
			Target:       state.Target.Name,
			Result:       state.Result,
			CDF:          state.Distribution,
			Upgrades:     out.View,
			UpgradeLimit: upgradeLimit,
		})
	})
}

func runBonuses(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, &bonusFlags, func(ctx context.Context, svc session.Service) error {
		out, err := svc.EquipmentBonuses(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("\nEquipment Bonuses:\n")
		fmt.Printf("==================\n")
		for _, name := range entities.EquipmentBonusNames {
			fmt.Printf("  %-16s %+d\n", name, out.Bonuses[name])
		}
		return nil
	})
}

func writeChart(path string, report *chart.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close() // nolint:errcheck // render errors are reported instead
	}()

	if err := chart.Render(f, report); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func printBuild(state *session.State) {
	fmt.Printf("\nBuild:\n")
	fmt.Printf("======\n")
	if state.Build.Username != "" {
		fmt.Printf("  Player: %s\n", state.Build.Username)
	}
	for _, skill := range entities.CombatSkills {
		fmt.Printf("  %-10s %d\n", skill, state.Build.Stats[skill])
	}
	for _, slot := range sortedKeys(state.Build.Equipment) {
		fmt.Printf("  [%s] %s\n", slot, state.Build.Equipment[slot].Name)
	}
	if state.Target != nil {
		fmt.Printf("  Target: %s (%s)\n", state.Target.Name, state.Target.Source)
	}
}

func printResult(r *entities.CombatResult) {
	fmt.Printf("\nResult:\n")
	fmt.Printf("=======\n")
	fmt.Printf("  DPS: %.3f\n", r.DPS)
	fmt.Printf("  Max hit: %d\n", r.MaxHit)
	fmt.Printf("  Hit chance: %.1f%%\n", r.HitChance*100)
	fmt.Printf("  Style: %s %s (speed %d)\n", r.Style, r.Stance, r.AttackSpeed)
	fmt.Printf("  Average kill time: %.1fs\n", r.AvgTTK)
	fmt.Printf("  Kills per hour: %.1f\n", r.KillsPerHour)
	if len(r.Effects) > 0 {
		fmt.Printf("  Effects: %s\n", strings.Join(r.Effects, ", "))
	}
	if r.ActiveSet != "" {
		fmt.Printf("  Set effect: %s\n", r.ActiveSet)
	}
}
