// Package main is the entry point for the DPS console
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osrsdps/dps-console/internal/errors"
)

var (
	configPath    string
	engineAddress string
	logLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "dps-console",
	Short: "OSRS DPS analytics console",
	Long: `dps-console evaluates a gear setup against a monster through the combat engine,
plots the kill time distribution and ranks gear upgrades within a budget.`,
	SilenceUsage: true,
}

// Exit codes follow sysexits(3)
const (
	exitFailure     = 1
	exitUsage       = 64
	exitUnavailable = 69
	exitSoftware    = 70
	exitTempFail    = 75
	exitConfig      = 78
	exitInterrupted = 130
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	// cobra flag and argument errors are uncoded and read as Internal
	var coded *errors.Error
	isCoded := errors.As(err, &coded)

	switch {
	case errors.IsInvalidArgument(err):
		return exitUsage
	case errors.IsFailedPrecondition(err):
		return exitConfig
	case errors.IsUnavailable(err):
		return exitUnavailable
	case errors.IsDeadlineExceeded(err):
		return exitTempFail
	case errors.IsCanceled(err):
		return exitInterrupted
	case isCoded && errors.IsInternal(err):
		return exitSoftware
	default:
		return exitFailure
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (defaults to $DPS_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&engineAddress, "engine", "", "combat engine gRPC address")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(ttkCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(upgradesCmd)
	rootCmd.AddCommand(hiscoresCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(bonusesCmd)
	rootCmd.AddCommand(cacheCmd)
}
