package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagged      Options // values bound to CLI flags; only explicitly set ones are used
	scenarioPath string  // optional YAML scenario file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "restaurant-sim",
	Short: "Turn-driven restaurant simulator",
}

// runCmd executes a scripted or autopilot simulation
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the restaurant simulation from a script or on autopilot",
	Run: func(cmd *cobra.Command, args []string) {
		opts := mustResolve(cmd)
		if err := runSimulation(opts, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// playCmd reads commands interactively from stdin
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Drive the simulation one command at a time",
	Run: func(cmd *cobra.Command, args []string) {
		opts := mustResolve(cmd)
		if err := play(opts, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Session failed: %v", err)
		}
	},
}

// menuCmd prints the loaded menu
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the menu with prices and calories",
	Run: func(cmd *cobra.Command, args []string) {
		opts := mustResolve(cmd)
		if err := printMenu(opts, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Could not print menu: %v", err)
		}
	},
}

// mustResolve builds the effective options and configures logging.
func mustResolve(cmd *cobra.Command) Options {
	opts, err := resolveOptions(cmd.Flags().Changed, flagged, scenarioPath)
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	level, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", opts.LogLevel)
	}
	logrus.SetLevel(level)
	return opts
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerCommonFlags adds the flags every subcommand shares.
func registerCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&scenarioPath, "config", "", "YAML scenario file")
	cmd.Flags().StringVar(&flagged.MenuPath, "menu", "", "Menu file (.yaml/.yml, otherwise ';'-delimited)")
	cmd.Flags().StringVar(&flagged.TablesPath, "tables", "", "Table roster file (.yaml/.yml, otherwise ';'-delimited)")
	cmd.Flags().StringVar(&flagged.LogLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&flagged.Lang, "lang", "pl", "BCP 47 language tag for price formatting")
	cmd.Flags().StringVar(&flagged.Currency, "currency", "zł", "Currency symbol printed after prices")
}

// registerSimFlags adds the flags that shape the simulation itself.
func registerSimFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&flagged.Seed, "seed", 42, "Seed for group sizes, dish choices and the autopilot")
	cmd.Flags().IntVar(&flagged.MinGroup, "min-group", 1, "Smallest generated group")
	cmd.Flags().IntVar(&flagged.MaxGroup, "max-group", 6, "Largest generated group")
	cmd.Flags().StringVar(&flagged.Strategy, "strategy", "random", "Dish choice strategy (random, course)")
	cmd.Flags().IntVar(&flagged.DishesPerClient, "dishes", 1, "Dishes per client for the random strategy")
	cmd.Flags().StringVar(&flagged.TraceLevel, "trace", "none", "Trace level (none, transitions)")
}

// init sets up CLI flags and subcommands
func init() {
	registerCommonFlags(runCmd)
	registerSimFlags(runCmd)
	runCmd.Flags().StringVar(&flagged.ScriptPath, "script", "", "Command script; runs the autopilot when empty")
	runCmd.Flags().BoolVar(&flagged.Strict, "strict", false, "Abort the script at the first rejected command")
	runCmd.Flags().IntVar(&flagged.Groups, "groups", 10, "Groups the autopilot admits over the run")
	runCmd.Flags().Float64Var(&flagged.ArrivalProb, "arrival-prob", 0.3, "Per-step probability the autopilot admits a group")
	runCmd.Flags().IntVar(&flagged.MaxSteps, "max-steps", 10000, "Autopilot step limit (0 = unlimited)")
	runCmd.Flags().StringVar(&flagged.MetricsPath, "metrics-out", "", "Write metrics JSON to this file")

	registerCommonFlags(playCmd)
	registerSimFlags(playCmd)

	registerCommonFlags(menuCmd)

	rootCmd.AddCommand(runCmd, playCmd, menuCmd)
}
