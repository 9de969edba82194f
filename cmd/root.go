// Package cmd provides the CLI commands for Studinest.
//
// Studinest - a terminal planner for students
// Copyright (c) Manav Panchal
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/studinest/internal/config"
	"github.com/manav03panchal/studinest/internal/logging"
	"github.com/manav03panchal/studinest/internal/output"
	"github.com/manav03panchal/studinest/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagConfig string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// sessionCtx carries the per-invocation session id for logging.
var sessionCtx = context.Background()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "studinest",
	Short: "A terminal planner for students",
	Long: `Studinest keeps track of your assignments, courses, weekly class
schedule and daily reminders, right from the terminal.

Examples:
  studinest
  studinest assignment add "Lab report" --course Chemistry --due "next friday"
  studinest schedule now
  studinest remind add "Buy a lab coat"
  studinest dashboard`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion, help and version
		if skipRuntime(cmd) {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		}
		sessionCtx = logging.NewSessionContext()

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if !flagDebug {
			logCfg, err := cfg.Logging()
			if err != nil {
				return err
			}
			logging.Init(logCfg)
		}

		opts := runtime.DefaultOptions()
		opts.Config = cfg
		opts.Format = parseFormat(flagFormat)
		opts.ColorMode = parseColorMode(flagColor)
		opts.Debug = flagDebug

		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}
		ctx.Formatter.Writer = cmd.OutOrStdout()

		logging.FromContext(sessionCtx).Debug("runtime ready",
			logging.KeyOperation, cmd.CommandPath(),
			logging.KeyBackend, cfg.Storage.Backend)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx == nil {
			return nil
		}
		if warning := runtime.WriteWarning(ctx.WriteErrors()); warning != "" {
			cmd.PrintErrln("Warning: " + warning)
		}
		return ctx.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show today's overview
		return runToday(cmd, args)
	},
}

// skipRuntime reports whether cmd runs without opening storage. The
// config commands must work even when the current config is invalid.
func skipRuntime(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "completion", "help", "version", "config":
			return true
		}
	}
	return false
}

func parseFormat(s string) output.Format {
	switch s {
	case "json":
		return output.FormatJSON
	case "plain":
		return output.FormatPlain
	default:
		return output.FormatCLI
	}
}

func parseColorMode(s string) output.ColorMode {
	switch s {
	case "always":
		return output.ColorAlways
	case "never":
		return output.ColorNever
	default:
		return output.ColorAuto
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		Die(err)
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file (default "+config.DefaultConfigPath()+")")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("studinest %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError(err.Error(), runtime.GetSuggestion(err))
	} else {
		os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
	}
	if ctx != nil {
		ctx.Close()
	}
	os.Exit(1)
}
