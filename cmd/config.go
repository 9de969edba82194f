package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/studinest/internal/config"
	"github.com/manav03panchal/studinest/internal/output"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg", "settings"},
	Short:   "Manage application configuration",
	Long: `View and modify the configuration file. Environment variables
(STUDINEST_*) still override the file when other commands run.

Examples:
  studinest config get
  studinest config get week.start
  studinest config set week.start Sunday
  studinest config set storage.backend sqlite
  studinest config path`,
}

// configGetCmd gets configuration values.
var configGetCmd = &cobra.Command{
	Use:   "get [KEY]",
	Short: "Get configuration value",
	Long: `Get one effective configuration value, or all of them.

Keys:
  storage.backend           badger or sqlite
  storage.path              Database location, ":memory:" for none
  storage.key_prefix        Prefix of every stored key
  clock.tick_interval       Refresh interval of time-derived views
  week.start                First day of the week view
  dashboard.upcoming_limit  Assignments shown on the overview (0 = all)
  seed.sample               Fill empty storage with sample records`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: config.Keys(),
	RunE:      runConfigGet,
}

// configSetCmd sets configuration values.
var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set configuration value",
	Long: `Set a value in the configuration file. The value is validated
before the file is written.

Examples:
  studinest config set clock.tick_interval 30s
  studinest config set dashboard.upcoming_limit 5
  studinest config set seed.sample false`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return filterPrefix(config.Keys(), toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runConfigSet,
}

// configPathCmd prints the config file location.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPath())
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// configPath is the file config commands read and write.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.DefaultConfigPath()
}

// runConfigGet handles the config get command.
func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	keys := config.Keys()
	if len(args) == 1 {
		keys = args
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		v, err := cfg.Get(key)
		if err != nil {
			return err
		}
		values[key] = v
	}

	if parseFormat(flagFormat) == output.FormatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	}

	if len(args) == 1 {
		fmt.Fprintln(cmd.OutOrStdout(), values[args[0]])
		return nil
	}
	for _, key := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-26s %s\n", key+":", values[key])
	}
	return nil
}

// runConfigSet handles the config set command.
func runConfigSet(cmd *cobra.Command, args []string) error {
	path := configPath()
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", args[0], args[1], path)
	return nil
}
