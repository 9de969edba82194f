package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/studinest/internal/metrics"
)

// metricsCmd represents the metrics command.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show storage counters for this invocation",
	Long: `Show the reads, writes and date revivals this invocation performed,
including the initial load of every slice.

Examples:
  studinest metrics
  studinest metrics --format json`,
	Args: cobra.NoArgs,
	RunE: runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	samples, err := ctx.Recorder.Counters()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		if samples == nil {
			samples = []metrics.Sample{}
		}
		return ctx.Formatter.JSON(samples)
	}
	ctx.CLIFormatter().PrintSamples(samples)
	return nil
}
