package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/studinest/internal/logging"
	"github.com/manav03panchal/studinest/internal/scheduler"
)

var watchFlagInterval time.Duration

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print today's overview on every clock tick",
	Long: `Print today's overview, then print it again on every tick of the clock
until interrupted. Data is re-read from storage before each print, so changes
made by other commands show up on the next tick.

Examples:
  studinest watch
  studinest watch --interval 30s
  studinest watch --format json`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVarP(&watchFlagInterval, "interval", "i", 0,
		"Tick interval (default clock.tick_interval)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	interval := watchFlagInterval
	if interval <= 0 {
		interval = ctx.Config.Clock.TickInterval
	}
	if interval < time.Second {
		interval = time.Second
	}

	log := logging.FromContext(sessionCtx)
	ticks := make(chan struct{}, 1)

	sched := scheduler.NewScheduler(interval)
	sched.OnNewDay(func(now time.Time) {
		log.Info("new day", "day", now.Format("Monday 2006-01-02"))
	})
	sched.OnTick(func(time.Time) {
		select {
		case ticks <- struct{}{}:
		default:
			// previous overview still printing
		}
	})
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := printOverview(); err != nil {
		return err
	}
	for {
		select {
		case <-sigCtx.Done():
			return nil
		case <-ticks:
			ctx.Reload()
			if err := printOverview(); err != nil {
				return err
			}
		}
	}
}

func printOverview() error {
	resp := buildToday()
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(resp)
	}

	cli := ctx.CLIFormatter()
	cli.PrintToday(resp, ctx.Now())
	cli.Muted("──")
	return nil
}
