package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/studinest/internal/output"
	"github.com/manav03panchal/studinest/internal/temporal"
)

// todayCmd represents the today command.
var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t", "td"},
	Short:   "Show today's overview",
	Long: `Display today's classes (marking the one in progress), the next
unfinished assignments by due date, and how many daily reminders are left.

Examples:
  studinest today
  studinest t
  studinest --format json`,
	RunE: runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	resp := buildToday()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(resp)
	}

	ctx.CLIFormatter().PrintToday(resp, ctx.Now())
	return nil
}

// buildToday assembles the overview for the context clock.
func buildToday() *output.TodayResponse {
	now := ctx.Now()
	day := temporal.DayName(now)

	return output.NewTodayResponse(
		now,
		ctx.ScheduleRepo.Day(day),
		ctx.AssignmentRepo.Upcoming(ctx.Config.Dashboard.UpcomingLimit),
		ctx.DailyTaskRepo.List(),
	)
}
