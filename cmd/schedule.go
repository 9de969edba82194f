package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/studinest/internal/errors"
	"github.com/manav03panchal/studinest/internal/output"
	"github.com/manav03panchal/studinest/internal/parser"
	"github.com/manav03panchal/studinest/internal/temporal"
)

// scheduleCmd represents the schedule command.
var scheduleCmd = &cobra.Command{
	Use:     "schedule [DAY]",
	Aliases: []string{"sched", "sc", "week"},
	Short:   "Show the weekly class schedule",
	Long: `Show the whole week, starting on week.start, or the classes of one day.
Today is highlighted and the class in progress is marked.

DAY accepts names and abbreviations in any case, plus "today" and "tomorrow".

Examples:
  studinest schedule
  studinest schedule tuesday
  studinest schedule tomorrow
  studinest schedule now`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeWeekdays,
	RunE:              runSchedule,
}

var scheduleNowCmd = &cobra.Command{
	Use:     "now",
	Aliases: []string{"current"},
	Short:   "Show the class in progress",
	Args:    cobra.NoArgs,
	RunE:    runScheduleNow,
}

func init() {
	scheduleCmd.AddCommand(scheduleNowCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	now := ctx.Now()

	if len(args) == 1 {
		day, err := resolveDay(args[0])
		if err != nil {
			return err
		}
		out := output.NewDayOutput(day, ctx.ScheduleRepo.Day(day), now)
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(out)
		}
		ctx.CLIFormatter().PrintDay(out)
		return nil
	}

	start, err := ctx.Config.WeekStart()
	if err != nil {
		return err
	}
	week := output.NewWeekOutput(ctx.ScheduleRepo.Get(), temporal.WeekOrder(start), now)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(week)
	}
	ctx.CLIFormatter().PrintWeek(week)
	return nil
}

func runScheduleNow(cmd *cobra.Command, args []string) error {
	now := ctx.Now()
	day := temporal.DayName(now)
	entries := ctx.ScheduleRepo.Day(day)
	out := output.NewDayOutput(day, entries, now)

	var current *output.EntryOutput
	if i := temporal.Active(entries, now); i >= 0 {
		current = out.Entries[i]
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(struct {
			Day     string              `json:"day"`
			Current *output.EntryOutput `json:"current"`
		}{day, current})
	}

	cli := ctx.CLIFormatter()
	if current == nil {
		cli.Muted("No class in progress.")
		if next := temporal.Next(entries, now); next >= 0 {
			e := entries[next]
			cli.Printf("Next: %s at %s in %s\n", cli.CourseName(e.Course), e.Start, e.Room)
		}
		return nil
	}
	cli.Printf("%s  %s  %s\n", cli.CourseName(current.Course), current.Start+" - "+current.End, current.Room)
	return nil
}

// resolveDay maps user input to a schedule key.
func resolveDay(input string) (string, error) {
	wd, err := parser.ParseWeekday(input, ctx.Now())
	if err == nil {
		return temporal.SundayFirstDayNames[wd], nil
	}

	// keys outside the seven weekdays can still be shown by exact name
	name := parser.NormalizeDayName(input)
	if _, ok := ctx.ScheduleRepo.Get()[name]; ok {
		return name, nil
	}

	var pe *parser.InputParseError
	if errors.As(err, &pe) {
		return "", pe.ToUserError()
	}
	return "", err
}
