package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/studinest/internal/output"
)

// remindCmd represents the remind command.
var remindCmd = &cobra.Command{
	Use:     "remind [TEXT]",
	Aliases: []string{"r", "rem", "reminders"},
	Short:   "Manage the daily reminder checklist",
	Long: `Manage the daily reminder checklist.

When called with text, adds a reminder. Otherwise, lists the checklist.

Examples:
  studinest remind
  studinest remind "Bring the lab coat"
  studinest remind done 3
  studinest remind delete 3`,
	RunE: runRemindDefault,
}

var remindAddCmd = &cobra.Command{
	Use:     "add TEXT",
	Aliases: []string{"new"},
	Short:   "Add a reminder",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRemindAdd,
}

var remindListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List reminders",
	RunE:    runRemindList,
}

var remindDoneCmd = &cobra.Command{
	Use:               "done ID",
	Aliases:           []string{"toggle", "check"},
	Short:             "Toggle a reminder between open and done",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTasks,
	RunE:              runRemindDone,
}

var remindDeleteCmd = &cobra.Command{
	Use:               "delete ID",
	Aliases:           []string{"rm", "del"},
	Short:             "Delete a reminder",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTasks,
	RunE:              runRemindDelete,
}

func init() {
	remindCmd.AddCommand(remindAddCmd)
	remindCmd.AddCommand(remindListCmd)
	remindCmd.AddCommand(remindDoneCmd)
	remindCmd.AddCommand(remindDeleteCmd)
	rootCmd.AddCommand(remindCmd)
}

func runRemindDefault(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return runRemindAdd(cmd, args)
	}
	return runRemindList(cmd, args)
}

func runRemindAdd(cmd *cobra.Command, args []string) error {
	task, err := ctx.DailyTaskRepo.Add(strings.Join(args, " "))
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(task)
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Added reminder #%d: %s", task.ID, task.Text))
	return nil
}

func runRemindList(cmd *cobra.Command, args []string) error {
	tasks := ctx.DailyTaskRepo.List()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTasksResponse(tasks))
	}

	cli := ctx.CLIFormatter()
	cli.PrintTasks(tasks)
	if len(tasks) > 0 {
		cli.Println()
		cli.Muted(fmt.Sprintf("%d of %d left", ctx.DailyTaskRepo.Remaining(), len(tasks)))
	}
	return nil
}

func runRemindDone(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	task, err := ctx.DailyTaskRepo.Toggle(id)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(task)
	}

	if task.Completed {
		ctx.CLIFormatter().Success(fmt.Sprintf("Done: %s", task.Text))
	} else {
		ctx.CLIFormatter().Success(fmt.Sprintf("Reopened: %s", task.Text))
	}
	return nil
}

func runRemindDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := ctx.DailyTaskRepo.Delete(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSuccess("reminder deleted", id)
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Deleted reminder #%d", id))
	return nil
}
