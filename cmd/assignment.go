package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/studinest/internal/errors"
	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/output"
	"github.com/manav03panchal/studinest/internal/parser"
)

// assignmentCmd represents the assignment command.
var assignmentCmd = &cobra.Command{
	Use:     "assignment",
	Aliases: []string{"assignments", "assign", "as", "a"},
	Short:   "Manage assignments",
	Long: `List assignments sorted by due date, or add, show, edit and delete them.

Examples:
  studinest assignment
  studinest assignment add "Lab report" --course "Kimia Dasar" --due "next friday" --priority High
  studinest assignment show 1
  studinest assignment edit 1 --progress 60
  studinest assignment delete 1`,
	RunE: runAssignmentList,
}

// Assignment subcommand flags.
var (
	assignFlagCourse   string
	assignFlagDue      string
	assignFlagPriority string
	assignFlagProgress int
	assignFlagNotes    string

	assignEditFlagTitle    string
	assignEditFlagCourse   string
	assignEditFlagDue      string
	assignEditFlagPriority string
	assignEditFlagProgress int
	assignEditFlagNotes    string
)

var assignmentAddCmd = &cobra.Command{
	Use:     "add TITLE",
	Aliases: []string{"create", "new"},
	Short:   "Add an assignment",
	Long: `Add an assignment. The due date accepts natural language.

Examples:
  studinest assignment add "Essay" --course "Sastra Indonesia" --due 2026-01-15
  studinest assignment add "Problem set" --due "in 3 days" --priority low
  studinest assignment add "Slides" --due +1w --notes "My part: conflict theory"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAssignmentAdd,
}

var assignmentListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List assignments by due date",
	RunE:    runAssignmentList,
}

var assignmentShowCmd = &cobra.Command{
	Use:               "show ID",
	Short:             "Show an assignment",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeAssignments,
	RunE:              runAssignmentShow,
}

var assignmentEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit an assignment",
	Long: `Edit an assignment. Only the flags given are changed; the id is kept.

Examples:
  studinest assignment edit 2 --progress 100
  studinest assignment edit 3 --due "next monday" --priority high`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeAssignments,
	RunE:              runAssignmentEdit,
}

var assignmentDeleteCmd = &cobra.Command{
	Use:               "delete ID",
	Aliases:           []string{"rm", "del"},
	Short:             "Delete an assignment",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeAssignments,
	RunE:              runAssignmentDelete,
}

func init() {
	// Add flags
	assignmentAddCmd.Flags().StringVarP(&assignFlagCourse, "course", "c", "", "Course name")
	assignmentAddCmd.Flags().StringVarP(&assignFlagDue, "due", "d", "", "Due date (e.g. 2026-01-15, 'next friday', +3d)")
	assignmentAddCmd.Flags().StringVarP(&assignFlagPriority, "priority", "p", string(model.PriorityMedium), "Priority: Low, Medium, High")
	assignmentAddCmd.Flags().IntVar(&assignFlagProgress, "progress", 0, "Progress percentage (0-100)")
	assignmentAddCmd.Flags().StringVarP(&assignFlagNotes, "notes", "n", "", "Notes")
	assignmentAddCmd.MarkFlagRequired("due")
	assignmentAddCmd.RegisterFlagCompletionFunc("course", completeCourseNames)
	assignmentAddCmd.RegisterFlagCompletionFunc("priority", completePriorities)

	// Edit flags
	assignmentEditCmd.Flags().StringVarP(&assignEditFlagTitle, "title", "t", "", "New title")
	assignmentEditCmd.Flags().StringVarP(&assignEditFlagCourse, "course", "c", "", "New course")
	assignmentEditCmd.Flags().StringVarP(&assignEditFlagDue, "due", "d", "", "New due date")
	assignmentEditCmd.Flags().StringVarP(&assignEditFlagPriority, "priority", "p", "", "New priority")
	assignmentEditCmd.Flags().IntVar(&assignEditFlagProgress, "progress", 0, "New progress percentage")
	assignmentEditCmd.Flags().StringVarP(&assignEditFlagNotes, "notes", "n", "", "New notes")
	assignmentEditCmd.RegisterFlagCompletionFunc("course", completeCourseNames)
	assignmentEditCmd.RegisterFlagCompletionFunc("priority", completePriorities)

	assignmentCmd.AddCommand(assignmentAddCmd)
	assignmentCmd.AddCommand(assignmentListCmd)
	assignmentCmd.AddCommand(assignmentShowCmd)
	assignmentCmd.AddCommand(assignmentEditCmd)
	assignmentCmd.AddCommand(assignmentDeleteCmd)
	rootCmd.AddCommand(assignmentCmd)
}

func runAssignmentList(cmd *cobra.Command, args []string) error {
	items := ctx.AssignmentRepo.SortedByDue()
	now := ctx.Now()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.AssignmentsResponse{
			Assignments: output.NewAssignmentOutputs(items, now),
			TotalCount:  len(items),
		})
	}

	ctx.CLIFormatter().PrintAssignments(items, now)
	return nil
}

func runAssignmentAdd(cmd *cobra.Command, args []string) error {
	due, err := parseDue(assignFlagDue)
	if err != nil {
		return err
	}
	priority, err := model.ParsePriority(assignFlagPriority)
	if err != nil {
		return err
	}

	a, err := ctx.AssignmentRepo.Create(model.Assignment{
		Title:    strings.Join(args, " "),
		Course:   assignFlagCourse,
		DueDate:  due,
		Priority: priority,
		Progress: assignFlagProgress,
		Notes:    assignFlagNotes,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewAssignmentOutput(a, ctx.Now()))
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Added assignment #%d", a.ID))
	cli.PrintAssignment(a, ctx.Now())
	warnUnknownCourse(cli, a.Course)
	return nil
}

// warnUnknownCourse notes a course name that matches no course. The
// assignment keeps the name either way.
func warnUnknownCourse(cli *output.CLIFormatter, name string) {
	if name == "" {
		return
	}
	if _, ok := ctx.CourseRepo.FindByName(name); !ok {
		cli.Muted(fmt.Sprintf("No course named %q yet. Add it with 'studinest course add'.", name))
	}
}

func runAssignmentShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	a, err := ctx.AssignmentRepo.Get(id)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewAssignmentOutput(a, ctx.Now()))
	}

	ctx.CLIFormatter().PrintAssignment(a, ctx.Now())
	return nil
}

func runAssignmentEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var patch model.AssignmentPatch
	flags := cmd.Flags()
	if flags.Changed("title") {
		patch.Title = &assignEditFlagTitle
	}
	if flags.Changed("course") {
		patch.Course = &assignEditFlagCourse
	}
	if flags.Changed("due") {
		due, err := parseDue(assignEditFlagDue)
		if err != nil {
			return err
		}
		patch.DueDate = &due
	}
	if flags.Changed("priority") {
		priority, err := model.ParsePriority(assignEditFlagPriority)
		if err != nil {
			return err
		}
		patch.Priority = &priority
	}
	if flags.Changed("progress") {
		patch.Progress = &assignEditFlagProgress
	}
	if flags.Changed("notes") {
		patch.Notes = &assignEditFlagNotes
	}

	a, err := ctx.AssignmentRepo.Update(id, patch)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewAssignmentOutput(a, ctx.Now()))
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Updated assignment #%d", a.ID))
	cli.PrintAssignment(a, ctx.Now())
	return nil
}

func runAssignmentDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := ctx.AssignmentRepo.Delete(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSuccess("assignment deleted", id)
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Deleted assignment #%d", id))
	return nil
}

// parseDue parses a due date flag into a stored date.
func parseDue(input string) (model.Date, error) {
	t, err := parser.ParseDueDate(input, ctx.Now())
	if err != nil {
		var pe *parser.InputParseError
		if errors.As(err, &pe) {
			return model.Date{}, pe.ToUserError()
		}
		return model.Date{}, err
	}
	return model.NewDate(t), nil
}

// parseID parses a numeric record id.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil {
		return 0, errors.NewUserErrorWithField("id", s,
			"Invalid id",
			"Ids are numbers; list the records to see them")
	}
	return id, nil
}
