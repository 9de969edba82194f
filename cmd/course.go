package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/output"
)

// courseCmd represents the course command.
var courseCmd = &cobra.Command{
	Use:     "course",
	Aliases: []string{"courses", "co", "c"},
	Short:   "Manage courses",
	Long: `List courses with their total credits, or add, edit and delete them.

Examples:
  studinest course
  studinest course add "Kalkulus I" --code KL101 --lecturer "Dr. Iwan Setiawan" --credits 4
  studinest course edit 2 --room "Lab Kimia Terpadu"
  studinest course delete 3`,
	RunE: runCourseList,
}

// Course subcommand flags.
var (
	courseFlagCode     string
	courseFlagLecturer string
	courseFlagRoom     string
	courseFlagCredits  int
	courseFlagNotes    string

	courseEditFlagName     string
	courseEditFlagCode     string
	courseEditFlagLecturer string
	courseEditFlagRoom     string
	courseEditFlagCredits  int
	courseEditFlagNotes    string
)

var courseAddCmd = &cobra.Command{
	Use:     "add NAME",
	Aliases: []string{"create", "new"},
	Short:   "Add a course",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runCourseAdd,
}

var courseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List courses",
	RunE:    runCourseList,
}

var courseEditCmd = &cobra.Command{
	Use:               "edit ID",
	Short:             "Edit a course",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeCourses,
	RunE:              runCourseEdit,
}

var courseDeleteCmd = &cobra.Command{
	Use:               "delete ID",
	Aliases:           []string{"rm", "del"},
	Short:             "Delete a course",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeCourses,
	RunE:              runCourseDelete,
}

func init() {
	// Add flags
	courseAddCmd.Flags().StringVar(&courseFlagCode, "code", "", "Course code")
	courseAddCmd.Flags().StringVarP(&courseFlagLecturer, "lecturer", "l", "", "Lecturer")
	courseAddCmd.Flags().StringVarP(&courseFlagRoom, "room", "r", "", "Room")
	courseAddCmd.Flags().IntVar(&courseFlagCredits, "credits", model.DefaultCredits, "Credits")
	courseAddCmd.Flags().StringVarP(&courseFlagNotes, "notes", "n", "", "Notes")

	// Edit flags
	courseEditCmd.Flags().StringVar(&courseEditFlagName, "name", "", "New name")
	courseEditCmd.Flags().StringVar(&courseEditFlagCode, "code", "", "New code")
	courseEditCmd.Flags().StringVarP(&courseEditFlagLecturer, "lecturer", "l", "", "New lecturer")
	courseEditCmd.Flags().StringVarP(&courseEditFlagRoom, "room", "r", "", "New room")
	courseEditCmd.Flags().IntVar(&courseEditFlagCredits, "credits", 0, "New credits")
	courseEditCmd.Flags().StringVarP(&courseEditFlagNotes, "notes", "n", "", "New notes")

	courseCmd.AddCommand(courseAddCmd)
	courseCmd.AddCommand(courseListCmd)
	courseCmd.AddCommand(courseEditCmd)
	courseCmd.AddCommand(courseDeleteCmd)
	rootCmd.AddCommand(courseCmd)
}

func runCourseList(cmd *cobra.Command, args []string) error {
	courses := ctx.CourseRepo.List()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewCoursesResponse(courses))
	}

	ctx.CLIFormatter().PrintCourses(courses)
	return nil
}

func runCourseAdd(cmd *cobra.Command, args []string) error {
	c, err := ctx.CourseRepo.Create(model.Course{
		Name:     strings.Join(args, " "),
		Code:     courseFlagCode,
		Lecturer: courseFlagLecturer,
		Room:     courseFlagRoom,
		Credits:  courseFlagCredits,
		Notes:    courseFlagNotes,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(c)
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Added course #%d: %s", c.ID, c.Name))
	return nil
}

func runCourseEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var patch model.CoursePatch
	flags := cmd.Flags()
	if flags.Changed("name") {
		patch.Name = &courseEditFlagName
	}
	if flags.Changed("code") {
		patch.Code = &courseEditFlagCode
	}
	if flags.Changed("lecturer") {
		patch.Lecturer = &courseEditFlagLecturer
	}
	if flags.Changed("room") {
		patch.Room = &courseEditFlagRoom
	}
	if flags.Changed("credits") {
		patch.Credits = &courseEditFlagCredits
	}
	if flags.Changed("notes") {
		patch.Notes = &courseEditFlagNotes
	}

	c, err := ctx.CourseRepo.Update(id, patch)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(c)
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Updated course #%d: %s", c.ID, c.Name))
	return nil
}

func runCourseDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := ctx.CourseRepo.Delete(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSuccess("course deleted", id)
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Deleted course #%d", id))
	return nil
}
