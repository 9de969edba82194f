package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/studinest/internal/errors"
	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/storage"
)

var doctorFlagReset string

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check stored data for corruption",
	Long: `Report the state of every stored slice as it was found when this
command started: ok, missing, corrupt or unreadable. Corrupt slices load
as their defaults and are rewritten on startup, so they show up here once.

--reset removes one slice; it comes back as its default on the next run.

Examples:
  studinest doctor
  studinest doctor --reset assignments
  studinest doctor --format json`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().StringVar(&doctorFlagReset, "reset", "",
		"Remove a slice: "+strings.Join(model.Slices(), ", "))
	doctorCmd.RegisterFlagCompletionFunc("reset", completeSlices)
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	if doctorFlagReset != "" {
		return runDoctorReset(doctorFlagReset)
	}

	report := ctx.MountReport
	if report == nil {
		report = storage.CheckIntegrity(ctx.Store)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(report)
	}
	ctx.CLIFormatter().PrintHealth(report)
	return nil
}

func runDoctorReset(slice string) error {
	i := slices.IndexFunc(model.Slices(), func(s string) bool {
		return strings.EqualFold(s, strings.TrimSpace(slice))
	})
	if i < 0 {
		return errors.NewUserErrorWithField("slice", slice,
			"Unknown slice",
			"Use one of: "+strings.Join(model.Slices(), ", "))
	}
	slice = model.Slices()[i]
	if err := storage.Reset(ctx.Store, slice); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSuccess("reset "+slice, 0)
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Removed %s; it loads as the default next time", ctx.Store.Key(slice)))
	return nil
}
