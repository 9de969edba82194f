package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/output"
)

// themeCmd represents the theme command.
var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle]",
	Short: "Show or change the color theme",
	Long: `Show the stored theme, set it, or flip it. The dashboard and the
colored CLI output both follow it.

Examples:
  studinest theme
  studinest theme dark
  studinest theme toggle`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE:      runTheme,
}

// pageCmd represents the page command.
var pageCmd = &cobra.Command{
	Use:   "page [PAGE]",
	Short: "Show or change the page the dashboard opens on",
	Long: `Show or set the stored dashboard page.

Pages: dashboard, assignments, courses, schedule, reminders.

Examples:
  studinest page
  studinest page schedule`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completePages,
	RunE:              runPage,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(pageCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if args[0] == "toggle" {
			ctx.ThemeRepo.Toggle()
		} else {
			theme, err := model.ParseTheme(args[0])
			if err != nil {
				return err
			}
			ctx.ThemeRepo.Set(theme)
		}
	}
	return printPreferences("Theme: " + string(ctx.ThemeRepo.Get()))
}

func runPage(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		page, err := model.ParsePage(args[0])
		if err != nil {
			return err
		}
		ctx.PageRepo.Set(page)
	}
	return printPreferences("Page: " + string(ctx.PageRepo.Get()))
}

func printPreferences(line string) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.PreferencesResponse{
			Theme: ctx.ThemeRepo.Get(),
			Page:  ctx.PageRepo.Get(),
		})
	}
	ctx.CLIFormatter().Println(line)
	return nil
}
