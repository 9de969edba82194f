package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/studinest/internal/config"
	"github.com/manav03panchal/studinest/internal/model"
	"github.com/manav03panchal/studinest/internal/runtime"
	"github.com/manav03panchal/studinest/internal/temporal"
)

// completionContext returns the shared context, opening one when shell
// completion runs without the root pre-run hook. The returned func
// releases anything opened here.
func completionContext() (*runtime.Context, func()) {
	if ctx != nil {
		return ctx, func() {}
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, func() {}
	}
	opts := runtime.DefaultOptions()
	opts.Config = cfg
	c, err := runtime.New(opts)
	if err != nil {
		return nil, func() {}
	}
	return c, func() { c.Close() }
}

// filterPrefix keeps the candidates whose value starts with toComplete.
// A candidate may carry a tab-separated description.
func filterPrefix(candidates []string, toComplete string) []string {
	var out []string
	for _, c := range candidates {
		value, _, _ := strings.Cut(c, "\t")
		if strings.HasPrefix(strings.ToLower(value), strings.ToLower(toComplete)) {
			out = append(out, c)
		}
	}
	return out
}

// completeAssignments completes assignment ids with their titles.
func completeAssignments(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	c, release := completionContext()
	defer release()
	if c == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var candidates []string
	for _, a := range c.AssignmentRepo.SortedByDue() {
		candidates = append(candidates, fmt.Sprintf("%d\t%s", a.ID, a.Title))
	}
	return filterPrefix(candidates, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeCourses completes course ids with their names.
func completeCourses(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	c, release := completionContext()
	defer release()
	if c == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var candidates []string
	for _, course := range c.CourseRepo.List() {
		candidates = append(candidates, fmt.Sprintf("%d\t%s", course.ID, course.Name))
	}
	return filterPrefix(candidates, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeCourseNames completes the --course flag with course names.
func completeCourseNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	c, release := completionContext()
	defer release()
	if c == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var candidates []string
	for _, course := range c.CourseRepo.List() {
		candidates = append(candidates, course.Name)
	}
	return filterPrefix(candidates, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeTasks completes daily reminder ids with their text.
func completeTasks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	c, release := completionContext()
	defer release()
	if c == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var candidates []string
	for _, t := range c.DailyTaskRepo.List() {
		candidates = append(candidates, fmt.Sprintf("%d\t%s", t.ID, t.Text))
	}
	return filterPrefix(candidates, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completePriorities(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var candidates []string
	for _, p := range model.Priorities() {
		candidates = append(candidates, string(p))
	}
	return filterPrefix(candidates, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeWeekdays(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	candidates := []string{"today", "tomorrow"}
	candidates = append(candidates, temporal.WeekOrder(time.Monday)...)
	return filterPrefix(candidates, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completePages(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var candidates []string
	for _, p := range model.Pages() {
		candidates = append(candidates, string(p))
	}
	return filterPrefix(candidates, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeSlices(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(model.Slices(), toComplete), cobra.ShellCompDirectiveNoFileComp
}
