package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/misterclayt0n/keima/internal/models"
	"github.com/misterclayt0n/keima/internal/router"
	"github.com/misterclayt0n/keima/internal/storage"
	"github.com/misterclayt0n/keima/internal/utils"
	"github.com/spf13/cobra"
)

var (
	filterTemplate string
	filterDay      string
	historyLimit   int
)

// historyCmd shows the archived workouts grouped by template and day.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display archived workouts, optionally filtered by template and/or day",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openScreen(cmd, router.PageWorkout)
		if err != nil {
			return err
		}
		journal, err := a.openJournal(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to open workout journal: %w", err)
		}
		if journal == nil {
			return storage.ErrNotConfigured
		}
		defer journal.Close()

		workouts, err := journal.ListWorkouts(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}

		// Case insensitive filtering by template id or name.
		if filterTemplate != "" {
			var filtered []models.WorkoutLog
			for _, w := range workouts {
				if strings.EqualFold(w.TemplateID, filterTemplate) || strings.EqualFold(w.TemplateName, filterTemplate) {
					filtered = append(filtered, w)
				}
			}
			workouts = filtered
		}

		if filterDay != "" {
			parsedDay, err := time.Parse(models.DateLayout, filterDay)
			if err != nil {
				parsedDay, err = time.Parse("02/01/06", filterDay)
			}
			if err != nil {
				return fmt.Errorf("failed to parse day: %w", err)
			}

			var filtered []models.WorkoutLog
			for _, w := range workouts {
				if w.StartTime.Format(models.DateLayout) == parsedDay.Format(models.DateLayout) {
					filtered = append(filtered, w)
				}
			}
			workouts = filtered
		}

		out := cmd.OutOrStdout()
		if len(workouts) == 0 {
			fmt.Fprintln(out, magenta("No workouts found."))
			return nil
		}

		grouped := make(map[string]map[string][]models.WorkoutLog)
		for _, w := range workouts {
			if _, ok := grouped[w.TemplateName]; !ok {
				grouped[w.TemplateName] = make(map[string][]models.WorkoutLog)
			}
			day := w.StartTime.In(utils.SPLoc).Format(models.DateLayout)
			grouped[w.TemplateName][day] = append(grouped[w.TemplateName][day], w)
		}

		var names []string
		for n := range grouped {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "%s %s\n", boldGreen("Template:"), name)
			var days []string
			for d := range grouped[name] {
				days = append(days, d)
			}
			sort.Strings(days)
			for _, d := range days {
				fmt.Fprintf(out, "  Date: %s\n", d)
				list := grouped[name][d]
				sort.Slice(list, func(i, j int) bool {
					return list[i].StartTime.Before(list[j].StartTime)
				})
				for _, w := range list {
					fmt.Fprintf(out, "    Workout %s | Start: %s | Duration: %s | Sets: %d | Volume: %.1f kg\n",
						w.ID,
						w.StartTime.In(utils.SPLoc).Format("15:04"),
						w.EndTime.Sub(w.StartTime).Round(time.Second),
						len(w.Sets),
						w.Volume(),
					)
				}
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVarP(&filterTemplate, "template", "t", "", "Filter by template id or name (case insensitive)")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 50, "Maximum number of workouts to load")
	workoutCmd.AddCommand(historyCmd)
}
