package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/misterclayt0n/keima/internal/models"
	"github.com/misterclayt0n/keima/internal/router"
	"github.com/misterclayt0n/keima/internal/workout"
	"github.com/spf13/cobra"
)

func printWorkoutLog(w io.Writer, wl *models.WorkoutLog, tmpl models.WorkoutTemplate) {
	fmt.Fprintf(w, "%s %s\n", boldGreen("Treino concluído:"), wl.TemplateName)
	fmt.Fprintf(w, "   %s: %s\n", red("Duration"), wl.EndTime.Sub(wl.StartTime).Round(time.Second))
	fmt.Fprintf(w, "   %s: %.1f kg\n", yellow("Volume"), wl.Volume())
	for _, sum := range workout.Summarize(tmpl, wl.Sets) {
		if sum.Sets == 0 {
			continue
		}
		line := fmt.Sprintf("   • %s: %d sets, %.1f kg", boldCyan(sum.Name), sum.Sets, sum.Volume)
		if sum.BestSet != nil {
			line += fmt.Sprintf(" (best %.1fkg × %d, 1RM %.1fkg)", sum.BestSet.Weight, sum.BestSet.Reps, sum.Best1RM)
		}
		fmt.Fprintln(w, line)
	}
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Move to the next exercise, finishing the workout after the last one",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openScreen(cmd, router.PageWorkout)
		if err != nil {
			return err
		}
		t, _, done, err := a.openWorkouts(cmd.Context())
		if err != nil {
			return err
		}
		defer done()

		before, err := t.Active()
		if errors.Is(err, workout.ErrNoActiveWorkout) {
			return fmt.Errorf("No active workout")
		}
		if err != nil {
			return err
		}

		state, wl, err := t.Next(cmd.Context())
		if err != nil {
			return fmt.Errorf("Failed to advance workout: %w", err)
		}

		out := cmd.OutOrStdout()
		if wl != nil {
			printWorkoutLog(out, wl, before.Template)
			return nil
		}
		ex := state.Template.Exercises[state.CurrentExercise]
		fmt.Fprintf(out, "➡️  %d - %s: %d × %s %s\n",
			state.CurrentExercise+1, boldCyan(ex.Name), ex.Sets, ex.Reps, faint("descanso "+ex.Rest))
		return nil
	},
}

var endSessionCmd = &cobra.Command{
	Use:   "end",
	Short: "End the workout in progress and save it",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openScreen(cmd, router.PageWorkout)
		if err != nil {
			return err
		}
		t, journal, done, err := a.openWorkouts(cmd.Context())
		if err != nil {
			return err
		}
		defer done()

		state, err := t.Active()
		if errors.Is(err, workout.ErrNoActiveWorkout) {
			return fmt.Errorf("No active workout")
		}
		if err != nil {
			return err
		}

		wl, err := t.Finish(cmd.Context())
		if err != nil {
			return fmt.Errorf("Failed to save workout: %w", err)
		}

		out := cmd.OutOrStdout()
		printWorkoutLog(out, wl, state.Template)
		if journal == nil {
			fmt.Fprintln(out, faint("No database configured, the workout was not archived."))
		} else {
			fmt.Fprintln(out, "✅ Workout saved successfully")
		}
		return nil
	},
}

func init() {
	workoutCmd.AddCommand(nextCmd)
	workoutCmd.AddCommand(endSessionCmd)
}
