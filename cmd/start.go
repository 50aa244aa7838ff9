package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/keima/internal/router"
	"github.com/misterclayt0n/keima/internal/workout"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start [template-id]",
	Short: "Start a workout from a template (push, pull, legs)",
	Args:  cobra.ExactArgs(1),
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

		state, err := t.Start(args[0])
		if errors.Is(err, workout.ErrWorkoutInProgress) {
			return fmt.Errorf("A workout is already in progress. Finish it with `keima workout end` or drop it with `keima workout cancel`")
		}
		if err != nil {
			return fmt.Errorf("Failed to start workout: %w", err)
		}

		out := cmd.OutOrStdout()
		first := state.Template.Exercises[0]
		fmt.Fprintf(out, "✅ Started %s\n", state.Template.Name)
		fmt.Fprintf(out, "1 - %s: %d × %s\n", boldCyan(first.Name), first.Sets, first.Reps)
		return nil
	},
}

func init() {
	workoutCmd.AddCommand(startCmd)
}
