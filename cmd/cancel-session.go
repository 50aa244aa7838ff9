package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/keima/internal/router"
	"github.com/misterclayt0n/keima/internal/workout"
	"github.com/spf13/cobra"
)

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the workout in progress without saving any data",
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

		if err := t.Cancel(); err != nil {
			if errors.Is(err, workout.ErrNoActiveWorkout) {
				return fmt.Errorf("No active workout to cancel")
			}
			return fmt.Errorf("Failed to cancel workout: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Workout cancelled successfully")
		return nil
	},
}

func init() {
	workoutCmd.AddCommand(cancelSessionCmd)
}
