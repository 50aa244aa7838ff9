package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/keima/internal/router"
	"github.com/misterclayt0n/keima/internal/workout"
	"github.com/spf13/cobra"
)

var (
	newSetWeight string
	newSetReps   string
	newSetRPE    string
)

var addSetCmd = &cobra.Command{
	Use:   "add-set",
	Short: "Log a set for the current exercise of the workout in progress",
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

		weight, reps, rpe := workout.ParseSet(newSetWeight, newSetReps, newSetRPE)
		state, set, err := t.AddSet(weight, reps, rpe)
		if errors.Is(err, workout.ErrNoActiveWorkout) {
			return fmt.Errorf("No active workout")
		}
		if err != nil {
			return fmt.Errorf("Failed to save workout state: %w", err)
		}

		ex := state.Template.Exercises[state.CurrentExercise]
		logged := len(state.CurrentSets())
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Set %d/%d of '%s': %.1fkg × %d @%d\n",
			logged, ex.Sets, ex.Name, set.Weight, set.Reps, set.RPE)
		if logged >= ex.Sets {
			fmt.Fprintln(cmd.OutOrStdout(), faint("All sets done. Move on with `keima workout next`."))
		}
		return nil
	},
}

func init() {
	addSetCmd.Flags().StringVarP(&newSetWeight, "weight", "w", "", "Weight used for the set (kg)")
	addSetCmd.Flags().StringVarP(&newSetReps, "reps", "r", "", "Number of reps performed")
	addSetCmd.Flags().StringVarP(&newSetRPE, "rpe", "p", "", "Rate of perceived exertion")
	addSetCmd.MarkFlagRequired("reps")
	workoutCmd.AddCommand(addSetCmd)
}
