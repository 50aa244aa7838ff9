package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/misterclayt0n/keima/internal/models"
	"github.com/misterclayt0n/keima/internal/router"
	"github.com/misterclayt0n/keima/internal/utils"
	"github.com/misterclayt0n/keima/internal/workout"
	"github.com/spf13/cobra"
)

const (
	tableIndent     = "   "
	setColWidth     = 6
	targetColWidth  = 14
	currentColWidth = 22
)

func tableBorder(left, mid, right string) string {
	return tableIndent + left +
		strings.Repeat("─", setColWidth) + mid +
		strings.Repeat("─", targetColWidth) + mid +
		strings.Repeat("─", currentColWidth) + right
}

// printExerciseTable prints one template exercise with a row per planned set
// and any extra sets logged beyond the plan.
func printExerciseTable(w io.Writer, idx int, ex models.TemplateExercise, sets []models.WorkoutSet, current bool) {
	marker := ""
	if current {
		marker = yellow("(atual)")
	}
	fmt.Fprintf(w, "%d - %s %s\n", idx+1, boldCyan(ex.Name), marker)
	fmt.Fprintf(w, "   %s %s\n", blue("Descanso:"), ex.Rest)

	fmt.Fprintln(w, tableBorder("┌", "┬", "┐"))
	fmt.Fprintf(w, tableIndent+"│%-*s│%-*s│%-*s│\n",
		setColWidth, "Set",
		targetColWidth, "Target",
		currentColWidth, "Current",
	)
	fmt.Fprintln(w, tableBorder("├", "┼", "┤"))

	rows := ex.Sets
	if len(sets) > rows {
		rows = len(sets)
	}
	for i := 0; i < rows; i++ {
		target := ""
		if i < ex.Sets {
			target = ex.Reps + " reps"
		}
		setStr := "Not completed"
		if i < len(sets) {
			s := sets[i]
			setStr = fmt.Sprintf("%.1fkg × %d", s.Weight, s.Reps)
			if s.RPE > 0 {
				setStr += fmt.Sprintf(" @%d", s.RPE)
			}
		}
		fmt.Fprintf(w, tableIndent+"│%-*d│%-*s│%-*s│\n",
			setColWidth, i+1,
			targetColWidth, target,
			currentColWidth, setStr,
		)
	}
	fmt.Fprintln(w, tableBorder("└", "┴", "┘"))
	fmt.Fprintln(w)
}

var showSessionCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the workout in progress",
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

		state, err := t.Active()
		if errors.Is(err, workout.ErrNoActiveWorkout) {
			return fmt.Errorf("No active workout")
		}
		if err != nil {
			return fmt.Errorf("Failed to load workout: %w", err)
		}

		out := cmd.OutOrStdout()
		duration := time.Since(state.StartTime).Round(time.Second)
		fmt.Fprintf(out, "%s\n", boldGreen(state.Template.Name))
		fmt.Fprintf(out, "%s %s\n", boldCyan("Description:"), state.Template.Description)
		fmt.Fprintf(out, "%s %s\n", blue("Started:"), utils.FormatSaoPaulo(state.StartTime))
		fmt.Fprintf(out, "%s %s\n\n", red("Duration:"), duration)

		bySet := make(map[int][]models.WorkoutSet)
		for _, s := range state.Sets {
			bySet[s.Exercise] = append(bySet[s.Exercise], s)
		}
		for i, ex := range state.Template.Exercises {
			printExerciseTable(out, i, ex, bySet[i], i == state.CurrentExercise)
		}
		return nil
	},
}

func init() {
	workoutCmd.AddCommand(showSessionCmd)
}
