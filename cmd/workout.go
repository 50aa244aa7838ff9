package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/misterclayt0n/keima/internal/models"
	"github.com/misterclayt0n/keima/internal/router"
	"github.com/misterclayt0n/keima/internal/storage"
	"github.com/misterclayt0n/keima/internal/workout"
	"github.com/spf13/cobra"
)

// openWorkouts returns the workout tracker wired to the journal when one is
// configured. The returned func closes the journal.
func (a *app) openWorkouts(ctx context.Context) (*workout.Tracker, *storage.Storage, func(), error) {
	journal, err := a.openJournal(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open workout journal: %w", err)
	}
	done := func() {
		if journal != nil {
			journal.Close()
		}
	}

	t, err := a.workouts(journal)
	if err != nil {
		done()
		return nil, nil, nil, fmt.Errorf("failed to load workout templates: %w", err)
	}
	return t, journal, done, nil
}

func printTemplate(w io.Writer, tmpl models.WorkoutTemplate) {
	fmt.Fprintf(w, "%s %s\n", boldCyan(tmpl.Name), faint("("+tmpl.ID+")"))
	fmt.Fprintf(w, "   %s · %s · %d exercícios\n", tmpl.Description, yellow(tmpl.Duration), len(tmpl.Exercises))
}

func renderWorkout(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	t, _, done, err := a.openWorkouts(cmd.Context())
	if err != nil {
		return err
	}
	defer done()

	printBoxedHeader(out, "TREINO")
	if state, err := t.Active(); err == nil {
		elapsed := time.Since(state.StartTime).Round(time.Second)
		fmt.Fprintf(out, "%s %s (%s)\n", red("Em andamento:"), state.Template.Name, elapsed)
		fmt.Fprintln(out, faint("Veja o treino atual com `keima workout status`."))
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, boldGreen("Treinos disponíveis:"))
	for _, tmpl := range t.Templates() {
		printTemplate(out, tmpl)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, faint("Comece com `keima workout start <id>`."))
	return nil
}

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Workout templates and the workout in progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPage(cmd, router.PageWorkout)
	},
}

var workoutTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the workout templates with their exercises",
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

		out := cmd.OutOrStdout()
		for _, tmpl := range t.Templates() {
			printTemplate(out, tmpl)
			for i, ex := range tmpl.Exercises {
				fmt.Fprintf(out, "   %d - %s: %d × %s %s\n", i+1, ex.Name, ex.Sets, ex.Reps, faint("descanso "+ex.Rest))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	workoutCmd.AddCommand(workoutTemplatesCmd)
	rootCmd.AddCommand(workoutCmd)
}
