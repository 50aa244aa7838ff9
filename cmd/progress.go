package cmd

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/keima/internal/progress"
	"github.com/misterclayt0n/keima/internal/router"
	"github.com/misterclayt0n/keima/internal/utils"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var progressPoints int

func renderProgress(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	history, err := a.weights().History(cmd.Context())
	if err != nil {
		return apiError(err, "Erro ao carregar histórico")
	}

	var (
		count  int
		starts []time.Time
		volume float64
	)
	journal, err := a.openJournal(cmd.Context())
	if err != nil {
		log.Warn().Err(err).Msg("Workout journal unavailable")
	}
	if journal != nil {
		defer journal.Close()
		workouts, err := journal.ListWorkouts(cmd.Context(), 0)
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}
		count = len(workouts)
		for _, w := range workouts {
			starts = append(starts, w.StartTime)
			volume += w.Volume()
		}
	}

	sum := progress.Summarize(history, count, progressPoints)

	printBoxedHeader(out, "PROGRESSO")
	if sum.Entries > 0 {
		printMetric(out, "Peso atual", fmt.Sprintf("%.1f kg", sum.Current))
		change := fmt.Sprintf("%+.1f kg", sum.Change)
		if sum.Change < 0 {
			change = boldGreen(change)
		}
		printMetric(out, "Variação total", change)
	}
	printMetric(out, "Registros de peso", sum.Entries)
	if journal != nil {
		printMetric(out, "Treinos", sum.Workouts)
		printMetric(out, "Volume total", fmt.Sprintf("%.1f kg", volume))
		printMetric(out, "Sequência", fmt.Sprintf("%d semanas", progress.WeekStreak(starts, time.Now())))
	}
	fmt.Fprintln(out)

	if len(sum.Points) == 0 {
		fmt.Fprintln(out, magenta("  Registre seu peso para ver o gráfico."))
		return nil
	}
	fmt.Fprintln(out, boldGreen("Evolução do peso:"))
	for i, bar := range progress.Bars(sum.Points, 30) {
		p := sum.Points[i]
		fmt.Fprintf(out, "  %s %s %.1f\n", faint(utils.FormatDate(p.Date)), boldCyan(bar), p.Weight)
	}
	return nil
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show weight evolution and workout totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPage(cmd, router.PageProgress)
	},
}

func init() {
	progressCmd.Flags().IntVarP(&progressPoints, "points", "n", 14, "Number of weight records to chart")
	rootCmd.AddCommand(progressCmd)
}
