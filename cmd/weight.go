package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/keima/internal/models"
	"github.com/misterclayt0n/keima/internal/router"
	"github.com/misterclayt0n/keima/internal/utils"
	"github.com/misterclayt0n/keima/internal/weight"
	"github.com/spf13/cobra"
)

var (
	weightDate    string
	weightHistory int
)

func (a *app) weights() *weight.Tracker {
	return weight.NewTracker(a.client, a.session)
}

func renderWeight(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	history, err := a.weights().History(cmd.Context())
	if err != nil {
		return apiError(err, "Erro ao carregar histórico")
	}

	printBoxedHeader(out, "PESO")
	if len(history) == 0 {
		fmt.Fprintln(out, magenta("  Nenhum registro ainda. Use `keima weight add <kg>`."))
		return nil
	}

	latest := history[0]
	printMetric(out, "Peso atual", fmt.Sprintf("%.1f kg", latest.Weight))
	printMetric(out, "Registrado em", utils.FormatDate(latest.Date))
	if d := weight.Difference(history); d != nil {
		switch d.Kind {
		case weight.Gain:
			printMetric(out, "Diferença", red(fmt.Sprintf("+%.1f kg", d.Value)))
		case weight.Loss:
			printMetric(out, "Diferença", boldGreen(fmt.Sprintf("-%.1f kg", d.Value)))
		default:
			printMetric(out, "Diferença", "0.0 kg")
		}
	}
	fmt.Fprintln(out)

	n := len(history)
	if weightHistory > 0 && n > weightHistory {
		n = weightHistory
	}
	fmt.Fprintln(out, boldGreen("Histórico:"))
	fmt.Fprintf(out, "  %-12s | %-10s\n", "Data", "Peso (kg)")
	fmt.Fprintln(out, "  "+faint("─────────────────────────"))
	for _, rec := range history[:n] {
		fmt.Fprintf(out, "  %-12s | %-10.1f\n", utils.FormatDate(rec.Date), rec.Weight)
	}
	return nil
}

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Show the latest weight, the last change and recent history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPage(cmd, router.PageWeight)
	},
}

var weightAddCmd = &cobra.Command{
	Use:     "add [kg]",
	Short:   "Record a weight (defaults to today)",
	Long:    "Record a weight in kg, dated today unless --date is given.\nValues starting with '-' must follow '--', e.g. keima weight add -- -5.",
	Example: "  keima weight add 72,5\n  keima weight add 73 --date 2025-08-20",
	Args:    cobra.ExactArgs(1),
	RunE:    func(cmd *cobra.Command, args []string) error {
		a, err := openScreen(cmd, router.PageWeight)
		if err != nil {
			return err
		}

		rec, err := a.weights().Submit(cmd.Context(), args[0], weightDate)
		if errors.Is(err, weight.ErrInvalidWeight) || errors.Is(err, weight.ErrInvalidDate) {
			return err
		}
		if err != nil {
			return apiError(err, "Erro ao registrar peso")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Peso registrado com sucesso! %.1f kg em %s\n", rec.Weight, utils.FormatDate(rec.Date))
		return nil
	},
}

type weightDump struct {
	Records []models.WeightRecord `toml:"weight"`
}

var weightExportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export the weight history to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "weight_dump.toml"
		if len(args) == 1 {
			outputFile = args[0]
		}

		a, err := openScreen(cmd, router.PageWeight)
		if err != nil {
			return err
		}
		history, err := a.weights().History(cmd.Context())
		if err != nil {
			return apiError(err, "Erro ao carregar histórico")
		}

		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		if err := toml.NewEncoder(f).Encode(weightDump{Records: history}); err != nil {
			return fmt.Errorf("failed to encode weight history: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %d records to %s\n", len(history), outputFile)
		return nil
	},
}

func init() {
	weightCmd.Flags().IntVarP(&weightHistory, "limit", "l", 10, "Number of records to display")
	weightAddCmd.Flags().StringVarP(&weightDate, "date", "d", "", "Date of the measurement (YYYY-MM-DD)")

	weightCmd.AddCommand(weightAddCmd)
	weightCmd.AddCommand(weightExportCmd)
	rootCmd.AddCommand(weightCmd)
}
