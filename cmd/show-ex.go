package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/misterclayt0n/keima/internal/api"
	"github.com/misterclayt0n/keima/internal/catalog"
	"github.com/misterclayt0n/keima/internal/router"
	"github.com/spf13/cobra"
)

var showExCmd = &cobra.Command{
	Use:   "show [exercise-id]",
	Short: "Display detailed information about a catalog exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openScreen(cmd, router.PageCatalog)
		if err != nil {
			return err
		}

		ex, err := a.catalog().Detail(cmd.Context(), args[0])
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("Exercício não encontrado: %s", args[0])
		}
		if err != nil {
			return apiError(err, "Erro ao carregar exercício")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, boldGreen("Exercise Information:"))
		fmt.Fprintf(out, "  %s: %s\n", boldCyan("Name"), ex.Name)
		fmt.Fprintf(out, "  %s: %s\n", boldCyan("Nível"), catalog.TranslateLevel(ex.Level))
		fmt.Fprintf(out, "  %s: %s\n", boldCyan("Equipamento"), catalog.TranslateEquipment(ex.Equipment))
		if ex.Category != "" {
			fmt.Fprintf(out, "  %s: %s\n", boldCyan("Categoria"), ex.Category)
		}
		fmt.Fprintf(out, "  %s: %s\n", boldCyan("Músculos principais"), strings.Join(catalog.TranslateMuscles(ex.PrimaryMuscles), ", "))
		if len(ex.SecondaryMuscles) > 0 {
			fmt.Fprintf(out, "  %s: %s\n", boldCyan("Músculos secundários"), strings.Join(catalog.TranslateMuscles(ex.SecondaryMuscles), ", "))
		}

		if len(ex.Instructions) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, boldGreen("Instruções:"))
			for i, step := range ex.Instructions {
				fmt.Fprintf(out, "  %s %s\n", yellow(fmt.Sprintf("%d.", i+1)), step)
			}
		}
		if len(ex.Images) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, boldGreen("Imagens:"))
			for _, img := range ex.Images {
				fmt.Fprintf(out, "  %s\n", blue(img))
			}
		}
		return nil
	},
}

func init() {
	exercisesCmd.AddCommand(showExCmd)
}
