package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/misterclayt0n/keima/internal/catalog"
	"github.com/misterclayt0n/keima/internal/models"
	"github.com/misterclayt0n/keima/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	catalogSearch    string
	catalogLevel     string
	catalogEquipment string
	catalogPages     int
)

func (a *app) catalog() *catalog.Browser {
	return catalog.NewBrowser(a.client, catalog.DefaultPageSize)
}

func printExerciseRow(w io.Writer, i int, ex models.Exercise) {
	muscles := strings.Join(catalog.TranslateMuscles(ex.PrimaryMuscles), ", ")
	fmt.Fprintf(w, "%3d. %s %s\n", i, boldCyan(ex.Name), faint("("+ex.ID+")"))
	fmt.Fprintf(w, "     %s · %s · %s\n",
		yellow(catalog.TranslateLevel(ex.Level)),
		blue(catalog.TranslateEquipment(ex.Equipment)),
		magenta(muscles))
}

// renderCatalog loads as many pages as requested for the current filter.
func renderCatalog(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	b := a.catalog()
	b.SetFilter(catalog.Filter{
		Search:    catalogSearch,
		Level:     catalogLevel,
		Equipment: catalogEquipment,
	})

	if _, err := b.Load(cmd.Context()); err != nil {
		return apiError(err, "Erro ao carregar exercícios")
	}
	for i := 1; i < catalogPages; i++ {
		if _, err := b.LoadMore(cmd.Context()); err != nil {
			if errors.Is(err, catalog.ErrNoMorePages) {
				break
			}
			return apiError(err, "Erro ao carregar exercícios")
		}
	}

	printBoxedHeader(out, "EXERCÍCIOS")
	if stats, err := b.Stats(cmd.Context()); err != nil {
		log.Warn().Err(err).Msg("Catalog stats unavailable")
	} else {
		fmt.Fprintln(out, faint(fmt.Sprintf("%d exercícios disponíveis", stats.Total)))
		fmt.Fprintln(out)
	}
	exercises := b.Exercises()
	if len(exercises) == 0 {
		fmt.Fprintln(out, magenta("  Nenhum exercício encontrado."))
		return nil
	}
	for i, ex := range exercises {
		printExerciseRow(out, i+1, ex)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %d de %d\n", faint("Mostrando"), len(exercises), b.Total())
	if b.HasMore() {
		fmt.Fprintln(out, faint(fmt.Sprintf("Carregar mais: keima exercises list --pages %d", catalogPages+1)))
	}
	return nil
}

var exercisesCmd = &cobra.Command{
	Use:     "exercises",
	Aliases: []string{"catalog"},
	Short:   "Browse the exercise catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPage(cmd, router.PageCatalog)
	},
}

var exercisesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog exercises, optionally filtered by name, level or equipment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPage(cmd, router.PageCatalog)
	},
}

var exercisesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many exercises the catalog has per level and equipment",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openScreen(cmd, router.PageCatalog)
		if err != nil {
			return err
		}
		stats, err := a.catalog().Stats(cmd.Context())
		if err != nil {
			return apiError(err, "Erro ao carregar estatísticas")
		}

		out := cmd.OutOrStdout()
		printBoxedHeader(out, "CATÁLOGO")
		printMetric(out, "Total", stats.Total)
		fmt.Fprintln(out)
		printCounts(out, "Por nível:", stats.ByLevel, catalog.TranslateLevel)
		if len(stats.ByEquipment) > 0 {
			printCounts(out, "Por equipamento:", stats.ByEquipment, catalog.TranslateEquipment)
		}
		return nil
	},
}

func printCounts(w io.Writer, title string, counts map[string]int, label func(string) string) {
	fmt.Fprintln(w, boldGreen(title))
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  • %s: %d\n", magenta(label(k)), counts[k])
	}
	fmt.Fprintln(w)
}

func init() {
	for _, c := range []*cobra.Command{exercisesCmd, exercisesListCmd} {
		c.Flags().StringVarP(&catalogSearch, "search", "s", "", "Search by exercise name")
		c.Flags().StringVarP(&catalogLevel, "level", "l", "", "Filter by level ("+strings.Join(catalog.Levels, ", ")+")")
		c.Flags().StringVarP(&catalogEquipment, "equipment", "e", "", "Filter by equipment")
		c.Flags().IntVarP(&catalogPages, "pages", "p", 1, "Number of pages to load")
	}

	exercisesCmd.AddCommand(exercisesListCmd)
	exercisesCmd.AddCommand(exercisesStatsCmd)
	rootCmd.AddCommand(exercisesCmd)
}
