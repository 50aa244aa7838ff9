package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/keima/internal/models"
	"github.com/misterclayt0n/keima/internal/progress"
	"github.com/misterclayt0n/keima/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	homeLogout bool
	homeYes    bool
)

type homeAction struct {
	page     router.Page
	title    string
	subtitle string
}

var homeActions = []homeAction{
	{router.PageWorkout, "🏋️  Treino", "Comece um treino push, pull ou legs"},
	{router.PageCatalog, "💪 Catálogo de Exercícios", "Busque por nome, nível ou equipamento"},
	{router.PageWeight, "⚖️  Controle de Peso", "Acompanhe sua evolução"},
	{router.PageDiet, "🥗 Dieta", "Converse com a Keima sobre sua alimentação"},
	{router.PageProgress, "📊 Progresso", "Veja seu peso e seus treinos"},
}

func renderHome(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	printBanner(out)

	fmt.Fprintf(out, "%s\n", boldGreen(fmt.Sprintf("Olá, %s! 👋", a.session.User().FirstName())))
	fmt.Fprintln(out, "Pronto para mais um dia de evolução?")
	fmt.Fprintln(out)

	// Quick stats are best effort, the dashboard still renders without them.
	weightStat := "-"
	if latest, err := a.weights().Latest(cmd.Context()); err != nil {
		log.Warn().Err(err).Msg("Latest weight unavailable")
	} else if latest != nil {
		weightStat = fmt.Sprintf("%.1f kg", latest.Weight)
	}

	workoutStat, weekStat := "-", "-"
	journal, err := a.openJournal(cmd.Context())
	if err != nil {
		log.Warn().Err(err).Msg("Workout journal unavailable")
	}
	if journal != nil {
		defer journal.Close()
		if n, err := journal.CountWorkouts(cmd.Context()); err != nil {
			log.Warn().Err(err).Msg("Failed to count workouts")
		} else {
			workoutStat = fmt.Sprint(n)
		}
		if n, err := journal.CountWorkoutsSince(cmd.Context(), progress.WeekStart(time.Now())); err != nil {
			log.Warn().Err(err).Msg("Failed to count this week's workouts")
		} else {
			weekStat = fmt.Sprint(n)
		}
	}

	goalStat := "-"
	if g, ok := models.FindGoal(a.cfg.Profile.Goal); ok {
		goalStat = g.Name
	}

	printMetric(out, "Treinos", workoutStat)
	printMetric(out, "Semana", weekStat)
	printMetric(out, "Peso", weightStat)
	printMetric(out, "Meta", goalStat)
	fmt.Fprintln(out)

	fmt.Fprintln(out, boldGreen("Suas Atividades:"))
	for _, act := range homeActions {
		fmt.Fprintf(out, "  %s %s\n", boldCyan(act.title), faint("keima open "+string(act.page)))
		fmt.Fprintf(out, "     %s\n", act.subtitle)
	}
	return nil
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !homeLogout {
			return openPage(cmd, router.PageHome)
		}

		a, err := openScreen(cmd, router.PageHome)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !homeYes {
			fmt.Fprint(out, "Deseja realmente sair? [s/N] ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "s" && answer != "sim" && answer != "y" {
				return nil
			}
		}
		a.session.Logout(cmd.Context())
		fmt.Fprintln(out, "✅ Logged out")
		return nil
	},
}

func init() {
	homeCmd.Flags().BoolVar(&homeLogout, "logout", false, "Log out after confirming")
	homeCmd.Flags().BoolVarP(&homeYes, "yes", "y", false, "Skip the logout confirmation")
	rootCmd.AddCommand(homeCmd)
}
