package cmd

import (
	"fmt"

	"github.com/misterclayt0n/keima/internal/config"
	"github.com/misterclayt0n/keima/internal/models"
	"github.com/misterclayt0n/keima/internal/router"
	"github.com/spf13/cobra"
)

func renderOnboarding(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	printBanner(out)
	fmt.Fprintln(out, boldGreen("Qual é seu objetivo?"))
	for _, g := range models.Goals {
		mark := " "
		if g.ID == a.cfg.Profile.Goal {
			mark = boldGreen("✓")
		}
		fmt.Fprintf(out, "  %s %s %s\n", mark, boldCyan(g.Name), faint("keima onboarding "+g.ID))
	}
	return nil
}

var onboardingCmd = &cobra.Command{
	Use:   "onboarding [goal]",
	Short: "Choose your goal (perder_peso, ganhar_massa, manter_peso)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return openPage(cmd, router.PageOnboarding)
		}

		goal, ok := models.FindGoal(args[0])
		if !ok {
			return fmt.Errorf("unknown goal %q", args[0])
		}

		a, err := openScreen(cmd, router.PageOnboarding)
		if err != nil {
			return err
		}
		path, err := a.configFile()
		if err != nil {
			return err
		}
		a.cfg.Profile.Goal = goal.ID
		if err := config.SaveConfigTo(path, a.cfg); err != nil {
			return fmt.Errorf("Failed to save goal: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Objetivo definido: %s\n", goal.Name)
		a.router.Navigate(router.PageHome)
		return renderHome(cmd, a)
	},
}

func init() {
	rootCmd.AddCommand(onboardingCmd)
}
