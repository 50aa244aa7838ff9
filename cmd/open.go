package cmd

import (
	"fmt"

	"github.com/misterclayt0n/keima/internal/router"
	"github.com/spf13/cobra"
)

type screenFunc func(cmd *cobra.Command, a *app) error

var screens map[router.Page]screenFunc

// openPage runs the router gate for page and renders whatever screen it
// resolves to, followed by the navigation bar.
func openPage(cmd *cobra.Command, page router.Page) error {
	a, err := openScreen(cmd, page)
	if err != nil {
		return err
	}

	screen := a.router.Screen(a.session.State())
	render, ok := screens[screen]
	if !ok {
		return fmt.Errorf("no screen for page %q", screen)
	}
	if err := render(cmd, a); err != nil {
		return err
	}

	a.printNav(cmd.OutOrStdout())
	return nil
}

var openCmd = &cobra.Command{
	Use:   "open [page]",
	Short: "Open a screen by name (home, workout, catalog, weight, diet, progress, onboarding)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page := router.PageHome
		if len(args) == 1 {
			page = router.Parse(args[0])
		}
		return openPage(cmd, page)
	},
}

func init() {
	screens = map[router.Page]screenFunc{
		router.PageHome:       renderHome,
		router.PageWeight:     renderWeight,
		router.PageWorkout:    renderWorkout,
		router.PageDiet:       renderDiet,
		router.PageProgress:   renderProgress,
		router.PageCatalog:    renderCatalog,
		router.PageOnboarding: renderOnboarding,
	}
	rootCmd.AddCommand(openCmd)
}
