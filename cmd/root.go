package cmd

import (
	"context"

	"github.com/misterclayt0n/keima/internal/router"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	ephemeral  bool
)

var rootCmd = &cobra.Command{
	Use:           "keima",
	Short:         "Keima: nossa inteligência, seu progresso",
	Long:          "CLI client for the Keima fitness tracker: workouts, weight, exercise catalog, diet chat and progress.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPage(cmd, router.PageHome)
	},
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/keima/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep the session in memory only, seeded from KEIMA_SESSION_TOKEN")
}
