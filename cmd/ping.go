package cmd

import (
	"github.com/misterclayt0n/keima/internal/session"
	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the Keima backend is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		health, err := a.client.Health(cmd.Context())
		if err != nil {
			return apiError(err, session.ConnectionErrorMessage)
		}

		out := cmd.OutOrStdout()
		printMetric(out, "API", a.cfg.API.BaseURL)
		printMetric(out, "Status", health.Status)
		if health.Message != "" {
			printMetric(out, "Message", health.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
