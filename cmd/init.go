package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/misterclayt0n/keima/internal/config"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file and create the workout journal tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		path, err := a.configFile()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := config.SaveConfigTo(path, a.cfg); err != nil {
				return fmt.Errorf("Failed to write config: %w", err)
			}
			fmt.Fprintf(out, "✅ Config written to %s\n", path)
		} else {
			fmt.Fprintf(out, "Config already exists at %s\n", path)
		}

		journal, err := a.openJournal(cmd.Context())
		if err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		if journal == nil {
			fmt.Fprintln(out, faint("No database configured. Set database.connection_string or TURSO_DATABASE_URL to archive workouts."))
			return nil
		}
		defer journal.Close()

		fmt.Fprintln(out, "✅ Workout journal initialized successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
