package cmd

import (
	"fmt"

	"github.com/misterclayt0n/keima/internal/storage"
	"github.com/spf13/cobra"
)

// openRequiredJournal opens the journal or fails when none is configured.
func openRequiredJournal(cmd *cobra.Command) (*storage.Storage, error) {
	a, err := loadApp()
	if err != nil {
		return nil, err
	}
	journal, err := a.openJournal(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to open workout journal: %w", err)
	}
	if journal == nil {
		return nil, storage.ErrNotConfigured
	}
	return journal, nil
}

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export the workout journal to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "workouts_dump.toml" // Default filename.
		if len(args) == 1 {
			outputFile = args[0]
		}

		journal, err := openRequiredJournal(cmd)
		if err != nil {
			return err
		}
		defer journal.Close()

		if err := journal.ExportToTOML(cmd.Context(), outputFile); err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Database exported successfully to %s\n", outputFile)
		return nil
	},
}

var buildDBCmd = &cobra.Command{
	Use:   "build-db [dump-file]",
	Short: "Rebuild the workout journal from the given TOML dump file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		journal, err := openRequiredJournal(cmd)
		if err != nil {
			return err
		}
		defer journal.Close()

		if err := journal.ImportFromTOML(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("Failed to build database: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✅ Database built successfully from TOML dump.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(buildDBCmd)
}
