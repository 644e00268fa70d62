package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import stories and statistics from a seed file",
		Long: `Import conversations and weekly statistics from a YAML or JSON seed file
into the local database. Existing rows with the same keys are replaced.`,
		Example: `  # Import a seed file
  story-memory import seed.yaml

  # Into a specific database
  story-memory import seed.json --db ./stories.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := NewValidator()
			path, err := v.ResolvePath(args[0])
			if err != nil {
				return err
			}
			if err := v.ValidateFile(path); err != nil {
				return err
			}
			return runImport(cmd, path)
		},
	}

	return cmd
}

func runImport(cmd *cobra.Command, path string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.sync()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	store, err := e.store()
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := store.Import(cmd.Context(), file)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Imported %s\n", path)
	fmt.Fprintf(out, "  Conversations: %d\n", result.Conversations)
	fmt.Fprintf(out, "  Weeks: %d\n", result.Weeks)
	fmt.Fprintf(out, "  Days: %d\n", result.Days)
	return nil
}
