package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
	apiURL     string
	userSeq    int64
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "story-memory",
		Short: "Browse recorded conversations by day and by week",
		Long: `Story Memory - Look back on the conversations recorded for a user.
Browse a day's stories in order, or a week's statistics tab by tab.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to database file (default: ~/.story-memory/stories.db)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Read from a story-memory API instead of the local database")
	rootCmd.PersistentFlags().Int64Var(&userSeq, "user", 0, "User whose stories to show")

	rootCmd.AddCommand(
		NewDayCommand(),
		NewWeekCommand(),
		NewBrowseCommand(),
		NewServeCommand(),
		NewImportCommand(),
		NewDeleteCommand(),
	)

	return rootCmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
