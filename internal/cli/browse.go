package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jasperwreed/story-memory/internal/daterange"
	"github.com/jasperwreed/story-memory/internal/logging"
	"github.com/jasperwreed/story-memory/internal/tui"
)

func NewBrowseCommand() *cobra.Command {
	var week bool

	cmd := &cobra.Command{
		Use:   "browse [YYYY-MM-DD]",
		Short: "Browse stories in TUI",
		Long: `Open an interactive terminal UI on a day's stories, or on a week's
statistics with --week. Defaults to today.`,
		Example: `  # Browse today
  story-memory browse --user 7

  # Browse the week starting January 1st
  story-memory browse 2024-01-01 --week --user 7

  # Keep the browser's logs
  STORY_MEMORY_LOG_FILE=/tmp/story-memory.log story-memory browse --user 7`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().Format(daterange.Layout)
			if len(args) == 1 {
				date = args[0]
			}
			if err := NewValidator().ValidateDate(date); err != nil {
				return err
			}
			return runBrowse(cmd, date, week)
		},
	}

	cmd.Flags().BoolVar(&week, "week", false, "Open on the week screen")

	return cmd
}

func runBrowse(cmd *cobra.Command, date string, week bool) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	user, err := e.user()
	if err != nil {
		return err
	}

	// The browser owns the terminal, so logs go to a file or nowhere.
	logger := zap.NewNop()
	if e.cfg.Log.File != "" {
		logger, err = logging.New(e.cfg.Log.Level, e.cfg.Log.Development, e.cfg.Log.File)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logger.Sync()
	}
	e.logger = logger

	src, release, err := e.source()
	if err != nil {
		return err
	}
	defer release()

	return tui.NewApp(src, user, logger).Run(cmd.Context(), date, week)
}
