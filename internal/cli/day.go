package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jasperwreed/story-memory/internal/controller"
	"github.com/jasperwreed/story-memory/internal/models"
)

const emptyDayText = "이 날은 대화 목록이 없어요!"

func NewDayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "List a day's stories",
		Long:  `Print the stories recorded on one day, in the order they were told.`,
		Example: `  # Stories of user 7 on January 5th
  story-memory day 2024-01-05 --user 7

  # Read from a running API server
  story-memory day 2024-01-05 --user 7 --api http://localhost:8080`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := NewValidator().ValidateDate(args[0]); err != nil {
				return err
			}
			return runDay(cmd, args[0])
		},
	}

	return cmd
}

func runDay(cmd *cobra.Command, date string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.sync()

	user, err := e.user()
	if err != nil {
		return err
	}

	src, release, err := e.source()
	if err != nil {
		return err
	}
	defer release()

	ctrl := controller.NewDayController(e.logger)
	view := ctrl.Load(cmd.Context(), src, user, date)
	printDay(cmd.OutOrStdout(), view)
	return nil
}

func printDay(w io.Writer, view models.DayView) {
	fmt.Fprintln(w, view.Title)
	fmt.Fprintln(w)

	if view.Empty {
		fmt.Fprintln(w, emptyDayText)
		return
	}

	for _, s := range view.Stories {
		fmt.Fprintf(w, "%s  %s  %s\n", s.Caption(), s.FormattedTime, s.DisplayTitle)
		fmt.Fprintf(w, "    %s\n", s.Link)
	}
}
