package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jasperwreed/story-memory/internal/controller"
	"github.com/jasperwreed/story-memory/internal/tabsync"
	"github.com/jasperwreed/story-memory/internal/tui"
)

const slideWidth = 60

func NewWeekCommand() *cobra.Command {
	var tab string

	cmd := &cobra.Command{
		Use:   "week <YYYY-MM-DD>",
		Short: "Show a week's statistics",
		Long: `Print the statistics of the seven days starting on the given date.
The window always starts on that date, whatever weekday it is.`,
		Example: `  # Emotion tab of the week starting January 1st
  story-memory week 2024-01-01 --user 7

  # Interests tab
  story-memory week 2024-01-01 --user 7 --tab 관심사`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := NewValidator()
			if err := v.ValidateDate(args[0]); err != nil {
				return err
			}
			if err := v.ValidateTab(tab); err != nil {
				return err
			}
			return runWeek(cmd, args[0], tab)
		},
	}

	cmd.Flags().StringVar(&tab, "tab", tabsync.WeeklyTabs[0], "Tab to show")

	return cmd
}

func runWeek(cmd *cobra.Command, start, tab string) error {
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

	sync, err := tabsync.New(tabsync.WeeklyTabs, tabsync.NewPreference(tab))
	if err != nil {
		return err
	}

	ctrl := controller.NewWeekController(e.logger)
	ctrl.Load(cmd.Context(), src, user, start)

	printWeek(cmd.OutOrStdout(), ctrl, sync)
	return nil
}

func printWeek(w io.Writer, ctrl *controller.WeekController, sync *tabsync.Sync) {
	fmt.Fprintln(w, ctrl.Title())
	fmt.Fprintln(w)

	window, _ := ctrl.Window()
	if !ctrl.HasData() {
		fmt.Fprintln(w, tui.RenderSlide(sync.ActiveIndex(), nil, window, slideWidth))
		return
	}

	tabs := make([]string, 0, len(sync.Tabs()))
	for _, tab := range sync.Tabs() {
		if tab == sync.Selected() {
			tab = "[" + tab + "]"
		}
		tabs = append(tabs, tab)
	}
	fmt.Fprintln(w, strings.Join(tabs, " "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.RenderSlide(sync.ActiveIndex(), ctrl.Stats(), window, slideWidth))
}
