package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jasperwreed/story-memory/internal/controller"
	"github.com/jasperwreed/story-memory/internal/logging"
	"github.com/jasperwreed/story-memory/internal/tabsync"
)

type weekLoadedMsg struct {
	controller.WeekResult
}

func fetchWeek(ctx context.Context, f controller.WeeklyStatsFetcher, req *controller.WeekRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	r := *req
	return func() tea.Msg {
		return weekLoadedMsg{r.Run(ctx, f)}
	}
}

type weekScreen struct {
	logger *zap.Logger
	pref   *tabsync.Preference

	ctrl     *controller.WeekController
	sync     *tabsync.Sync
	carousel *carousel
	viewport viewport.Model
	width    int
}

func newWeekScreen(logger *zap.Logger, pref *tabsync.Preference) *weekScreen {
	logger = logging.OrNop(logger)
	w := &weekScreen{
		logger:   logger,
		pref:     pref,
		viewport: viewport.New(0, 0),
	}
	if err := w.reset(); err != nil {
		logger.Error("failed to open week screen", zap.Error(err))
	}
	return w
}

// reset mounts a fresh week screen on the shared preference.
func (w *weekScreen) reset() error {
	sync, err := tabsync.New(tabsync.WeeklyTabs, w.pref)
	if err != nil {
		return err
	}
	c := newCarousel(len(sync.Tabs()), sync.ActiveIndex())
	sync.Attach(c)

	w.ctrl = controller.NewWeekController(w.logger)
	w.sync = sync
	w.carousel = c
	w.render()
	return nil
}

func (w *weekScreen) resize(width, height int) {
	w.width = width
	w.viewport.Width = max(width-2, 0)
	w.viewport.Height = max(height-10, 0)
	w.render()
}

func (w *weekScreen) navigate(ctx context.Context, f controller.WeeklyStatsFetcher, userSeq int64, start string) tea.Cmd {
	req := w.ctrl.Navigate(userSeq, start)
	w.render()
	return fetchWeek(ctx, f, req)
}

func (w *weekScreen) apply(res controller.WeekResult) {
	if w.ctrl.Apply(res) {
		w.render()
	}
}

func (w *weekScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	tabs := w.sync.Tabs()
	current := w.sync.IndexOf(w.sync.Selected())

	switch {
	case key.Matches(msg, keys.NextTab):
		return w.selectTab((current + 1) % len(tabs))
	case key.Matches(msg, keys.PrevTab):
		return w.selectTab((current - 1 + len(tabs)) % len(tabs))
	case key.Matches(msg, keys.SwipeLeft):
		w.swipe(-1)
		return nil
	case key.Matches(msg, keys.SwipeRight):
		w.swipe(1)
		return nil
	}

	if idx := keys.tabIndex(msg.String()); idx >= 0 && idx < len(tabs) {
		return w.selectTab(idx)
	}

	var cmd tea.Cmd
	w.viewport, cmd = w.viewport.Update(msg)
	return cmd
}

func (w *weekScreen) selectTab(index int) tea.Cmd {
	if _, err := w.sync.SelectTab(w.sync.Tabs()[index]); err != nil {
		w.logger.Warn("tab selection rejected", zap.Int("index", index), zap.Error(err))
		return nil
	}
	return w.carousel.transition()
}

func (w *weekScreen) swipe(delta int) {
	index, ok := w.carousel.swipe(delta)
	if !ok {
		return
	}
	w.confirm(w.sync.OnSwipe(index))
}

func (w *weekScreen) settle(msg slideSettledMsg) {
	if index, ok := w.carousel.settle(msg); ok {
		w.confirm(w.sync.OnSlideSettled(index))
	}
}

func (w *weekScreen) confirm(tr tabsync.Transition, err error) {
	if err != nil {
		w.logger.Warn("carousel settled out of range", zap.Error(err))
		return
	}
	w.logger.Debug("slide settled",
		zap.String("tab", tr.Tab),
		zap.Stringer("origin", tr.Origin),
	)
	w.render()
}

func (w *weekScreen) render() {
	if w.ctrl == nil || w.carousel == nil {
		return
	}
	if w.ctrl.State() == controller.StateLoading {
		w.viewport.SetContent(emptyStyle.Render(loadingText))
		return
	}
	window, _ := w.ctrl.Window()
	w.viewport.SetContent(RenderSlide(w.carousel.active, w.ctrl.Stats(), window, w.width))
	w.viewport.GotoTop()
}

func (w *weekScreen) tabBar() string {
	selected := w.sync.Selected()
	rendered := make([]string, 0, len(w.sync.Tabs()))
	for _, tab := range w.sync.Tabs() {
		if tab == selected {
			rendered = append(rendered, selectedTabStyle.Render(tab))
		} else {
			rendered = append(rendered, tabStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (w *weekScreen) view() string {
	title := w.ctrl.Title()
	if title == "" {
		title = w.ctrl.Identity().Date
	}

	parts := []string{headerStyle.Render(title)}
	if w.ctrl.HasData() {
		parts = append(parts, w.tabBar())
	}
	parts = append(parts, paneStyle.Render(w.viewport.View()))
	if w.ctrl.HasData() {
		parts = append(parts, "  "+w.carousel.dots())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
