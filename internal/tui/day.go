package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jasperwreed/story-memory/internal/controller"
)

type dayLoadedMsg struct {
	controller.DayResult
}

func fetchDay(ctx context.Context, f controller.ConversationFetcher, req *controller.DayRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	r := *req
	return func() tea.Msg {
		return dayLoadedMsg{r.Run(ctx, f)}
	}
}

type dayScreen struct {
	ctrl     *controller.DayController
	viewport viewport.Model
	width    int
}

func newDayScreen(logger *zap.Logger) *dayScreen {
	return &dayScreen{
		ctrl:     controller.NewDayController(logger),
		viewport: viewport.New(0, 0),
	}
}

func (d *dayScreen) resize(width, height int) {
	d.width = width
	d.viewport.Width = max(width-2, 0)
	d.viewport.Height = max(height-6, 0)
	d.render()
}

func (d *dayScreen) navigate(ctx context.Context, f controller.ConversationFetcher, userSeq int64, date string) tea.Cmd {
	req := d.ctrl.Navigate(userSeq, date)
	d.render()
	return fetchDay(ctx, f, req)
}

func (d *dayScreen) apply(res controller.DayResult) {
	if d.ctrl.Apply(res) {
		d.render()
	}
}

func (d *dayScreen) handleKey(ctx context.Context, f controller.ConversationFetcher, msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Refresh) {
		req := d.ctrl.Refresh()
		d.render()
		return fetchDay(ctx, f, req)
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return cmd
}

func (d *dayScreen) render() {
	view := d.ctrl.View()
	switch {
	case d.ctrl.State() == controller.StateLoading && view.Empty:
		d.viewport.SetContent(emptyStyle.Render(loadingText))
	case view.Empty:
		d.viewport.SetContent(emptyStyle.Render(emptyDayText))
	default:
		d.viewport.SetContent(renderStories(view, d.width))
	}
	d.viewport.GotoTop()
}

func (d *dayScreen) view() string {
	title := d.ctrl.View().Title
	if title == "" {
		title = d.ctrl.Identity().Date
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("☁ "+title+" ☁"),
		paneStyle.Render(d.viewport.View()),
	)
}
