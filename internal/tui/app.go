package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jasperwreed/story-memory/internal/controller"
	"github.com/jasperwreed/story-memory/internal/daterange"
	"github.com/jasperwreed/story-memory/internal/logging"
	"github.com/jasperwreed/story-memory/internal/tabsync"
)

// Source is where the screens load their data from.
type Source interface {
	controller.ConversationFetcher
	controller.WeeklyStatsFetcher
}

type screen int

const (
	screenDay screen = iota
	screenWeek
)

// App is the interactive story browser.
type App struct {
	source  Source
	userSeq int64
	logger  *zap.Logger
	pref    *tabsync.Preference
}

// NewApp creates a browser for one user. The tab preference lives as long as
// the App, so every week screen it opens resumes on the last tab.
func NewApp(source Source, userSeq int64, logger *zap.Logger) *App {
	return &App{
		source:  source,
		userSeq: userSeq,
		logger:  logging.OrNop(logger),
		pref:    tabsync.NewPreference(tabsync.WeeklyTabs[0]),
	}
}

// Preference exposes the shared tab preference.
func (a *App) Preference() *tabsync.Preference {
	return a.pref
}

// Run opens the browser on date, starting with the week screen when week is
// set.
func (a *App) Run(ctx context.Context, date string, week bool) error {
	m := a.model(ctx, date, week)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func (a *App) model(ctx context.Context, date string, week bool) model {
	prompt := textinput.New()
	prompt.Placeholder = daterange.Layout
	prompt.Prompt = "날짜: "
	prompt.CharLimit = len(daterange.Layout)
	prompt.Width = 12

	m := model{
		ctx:    ctx,
		app:    a,
		date:   date,
		screen: screenDay,
		day:    newDayScreen(a.logger),
		week:   newWeekScreen(a.logger, a.pref),
		prompt: prompt,
		help:   help.New(),
	}
	if week {
		m.screen = screenWeek
	}
	return m
}

type model struct {
	ctx  context.Context
	app  *App
	date string

	screen screen
	day    *dayScreen
	week   *weekScreen

	prompt    textinput.Model
	prompting bool
	help      help.Model

	width  int
	height int
	ready  bool
}

func (m model) Init() tea.Cmd {
	return m.open()
}

// open shows the current screen for m.date. The week screen is remounted
// each time it opens and resumes the shared tab preference.
func (m model) open() tea.Cmd {
	if m.screen == screenWeek {
		if err := m.week.reset(); err != nil {
			m.app.logger.Error("failed to open week screen", zap.Error(err))
			return nil
		}
		m.week.resize(m.width, m.height)
		return m.week.navigate(m.ctx, m.app.source, m.app.userSeq, m.date)
	}
	m.day.resize(m.width, m.height)
	return m.day.navigate(m.ctx, m.app.source, m.app.userSeq, m.date)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.day.resize(m.width, m.height)
		m.week.resize(m.width, m.height)
		return m, nil

	case dayLoadedMsg:
		m.day.apply(msg.DayResult)
		return m, nil

	case weekLoadedMsg:
		m.week.apply(msg.WeekResult)
		return m, nil

	case slideSettledMsg:
		m.week.settle(msg)
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.prompting = false
		m.prompt.Blur()
		return m, nil
	case "enter":
		value := m.prompt.Value()
		if _, err := daterange.Parse(value); err != nil {
			m.prompt.SetValue("")
			return m, nil
		}
		m.prompting = false
		m.prompt.Blur()
		m.date = value
		return m, m.open()
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.GoTo):
		m.prompting = true
		m.prompt.SetValue(m.date)
		return m, m.prompt.Focus()

	case key.Matches(msg, keys.Day):
		if m.screen == screenDay {
			return m, nil
		}
		m.screen = screenDay
		return m, m.open()

	case key.Matches(msg, keys.Week):
		if m.screen == screenWeek {
			return m, nil
		}
		m.screen = screenWeek
		return m, m.open()

	case key.Matches(msg, keys.Prev), key.Matches(msg, keys.Next):
		step := 1
		if m.screen == screenWeek {
			step = daterange.WindowDays
		}
		if key.Matches(msg, keys.Prev) {
			step = -step
		}
		next, err := daterange.Shift(m.date, step)
		if err != nil {
			return m, nil
		}
		m.date = next
		if m.screen == screenWeek {
			return m, m.week.navigate(m.ctx, m.app.source, m.app.userSeq, m.date)
		}
		return m, m.day.navigate(m.ctx, m.app.source, m.app.userSeq, m.date)
	}

	if m.screen == screenWeek {
		return m, m.week.handleKey(msg)
	}
	return m, m.day.handleKey(m.ctx, m.app.source, msg)
}

func (m model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var body string
	bindings := keys.dayHelp()
	if m.screen == screenWeek {
		body = m.week.view()
		bindings = keys.weekHelp()
	} else {
		body = m.day.view()
	}

	footer := helpStyle.Render("  " + m.help.ShortHelpView(bindings))
	if m.prompting {
		footer = "  " + m.prompt.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
