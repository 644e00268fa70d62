package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev       key.Binding
	Next       key.Binding
	Day        key.Binding
	Week       key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	SwipeLeft  key.Binding
	SwipeRight key.Binding
	Tab1       key.Binding
	Tab2       key.Binding
	Tab3       key.Binding
	Tab4       key.Binding
	Refresh    key.Binding
	GoTo       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Prev:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev")),
	Next:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
	Day:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day")),
	Week:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week")),
	NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	SwipeLeft:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "swipe left")),
	SwipeRight: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "swipe right")),
	Tab1:       key.NewBinding(key.WithKeys("1")),
	Tab2:       key.NewBinding(key.WithKeys("2")),
	Tab3:       key.NewBinding(key.WithKeys("3")),
	Tab4:       key.NewBinding(key.WithKeys("4"), key.WithHelp("1-4", "tab")),
	Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	GoTo:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to date")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) dayHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Week, k.Refresh, k.GoTo, k.Quit}
}

func (k keyMap) weekHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Day, k.NextTab, k.Tab4, k.SwipeLeft, k.SwipeRight, k.GoTo, k.Quit}
}

// tabIndex maps a number key to its tab position, or -1.
func (k keyMap) tabIndex(msg string) int {
	for i, b := range []key.Binding{k.Tab1, k.Tab2, k.Tab3, k.Tab4} {
		for _, name := range b.Keys() {
			if name == msg {
				return i
			}
		}
	}
	return -1
}
