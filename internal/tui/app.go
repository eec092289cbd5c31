package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// Title is embedded in the top edge of the panel.
	Title = " mycli - Ratatui TUI "

	// Hint lists the available keys under the counter.
	Hint = "Press ↑/↓ to change, q to quit"

	// TickInterval bounds how long the loop waits for input before redrawing.
	TickInterval = 100 * time.Millisecond
)

// Custom messages
type tickMsg time.Time

type Model struct {
	counter  int
	ticks    int
	quitting bool

	// Window dimensions, zero until the first WindowSizeMsg
	windowWidth  int
	windowHeight int
}

func NewModel() *Model {
	return &Model{}
}

// Counter returns the current counter value.
func (m *Model) Counter() int {
	return m.counter
}

// Ticks returns how many idle redraw ticks have fired.
func (m *Model) Ticks() int {
	return m.ticks
}

// Quitting reports whether a quit key has been pressed.
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// --- Update ---

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		// Returning from Update triggers a redraw; re-arm for the next one.
		m.ticks++
		return m, tick()
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Keys queued behind a quit must not touch the counter.
	if m.quitting {
		return m, nil
	}

	// One read can deliver several letters as a single message (typing
	// fast, key repeat, paste). Dispatch them one at a time, in order.
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		var cmd tea.Cmd
		for _, r := range msg.Runes {
			_, cmd = m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt})
			if m.quitting {
				break
			}
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		m.counter++
	case key.Matches(msg, keys.Down):
		m.counter--
	}
	return m, nil
}

// --- View ---

func (m *Model) View() string {
	body := strings.Join([]string{
		"",
		"Counter: " + counterStyle.Render(fmt.Sprintf("%d", m.counter)),
		"",
		helpStyle.Render(Hint),
	}, "\n")

	innerWidth, innerHeight := m.panelDimensions(body)

	// Top border with embedded title
	title := truncate(Title, innerWidth)
	fillLen := innerWidth - lipgloss.Width(title)
	if fillLen < 0 {
		fillLen = 0
	}
	top := borderStyle.Render("┌") + titleStyle.Render(title) + borderStyle.Render(strings.Repeat("─", fillLen)+"┐")

	style := panelStyle.Width(innerWidth)
	if innerHeight > 0 {
		style = style.Height(innerHeight)
	}

	return top + "\n" + style.Render(body)
}

// panelDimensions returns the space inside the border. The panel fills the
// window once its size is known; before that it hugs the content.
func (m *Model) panelDimensions(body string) (int, int) {
	if m.windowWidth == 0 || m.windowHeight == 0 {
		w := lipgloss.Width(body)
		if tw := lipgloss.Width(Title); tw > w {
			w = tw
		}
		return w + 4, 0
	}

	innerWidth := m.windowWidth - 2
	if innerWidth < 1 {
		innerWidth = 1
	}
	innerHeight := m.windowHeight - 2
	if innerHeight < 1 {
		innerHeight = 1
	}
	return innerWidth, innerHeight
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
