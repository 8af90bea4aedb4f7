package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerModel is a standalone wait indicator. Webhook waits can be
// unbounded when no request timeout is configured, so the elapsed time
// is shown once the wait stops being instant.
type SpinnerModel struct {
	spinner  spinner.Model
	text     string
	started  time.Time
	quitting bool
}

func NewSpinner(text string) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return SpinnerModel{spinner: s, text: text, started: time.Now()}
}

func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Quitting is usually controlled by the parent via Program.Quit
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.QuitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m SpinnerModel) View() string {
	if m.quitting {
		return ""
	}
	if elapsed := time.Since(m.started); elapsed >= 3*time.Second {
		return fmt.Sprintf("%s %s (%ds)", m.spinner.View(), m.text, int(elapsed.Seconds()))
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.text)
}
