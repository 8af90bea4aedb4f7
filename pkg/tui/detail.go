package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/schardosin/askhook/pkg/chat"
	"github.com/schardosin/askhook/pkg/ui"
)

// enterDetail opens the selected analysis record full screen.
func (m Model) enterDetail() Model {
	recs := m.session.Analyses()
	if len(recs) == 0 {
		return m
	}
	idx := len(recs) - 1 - m.cursor
	if idx < 0 || idx >= len(recs) {
		return m
	}
	m.detailRecord = recs[idx]
	m.detailView = viewport.New(m.width, m.detailHeight())
	m.detailView.SetContent(m.renderDetail(m.detailRecord))
	m.mode = modeDetail
	return m
}

func (m Model) detailHeight() int {
	h := m.height - 3
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeResults
		m.refreshResults()
		return m, nil

	case "g", "home":
		m.detailView.GotoTop()
		return m, nil

	case "G", "end":
		m.detailView.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.detailView, cmd = m.detailView.Update(msg)
	return m, cmd
}

func (m Model) renderDetail(rec chat.AnalysisRecord) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render("Asked at "+rec.Time.Format("2006-01-02 15:04:05")) + "\n")
	b.WriteString(userLabelStyle.Render("Q:") + " " + rec.Question + "\n\n")
	b.WriteString(ui.SmartRender(rec.Result.Render(), m.width-2))
	return b.String()
}

func (m Model) viewDetail() string {
	title := detailTitleStyle.Render(truncate(fmt.Sprintf(" Analysis: %s ", m.detailRecord.Question), m.width))
	help := helpStyle.Render("  ↑/↓: scroll  g/G: top/bottom  Esc: back")
	return title + "\n" + m.detailView.View() + "\n" + help
}
