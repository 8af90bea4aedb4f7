package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/schardosin/askhook/pkg/chat"
	"github.com/schardosin/askhook/pkg/config"
	"github.com/schardosin/askhook/pkg/ui"
	"github.com/schardosin/askhook/pkg/webhook"
)

type mode int

const (
	modeCompose mode = iota // typing a question
	modeURL                 // editing the webhook URL
	modeResults             // navigating analysis records
	modeDetail              // full-screen record view
	modeNotice              // blocking notice overlay
)

const flashDuration = 4 * time.Second

// exchangeDoneMsg is sent when the async webhook exchange settles.
type exchangeDoneMsg struct {
	question string
	result   webhook.Result
	err      error
}

// clearFlashMsg expires a transient status-bar notice. The sequence
// number discards ticks that belong to an older notice.
type clearFlashMsg struct {
	seq int
}

// configReloadedMsg is sent when the config file changes on disk.
type configReloadedMsg struct {
	cfg *config.AppConfig
}

// Model is the full-screen chat surface: a webhook URL field, a
// question field, the conversation transcript, and the analysis
// results panel.
type Model struct {
	session *chat.Session
	client  *webhook.Client

	urlInput      textinput.Model
	questionInput textinput.Model
	spin          spinner.Model
	transcript    viewport.Model
	results       viewport.Model

	mode         mode
	busy         bool
	cursor       int   // selected record, 0 = newest
	recordStarts []int // first content line of each rendered record
	notice       string
	flash        string
	flashSeq     int

	urlDirty      bool // user edited the URL; reloads keep their hands off
	configUpdates <-chan *config.AppConfig

	detailRecord chat.AnalysisRecord
	detailView   viewport.Model

	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel creates the chat surface. The webhook URL prefills the URL
// field; an empty string leaves it blank for the user to fill in.
func NewModel(session *chat.Session, client *webhook.Client, webhookURL string) Model {
	urlIn := textinput.New()
	urlIn.Placeholder = "https://hooks.example.com/analyze"
	urlIn.Prompt = ""
	urlIn.CharLimit = 512
	urlIn.SetValue(strings.TrimSpace(webhookURL))

	questionIn := textinput.New()
	questionIn.Placeholder = "Ask a question..."
	questionIn.Prompt = "> "
	questionIn.CharLimit = 1024
	questionIn.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		session:       session,
		client:        client,
		urlInput:      urlIn,
		questionInput: questionIn,
		spin:          sp,
	}
}

// SetConfigUpdates subscribes the surface to config file reloads.
func (m *Model) SetConfigUpdates(ch <-chan *config.AppConfig) {
	m.configUpdates = ch
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.configUpdates != nil {
		cmds = append(cmds, waitForConfig(m.configUpdates))
	}
	return tea.Batch(cmds...)
}

func waitForConfig(ch <-chan *config.AppConfig) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

// exchange performs the webhook call off the UI loop and reports back.
func (m Model) exchange(url, question string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.Ask(context.Background(), url, question, time.Now())
		return exchangeDoneMsg{question: question, result: result, err: err}
	}
}

func clearFlashAfter(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{seq: seq}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case exchangeDoneMsg:
		return m.settleExchange(msg)

	case clearFlashMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case configReloadedMsg:
		return m.applyConfig(msg.cfg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeCompose:
			return m.updateCompose(msg)
		case modeURL:
			return m.updateURL(msg)
		case modeResults:
			return m.updateResults(msg)
		case modeDetail:
			return m.updateDetail(msg)
		case modeNotice:
			return m.updateNotice(msg)
		}
	}
	return m, nil
}

func (m Model) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()

	case "tab":
		m.mode = modeURL
		m.questionInput.Blur()
		cmd := m.urlInput.Focus()
		m.urlInput.CursorEnd()
		return m, cmd

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	}

	// The question input is the disabled control while an exchange is
	// in flight; keystrokes are dropped until it settles.
	if m.busy {
		return m, nil
	}
	var cmd tea.Cmd
	m.questionInput, cmd = m.questionInput.Update(msg)
	return m, cmd
}

func (m Model) updateURL(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.mode = modeCompose
		m.urlInput.Blur()
		var cmd tea.Cmd
		if !m.busy {
			cmd = m.questionInput.Focus()
		}
		return m, cmd

	case "tab":
		m.mode = modeResults
		m.urlInput.Blur()
		m.cursor = 0
		m.refreshResults()
		return m, nil
	}

	before := m.urlInput.Value()
	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	if m.urlInput.Value() != before {
		m.urlDirty = true
	}
	return m, cmd
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeCompose
		m.refreshResults()
		var cmd tea.Cmd
		if !m.busy {
			cmd = m.questionInput.Focus()
		}
		return m, cmd

	case "tab":
		m.mode = modeCompose
		m.refreshResults()
		var cmd tea.Cmd
		if !m.busy {
			cmd = m.questionInput.Focus()
		}
		return m, cmd

	case "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.refreshResults()
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.recordStarts)-1 {
			m.cursor++
			m.refreshResults()
		}
		return m, nil

	case "home", "g":
		m.cursor = 0
		m.refreshResults()
		return m, nil

	case "end", "G":
		if n := len(m.recordStarts); n > 0 {
			m.cursor = n - 1
		}
		m.refreshResults()
		return m, nil

	case "enter":
		return m.enterDetail(), nil

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateNotice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.notice = ""
		m.mode = modeCompose
		var cmd tea.Cmd
		if !m.busy {
			cmd = m.questionInput.Focus()
		}
		return m, cmd
	}
	return m, nil
}

// submit validates the two inputs and starts the exchange. A blank
// question is a no-op; a blank URL raises the blocking notice and
// leaves the typed question in place.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	question := m.questionInput.Value()
	if strings.TrimSpace(question) == "" {
		return m, nil
	}
	url := strings.TrimSpace(m.urlInput.Value())
	if url == "" {
		m.notice = chat.MissingURLNotice
		m.mode = modeNotice
		m.questionInput.Blur()
		return m, nil
	}

	userMsg, err := m.session.Begin(question, time.Now())
	if err != nil {
		return m, nil
	}
	m.busy = true
	m.questionInput.Blur()
	m.refreshTranscript()
	return m, tea.Batch(m.spin.Tick, m.exchange(url, userMsg.Text))
}

// settleExchange applies the exchange outcome: the session gains the
// ack plus record on success, or just the error message on failure,
// and the question input is cleared and re-enabled either way.
func (m Model) settleExchange(msg exchangeDoneMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	now := time.Now()
	if msg.err != nil {
		m.session.Fail(now)
		m.flash = "Exchange failed: " + compactError(msg.err)
		m.flashSeq++
		cmds = append(cmds, clearFlashAfter(m.flashSeq))
	} else {
		m.session.Complete(msg.question, msg.result, now)
		m.cursor = 0
	}
	m.busy = false
	m.questionInput.SetValue("")
	if m.mode == modeCompose {
		cmds = append(cmds, m.questionInput.Focus())
	}
	m.refreshTranscript()
	m.refreshResults()
	return m, tea.Batch(cmds...)
}

func (m Model) applyConfig(cfg *config.AppConfig) (tea.Model, tea.Cmd) {
	if cfg == nil {
		return m, nil
	}
	m.client = webhook.NewClient(cfg.Webhook.Timeout())
	m.session.SetSystemTexts(cfg.UI.AckText, cfg.UI.ErrorText)
	if !m.urlDirty && cfg.Webhook.URL != "" {
		m.urlInput.SetValue(cfg.Webhook.URL)
	}
	m.flash = "Configuration reloaded"
	m.flashSeq++
	return m, tea.Batch(clearFlashAfter(m.flashSeq), waitForConfig(m.configUpdates))
}

// --- LAYOUT ---

func (m *Model) resize() {
	leftW, rightW := m.panelWidths()
	panelH := m.panelHeight()

	if m.transcript.Width == 0 {
		m.transcript = viewport.New(leftW, panelH)
		m.results = viewport.New(rightW, panelH)
	} else {
		m.transcript.Width = leftW
		m.transcript.Height = panelH
		m.results.Width = rightW
		m.results.Height = panelH
	}
	m.urlInput.Width = m.width - 16
	m.questionInput.Width = m.width - 20

	if m.mode == modeDetail {
		m.detailView.Width = m.width
		m.detailView.Height = m.detailHeight()
		m.detailView.SetContent(m.renderDetail(m.detailRecord))
	}
	m.refreshTranscript()
	m.refreshResults()
}

// panelWidths returns the inner widths of the two panels; the
// transcript takes a bit more than half.
func (m Model) panelWidths() (int, int) {
	usable := m.width - 4
	if usable < 40 {
		usable = 40
	}
	left := usable * 55 / 100
	return left, usable - left
}

// panelHeight accounts for the title, URL, input, and status lines
// plus the panel borders and captions.
func (m Model) panelHeight() int {
	h := m.height - 7
	if h < 3 {
		h = 3
	}
	return h
}

// --- RENDERING ---

func (m *Model) refreshTranscript() {
	if m.transcript.Width == 0 {
		return
	}
	m.transcript.SetContent(m.renderTranscript())
	m.transcript.GotoBottom()
}

func (m Model) renderTranscript() string {
	msgs := m.session.Messages()
	if len(msgs) == 0 {
		return dimStyle.Render("Ask a question to get started.")
	}

	width := m.transcript.Width
	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n")
		}
		label := userLabelStyle.Render("You")
		if msg.Origin == chat.OriginSystem {
			label = systemLabelStyle.Render("System")
		}
		b.WriteString(timestampStyle.Render(msg.Time.Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(label)
		b.WriteString("\n")
		for _, line := range wrapText(msg.Text, width-2) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// refreshResults re-renders the analysis panel, newest record first,
// and keeps the selected record scrolled into view.
func (m *Model) refreshResults() {
	if m.results.Width == 0 {
		return
	}
	recs := m.session.Analyses()
	width := m.results.Width

	var lines []string
	m.recordStarts = m.recordStarts[:0]
	for i := len(recs) - 1; i >= 0; i-- {
		rec := recs[i]
		idx := len(recs) - 1 - i
		m.recordStarts = append(m.recordStarts, len(lines))

		header := truncate(fmt.Sprintf("%s  %s", rec.Time.Format("15:04:05"), rec.Question), width)
		if m.mode == modeResults && idx == m.cursor {
			header = selectedStyle.Render(padRight(header, width))
		} else {
			header = recordHeaderStyle.Render(header)
		}
		lines = append(lines, header)

		for _, raw := range strings.Split(rec.Result.Render(), "\n") {
			for _, line := range wrapText(raw, width-2) {
				lines = append(lines, "  "+line)
			}
		}
		lines = append(lines, "")
	}

	if len(lines) == 0 {
		m.results.SetContent(dimStyle.Render("No analysis results yet."))
		return
	}
	m.results.SetContent(strings.Join(lines, "\n"))

	if m.mode == modeResults && m.cursor < len(m.recordStarts) {
		target := m.recordStarts[m.cursor]
		if target < m.results.YOffset {
			m.results.SetYOffset(target)
		} else if target >= m.results.YOffset+m.results.Height {
			m.results.SetYOffset(target - m.results.Height + 1)
		}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modeNotice:
		box := ui.RenderNoticeBox("Webhook required", m.notice)
		hint := helpStyle.Render("Enter to dismiss")
		content := lipgloss.JoinVertical(lipgloss.Center, box, hint)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}

	var b strings.Builder

	// title bar
	title := titleStyle.Render(" Askhook ")
	info := dimStyle.Render(fmt.Sprintf("  %d results", len(m.session.Analyses())))
	b.WriteString(title + info + "\n")

	// webhook URL line
	b.WriteString(urlLabelStyle.Render("Webhook:") + " " + m.urlInput.View() + "\n")

	// panels
	leftW, rightW := m.panelWidths()
	transcriptBox := m.panelBox("Conversation", m.transcript.View(), leftW, m.mode == modeCompose)
	resultsBox := m.panelBox("Analysis Results", m.results.View(), rightW, m.mode == modeResults)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, transcriptBox, resultsBox))
	b.WriteString("\n")

	// question line
	b.WriteString(m.questionInput.View())
	if m.busy {
		b.WriteString("  " + m.spin.View() + dimStyle.Render(" waiting for webhook..."))
	}
	b.WriteString("\n")

	// status line
	if m.flash != "" {
		b.WriteString(flashStyle.Render("  " + m.flash))
	} else {
		b.WriteString(m.renderHelp())
	}

	return b.String()
}

func (m Model) panelBox(caption, body string, width int, focused bool) string {
	style := panelStyle
	if focused {
		style = panelFocusedStyle
	}
	content := panelTitleStyle.Render(caption) + "\n" + body
	return style.Width(width).Render(content)
}

func (m Model) renderHelp() string {
	switch m.mode {
	case modeURL:
		return helpStyle.Render("  Enter: done  Tab: results  Esc: back")
	case modeResults:
		return helpStyle.Render("  Enter: open  j/k: select  Tab/Esc: back  q: quit")
	default:
		return helpStyle.Render("  Enter: ask  Tab: edit webhook  PgUp/PgDn: scroll  Ctrl+C: quit")
	}
}

// --- HELPERS ---

func compactError(err error) string {
	s := err.Error()
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	runes := []rune(s)
	if len(runes) > 120 {
		s = string(runes[:120]) + "..."
	}
	return s
}

// wrapText splits text into lines that fit within maxWidth.
func wrapText(text string, maxWidth int) []string {
	if maxWidth < 1 {
		maxWidth = 1
	}
	var result []string
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			result = append(result, "")
			continue
		}
		runes := []rune(line)
		for len(runes) > maxWidth {
			result = append(result, string(runes[:maxWidth]))
			runes = runes[maxWidth:]
		}
		result = append(result, string(runes))
	}
	return result
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 2 {
		return string(runes[:width])
	}
	return string(runes[:width-2]) + ".."
}

func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(runes))
}
