package launcher

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schardosin/askhook/pkg/chat"
	"github.com/schardosin/askhook/pkg/config"
	"github.com/schardosin/askhook/pkg/tui"
	"github.com/schardosin/askhook/pkg/webhook"
	"golang.org/x/term"
)

// ChatConfig contains configuration for the terminal chat surface
type ChatConfig struct {
	WebhookURL string // overrides webhook.url from the config file
}

// RunChat runs the full-screen terminal chat surface
func RunChat(cfg *ChatConfig) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("chat mode needs an interactive terminal; use 'askhook serve' instead")
	}

	appCfg, err := config.LoadAppConfig()
	if err != nil {
		log.Printf("Warning: failed to load config: %v", err)
		appCfg = &config.AppConfig{}
	}

	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		webhookURL = appCfg.Webhook.URL
	}

	session := chat.NewSession()
	session.SetSystemTexts(appCfg.UI.AckText, appCfg.UI.ErrorText)
	client := webhook.NewClient(appCfg.Webhook.Timeout())

	m := tui.NewModel(session, client, webhookURL)

	done := make(chan struct{})
	defer close(done)
	if updates, err := config.WatchAppConfig(done); err != nil {
		log.Printf("Warning: config reload unavailable: %v", err)
	} else {
		m.SetConfigUpdates(updates)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run chat surface: %w", err)
	}
	return nil
}
