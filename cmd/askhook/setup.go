package askhook

import (
	"fmt"
	"strings"
	"time"

	"github.com/schardosin/askhook/pkg/config"
	"github.com/schardosin/askhook/pkg/ui"
)

func handleSetupCommand() error {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	url, err := ui.ReadInput(
		"Webhook URL",
		"https://hooks.example.com/analyze",
		cfg.Webhook.URL,
		validateWebhookURL,
	)
	if err != nil {
		return err
	}

	timeout, err := ui.ReadInput(
		"Request timeout (empty waits indefinitely)",
		"30s",
		cfg.Webhook.RequestTimeout,
		validateTimeout,
	)
	if err != nil {
		return err
	}

	confirmed, err := ui.ReadConfirm("Save configuration?")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Setup cancelled.")
		return nil
	}

	cfg.Webhook.URL = strings.TrimSpace(url)
	cfg.Webhook.RequestTimeout = strings.TrimSpace(timeout)
	if err := config.SaveAppConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		path = "the config file"
	}
	fmt.Printf("Configuration saved to %s\n", path)
	return nil
}

func validateWebhookURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("webhook URL is required")
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}

func validateTimeout(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("use a Go duration like 30s or 2m")
	}
	if d < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	return nil
}
