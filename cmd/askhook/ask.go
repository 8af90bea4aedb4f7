package askhook

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schardosin/askhook/pkg/chat"
	"github.com/schardosin/askhook/pkg/config"
	"github.com/schardosin/askhook/pkg/ui"
	"github.com/schardosin/askhook/pkg/webhook"
	"golang.org/x/term"
)

func handleAskCommand(args []string) error {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		printAskUsage()
		return nil
	}

	askCmd := flag.NewFlagSet("ask", flag.ExitOnError)
	webhookURL := askCmd.String("webhook", "", "Webhook URL to send the question to")

	if err := askCmd.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	question := strings.TrimSpace(strings.Join(askCmd.Args(), " "))
	if question == "" {
		printAskUsage()
		return fmt.Errorf("no question provided")
	}

	cfg, err := config.LoadAppConfig()
	if err != nil {
		fmt.Printf("Warning: failed to load config: %v\n", err)
		cfg = &config.AppConfig{}
	}

	url := strings.TrimSpace(*webhookURL)
	if url == "" {
		url = strings.TrimSpace(cfg.Webhook.URL)
	}
	if url == "" {
		fmt.Println(ui.RenderNoticeBox("Webhook required", chat.MissingURLNotice))
		return fmt.Errorf("no webhook URL configured")
	}

	var spin *tea.Program
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		spin = tea.NewProgram(ui.NewSpinner("Waiting for the webhook..."))
		go func() {
			_, _ = spin.Run()
		}()
	}

	client := webhook.NewClient(cfg.Webhook.Timeout())
	result, err := client.Ask(context.Background(), url, question, time.Now())

	if spin != nil {
		spin.Quit()
		spin.Wait()
	}

	if err != nil {
		fmt.Print(ui.RenderExchangeError(err))
		return fmt.Errorf("webhook exchange failed")
	}

	fmt.Println(result.Render())
	return nil
}

func printAskUsage() {
	fmt.Println("usage: askhook ask [-h] [--webhook URL] QUESTION...")
	fmt.Println("")
	fmt.Println("Send one question to the webhook and print the analysis")
	fmt.Println("")
	fmt.Println("options:")
	fmt.Println("  -h, --help            show this help message and exit")
	fmt.Println("  --webhook URL         Webhook URL to send the question to (overrides webhook.url)")
}
