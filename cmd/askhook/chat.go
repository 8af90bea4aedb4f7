package askhook

import (
	"flag"
	"fmt"

	"github.com/schardosin/askhook/pkg/launcher"
)

func handleChatCommand(args []string) error {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		printChatUsage()
		return nil
	}

	chatCmd := flag.NewFlagSet("chat", flag.ExitOnError)
	webhookURL := chatCmd.String("webhook", "", "Webhook URL for this session")

	if err := chatCmd.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	return launcher.RunChat(&launcher.ChatConfig{
		WebhookURL: *webhookURL,
	})
}

func printChatUsage() {
	fmt.Println("usage: askhook chat [-h] [--webhook URL]")
	fmt.Println("")
	fmt.Println("Open the terminal chat surface")
	fmt.Println("")
	fmt.Println("options:")
	fmt.Println("  -h, --help            show this help message and exit")
	fmt.Println("  --webhook URL         Webhook URL for this session (overrides webhook.url)")
}
