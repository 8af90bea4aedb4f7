package askhook

import (
	"flag"
	"fmt"

	"github.com/schardosin/askhook/pkg/launcher"
)

func handleServeCommand(args []string) error {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		printServeUsage()
		return nil
	}

	serveCmd := flag.NewFlagSet("serve", flag.ExitOnError)
	port := serveCmd.Int("port", 8080, "Port to serve the web page on")
	webhookURL := serveCmd.String("webhook", "", "Webhook URL prefilled in the page")

	if err := serveCmd.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	return launcher.RunServe(&launcher.ServeConfig{
		Port:       *port,
		WebhookURL: *webhookURL,
	})
}

func printServeUsage() {
	fmt.Println("usage: askhook serve [-h] [--port PORT] [--webhook URL]")
	fmt.Println("")
	fmt.Println("Serve the single-page web UI and its JSON API")
	fmt.Println("")
	fmt.Println("options:")
	fmt.Println("  -h, --help            show this help message and exit")
	fmt.Println("  --port PORT           Port to serve the web page on (default: 8080)")
	fmt.Println("  --webhook URL         Webhook URL prefilled in the page (overrides webhook.url)")
}
