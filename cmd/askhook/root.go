package askhook

import (
	"fmt"
	"os"
)

// Execute is the main entry point for the CLI. A bare invocation opens
// the chat surface.
func Execute() error {
	if len(os.Args) < 2 {
		return handleChatCommand(nil)
	}
	if os.Args[1] == "-h" || os.Args[1] == "--help" {
		printUsage()
		return nil
	}

	command := os.Args[1]
	switch command {
	case "chat":
		return handleChatCommand(os.Args[2:])
	case "serve":
		return handleServeCommand(os.Args[2:])
	case "ask":
		return handleAskCommand(os.Args[2:])
	case "setup":
		return handleSetupCommand()
	case "config":
		return handleConfigCommand(os.Args[2:])
	case "version", "--version", "-v":
		printVersion()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println("usage: askhook [-h] {chat,serve,ask,setup,config,version} ...")
	fmt.Println("")
	fmt.Println("positional arguments:")
	fmt.Println("  {chat,serve,ask,setup,config,version}")
	fmt.Println("                        Askhook CLI commands")
	fmt.Println("    chat                Open the terminal chat surface (default)")
	fmt.Println("    serve               Serve the web page and JSON API")
	fmt.Println("    ask                 Send one question and print the analysis")
	fmt.Println("    setup               Run interactive setup")
	fmt.Println("    config              Manage configuration")
	fmt.Println("    version             Show version information")
	fmt.Println("")
	fmt.Println("options:")
	fmt.Println("  -h, --help            show this help message and exit")
}
