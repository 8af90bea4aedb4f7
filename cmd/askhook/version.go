package askhook

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Version information
const (
	Version = "1.0.0"
	Name    = "Askhook"
	Author  = "Rafael Schardosin Silva"
	GitHub  = "https://github.com/schardosin/askhook"
)

// ASCII Logo with colors using lipgloss
var asciiLogo = `
    ___           __    __                   __
   /   |   _____ / /__ / /_   ____   ____   / /__
  / /| |  / ___// //_// __ \ / __ \ / __ \ / //_/
 / ___ | (__  )/ ,<  / / / // /_/ // /_/ // ,<
/_/  |_|/____//_/|_|/_/ /_/ \____/ \____//_/|_|
`

func printVersion() {
	// Styles
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")). // Pink/Magenta
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")). // Purple
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")) // White/Grey

	linkStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")). // Blue
		Underline(true)

	// Print logo
	fmt.Println(logoStyle.Render(asciiLogo))
	fmt.Println()

	// Print version info
	fmt.Println(labelStyle.Render(Name))
	fmt.Printf("%s %s\n", labelStyle.Render("Version:"), valueStyle.Render(Version))
	fmt.Printf("%s %s\n", labelStyle.Render("Author:"), valueStyle.Render(Author))
	fmt.Printf("%s %s\n", labelStyle.Render("GitHub:"), linkStyle.Render(GitHub))
	fmt.Println()
}
