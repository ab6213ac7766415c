package cli

import "github.com/pterm/pterm"

// printBanner prints the compact command header
func printBanner() {
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)).
		Printf(" searchlab v%s ", version)
	pterm.Println()
}
