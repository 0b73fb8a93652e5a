package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/imtgo/internal/tui"
)

func main() {
	// Optional fiscal rules file
	rulesPath := ""
	if len(os.Args) > 1 {
		rulesPath = os.Args[1]
		if _, err := os.Stat(rulesPath); os.IsNotExist(err) {
			fmt.Printf("Error: rules file not found: %s\n", rulesPath)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(
		tui.NewModel(rulesPath),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
