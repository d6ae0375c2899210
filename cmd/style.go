package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7fd1b9"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0a458"))
)

// field prints one aligned "label value" line.
func field(label string, value interface{}) {
	fmt.Printf("%s %v\n", labelStyle.Render(fmt.Sprintf("%-12s", label)), value)
}

func title(name string) {
	fmt.Println(nameStyle.Render(name))
}
