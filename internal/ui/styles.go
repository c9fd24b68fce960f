// Package ui implements the interactive prompt components: project pickers,
// fixed menus, the add/edit form, and yes/no confirms. Every component runs
// as its own inline bubbletea program and reports cancellation as a result
// field, never as an error.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const banner = `
                                  __
    ____  _________  _____  _____/ /______
   / __ \/ ___/ __ \/ / _ \/ ___/ __/ ___/
  / /_/ / /  / /_/ / /  __/ /__/ /__\__ \
 / .___/_/   \____/ /\___/\___/\___/____/
/_/            /___/
`

var (
	accentColor = lipgloss.Color("205")
	subtleColor = lipgloss.Color("243")

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	selectedStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	bannerStyle = lipgloss.NewStyle().
			Foreground(accentColor)
)

// Banner renders the welcome banner shown above the home menu.
func Banner() string {
	return bannerStyle.Render(strings.Trim(banner, "\n")) + "\n\n"
}
