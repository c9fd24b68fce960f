package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmResult is the outcome of a yes/no prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	prompt     string
	defaultYes bool
	result     ConfirmResult
}

func newConfirmModel(prompt string, defaultYes bool) confirmModel {
	return confirmModel{prompt: prompt, defaultYes: defaultYes}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.result = ConfirmResult{Cancelled: true}
		return m, tea.Quit
	case "y", "Y":
		m.result = ConfirmResult{Confirmed: true}
		return m, tea.Quit
	case "n", "N":
		m.result = ConfirmResult{Confirmed: false}
		return m, tea.Quit
	case "enter":
		m.result = ConfirmResult{Confirmed: m.defaultYes}
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	hint := "[y/N]"
	if m.defaultYes {
		hint = "[Y/n]"
	}
	return appStyle.Render(promptStyle.Render(m.prompt) + " " + dimStyle.Render(hint) + "\n")
}

// Confirm asks a yes/no question; enter picks the default answer.
func Confirm(prompt string, defaultYes bool) (ConfirmResult, error) {
	final, err := tea.NewProgram(newConfirmModel(prompt, defaultYes)).Run()
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("ui.Confirm: %w", err)
	}
	m, _ := final.(confirmModel)
	return m.result, nil
}
