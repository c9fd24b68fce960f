package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ChoiceResult is the outcome of a fixed-option menu.
type ChoiceResult struct {
	Index     int
	Cancelled bool
}

type chooseModel struct {
	title   string
	options []string
	cursor  int
	result  ChoiceResult
}

func newChooseModel(title string, options []string) chooseModel {
	return chooseModel{title: title, options: options}
}

func (m chooseModel) Init() tea.Cmd { return nil }

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		m.result = ChoiceResult{Cancelled: true}
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.result = ChoiceResult{Index: m.cursor}
		return m, tea.Quit
	}
	return m, nil
}

func (m chooseModel) View() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + selectedStyle.Render(opt) + "\n")
		} else {
			b.WriteString("  " + opt + "\n")
		}
	}
	b.WriteString("\n" + dimStyle.Render("enter select · esc cancel") + "\n")
	return appStyle.Render(b.String())
}

// Choose presents a fixed menu (home menu, Terminal/Editor, ...) and returns
// the index of the chosen option, or Cancelled when the user aborts.
func Choose(title string, options []string) (ChoiceResult, error) {
	final, err := tea.NewProgram(newChooseModel(title, options)).Run()
	if err != nil {
		return ChoiceResult{}, fmt.Errorf("ui.Choose: %w", err)
	}
	m, _ := final.(chooseModel)
	return m.result, nil
}
