package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FormResult is the outcome of the two-field project form.
type FormResult struct {
	Name      string
	Path      string
	Cancelled bool
}

const (
	fieldName = iota
	fieldPath
)

type formModel struct {
	title  string
	inputs []textinput.Model
	focus  int
	result FormResult
}

func newFormModel(title, name, path string) formModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "project name"
	nameInput.SetValue(name)
	nameInput.CharLimit = 256
	nameInput.Width = 48
	nameInput.Focus()

	pathInput := textinput.New()
	pathInput.Placeholder = "project path"
	pathInput.SetValue(path)
	pathInput.CharLimit = 1024
	pathInput.Width = 48

	return formModel{
		title:  title,
		inputs: []textinput.Model{nameInput, pathInput},
	}
}

func (m formModel) Init() tea.Cmd { return textinput.Blink }

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyMsg); isKey {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.result = FormResult{Cancelled: true}
			return m, tea.Quit
		case "tab", "down":
			return m.setFocus((m.focus + 1) % len(m.inputs)), nil
		case "shift+tab", "up":
			return m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs)), nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				return m.setFocus(m.focus + 1), nil
			}
			m.result = FormResult{
				Name: strings.TrimSpace(m.inputs[fieldName].Value()),
				Path: strings.TrimSpace(m.inputs[fieldPath].Value()),
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) setFocus(i int) formModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("Project name") + "\n")
	b.WriteString(m.inputs[fieldName].View() + "\n\n")
	b.WriteString(promptStyle.Render("Project path") + "\n")
	b.WriteString(m.inputs[fieldPath].View() + "\n\n")
	b.WriteString(dimStyle.Render("tab next field · enter confirm · esc cancel") + "\n")
	return appStyle.Render(b.String())
}

// ProjectForm prompts for a project name and path, pre-filled with the given
// values, and returns the trimmed inputs, or Cancelled when the user aborts.
func ProjectForm(title, name, path string) (FormResult, error) {
	final, err := tea.NewProgram(newFormModel(title, name, path)).Run()
	if err != nil {
		return FormResult{}, fmt.Errorf("ui.ProjectForm: %w", err)
	}
	m, _ := final.(formModel)
	return m.result, nil
}
