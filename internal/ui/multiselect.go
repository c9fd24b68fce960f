package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-ports/tpm/internal/project"
)

// MultiSelectResult is the outcome of a multi-choice project picker.
// Projects may be empty even when the prompt was not cancelled.
type MultiSelectResult struct {
	Projects  []project.Project
	Cancelled bool
}

// multiSelectModel is a hand-rolled toggle list: the bubbles list widget has
// no multi-select mode, so selection state lives here.
type multiSelectModel struct {
	title    string
	projects []project.Project
	cursor   int
	selected map[int]bool
	result   MultiSelectResult
}

func newMultiSelectModel(title string, projects []project.Project) multiSelectModel {
	return multiSelectModel{
		title:    title,
		projects: projects,
		selected: make(map[int]bool),
	}
}

func (m multiSelectModel) Init() tea.Cmd { return nil }

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		m.result = MultiSelectResult{Cancelled: true}
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case " ":
		m.selected[m.cursor] = !m.selected[m.cursor]
	case "a":
		all := len(m.selected) < len(m.projects)
		for i := range m.projects {
			if all {
				m.selected[i] = true
			} else {
				delete(m.selected, i)
			}
		}
	case "enter":
		var picked []project.Project
		for i, p := range m.projects {
			if m.selected[i] {
				picked = append(picked, p)
			}
		}
		m.result = MultiSelectResult{Projects: picked}
		return m, tea.Quit
	}
	return m, nil
}

func (m multiSelectModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, p := range m.projects {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if m.selected[i] {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s", check, p.String())
		if m.selected[i] {
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("space toggle · a all · enter confirm · esc cancel") + "\n")
	return appStyle.Render(b.String())
}

// SelectProjects presents the projects as a multi-choice toggle list and
// returns zero or more chosen records, or Cancelled when the user aborts.
func SelectProjects(title string, projects []project.Project) (MultiSelectResult, error) {
	final, err := tea.NewProgram(newMultiSelectModel(title, projects)).Run()
	if err != nil {
		return MultiSelectResult{}, fmt.Errorf("ui.SelectProjects: %w", err)
	}
	m, _ := final.(multiSelectModel)
	return m.result, nil
}
