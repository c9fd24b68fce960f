package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-ports/tpm/internal/project"
)

// SelectResult is the outcome of a single-choice project picker.
type SelectResult struct {
	Project   project.Project
	Cancelled bool
}

// projectItem adapts a project to the bubbles list widget.
type projectItem struct {
	project.Project
}

func (i projectItem) Title() string       { return i.Name }
func (i projectItem) Description() string { return i.Path }
func (i projectItem) FilterValue() string { return i.Name }

type selectModel struct {
	list   list.Model
	result SelectResult
}

func newSelectModel(title string, projects []project.Project) selectModel {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{p}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(accentColor).
		BorderLeftForeground(accentColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(subtleColor).
		BorderLeftForeground(accentColor)

	l := list.New(items, delegate, 0, 14)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return selectModel{list: l}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		// While the filter input is active, all keys belong to it.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.result = SelectResult{Cancelled: true}
			return m, tea.Quit
		case "enter":
			if item, itemOK := m.list.SelectedItem().(projectItem); itemOK {
				m.result = SelectResult{Project: item.Project}
			} else {
				m.result = SelectResult{Cancelled: true}
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	return appStyle.Render(m.list.View())
}

// SelectProject presents the projects as a filterable single-choice menu and
// returns the chosen record, or Cancelled when the user aborts.
func SelectProject(title string, projects []project.Project) (SelectResult, error) {
	final, err := tea.NewProgram(newSelectModel(title, projects)).Run()
	if err != nil {
		return SelectResult{}, fmt.Errorf("ui.SelectProject: %w", err)
	}
	m, _ := final.(selectModel)
	return m.result, nil
}
