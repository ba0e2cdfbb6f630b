// Package ui implements the interactive prompt that collects a student
// id and a report kind when they are not supplied as flags.
package ui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/kavya/markbook/internal/report"
	"github.com/kavya/markbook/internal/ui/components"
	"github.com/kavya/markbook/internal/ui/theme"
)

// Selection is the result of a completed prompt.
type Selection struct {
	StudentID string
	Kind      report.Kind
}

// kindChosenMsg is emitted by the kind menu when an item is selected.
type kindChosenMsg struct {
	kind report.Kind
}

type step int

const (
	stepStudent step = iota
	stepKind
)

// promptModel walks the user through the two questions.
type promptModel struct {
	step      step
	input     components.TextInput
	menu      components.Menu
	selection Selection
	done      bool
	canceled  bool
}

func newPromptModel() promptModel {
	items := make([]components.MenuItem, len(report.Kinds))
	for i, k := range report.Kinds {
		kind := k
		items[i] = components.MenuItem{
			Label: string(kind),
			Action: func() tea.Cmd {
				return func() tea.Msg { return kindChosenMsg{kind: kind} }
			},
		}
	}

	return promptModel{
		input: components.NewTextInput("student1", 64),
		menu:  components.NewMenu(items),
	}
}

func (m promptModel) Init() tea.Cmd {
	return m.input.Init()
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			if m.step == stepStudent {
				if v := m.input.Value(); v != "" {
					m.selection.StudentID = v
					m.step = stepKind
				}
				return m, nil
			}
		}

	case kindChosenMsg:
		m.selection.Kind = msg.kind
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.step {
	case stepStudent:
		m.input, cmd = m.input.Update(msg)
	case stepKind:
		m.menu, cmd = m.menu.Update(msg)
	}
	return m, cmd
}

func (m promptModel) View() tea.View {
	s := theme.Title.Render("Assessment Reports") + "\n\n"

	switch m.step {
	case stepStudent:
		s += theme.Body.Render("Student ID") + "\n"
		s += m.input.View() + "\n\n"
		s += theme.Hint.Render("Enter to continue, Esc to cancel") + "\n"
	case stepKind:
		s += theme.Body.Render(fmt.Sprintf("Report for %s", m.selection.StudentID)) + "\n\n"
		s += m.menu.View() + "\n"
		s += theme.Hint.Render("↑↓ to choose, Enter to select, Esc to cancel") + "\n"
	}

	return tea.NewView(s)
}

// RunPrompt runs the interactive prompt and returns the selection.
// ok is false when the user canceled.
func RunPrompt() (sel Selection, ok bool, err error) {
	p := tea.NewProgram(newPromptModel())
	final, err := p.Run()
	if err != nil {
		return Selection{}, false, fmt.Errorf("run prompt: %w", err)
	}

	m, isPrompt := final.(promptModel)
	if !isPrompt || !m.done {
		return Selection{}, false, nil
	}
	return m.selection, true, nil
}
