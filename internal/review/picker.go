package review

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/prepkit/internal/model"
)

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Padding(1, 0, 1, 2)

	pickerItemStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 4)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 0, 0, 2)

	pickerHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)

	pickerWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 0, 0, 2)
)

type pickerModel struct {
	entries   []model.AnalysisEntry
	corrupted int
	cursor    int
	chosen    int // -1 = no choice yet, -2 = quit
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.chosen = -2
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.entries) > 0 {
				m.chosen = m.cursor
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	s := pickerTitleStyle.Render("History — Select an analysis")
	s += "\n"

	if m.corrupted > 0 {
		s += pickerWarnStyle.Render(corruptedAdvisory(m.corrupted)) + "\n\n"
	}

	for i, e := range m.entries {
		label := fmt.Sprintf("%s  %s / %s  score %d",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), dash(e.Company), dash(e.Role), e.FinalScore)
		if i == m.cursor {
			s += pickerSelectedStyle.Render("> "+label) + "\n"
		} else {
			s += pickerItemStyle.Render(label) + "\n"
		}
	}

	s += pickerHintStyle.Render("↑/↓/j/k navigate  enter select  q quit")
	return s
}

func corruptedAdvisory(n int) string {
	if n == 1 {
		return "One saved entry could not be loaded and was skipped."
	}
	return fmt.Sprintf("%d saved entries could not be loaded and were skipped.", n)
}

// RunHistoryPicker shows an interactive history selector.
// Returns the index of the chosen entry, or -1 if the user quit.
func RunHistoryPicker(entries []model.AnalysisEntry, corrupted int) (int, error) {
	m := pickerModel{
		entries:   entries,
		corrupted: corrupted,
		chosen:    -1,
	}

	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return -1, err
	}

	final := result.(pickerModel)
	if final.chosen < 0 {
		return -1, nil
	}
	return final.chosen, nil
}
