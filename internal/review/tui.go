package review

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/prepkit/internal/export"
	"github.com/amishk599/prepkit/internal/history"
	"github.com/amishk599/prepkit/internal/model"
)

const (
	paneSkills = 0
	paneReport = 1
)

var (
	activeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")) // bright blue

	inactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")) // dim gray

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	activeHeaderStyle = headerStyle.
				Foreground(lipgloss.Color("39"))

	inactiveHeaderStyle = headerStyle.
				Foreground(lipgloss.Color("240"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	skillStyle = lipgloss.NewStyle()

	selectedSkillStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")). // bright white
				Background(lipgloss.Color("24"))  // dark blue bg

	knowBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // green

	practiceBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")) // orange

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// SaveFunc persists an entry after a toggle. A nil error means it was saved.
type SaveFunc func(model.AnalysisEntry) error

type reviewModel struct {
	entry  model.AnalysisEntry
	skills []string
	save   SaveFunc
	now    func() time.Time

	skillsViewport viewport.Model
	reportViewport viewport.Model
	activePane     int
	cursor         int
	width          int
	height         int
	ready          bool

	status   string
	failed   bool
	wantQuit bool
}

func newReviewModel(entry model.AnalysisEntry, save SaveFunc) reviewModel {
	return reviewModel{
		entry:  entry,
		skills: entry.ExtractedSkills.Skills(),
		save:   save,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.wantQuit = true
			return m, tea.Quit
		case "esc", "b":
			m.wantQuit = false
			return m, tea.Quit
		case "tab", "left", "right":
			m.activePane = 1 - m.activePane
			m.recalcContent()
			return m, nil
		}

		if m.activePane == paneSkills {
			switch msg.String() {
			case "up", "k":
				m.cursor = clamp(m.cursor-1, 0, max(len(m.skills)-1, 0))
				m.recalcContent()
				return m, nil
			case "down", "j":
				m.cursor = clamp(m.cursor+1, 0, max(len(m.skills)-1, 0))
				m.recalcContent()
				return m, nil
			case " ", "enter":
				m.toggle()
				return m, nil
			}
		}

		// Forward other keys (pgup/pgdn/home/end) to the active viewport.
		var cmd tea.Cmd
		if m.activePane == paneSkills {
			m.skillsViewport, cmd = m.skillsViewport.Update(msg)
		} else {
			m.reportViewport, cmd = m.reportViewport.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

// toggle flips the skill under the cursor, recomputes the score and saves.
// The in-memory entry keeps the new value even if saving fails.
func (m *reviewModel) toggle() {
	if len(m.skills) == 0 {
		return
	}
	skill := m.skills[m.cursor]
	updated, err := history.ToggleConfidence(m.entry, skill, m.now())
	if err != nil {
		m.status, m.failed = err.Error(), true
		return
	}
	m.entry = updated

	m.status = fmt.Sprintf("%s → %s (saved)", skill, updated.SkillConfidenceMap[skill])
	m.failed = false
	if m.save != nil {
		if err := m.save(updated); err != nil {
			m.status = fmt.Sprintf("%s → %s (not saved: %v)", skill, updated.SkillConfidenceMap[skill], err)
			m.failed = true
		}
	}
	m.recalcContent()
}

func (m *reviewModel) recalcLayout() {
	// Skills pane is narrow; the report gets the rest.
	skillsWidth := clamp(m.width/3, 24, 40)
	reportWidth := max(m.width-skillsWidth-5, 20)

	// Header (1 line) + border top/bottom (2) + status bar (1) = 4 lines overhead.
	paneHeight := max(m.height-4, 5)

	if !m.ready {
		m.skillsViewport = viewport.New(skillsWidth, paneHeight)
		m.reportViewport = viewport.New(reportWidth, paneHeight)
		m.ready = true
	} else {
		m.skillsViewport.Width = skillsWidth
		m.skillsViewport.Height = paneHeight
		m.reportViewport.Width = reportWidth
		m.reportViewport.Height = paneHeight
	}

	m.recalcContent()
}

func (m *reviewModel) recalcContent() {
	m.skillsViewport.SetContent(renderSkills(m.skills, m.entry.SkillConfidenceMap, m.cursor, m.activePane == paneSkills))

	report, err := export.Report(m.entry)
	if err != nil {
		report = errorStyle.Render(err.Error())
	}
	m.reportViewport.SetContent(report)
}

func (m reviewModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	skillsHeader := fmt.Sprintf(" Skills (%d)  ", len(m.skills)) +
		scoreStyle.Render(fmt.Sprintf("Score %d", m.entry.FinalScore))
	reportHeader := fmt.Sprintf(" Report: %s / %s", dash(m.entry.Company), dash(m.entry.Role))

	var skillsHeaderRendered, reportHeaderRendered string
	var skillsBorder, reportBorder lipgloss.Style

	if m.activePane == paneSkills {
		skillsHeaderRendered = activeHeaderStyle.Render(skillsHeader)
		reportHeaderRendered = inactiveHeaderStyle.Render(reportHeader)
		skillsBorder = activeBorderStyle.Width(m.skillsViewport.Width)
		reportBorder = inactiveBorderStyle.Width(m.reportViewport.Width)
	} else {
		skillsHeaderRendered = inactiveHeaderStyle.Render(skillsHeader)
		reportHeaderRendered = activeHeaderStyle.Render(reportHeader)
		skillsBorder = inactiveBorderStyle.Width(m.skillsViewport.Width)
		reportBorder = activeBorderStyle.Width(m.reportViewport.Width)
	}

	headerRow := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(m.skillsViewport.Width+2).Render(skillsHeaderRendered),
		" ",
		lipgloss.NewStyle().Width(m.reportViewport.Width+2).Render(reportHeaderRendered),
	)

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		skillsBorder.Render(m.skillsViewport.View()),
		" ",
		reportBorder.Render(m.reportViewport.View()),
	)

	statusText := " base " + fmt.Sprint(m.entry.BaseScore) + "    Tab switch  ↑/↓ cursor  space toggle  Esc back  q quit"
	if m.status != "" {
		statusText = " " + m.status + "    " + statusText
	}
	statusBar := statusBarStyle.Width(m.width).Render(statusText)
	if m.failed {
		statusBar = statusBarStyle.Foreground(lipgloss.Color("196")).Width(m.width).Render(statusText)
	}

	return headerRow + "\n" + panes + "\n" + statusBar
}

func renderSkills(skills []string, conf map[string]model.Confidence, cursor int, isActive bool) string {
	if len(skills) == 0 {
		return "  (no skills to rate)"
	}

	var b strings.Builder
	for i, s := range skills {
		st := skillStyle
		prefix := "  "
		if isActive && i == cursor {
			st = selectedSkillStyle
			prefix = "> "
		}

		badge := practiceBadgeStyle.Render("[practice]")
		if conf[s] == model.ConfidenceKnow {
			badge = knowBadgeStyle.Render("[know]    ")
		}

		b.WriteString(prefix)
		b.WriteString(badge)
		b.WriteByte(' ')
		b.WriteString(st.Render(s))
		if i < len(skills)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return export.Placeholder
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RunReview launches the split-pane review TUI for one entry. save is called
// after every toggle. It returns the final entry and wantQuit=true if the user
// pressed q/ctrl+c, false if they pressed esc to return to the picker.
func RunReview(entry model.AnalysisEntry, save SaveFunc) (model.AnalysisEntry, bool, error) {
	p := tea.NewProgram(newReviewModel(entry, save), tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return entry, true, err
	}
	final := result.(reviewModel)
	return final.entry, final.wantQuit, nil
}
