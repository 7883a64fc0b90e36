package review

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/prepkit/internal/analyzer"
	"github.com/amishk599/prepkit/internal/history"
	"github.com/amishk599/prepkit/internal/model"
)

func testEntry(t *testing.T) model.AnalysisEntry {
	t.Helper()
	jd := "We need React and SQL experience, Docker a plus."
	result := analyzer.New(analyzer.Options{}).Derive("Acme", "Intern", jd)
	return history.NewEntry("e1", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "Acme", "Intern", jd, result)
}

func sized(t *testing.T, m reviewModel) reviewModel {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(reviewModel)
}

func press(m reviewModel, msg tea.KeyMsg) reviewModel {
	next, _ := m.Update(msg)
	return next.(reviewModel)
}

func TestReview_ToggleUpdatesScoreAndSaves(t *testing.T) {
	e := testEntry(t)
	var saved []model.AnalysisEntry
	m := sized(t, newReviewModel(e, func(e model.AnalysisEntry) error {
		saved = append(saved, e)
		return nil
	}))

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	first := m.skills[0]
	if m.entry.SkillConfidenceMap[first] != model.ConfidenceKnow {
		t.Fatalf("%s = %q, want know", first, m.entry.SkillConfidenceMap[first])
	}
	if m.entry.FinalScore != e.FinalScore+4 {
		t.Errorf("FinalScore = %d, want %d", m.entry.FinalScore, e.FinalScore+4)
	}
	if len(saved) != 1 || saved[0].FinalScore != m.entry.FinalScore {
		t.Errorf("expected one save with the new score, got %d saves", len(saved))
	}
	if !strings.Contains(m.View(), "[know]") {
		t.Error("expected know badge in view")
	}
}

func TestReview_CursorMovesAndToggleTargetsIt(t *testing.T) {
	m := sized(t, newReviewModel(testEntry(t), nil))

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.entry.SkillConfidenceMap[m.skills[1]] != model.ConfidenceKnow {
		t.Errorf("expected %s toggled", m.skills[1])
	}
	if m.entry.SkillConfidenceMap[m.skills[0]] != model.ConfidencePractice {
		t.Errorf("expected %s untouched", m.skills[0])
	}
}

func TestReview_SaveFailureKeepsToggle(t *testing.T) {
	m := sized(t, newReviewModel(testEntry(t), func(model.AnalysisEntry) error {
		return errors.New("disk full")
	}))

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.failed {
		t.Fatal("expected failed status")
	}
	if !strings.Contains(m.status, "not saved") {
		t.Errorf("status = %q", m.status)
	}
	if m.entry.SkillConfidenceMap[m.skills[0]] != model.ConfidenceKnow {
		t.Error("toggle should stay applied in memory")
	}
}

func TestReview_TabSwitchesPaneAndDisablesToggle(t *testing.T) {
	e := testEntry(t)
	m := sized(t, newReviewModel(e, nil))

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activePane != paneReport {
		t.Fatalf("activePane = %d, want report", m.activePane)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.entry.FinalScore != e.FinalScore {
		t.Error("enter in report pane must not toggle")
	}
}

func TestReview_QuitAndBack(t *testing.T) {
	m := sized(t, newReviewModel(testEntry(t), nil))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || !next.(reviewModel).wantQuit {
		t.Error("q should quit with wantQuit")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || next.(reviewModel).wantQuit {
		t.Error("esc should return to the picker")
	}
}

func TestPicker_SelectsEntry(t *testing.T) {
	entries := []model.AnalysisEntry{testEntry(t), testEntry(t)}
	entries[1].ID = "e2"
	var m tea.Model = pickerModel{entries: entries, corrupted: 1, chosen: -1}

	if !strings.Contains(m.View(), "One saved entry could not be loaded") {
		t.Error("expected corrupted advisory in picker")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.(pickerModel).chosen; got != 1 {
		t.Errorf("chosen = %d, want 1", got)
	}
}
