package prep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/amishk599/prepkit/internal/analyzer"
	"github.com/amishk599/prepkit/internal/history"
	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/store"
)

// --- Fakes ---

// failingKV accepts reads but rejects every write.
type failingKV struct {
	*store.MemoryStore
}

func (f failingKV) Set(string, string) error { return errors.New("disk full") }

// --- Helpers ---

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, kv model.KVStore) *Service {
	t.Helper()
	az := analyzer.New(analyzer.Options{})
	svc := NewService(az, history.NewStore(kv, az, discardLogger()), discardLogger())
	svc.now = func() time.Time { return fixedNow }
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return svc
}

func longJD() string {
	return "We need React and SQL experience, Docker a plus. " + strings.Repeat("Ship features with the team. ", 10)
}

// --- Tests ---

func TestAnalyze_CreatesEntry(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())

	out, err := svc.Analyze(context.Background(), Request{Company: "Acme", Role: "Intern", JDText: longJD()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Saved {
		t.Fatal("expected entry to be saved")
	}
	if out.Entry.ID != "id-1" {
		t.Errorf("ID = %q, want id-1", out.Entry.ID)
	}
	if !out.Entry.CreatedAt.Equal(fixedNow) {
		t.Errorf("CreatedAt = %v, want %v", out.Entry.CreatedAt, fixedNow)
	}
	if out.Entry.BaseScore != 70 {
		t.Errorf("BaseScore = %d, want 70", out.Entry.BaseScore)
	}

	got, err := svc.Load("")
	if err != nil {
		t.Fatalf("Load latest: %v", err)
	}
	if got.ID != out.Entry.ID {
		t.Errorf("latest = %q, want %q", got.ID, out.Entry.ID)
	}
}

func TestAnalyze_EmptyJDCreatesNothing(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())

	_, err := svc.Analyze(context.Background(), Request{JDText: "   "})
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if entries, _ := svc.History(); len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestAnalyze_CancelledContext(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Analyze(ctx, Request{JDText: longJD()}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAnalyze_ShortJDWarnsButSaves(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())

	out, err := svc.Analyze(context.Background(), Request{JDText: "React role"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", out.Warnings)
	}
	if !out.Saved {
		t.Fatal("expected entry to be saved")
	}
}

func TestAnalyze_StorageFailureStillReturnsResult(t *testing.T) {
	svc := newTestService(t, failingKV{store.NewMemoryStore()})

	out, err := svc.Analyze(context.Background(), Request{JDText: longJD()})
	if err != nil {
		t.Fatalf("storage failure must not fail the analysis: %v", err)
	}
	if out.Saved {
		t.Fatal("expected Saved=false")
	}
	if len(out.Entry.Questions) != analyzer.QuestionCount {
		t.Errorf("expected a full result, got %d questions", len(out.Entry.Questions))
	}
}

func TestCreateEntry_DerivesMissingResult(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())

	entry, saved := svc.CreateEntry("manual", fixedNow, "Google", "SDE", "Python and AWS", nil)
	if !saved {
		t.Fatal("expected entry to be saved")
	}
	if entry.CompanyIntel == nil || entry.CompanyIntel.SizeCategory != model.SizeEnterprise {
		t.Errorf("expected Enterprise intel, got %+v", entry.CompanyIntel)
	}
	if _, err := svc.Load("manual"); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestToggleConfidence_Persists(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())
	out, err := svc.Analyze(context.Background(), Request{JDText: longJD()})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	base := out.Entry.FinalScore

	toggled, err := svc.ToggleConfidence(out.Entry.ID, "React")
	if err != nil {
		t.Fatalf("ToggleConfidence: %v", err)
	}
	if toggled.Entry.FinalScore != base+4 {
		t.Errorf("FinalScore = %d, want %d", toggled.Entry.FinalScore, base+4)
	}

	reloaded, err := svc.Load(out.Entry.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded.SkillConfidenceMap["React"] != model.ConfidenceKnow {
		t.Errorf("React = %q, want know", reloaded.SkillConfidenceMap["React"])
	}
	if reloaded.FinalScore != base+4 {
		t.Errorf("reloaded FinalScore = %d, want %d", reloaded.FinalScore, base+4)
	}
}

func TestSetConfidence_Errors(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())

	if _, err := svc.SetConfidence("missing", "React", model.ConfidenceKnow); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	out, _ := svc.Analyze(context.Background(), Request{JDText: longJD()})
	if _, err := svc.SetConfidence(out.Entry.ID, "Haskell", model.ConfidenceKnow); err == nil {
		t.Error("expected error for a skill that was not extracted")
	}
}

func TestHistory_ReportsCorrupted(t *testing.T) {
	kv := store.NewMemoryStore()
	if err := kv.Set(history.HistoryKey, `[{"id":"x","jdText":"no date"}]`); err != nil {
		t.Fatal(err)
	}
	svc := newTestService(t, kv)

	entries, corrupted := svc.History()
	if len(entries) != 0 || corrupted != 1 {
		t.Fatalf("got %d entries, %d corrupted; want 0, 1", len(entries), corrupted)
	}
}
