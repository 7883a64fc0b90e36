package prep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/amishk599/prepkit/internal/analyzer"
	"github.com/amishk599/prepkit/internal/history"
	"github.com/amishk599/prepkit/internal/model"
)

// Request is one "Analyze" action from a caller.
type Request struct {
	Company string
	Role    string
	JDText  string
}

// Outcome is what an action produced. Saved is false when the entry could not
// be persisted; the entry itself is still valid and usable.
type Outcome struct {
	Entry    model.AnalysisEntry
	Warnings []string
	Saved    bool
}

// Service owns the full analyze pipeline:
// validate → analyze → build entry → upsert.
type Service struct {
	analyzer *analyzer.Analyzer
	store    model.HistoryStore
	logger   *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewService creates a service wired with all its dependencies.
func NewService(az *analyzer.Analyzer, store model.HistoryStore, logger *slog.Logger) *Service {
	return &Service{
		analyzer: az,
		store:    store,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Analyze validates the request, runs the analysis and records it as a new
// history entry. Validation failures return a *model.ValidationError and
// create nothing. Storage failures are logged and reported via Outcome.Saved.
func (s *Service) Analyze(ctx context.Context, req Request) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	result, err := s.analyzer.Analyze(req.Company, req.Role, req.JDText)
	if err != nil {
		return Outcome{}, fmt.Errorf("analyzing: %w", err)
	}
	for _, w := range result.Warnings {
		s.logger.Warn("analysis advisory", "warning", w)
	}

	entry, saved := s.CreateEntry(s.newID(), s.now(), req.Company, req.Role, req.JDText, &result)

	s.logger.Info("analyzed job description",
		"id", entry.ID,
		"company", entry.Company,
		"skills", len(entry.ExtractedSkills.Skills()),
		"base_score", entry.BaseScore,
		"saved", saved,
	)

	return Outcome{Entry: entry, Warnings: result.Warnings, Saved: saved}, nil
}

// CreateEntry builds a history entry and upserts it. A nil result is derived
// from the inputs without validation. It reports whether the write succeeded.
func (s *Service) CreateEntry(id string, createdAt time.Time, company, role, jdText string, result *model.AnalysisResult) (model.AnalysisEntry, bool) {
	if result == nil {
		r := s.analyzer.Derive(company, role, jdText)
		result = &r
	}

	entry := history.NewEntry(id, createdAt, company, role, jdText, *result)
	return entry, s.save(entry)
}

// Load returns the entry with id, or the most recent entry when id is empty.
func (s *Service) Load(id string) (model.AnalysisEntry, error) {
	if id == "" {
		return s.store.Latest()
	}
	return s.store.LoadByID(id)
}

// History returns all loadable entries and how many stored records were
// skipped as corrupted.
func (s *Service) History() ([]model.AnalysisEntry, int) {
	entries, corrupted := s.store.LoadWithStats()
	if corrupted > 0 {
		s.logger.Warn("some history entries could not be loaded", "corrupted", corrupted)
	}
	return entries, corrupted
}

// SetConfidence marks one skill of an entry as known or to-practice and
// persists the updated entry.
func (s *Service) SetConfidence(id, skill string, c model.Confidence) (Outcome, error) {
	return s.update(id, func(e model.AnalysisEntry) (model.AnalysisEntry, error) {
		return history.SetConfidence(e, skill, c, s.now())
	})
}

// ToggleConfidence flips one skill between "know" and "practice".
func (s *Service) ToggleConfidence(id, skill string) (Outcome, error) {
	return s.update(id, func(e model.AnalysisEntry) (model.AnalysisEntry, error) {
		return history.ToggleConfidence(e, skill, s.now())
	})
}

// Save persists an entry that was already updated in memory, as the review
// screen does after each toggle.
func (s *Service) Save(entry model.AnalysisEntry) error {
	if err := s.store.Upsert(entry); err != nil {
		s.logger.Error("failed to save history entry", "id", entry.ID, "error", err)
		return err
	}
	return nil
}

func (s *Service) update(id string, fn func(model.AnalysisEntry) (model.AnalysisEntry, error)) (Outcome, error) {
	entry, err := s.Load(id)
	if err != nil {
		return Outcome{}, err
	}
	updated, err := fn(entry)
	if err != nil {
		return Outcome{}, err
	}
	saved := s.save(updated)
	return Outcome{Entry: updated, Saved: saved}, nil
}

func (s *Service) save(entry model.AnalysisEntry) bool {
	return s.Save(entry) == nil
}
