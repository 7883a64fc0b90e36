package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amishk599/prepkit/internal/analyzer"
	"github.com/amishk599/prepkit/internal/model"
)

const (
	// HistoryKey holds the canonical most-recent-first JSON array of entries.
	HistoryKey = "prp_history_v1"
	// LegacyHistoryKey is read once and migrated into HistoryKey.
	LegacyHistoryKey = "prp_history"
)

var _ model.HistoryStore = (*Store)(nil)

// Store keeps the analysis history as one JSON array under a single key of
// a KVStore. Every write replaces the whole array. There is no protection
// against two processes writing at once: the last write wins.
type Store struct {
	kv         model.KVStore
	normalizer *Normalizer
	logger     *slog.Logger
}

// NewStore creates a history store over kv. az re-derives fields that older
// records lack.
func NewStore(kv model.KVStore, az *analyzer.Analyzer, logger *slog.Logger) *Store {
	return &Store{
		kv:         kv,
		normalizer: NewNormalizer(az),
		logger:     logger,
	}
}

// LoadAll returns every well-formed entry, most recent first. Read failures
// yield an empty list.
func (s *Store) LoadAll() []model.AnalysisEntry {
	entries, _ := s.LoadWithStats()
	return entries
}

// LoadWithStats returns the well-formed entries plus the number of records
// that were dropped as corrupted. Corrupted records are never repaired and
// stay in storage untouched.
func (s *Store) LoadWithStats() ([]model.AnalysisEntry, int) {
	records, err := s.readRecords()
	if err != nil {
		s.logger.Warn("history unreadable, treating as empty", "error", err)
		return nil, 0
	}

	entries := make([]model.AnalysisEntry, 0, len(records))
	seen := make(map[string]bool, len(records))
	corrupted := 0
	for i, raw := range records {
		if err := checkRecord(raw); err != nil {
			s.logger.Debug("dropping corrupted history record", "index", i, "error", err)
			corrupted++
			continue
		}
		e, err := s.normalizer.Normalize(raw)
		if err != nil {
			s.logger.Debug("dropping corrupted history record", "index", i, "error", err)
			corrupted++
			continue
		}
		if seen[e.ID] {
			s.logger.Warn("duplicate history id, keeping most recent", "id", e.ID, "index", i)
			continue
		}
		seen[e.ID] = true
		entries = append(entries, e)
	}
	return entries, corrupted
}

// LoadByID returns the entry with id, or model.ErrNotFound.
func (s *Store) LoadByID(id string) (model.AnalysisEntry, error) {
	for _, e := range s.LoadAll() {
		if e.ID == id {
			return e, nil
		}
	}
	return model.AnalysisEntry{}, fmt.Errorf("load %s: %w", id, model.ErrNotFound)
}

// Latest returns the most recent entry, or model.ErrNotFound when the history
// is empty.
func (s *Store) Latest() (model.AnalysisEntry, error) {
	entries := s.LoadAll()
	if len(entries) == 0 {
		return model.AnalysisEntry{}, fmt.Errorf("latest entry: %w", model.ErrNotFound)
	}
	return entries[0], nil
}

// Upsert replaces the first record whose id matches entry.ID, or inserts the
// entry at the front. The confidence map is aligned with the extracted skills
// and FinalScore recomputed before writing, so the stored entry reads back
// unchanged. Records that fail to load are carried over unchanged.
func (s *Store) Upsert(entry model.AnalysisEntry) error {
	entry.SchemaVersion = model.CurrentSchemaVersion
	entry.SkillConfidenceMap = DefaultConfidence(entry.ExtractedSkills, entry.SkillConfidenceMap)
	entry = Recompute(entry)

	encoded, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode entry %s: %w", entry.ID, err)
	}

	records, err := s.readRecords()
	if err != nil {
		var malformed *blobError
		if !errors.As(err, &malformed) {
			return fmt.Errorf("upsert %s: %w", entry.ID, err)
		}
		s.logger.Warn("history blob malformed, overwriting", "error", err)
		records = nil
	}

	replaced := false
	for i, raw := range records {
		if recordID(raw) == entry.ID {
			records[i] = encoded
			replaced = true
			break
		}
	}
	if !replaced {
		records = append([]json.RawMessage{encoded}, records...)
	}

	return s.writeRecords(records)
}

// Clear removes the whole history, including any unmigrated legacy blob.
func (s *Store) Clear() error {
	if err := s.kv.Delete(HistoryKey); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	if err := s.kv.Delete(LegacyHistoryKey); err != nil {
		return fmt.Errorf("clear legacy history: %w", err)
	}
	return nil
}

// blobError marks a stored value that is not a JSON array.
type blobError struct {
	key string
	err error
}

func (e *blobError) Error() string { return fmt.Sprintf("parse %s: %v", e.key, e.err) }
func (e *blobError) Unwrap() error { return e.err }

// readRecords returns the raw records under HistoryKey, migrating the legacy
// key first if the canonical one has never been written.
func (s *Store) readRecords() ([]json.RawMessage, error) {
	blob, ok, err := s.kv.Get(HistoryKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", HistoryKey, err)
	}
	if !ok {
		return s.migrateLegacy()
	}
	return parseBlob(HistoryKey, blob)
}

func (s *Store) migrateLegacy() ([]json.RawMessage, error) {
	blob, ok, err := s.kv.Get(LegacyHistoryKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", LegacyHistoryKey, err)
	}
	if !ok {
		return nil, nil
	}

	records, err := parseBlob(LegacyHistoryKey, blob)
	if err != nil {
		return nil, err
	}
	if err := s.writeRecords(records); err != nil {
		s.logger.Warn("legacy history migration failed", "error", err)
		return records, nil
	}
	if err := s.kv.Delete(LegacyHistoryKey); err != nil {
		s.logger.Warn("could not remove legacy history key", "error", err)
	}
	s.logger.Info("migrated legacy history", "records", len(records))
	return records, nil
}

func (s *Store) writeRecords(records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.kv.Set(HistoryKey, string(blob)); err != nil {
		return fmt.Errorf("write %s: %w", HistoryKey, err)
	}
	return nil
}

func parseBlob(key, blob string) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		return nil, &blobError{key: key, err: err}
	}
	return records, nil
}

// recordID extracts just the id of a raw record, or "" when it has none.
func recordID(raw json.RawMessage) string {
	var head struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return ""
	}
	id, err := idString(head.ID)
	if err != nil {
		return ""
	}
	return id
}
