package model

// KVStore is the storage medium behind the history store: a flat string
// key-value space. Get reports ok=false for a missing key.
type KVStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// HistoryStore is the ordered, most-recent-first list of analysis entries.
type HistoryStore interface {
	LoadAll() []AnalysisEntry
	LoadWithStats() (entries []AnalysisEntry, corrupted int)
	LoadByID(id string) (AnalysisEntry, error)
	Latest() (AnalysisEntry, error)
	Upsert(entry AnalysisEntry) error
	Clear() error
}
