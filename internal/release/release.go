package release

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amishk599/prepkit/internal/model"
)

const (
	ChecklistKey = "prp_test_checklist_v1"
	ShippedKey   = "prp_shipped_v1"
)

// ErrShipLocked is returned by Ship while any checklist item is unchecked.
var ErrShipLocked = errors.New("ship locked: complete every checklist item first")

// Item is one manual verification step.
type Item struct {
	ID    string
	Label string
	Hint  string
}

// Items is the fixed pre-ship checklist.
var Items = []Item{
	{"t1", "JD required validation works", "Analyze an empty JD and confirm it is rejected."},
	{"t2", "Short JD warning shows for <200 chars", "Analyze a short JD and confirm the warning is printed."},
	{"t3", "Skills extraction groups correctly", "Check that extracted skills are grouped by category."},
	{"t4", "Round mapping changes based on company + skills", "Use an enterprise company with DSA keywords; rounds should follow the enterprise flow."},
	{"t5", "Score calculation is deterministic", "Re-run the same JD and confirm the base score matches."},
	{"t6", "Skill toggles update score live", "Toggle skills in review and watch the score change."},
	{"t7", "Changes persist after restart", "Toggle a skill, quit, reopen and confirm the toggle remains."},
	{"t8", "History saves and loads correctly", "Run an analysis and confirm it appears in history."},
	{"t9", "Export produces the correct content", "Export each format and check the text."},
	{"t10", "No errors on core commands", "Run analyze, history, show and export; no errors should be logged."},
}

// Checklist persists item state and the shipped flag in a KVStore.
// Read failures degrade to an empty checklist.
type Checklist struct {
	kv     model.KVStore
	logger *slog.Logger
}

func New(kv model.KVStore, logger *slog.Logger) *Checklist {
	return &Checklist{kv: kv, logger: logger}
}

// State returns the checked state of every item, keyed by item id.
func (c *Checklist) State() map[string]bool {
	state := make(map[string]bool)
	raw, ok, err := c.kv.Get(ChecklistKey)
	if err != nil {
		c.logger.Warn("reading release checklist", "error", err)
		return state
	}
	if !ok {
		return state
	}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		c.logger.Warn("release checklist unreadable, starting fresh", "error", err)
		return make(map[string]bool)
	}
	return state
}

// Toggle flips one item and returns its new state.
func (c *Checklist) Toggle(id string) (bool, error) {
	if !known(id) {
		return false, fmt.Errorf("unknown checklist item %q", id)
	}
	state := c.State()
	state[id] = !state[id]
	if err := c.save(state); err != nil {
		return false, err
	}
	return state[id], nil
}

// Reset unchecks every item.
func (c *Checklist) Reset() error {
	return c.save(map[string]bool{})
}

// Passed counts checked items.
func (c *Checklist) Passed() int {
	state := c.State()
	n := 0
	for _, it := range Items {
		if state[it.ID] {
			n++
		}
	}
	return n
}

// Complete reports whether every item is checked.
func (c *Checklist) Complete() bool {
	return c.Passed() == len(Items)
}

// Shipped reports whether Ship has succeeded before.
func (c *Checklist) Shipped() bool {
	v, ok, err := c.kv.Get(ShippedKey)
	if err != nil {
		c.logger.Warn("reading ship flag", "error", err)
		return false
	}
	return ok && v == "1"
}

// Ship records the shipped flag once the checklist is complete.
func (c *Checklist) Ship() error {
	if !c.Complete() {
		return fmt.Errorf("%w (%d/%d passed)", ErrShipLocked, c.Passed(), len(Items))
	}
	if err := c.kv.Set(ShippedKey, "1"); err != nil {
		return fmt.Errorf("writing ship flag: %w", err)
	}
	return nil
}

func (c *Checklist) save(state map[string]bool) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding release checklist: %w", err)
	}
	if err := c.kv.Set(ChecklistKey, string(data)); err != nil {
		return fmt.Errorf("writing release checklist: %w", err)
	}
	return nil
}

func known(id string) bool {
	for _, it := range Items {
		if it.ID == id {
			return true
		}
	}
	return false
}
