package release

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amishk599/prepkit/internal/store"
)

func newTestChecklist(t *testing.T) (*Checklist, *store.MemoryStore) {
	t.Helper()
	kv := store.NewMemoryStore()
	return New(kv, slog.New(slog.NewTextHandler(io.Discard, nil))), kv
}

func TestToggle(t *testing.T) {
	c, _ := newTestChecklist(t)

	on, err := c.Toggle("t3")
	if err != nil || !on {
		t.Fatalf("Toggle = (%v, %v), want (true, nil)", on, err)
	}
	if c.Passed() != 1 {
		t.Errorf("Passed = %d, want 1", c.Passed())
	}

	off, err := c.Toggle("t3")
	if err != nil || off {
		t.Fatalf("Toggle = (%v, %v), want (false, nil)", off, err)
	}
	if c.Passed() != 0 {
		t.Errorf("Passed = %d, want 0", c.Passed())
	}
}

func TestToggle_UnknownItem(t *testing.T) {
	c, _ := newTestChecklist(t)
	if _, err := c.Toggle("t99"); err == nil {
		t.Fatal("expected error for unknown item")
	}
}

func TestShip_LockedUntilComplete(t *testing.T) {
	c, _ := newTestChecklist(t)

	for _, it := range Items[:len(Items)-1] {
		if _, err := c.Toggle(it.ID); err != nil {
			t.Fatalf("Toggle(%s): %v", it.ID, err)
		}
	}
	if err := c.Ship(); !errors.Is(err, ErrShipLocked) {
		t.Fatalf("expected ErrShipLocked, got %v", err)
	}
	if c.Shipped() {
		t.Fatal("should not be shipped yet")
	}

	if _, err := c.Toggle(Items[len(Items)-1].ID); err != nil {
		t.Fatal(err)
	}
	if !c.Complete() {
		t.Fatal("expected checklist complete")
	}
	if err := c.Ship(); err != nil {
		t.Fatalf("Ship: %v", err)
	}
	if !c.Shipped() {
		t.Fatal("expected shipped flag")
	}
}

func TestReset(t *testing.T) {
	c, _ := newTestChecklist(t)
	c.Toggle("t1")
	c.Toggle("t2")

	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if c.Passed() != 0 {
		t.Errorf("Passed = %d, want 0", c.Passed())
	}
}

func TestState_CorruptedValueStartsFresh(t *testing.T) {
	c, kv := newTestChecklist(t)
	kv.Set(ChecklistKey, "{oops")

	if len(c.State()) != 0 {
		t.Fatal("expected empty state")
	}
	if _, err := c.Toggle("t1"); err != nil {
		t.Fatalf("Toggle after corruption: %v", err)
	}
	if c.Passed() != 1 {
		t.Errorf("Passed = %d, want 1", c.Passed())
	}
}
