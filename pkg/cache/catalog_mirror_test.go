package cache

import (
	"testing"

	"mawasim/internal/core"
)

func mirrorEvent(id, date string) core.MarketingEvent {
	return core.MarketingEvent{
		ID:          id,
		Title:       core.LocalizedText{AR: "عنوان", EN: "Title"},
		Description: core.LocalizedText{AR: "وصف", EN: "Desc"},
		Date:        date,
		Type:        core.EventCustom,
		Priority:    core.PriorityMedium,
	}
}

func TestCatalogMirror_InsertionOrder(t *testing.T) {
	m := NewCatalogMirror()

	m.Put(mirrorEvent("c", "2026-03-01"))
	m.Put(mirrorEvent("a", "2026-01-01"))
	m.Put(mirrorEvent("b", "2026-02-01"))

	got := m.List()
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	for i, want := range []string{"c", "a", "b"} {
		if got[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
}

func TestCatalogMirror_UpsertReplacesInPlace(t *testing.T) {
	m := NewCatalogMirror()

	m.Put(mirrorEvent("a", "2026-01-01"))
	m.Put(mirrorEvent("b", "2026-02-01"))

	updated := mirrorEvent("a", "2026-06-15")
	m.Put(updated)

	got := m.List()
	if len(got) != 2 {
		t.Fatalf("expected 2 events after upsert, got %d", len(got))
	}
	if got[0].ID != "a" || got[0].Date != "2026-06-15" {
		t.Errorf("upsert should replace in place, got %v", got[0])
	}
}

func TestCatalogMirror_RestoreInsert(t *testing.T) {
	m := NewCatalogMirror()

	snap := m.Put(mirrorEvent("a", "2026-01-01"))
	m.Restore(snap)

	if m.Len() != 0 {
		t.Errorf("restoring an insert should empty the mirror, len=%d", m.Len())
	}
}

func TestCatalogMirror_RestoreOverwrite(t *testing.T) {
	m := NewCatalogMirror()

	m.Put(mirrorEvent("a", "2026-01-01"))
	snap := m.Put(mirrorEvent("a", "2026-12-31"))
	m.Restore(snap)

	e, ok := m.Get("a")
	if !ok || e.Date != "2026-01-01" {
		t.Errorf("restoring an overwrite should bring back the old record, got %v", e)
	}
}

func TestCatalogMirror_RestoreDelete(t *testing.T) {
	m := NewCatalogMirror()

	m.Put(mirrorEvent("a", "2026-01-01"))
	snap := m.Delete("a")
	m.Restore(snap)

	if _, ok := m.Get("a"); !ok {
		t.Error("restoring a delete should reinsert the record")
	}
}

func TestCatalogMirror_DeleteAbsentIsNoop(t *testing.T) {
	m := NewCatalogMirror()
	m.Put(mirrorEvent("a", "2026-01-01"))

	snap := m.Delete("ghost")
	if m.Len() != 1 {
		t.Errorf("deleting an absent id must not change the mirror, len=%d", m.Len())
	}

	// Restoring the no-op snapshot is also a no-op.
	m.Restore(snap)
	if m.Len() != 1 {
		t.Errorf("restoring a no-op snapshot must not change the mirror, len=%d", m.Len())
	}
}

func TestCatalogMirror_LoadReplacesContents(t *testing.T) {
	m := NewCatalogMirror()
	m.Put(mirrorEvent("stale", "2025-01-01"))

	m.Load([]core.MarketingEvent{
		mirrorEvent("x", "2026-01-01"),
		mirrorEvent("y", "2026-02-01"),
	})

	got := m.List()
	if len(got) != 2 || got[0].ID != "x" || got[1].ID != "y" {
		t.Errorf("Load should replace contents keeping slice order, got %v", got)
	}
}
