package service

import (
	"errors"
	"testing"

	"mawasim/internal/core"
	"mawasim/pkg/cache"
)

func newCatalog(repo *fakeEventRepo) *CatalogService {
	return NewCatalogService(repo, cache.NewCatalogMirror(), nil)
}

func TestCatalog_UpsertRoundTrip(t *testing.T) {
	catalog := newCatalog(newFakeEventRepo())

	e := validEvent("ramadan", "2026-02-18", core.PriorityHigh)
	if err := catalog.Upsert(e); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	events := catalog.List()
	if len(events) != 1 || events[0].ID != "ramadan" {
		t.Fatalf("List after Upsert = %v", events)
	}
	if events[0].Date != "2026-02-18" {
		t.Errorf("stored event differs: %v", events[0])
	}
}

func TestCatalog_RemoveRoundTrip(t *testing.T) {
	catalog := newCatalog(newFakeEventRepo())

	if err := catalog.Upsert(validEvent("a", "2026-01-10", core.PriorityLow)); err != nil {
		t.Fatal(err)
	}
	if err := catalog.Remove("a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(catalog.List()) != 0 {
		t.Errorf("event still listed after Remove")
	}
}

func TestCatalog_RemoveUnknownIsNoop(t *testing.T) {
	catalog := newCatalog(newFakeEventRepo())
	if err := catalog.Upsert(validEvent("a", "2026-01-10", core.PriorityLow)); err != nil {
		t.Fatal(err)
	}

	if err := catalog.Remove("ghost"); err != nil {
		t.Errorf("removing unknown id must not error: %v", err)
	}
	if len(catalog.List()) != 1 {
		t.Errorf("catalog changed by removing unknown id")
	}
}

func TestCatalog_UpsertRejectsInvalid(t *testing.T) {
	repo := newFakeEventRepo()
	catalog := newCatalog(repo)

	tests := []struct {
		name  string
		event core.MarketingEvent
	}{
		{"missing id", func() core.MarketingEvent {
			e := validEvent("", "2026-01-10", core.PriorityLow)
			return e
		}()},
		{"malformed date", validEvent("x", "10/01/2026", core.PriorityLow)},
		{"impossible date", validEvent("x", "2026-02-30", core.PriorityLow)},
		{"missing priority", func() core.MarketingEvent {
			e := validEvent("x", "2026-01-10", core.PriorityLow)
			e.Priority = ""
			return e
		}()},
		{"unknown type", func() core.MarketingEvent {
			e := validEvent("x", "2026-01-10", core.PriorityLow)
			e.Type = "festival"
			return e
		}()},
		{"missing arabic title", func() core.MarketingEvent {
			e := validEvent("x", "2026-01-10", core.PriorityLow)
			e.Title.AR = ""
			return e
		}()},
	}

	for _, tt := range tests {
		err := catalog.Upsert(tt.event)
		if !errors.Is(err, core.ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}

	if len(repo.events) != 0 {
		t.Errorf("invalid records must not reach storage, repo has %d", len(repo.events))
	}
	if len(catalog.List()) != 0 {
		t.Errorf("invalid records must not reach the mirror")
	}
}

func TestCatalog_UpsertRollsBackOnStorageFailure(t *testing.T) {
	repo := newFakeEventRepo()
	catalog := newCatalog(repo)

	if err := catalog.Upsert(validEvent("a", "2026-01-10", core.PriorityLow)); err != nil {
		t.Fatal(err)
	}

	// A rejected overwrite restores the old record locally.
	repo.failNext = errStorageDown
	updated := validEvent("a", "2026-12-31", core.PriorityHigh)
	if err := catalog.Upsert(updated); err == nil {
		t.Fatal("expected storage failure to surface")
	}

	got, ok := catalog.Get("a")
	if !ok || got.Date != "2026-01-10" {
		t.Errorf("mirror should roll back to the pre-write record, got %v", got)
	}

	// A rejected insert leaves no trace.
	repo.failNext = errStorageDown
	if err := catalog.Upsert(validEvent("b", "2026-06-01", core.PriorityMedium)); err == nil {
		t.Fatal("expected storage failure to surface")
	}
	if _, ok := catalog.Get("b"); ok {
		t.Error("rolled-back insert still visible in the mirror")
	}
}

func TestCatalog_RemoveRollsBackOnStorageFailure(t *testing.T) {
	repo := newFakeEventRepo()
	catalog := newCatalog(repo)

	if err := catalog.Upsert(validEvent("a", "2026-01-10", core.PriorityLow)); err != nil {
		t.Fatal(err)
	}

	repo.failNext = errStorageDown
	if err := catalog.Remove("a"); err == nil {
		t.Fatal("expected storage failure to surface")
	}

	if _, ok := catalog.Get("a"); !ok {
		t.Error("mirror should restore the record after a rejected delete")
	}
}

func TestCatalog_LoadPreservesInsertionOrder(t *testing.T) {
	repo := newFakeEventRepo()
	repo.Save(validEvent("later-date-first", "2026-12-01", core.PriorityLow))
	repo.Save(validEvent("earlier-date-second", "2026-01-01", core.PriorityLow))

	catalog := newCatalog(repo)
	if err := catalog.Load(); err != nil {
		t.Fatal(err)
	}

	events := catalog.List()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID != "later-date-first" {
		t.Errorf("List must keep insertion order, not date order; got %v first", events[0].ID)
	}
}
