package cache

import (
	"sync"

	"mawasim/internal/core"
)

// CatalogMirror holds the in-memory mirror of the events collection.
// Reads never touch the database; writes go through the mirror first
// (optimistic update) and the catalog service restores a snapshot if the
// remote write is rejected.
//
// Insertion order is preserved: List returns events in the order they were
// first added, with upserts replacing in place.
type CatalogMirror struct {
	events map[string]core.MarketingEvent
	order  []string // ids in insertion order
	mutex  sync.RWMutex
}

// NewCatalogMirror creates an empty mirror.
func NewCatalogMirror() *CatalogMirror {
	return &CatalogMirror{
		events: make(map[string]core.MarketingEvent),
	}
}

// Load replaces the mirror contents, keeping the given slice order as the
// insertion order. Used once at boot from the repository listing.
func (m *CatalogMirror) Load(events []core.MarketingEvent) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.events = make(map[string]core.MarketingEvent, len(events))
	m.order = make([]string, 0, len(events))
	for _, e := range events {
		if _, exists := m.events[e.ID]; !exists {
			m.order = append(m.order, e.ID)
		}
		m.events[e.ID] = e
	}
}

// List returns all events in insertion order.
func (m *CatalogMirror) List() []core.MarketingEvent {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	result := make([]core.MarketingEvent, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.events[id])
	}
	return result
}

// Get returns the mirrored event for id, if present.
func (m *CatalogMirror) Get(id string) (core.MarketingEvent, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	e, ok := m.events[id]
	return e, ok
}

// Snapshot captures the entry for id so a failed remote write can be
// rolled back. existed=false means id was absent before the mutation.
type Snapshot struct {
	id      string
	event   core.MarketingEvent
	existed bool
}

// Put inserts or replaces an event and returns the pre-mutation snapshot.
func (m *CatalogMirror) Put(e core.MarketingEvent) Snapshot {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	prev, existed := m.events[e.ID]
	if !existed {
		m.order = append(m.order, e.ID)
	}
	m.events[e.ID] = e

	return Snapshot{id: e.ID, event: prev, existed: existed}
}

// Delete removes an event and returns the pre-mutation snapshot.
// Deleting an absent id is a no-op snapshot.
func (m *CatalogMirror) Delete(id string) Snapshot {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	prev, existed := m.events[id]
	if existed {
		delete(m.events, id)
		m.removeFromOrder(id)
	}

	return Snapshot{id: id, event: prev, existed: existed}
}

// Restore undoes the mutation captured by the snapshot.
func (m *CatalogMirror) Restore(s Snapshot) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	_, present := m.events[s.id]
	switch {
	case s.existed && !present:
		// A delete is undone: reinsert at the tail. Exact original position
		// is not tracked; ordering only needs to stay stable across reads.
		m.events[s.id] = s.event
		m.order = append(m.order, s.id)
	case s.existed && present:
		// An overwrite is undone.
		m.events[s.id] = s.event
	case !s.existed && present:
		// An insert is undone.
		delete(m.events, s.id)
		m.removeFromOrder(s.id)
	}
}

// Len returns the number of mirrored events.
func (m *CatalogMirror) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.events)
}

func (m *CatalogMirror) removeFromOrder(id string) {
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}
