package service

import (
	"fmt"
	"log"
	"time"

	"mawasim/internal/core"
	"mawasim/pkg/broker"
	"mawasim/pkg/cache"
)

// CatalogService is the event catalog: an insertion-ordered collection of
// marketing events, mirrored in memory for reads and persisted through the
// repository. Writes are optimistic but reversible: the mirror is updated
// first and rolled back from a snapshot if the remote write is rejected.
type CatalogService struct {
	repo   core.EventRepository
	mirror *cache.CatalogMirror
	broker *broker.SegmentedBroker
}

func NewCatalogService(repo core.EventRepository, mirror *cache.CatalogMirror, b *broker.SegmentedBroker) *CatalogService {
	return &CatalogService{
		repo:   repo,
		mirror: mirror,
		broker: b,
	}
}

// Load fills the mirror from storage. Called once at boot.
func (s *CatalogService) Load() error {
	events, err := s.repo.List()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	s.mirror.Load(events)
	log.Printf("catalog loaded: %d events", len(events))
	return nil
}

// List returns the catalog in insertion order. Callers sort as needed.
func (s *CatalogService) List() []core.MarketingEvent {
	return s.mirror.List()
}

// Get returns the event with the given id from the mirror.
func (s *CatalogService) Get(id string) (core.MarketingEvent, bool) {
	return s.mirror.Get(id)
}

// Upsert validates the event, applies it to the mirror, and persists it.
// Invalid records are rejected before any state is touched. A failed
// remote write restores the mirror snapshot so local state never diverges
// from storage.
func (s *CatalogService) Upsert(e core.MarketingEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}

	snap := s.mirror.Put(e)
	if err := s.repo.Save(e); err != nil {
		s.mirror.Restore(snap)
		return fmt.Errorf("persist event %s: %w", e.ID, err)
	}

	s.publish(broker.TypeCatalogUpdated, e.ID)
	return nil
}

// Remove deletes the event with the given id. Removing an unknown id is a
// no-op, not an error.
func (s *CatalogService) Remove(id string) error {
	snap := s.mirror.Delete(id)
	if err := s.repo.Delete(id); err != nil {
		s.mirror.Restore(snap)
		return fmt.Errorf("delete event %s: %w", id, err)
	}

	s.publish(broker.TypeCatalogRemoved, id)
	return nil
}

func (s *CatalogService) publish(eventType, id string) {
	if s.broker == nil {
		return
	}
	s.broker.Publish(broker.ChannelAdmin, "", broker.Event{
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"event_id": id,
		},
	})
}
