package repository

import (
	"fmt"

	"mawasim/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBEventRepo struct {
	app pbCore.App
}

func NewEventRepo(app pbCore.App) core.EventRepository {
	return &PBEventRepo{app: app}
}

// Mapping helper: Record -> Domain Model
func (r *PBEventRepo) toDomain(record *pbCore.Record) core.MarketingEvent {
	return core.MarketingEvent{
		ID: record.Id,
		Title: core.LocalizedText{
			AR: record.GetString("title_ar"),
			EN: record.GetString("title_en"),
		},
		Description: core.LocalizedText{
			AR: record.GetString("description_ar"),
			EN: record.GetString("description_en"),
		},
		Date:     record.GetString("date"),
		Type:     core.EventType(record.GetString("type")),
		Priority: core.Priority(record.GetString("priority")),
	}
}

func (r *PBEventRepo) apply(record *pbCore.Record, e core.MarketingEvent) {
	record.Set("title_ar", e.Title.AR)
	record.Set("title_en", e.Title.EN)
	record.Set("description_ar", e.Description.AR)
	record.Set("description_en", e.Description.EN)
	record.Set("date", e.Date)
	record.Set("type", string(e.Type))
	record.Set("priority", string(e.Priority))
}

// List returns all events in record creation order (insertion order).
func (r *PBEventRepo) List() ([]core.MarketingEvent, error) {
	records, err := r.app.FindRecordsByFilter("events", "", "+created", 500, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]core.MarketingEvent, 0, len(records))
	for _, rec := range records {
		events = append(events, r.toDomain(rec))
	}
	return events, nil
}

func (r *PBEventRepo) GetByID(id string) (*core.MarketingEvent, error) {
	record, err := r.app.FindRecordById("events", id)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", id, core.ErrNotFound)
	}
	e := r.toDomain(record)
	return &e, nil
}

// Save upserts by id: replaces the existing record or inserts a new one
// with the caller-chosen id.
func (r *PBEventRepo) Save(e core.MarketingEvent) error {
	record, err := r.app.FindRecordById("events", e.ID)
	if err != nil {
		collection, err := r.app.FindCollectionByNameOrId("events")
		if err != nil {
			return err
		}
		record = pbCore.NewRecord(collection)
		record.Id = e.ID
	}

	r.apply(record, e)
	return r.app.Save(record)
}

// Delete removes the record. Deleting an unknown id is a no-op so the
// catalog's idempotent remove holds at the storage layer too.
func (r *PBEventRepo) Delete(id string) error {
	record, err := r.app.FindRecordById("events", id)
	if err != nil {
		// Unknown id: removal is idempotent.
		return nil
	}
	return r.app.Delete(record)
}
