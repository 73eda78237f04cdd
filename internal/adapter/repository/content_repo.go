package repository

import (
	"fmt"

	"mawasim/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBContentRepo struct {
	app pbCore.App
}

func NewContentRepo(app pbCore.App) core.ContentRepository {
	return &PBContentRepo{app: app}
}

func (r *PBContentRepo) toDomain(record *pbCore.Record) core.GeneratedContent {
	return core.GeneratedContent{
		ID:        record.Id,
		Type:      core.ContentType(record.GetString("type")),
		URL:       record.GetString("url"),
		Text:      record.GetString("text"),
		CreatedAt: record.GetString("created"),
		EventID:   record.GetString("event_id"),
	}
}

// Append creates a new content record for the merchant. Records are
// write-once: there is no update or delete path.
func (r *PBContentRepo) Append(merchantID string, content core.GeneratedContent) error {
	collection, err := r.app.FindCollectionByNameOrId("generated_contents")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	if content.ID != "" {
		record.Id = content.ID
	}
	record.Set("merchant", merchantID)
	record.Set("type", string(content.Type))
	record.Set("url", content.URL)
	record.Set("text", content.Text)
	record.Set("event_id", content.EventID)

	return r.app.Save(record)
}

// ListByMerchant returns the merchant's artifacts newest first.
func (r *PBContentRepo) ListByMerchant(merchantID string) ([]core.GeneratedContent, error) {
	records, err := r.app.FindRecordsByFilter(
		"generated_contents",
		"merchant = {:merchant}",
		"-created",
		500,
		0,
		map[string]any{"merchant": merchantID},
	)
	if err != nil {
		return nil, fmt.Errorf("list contents for merchant %s: %w", merchantID, err)
	}

	contents := make([]core.GeneratedContent, 0, len(records))
	for _, rec := range records {
		contents = append(contents, r.toDomain(rec))
	}
	return contents, nil
}
