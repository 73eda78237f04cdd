package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("events"); err == nil {
			return nil
		}

		events := core.NewBaseCollection("events")

		// Catalog entries carry human-readable ids (slugs, uuids).
		if f, ok := events.Fields.GetByName("id").(*core.TextField); ok {
			f.Min = 1
			f.Max = 64
			f.Pattern = `^[a-z0-9_\-]+$`
		}

		events.Fields.Add(&core.TextField{Name: "title_ar", Required: true})
		events.Fields.Add(&core.TextField{Name: "title_en", Required: true})
		events.Fields.Add(&core.TextField{Name: "description_ar", Required: true})
		events.Fields.Add(&core.TextField{Name: "description_en", Required: true})
		events.Fields.Add(&core.TextField{Name: "date", Required: true})
		events.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  true,
			MaxSelect: 1,
			Values:    []string{"religious", "national", "commercial", "global", "custom"},
		})
		events.Fields.Add(&core.SelectField{
			Name:      "priority",
			Required:  true,
			MaxSelect: 1,
			Values:    []string{"low", "medium", "high"},
		})

		events.Indexes = []string{
			"CREATE INDEX idx_events_date ON events (date)",
		}

		return app.Save(events)
	}, func(app core.App) error {
		events, err := app.FindCollectionByNameOrId("events")
		if err != nil {
			return nil
		}
		return app.Delete(events)
	})
}
