package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("generated_contents"); err == nil {
			return nil
		}

		merchants, err := app.FindCollectionByNameOrId("merchants")
		if err != nil {
			return err
		}

		contents := core.NewBaseCollection("generated_contents")

		// Content ids are uuids assigned by the studio service.
		if f, ok := contents.Fields.GetByName("id").(*core.TextField); ok {
			f.Min = 1
			f.Max = 64
			f.Pattern = `^[a-z0-9_\-]+$`
		}

		contents.Fields.Add(&core.RelationField{
			Name:          "merchant",
			CollectionId:  merchants.Id,
			MaxSelect:     1,
			Required:      true,
			CascadeDelete: true,
		})
		contents.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  true,
			MaxSelect: 1,
			Values:    []string{"copy", "image", "video"},
		})
		contents.Fields.Add(&core.TextField{Name: "text", Max: 100000})
		contents.Fields.Add(&core.TextField{Name: "url", Max: 10000000})
		contents.Fields.Add(&core.TextField{Name: "event_id"})

		contents.Indexes = []string{
			"CREATE INDEX idx_contents_merchant ON generated_contents (merchant, created)",
		}

		return app.Save(contents)
	}, func(app core.App) error {
		contents, err := app.FindCollectionByNameOrId("generated_contents")
		if err != nil {
			return nil
		}
		return app.Delete(contents)
	})
}
