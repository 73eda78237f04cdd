package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("merchants"); err == nil {
			return nil
		}

		merchants := core.NewAuthCollection("merchants")

		merchants.Fields.Add(&core.TextField{Name: "store_name", Required: true})
		merchants.Fields.Add(&core.SelectField{
			Name:      "business_type",
			Required:  true,
			MaxSelect: 1,
			Values:    []string{"retail", "fashion", "food", "tech", "beauty", "services"},
		})
		merchants.Fields.Add(&core.TextField{Name: "country"})
		merchants.Fields.Add(&core.TextField{Name: "phone"})
		merchants.Fields.Add(&core.FileField{
			Name:      "logo",
			MaxSelect: 1,
			MaxSize:   5242880,
			MimeTypes: []string{"image/png", "image/jpeg", "image/webp", "image/svg+xml"},
		})
		merchants.Fields.Add(&core.TextField{Name: "primary_color"})
		merchants.Fields.Add(&core.SelectField{
			Name:      "platforms",
			MaxSelect: 6,
			Values:    []string{"Instagram", "X", "TikTok", "Snapchat", "Facebook", "WhatsApp"},
		})
		merchants.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			MaxSelect: 1,
			Values:    []string{"active", "inactive"},
		})
		merchants.Fields.Add(&core.TextField{Name: "fcm_token"})

		return app.Save(merchants)
	}, func(app core.App) error {
		merchants, err := app.FindCollectionByNameOrId("merchants")
		if err != nil {
			return nil
		}
		return app.Delete(merchants)
	})
}
