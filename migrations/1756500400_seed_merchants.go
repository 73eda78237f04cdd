package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		merchants, err := app.FindCollectionByNameOrId("merchants")
		if err != nil {
			return err
		}

		existing, err := app.FindRecordsByFilter("merchants", "", "", 1, 0, nil)
		if err == nil && len(existing) > 0 {
			return nil
		}

		seed := []map[string]any{
			{
				"email":         "latte@example.com",
				"store_name":    "لاتيه آرت",
				"business_type": "food",
				"country":       "SA",
				"phone":         "+966500000001",
				"primary_color": "#6F4E37",
				"platforms":     []string{"Instagram", "TikTok"},
				"status":        "active",
			},
			{
				"email":         "noor@example.com",
				"store_name":    "عبايات نور",
				"business_type": "fashion",
				"country":       "SA",
				"phone":         "+966500000002",
				"primary_color": "#1A1A2E",
				"platforms":     []string{"Instagram", "Snapchat", "X"},
				"status":        "active",
			},
			{
				"email":         "gadgets@example.com",
				"store_name":    "Gadget Hub",
				"business_type": "tech",
				"country":       "AE",
				"phone":         "+971500000003",
				"primary_color": "#0F3460",
				"platforms":     []string{"X", "Facebook"},
				"status":        "active",
			},
			{
				"email":         "oud@example.com",
				"store_name":    "دار العود",
				"business_type": "beauty",
				"country":       "SA",
				"phone":         "+966500000004",
				"primary_color": "#53354A",
				"platforms":     []string{"Instagram", "WhatsApp"},
				"status":        "active",
			},
			{
				"email":         "fixit@example.com",
				"store_name":    "Fix It Services",
				"business_type": "services",
				"country":       "KW",
				"phone":         "+965500000005",
				"primary_color": "#E94560",
				"platforms":     []string{"WhatsApp"},
				"status":        "inactive",
			},
		}

		for _, data := range seed {
			record := core.NewRecord(merchants)
			for k, v := range data {
				record.Set(k, v)
			}
			record.SetPassword("changeme123")
			record.SetVerified(true)
			if err := app.Save(record); err != nil {
				return err
			}
		}

		return nil
	}, func(app core.App) error {
		return nil
	})
}
