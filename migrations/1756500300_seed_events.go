package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		events, err := app.FindCollectionByNameOrId("events")
		if err != nil {
			return err
		}

		existing, err := app.FindRecordsByFilter("events", "", "", 1, 0, nil)
		if err == nil && len(existing) > 0 {
			return nil
		}

		seed := []map[string]any{
			{
				"id":             "founding_day",
				"title_ar":       "يوم التأسيس السعودي",
				"title_en":       "Saudi Founding Day",
				"description_ar": "ذكرى تأسيس الدولة السعودية الأولى",
				"description_en": "Commemorating the founding of the first Saudi state",
				"date":           "2025-02-22",
				"type":           "national",
				"priority":       "medium",
			},
			{
				"id":             "ramadan",
				"title_ar":       "شهر رمضان",
				"title_en":       "Ramadan",
				"description_ar": "الشهر الفضيل، موسم العطاء والعروض الرمضانية",
				"description_en": "The holy month, season of giving and Ramadan offers",
				"date":           "2025-03-01",
				"type":           "religious",
				"priority":       "high",
			},
			{
				"id":             "eid_al_fitr",
				"title_ar":       "عيد الفطر",
				"title_en":       "Eid Al-Fitr",
				"description_ar": "عيد الفطر المبارك، موسم الهدايا والتهنئة",
				"description_en": "Blessed Eid Al-Fitr, the season of gifts and greetings",
				"date":           "2025-03-31",
				"type":           "religious",
				"priority":       "high",
			},
			{
				"id":             "coffee_day",
				"title_ar":       "اليوم العالمي للقهوة",
				"title_en":       "International Coffee Day",
				"description_ar": "احتفال عالمي بالقهوة ومحبيها",
				"description_en": "A worldwide celebration of coffee and its lovers",
				"date":           "2025-10-01",
				"type":           "global",
				"priority":       "low",
			},
			{
				"id":             "white_friday",
				"title_ar":       "الجمعة البيضاء",
				"title_en":       "White Friday",
				"description_ar": "أكبر موسم تخفيضات في السنة",
				"description_en": "The biggest sale season of the year",
				"date":           "2025-11-28",
				"type":           "commercial",
				"priority":       "high",
			},
		}

		for _, data := range seed {
			record := core.NewRecord(events)
			for k, v := range data {
				if k == "id" {
					record.Id = v.(string)
					continue
				}
				record.Set(k, v)
			}
			if err := app.Save(record); err != nil {
				return err
			}
		}

		return nil
	}, func(app core.App) error {
		return nil
	})
}
