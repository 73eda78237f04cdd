package migrations

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		total, err := app.CountRecords("_superusers")
		if err == nil && total > 0 {
			return nil
		}

		email := os.Getenv("INITIAL_ADMIN_EMAIL")
		password := os.Getenv("INITIAL_ADMIN_PASSWORD")
		if email == "" || password == "" {
			log.Println("INITIAL_ADMIN_EMAIL / INITIAL_ADMIN_PASSWORD not set, skipping superuser creation")
			return nil
		}

		superusers, err := app.FindCollectionByNameOrId("_superusers")
		if err != nil {
			return err
		}

		record := core.NewRecord(superusers)
		record.Set("email", email)
		record.Set("password", password)

		if err := app.Save(record); err != nil {
			return err
		}

		log.Printf("created initial superuser %s", email)
		return nil
	}, func(app core.App) error {
		return nil
	})
}
