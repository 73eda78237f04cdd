// Package app wires all application dependencies in one place.
package app

import (
	"fmt"
	"log"
	"os"

	"mawasim/internal/adapter/repository"
	"mawasim/internal/core"
	"mawasim/internal/service"
	"mawasim/pkg/broker"
	"mawasim/pkg/cache"
	"mawasim/pkg/genai"
	"mawasim/pkg/notification"

	"github.com/pocketbase/pocketbase"
)

// Container holds all application dependencies.
type Container struct {
	PB *pocketbase.PocketBase

	// Infrastructure
	Broker *broker.SegmentedBroker
	Mirror *cache.CatalogMirror

	// Repositories
	EventRepo    core.EventRepository
	MerchantRepo core.MerchantRepository
	ContentRepo  core.ContentRepository

	// Domain services
	Catalog   *service.CatalogService
	Merchants *service.MerchantService
	Studio    *service.StudioService
	Reminders *service.ReminderService

	// External services
	FCM *notification.FCMService

	// Secret used to sign SSE stream tokens.
	StreamSecret string
}

// NewContainer creates and wires all dependencies.
func NewContainer(pb *pocketbase.PocketBase) (*Container, error) {
	c := &Container{PB: pb}

	c.Broker = broker.NewSegmentedBroker()
	c.Mirror = cache.NewCatalogMirror()

	c.EventRepo = repository.NewEventRepo(pb)
	c.MerchantRepo = repository.NewMerchantRepo(pb)
	c.ContentRepo = repository.NewContentRepo(pb)

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	generator := genai.NewClient(apiKey)

	c.StreamSecret = os.Getenv("STREAM_TOKEN_SECRET")
	if c.StreamSecret == "" {
		return nil, fmt.Errorf("STREAM_TOKEN_SECRET is not set")
	}

	c.Catalog = service.NewCatalogService(c.EventRepo, c.Mirror, c.Broker)
	c.Merchants = service.NewMerchantService(c.MerchantRepo)
	c.Studio = service.NewStudioService(generator, c.Catalog, c.MerchantRepo, c.ContentRepo, c.Broker)

	// Push reminders are optional: without FCM credentials the rest of
	// the app runs, only the reminder sweep is disabled.
	credentials := os.Getenv("FCM_CREDENTIALS_FILE")
	if credentials == "" {
		credentials = "serviceAccountKey.json"
	}
	fcm, err := notification.NewFCMService(credentials)
	if err != nil {
		log.Printf("FCM disabled: %v", err)
	} else {
		c.FCM = fcm
		c.Reminders = service.NewReminderService(c.Catalog, c.MerchantRepo, fcm, c.Broker)
	}

	return c, nil
}
