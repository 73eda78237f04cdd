package core

import "context"

// EventRepository defines data access for the events collection.
// List returns records in insertion order (record creation order),
// not date order; callers sort as needed.
type EventRepository interface {
	List() ([]MarketingEvent, error)
	GetByID(id string) (*MarketingEvent, error)
	Save(event MarketingEvent) error
	Delete(id string) error
}

// MerchantRepository defines data access for the merchants collection.
type MerchantRepository interface {
	GetByID(id string) (*Merchant, error)
	GetAll() ([]Merchant, error)
	Create(m *Merchant, password string) error
	Update(m *Merchant) error
	Delete(id string) error
}

// ContentRepository defines data access for generated_contents.
// Listing is newest first; records are never mutated or deleted.
type ContentRepository interface {
	Append(merchantID string, content GeneratedContent) error
	ListByMerchant(merchantID string) ([]GeneratedContent, error)
}

// Catalog is the event catalog contract: insertion-ordered listing,
// validated upsert, idempotent removal.
type Catalog interface {
	List() []MarketingEvent
	Upsert(event MarketingEvent) error
	Remove(id string) error
}

// ContentGenerator is the outbound contract to the generative AI
// collaborator, consumed by the studio service.
type ContentGenerator interface {
	GenerateCopy(ctx context.Context, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt, aspectRatio string) (string, error)
	StartVideo(ctx context.Context, prompt string) (string, error)
	PollVideo(ctx context.Context, operation string) (done bool, uri string, err error)
	DownloadVideo(ctx context.Context, uri string) ([]byte, error)
}

// ReminderSender pushes an upcoming-event reminder to a merchant device.
type ReminderSender interface {
	SendEventReminder(ctx context.Context, deviceToken string, event MarketingEvent, daysLeft int) error
}

// CopyRequest carries the parameters substituted into the marketing
// prompt template.
type CopyRequest struct {
	MerchantID string
	EventID    string
	Tone       string
	Lang       string // "ar" or "en"
}

// MediaRequest asks for an image or video artifact.
type MediaRequest struct {
	MerchantID string
	EventID    string
	Prompt     string
	AspectRatio string
}
