package core

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used across the catalog.
// Event dates carry no time component and are interpreted in local time.
const DateLayout = "2006-01-02"

// LocalizedText holds the Arabic/English pair for user-facing strings.
type LocalizedText struct {
	AR string `json:"ar"`
	EN string `json:"en"`
}

// In returns the text for the given language code ("ar" or "en").
func (t LocalizedText) In(lang string) string {
	if lang == "ar" {
		return t.AR
	}
	return t.EN
}

// EventType classifies a marketing occasion
type EventType string

const (
	EventReligious  EventType = "religious"
	EventNational   EventType = "national"
	EventCommercial EventType = "commercial"
	EventGlobal     EventType = "global"
	EventCustom     EventType = "custom"
)

// Priority ranks an event's expected commercial impact.
// Used for visual emphasis and day-level aggregation only.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank maps a priority to its ordering: low < medium < high.
// Unknown priorities rank below low so they never win an aggregation.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	}
	return 0
}

// MarketingEvent is a calendar-anchored marketing occasion (holiday, sale
// day, observance) with bilingual text and a priority tier.
type MarketingEvent struct {
	ID          string        `json:"id"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Date        string        `json:"date"` // YYYY-MM-DD, no time component
	Type        EventType     `json:"type"`
	Priority    Priority      `json:"priority"`
}

// Day parses the event date. Validate guarantees this succeeds for any
// event that passed the catalog write boundary.
func (e MarketingEvent) Day() (time.Time, error) {
	return time.ParseInLocation(DateLayout, e.Date, time.Local)
}

// Validate checks the catalog invariants. It is called at the write
// boundary so malformed records never reach storage or the deriver.
// A missing priority is rejected, not defaulted.
func (e MarketingEvent) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: event id is required", ErrInvalid)
	}
	if e.Title.AR == "" || e.Title.EN == "" {
		return fmt.Errorf("%w: title must be set in both languages", ErrInvalid)
	}
	if e.Description.AR == "" || e.Description.EN == "" {
		return fmt.Errorf("%w: description must be set in both languages", ErrInvalid)
	}
	if _, err := time.ParseInLocation(DateLayout, e.Date, time.Local); err != nil {
		return fmt.Errorf("%w: date %q is not a valid YYYY-MM-DD date", ErrInvalid, e.Date)
	}
	switch e.Type {
	case EventReligious, EventNational, EventCommercial, EventGlobal, EventCustom:
	default:
		return fmt.Errorf("%w: unknown event type %q", ErrInvalid, e.Type)
	}
	switch e.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return fmt.Errorf("%w: unknown priority %q", ErrInvalid, e.Priority)
	}
	return nil
}

// BusinessTypes are the accepted merchant business categories.
var BusinessTypes = []string{"retail", "fashion", "food", "tech", "beauty", "services"}

// SocialPlatforms are the platform names a merchant can publish to.
var SocialPlatforms = []string{"Instagram", "X", "TikTok", "Snapchat", "Facebook", "WhatsApp"}

// MerchantProfile holds the self-service editable part of a merchant account.
type MerchantProfile struct {
	StoreName    string   `json:"store_name"`
	BusinessType string   `json:"business_type"`
	Country      string   `json:"country"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Logo         string   `json:"logo,omitempty"`
	PrimaryColor string   `json:"primary_color"`
	Platforms    []string `json:"platforms"`
}

// Validate checks the profile invariants at the save boundary.
func (p MerchantProfile) Validate() error {
	if p.StoreName == "" {
		return fmt.Errorf("%w: store name is required", ErrInvalid)
	}
	if p.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalid)
	}
	valid := false
	for _, bt := range BusinessTypes {
		if p.BusinessType == bt {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: unknown business type %q", ErrInvalid, p.BusinessType)
	}
	return nil
}

// MerchantStatus is the account state toggled by the admin.
type MerchantStatus string

const (
	MerchantActive   MerchantStatus = "active"
	MerchantInactive MerchantStatus = "inactive"
)

// Merchant is a store account: profile plus lifecycle fields.
type Merchant struct {
	MerchantProfile

	ID        string         `json:"id"`
	CreatedAt string         `json:"created_at"`
	Status    MerchantStatus `json:"status"`
	FCMToken  string         `json:"fcm_token,omitempty"`
}

// ContentType is the kind of generated artifact.
type ContentType string

const (
	ContentImage ContentType = "image"
	ContentVideo ContentType = "video"
	ContentCopy  ContentType = "copy"
)

// GeneratedContent is a copy/image/video artifact produced by the
// generative AI collaborator. Records are append-only: created once per
// successful generation, never mutated, listed newest first.
type GeneratedContent struct {
	ID        string      `json:"id"`
	Type      ContentType `json:"type"`
	URL       string      `json:"url,omitempty"`  // image / video
	Text      string      `json:"text,omitempty"` // copy
	CreatedAt string      `json:"created_at"`
	EventID   string      `json:"event_id,omitempty"`
}

// ContentStats counts a merchant's generated artifacts by type.
type ContentStats struct {
	Images int `json:"images"`
	Videos int `json:"videos"`
	Copies int `json:"copies"`
}
