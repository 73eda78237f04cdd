package service

import (
	"context"
	"testing"
	"time"

	"mawasim/internal/core"
	"mawasim/pkg/cache"
)

func newReminder(sender *fakeSender, merchants *fakeMerchantRepo, events ...core.MarketingEvent) *ReminderService {
	catalog := NewCatalogService(newFakeEventRepo(), cache.NewCatalogMirror(), nil)
	for _, e := range events {
		if err := catalog.Upsert(e); err != nil {
			panic(err)
		}
	}
	return NewReminderService(catalog, merchants, sender, nil)
}

func TestReminderSweep_SendsInsideLeadWindow(t *testing.T) {
	sender := &fakeSender{}
	merchant := validMerchant("m1", "Store", "a@b.sa")
	merchant.FCMToken = "token-1"

	svc := newReminder(sender, newFakeMerchantRepo(merchant),
		validEvent("soon", "2026-01-05", core.PriorityHigh),   // 4 days out
		validEvent("far", "2026-06-01", core.PriorityHigh),    // outside window
		validEvent("past", "2025-12-25", core.PriorityMedium), // already over
	)

	now := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.Local)
	if err := svc.Sweep(context.Background(), now); err != nil {
		t.Fatal(err)
	}

	if len(sender.sent) != 1 || sender.sent[0] != "token-1|soon" {
		t.Errorf("expected one reminder for the near event, got %v", sender.sent)
	}
}

func TestReminderSweep_OncePerDay(t *testing.T) {
	sender := &fakeSender{}
	merchant := validMerchant("m1", "Store", "a@b.sa")
	merchant.FCMToken = "token-1"

	svc := newReminder(sender, newFakeMerchantRepo(merchant),
		validEvent("soon", "2026-01-05", core.PriorityHigh))

	morning := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.Local)
	evening := time.Date(2026, time.January, 1, 21, 0, 0, 0, time.Local)
	nextDay := time.Date(2026, time.January, 2, 9, 0, 0, 0, time.Local)

	svc.Sweep(context.Background(), morning)
	svc.Sweep(context.Background(), evening)
	if len(sender.sent) != 1 {
		t.Fatalf("same-day sweeps must not repeat the reminder, sent %d", len(sender.sent))
	}

	svc.Sweep(context.Background(), nextDay)
	if len(sender.sent) != 2 {
		t.Errorf("a new day sends again, sent %d", len(sender.sent))
	}
}

func TestReminderSweep_SkipsInactiveAndTokenless(t *testing.T) {
	sender := &fakeSender{}

	inactive := validMerchant("m1", "Closed Store", "closed@b.sa")
	inactive.Status = core.MerchantInactive
	inactive.FCMToken = "token-inactive"

	tokenless := validMerchant("m2", "Quiet Store", "quiet@b.sa")

	svc := newReminder(sender, newFakeMerchantRepo(inactive, tokenless),
		validEvent("soon", "2026-01-05", core.PriorityHigh))

	now := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.Local)
	if err := svc.Sweep(context.Background(), now); err != nil {
		t.Fatal(err)
	}

	if len(sender.sent) != 0 {
		t.Errorf("inactive or tokenless merchants must not be reminded, got %v", sender.sent)
	}
}

func TestReminderSweep_RetriesAfterSendFailure(t *testing.T) {
	sender := &fakeSender{err: errStorageDown}
	merchant := validMerchant("m1", "Store", "a@b.sa")
	merchant.FCMToken = "token-1"

	svc := newReminder(sender, newFakeMerchantRepo(merchant),
		validEvent("soon", "2026-01-05", core.PriorityHigh))

	now := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.Local)
	svc.Sweep(context.Background(), now)

	// The failed send is not recorded; the next sweep tries again.
	sender.err = nil
	svc.Sweep(context.Background(), now)

	if len(sender.sent) != 1 {
		t.Errorf("failed sends should be retried on the next sweep, got %v", sender.sent)
	}
}
