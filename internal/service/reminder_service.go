package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"mawasim/internal/core"
	"mawasim/internal/schedule"
	"mawasim/pkg/broker"
)

// ReminderService periodically checks the catalog for events inside the
// lead window and pushes a reminder to every active merchant with a
// registered device. A given (merchant, event) pair is reminded at most
// once per calendar day.
type ReminderService struct {
	catalog   *CatalogService
	merchants core.MerchantRepository
	sender    core.ReminderSender
	broker    *broker.SegmentedBroker

	leadDays int
	interval time.Duration

	mu   sync.Mutex
	sent map[string]string // "merchantID|eventID" -> date last sent (YYYY-MM-DD)
}

func NewReminderService(
	catalog *CatalogService,
	merchants core.MerchantRepository,
	sender core.ReminderSender,
	b *broker.SegmentedBroker,
) *ReminderService {
	return &ReminderService{
		catalog:   catalog,
		merchants: merchants,
		sender:    sender,
		broker:    b,
		leadDays:  7,
		interval:  time.Hour,
		sent:      make(map[string]string),
	}
}

// Run sweeps on a fixed interval until the context is cancelled.
func (s *ReminderService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("reminder sweep stopped")
			return
		case <-ticker.C:
			if err := s.Sweep(ctx, time.Now()); err != nil {
				log.Printf("reminder sweep: %v", err)
			}
		}
	}
}

// Sweep runs one reminder pass against a single sampled instant so the
// upcoming list and the days-remaining figures cannot disagree.
func (s *ReminderService) Sweep(ctx context.Context, now time.Time) error {
	upcoming := schedule.Upcoming(s.catalog.List(), now)

	var due []struct {
		event    core.MarketingEvent
		daysLeft int
	}
	for _, e := range upcoming {
		days, err := schedule.DaysRemaining(e, now)
		if err != nil {
			continue
		}
		if days > s.leadDays {
			break // upcoming is date-sorted, the rest are further out
		}
		due = append(due, struct {
			event    core.MarketingEvent
			daysLeft int
		}{e, days})
	}
	if len(due) == 0 {
		return nil
	}

	merchants, err := s.merchants.GetAll()
	if err != nil {
		return fmt.Errorf("load merchants: %w", err)
	}

	today := now.Format(core.DateLayout)
	for _, m := range merchants {
		if m.Status != core.MerchantActive || m.FCMToken == "" {
			continue
		}
		for _, d := range due {
			if !s.markSent(m.ID, d.event.ID, today) {
				continue
			}
			if err := s.sender.SendEventReminder(ctx, m.FCMToken, d.event, d.daysLeft); err != nil {
				log.Printf("reminder to %s for %s: %v", m.ID, d.event.ID, err)
				s.unmark(m.ID, d.event.ID)
				continue
			}
			s.publish(m.ID, d.event, d.daysLeft)
		}
	}
	return nil
}

// markSent records the send and reports whether it was due: false means
// this pair was already reminded today.
func (s *ReminderService) markSent(merchantID, eventID, today string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := merchantID + "|" + eventID
	if s.sent[key] == today {
		return false
	}
	s.sent[key] = today
	return true
}

func (s *ReminderService) unmark(merchantID, eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sent, merchantID+"|"+eventID)
}

func (s *ReminderService) publish(merchantID string, event core.MarketingEvent, daysLeft int) {
	if s.broker == nil {
		return
	}
	s.broker.Publish(broker.ChannelMerchant, merchantID, broker.Event{
		Type:      broker.TypeReminderSent,
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"merchant_id": merchantID,
			"event_id":    event.ID,
			"days_left":   daysLeft,
		},
	})
}
