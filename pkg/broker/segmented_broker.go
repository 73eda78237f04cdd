package broker

import (
	"sync"
)

// Channel represents the type of event channel
type Channel string

const (
	ChannelAdmin    Channel = "admin"
	ChannelMerchant Channel = "merchant"
)

// Event types published through the broker.
const (
	TypeCatalogUpdated = "catalog.updated"
	TypeCatalogRemoved = "catalog.removed"
	TypeContentCreated = "content.created"
	TypeReminderSent   = "reminder.sent"
)

// Event represents a system event
type Event struct {
	Type      string                 `json:"type"`
	Timestamp int64                  `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// SegmentedBroker manages channel-based event distribution.
// Admin clients receive every event; each merchant only receives events
// for their own account (generated content, reminders).
type SegmentedBroker struct {
	adminClients map[chan Event]bool

	// map[merchant_id]map[client_channel]bool
	merchantClients map[string]map[chan Event]bool

	mutex sync.RWMutex
}

// NewSegmentedBroker creates a new segmented broker instance
func NewSegmentedBroker() *SegmentedBroker {
	return &SegmentedBroker{
		adminClients:    make(map[chan Event]bool),
		merchantClients: make(map[string]map[chan Event]bool),
	}
}

// Subscribe creates a new client channel and returns it.
// For admin: id is ignored. For merchant: id is the merchant id.
func (b *SegmentedBroker) Subscribe(channel Channel, id string) chan Event {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	clientChan := make(chan Event, 10) // Buffered to prevent blocking

	switch channel {
	case ChannelAdmin:
		b.adminClients[clientChan] = true

	case ChannelMerchant:
		if _, exists := b.merchantClients[id]; !exists {
			b.merchantClients[id] = make(map[chan Event]bool)
		}
		b.merchantClients[id][clientChan] = true
	}

	return clientChan
}

// Unsubscribe removes a client channel
func (b *SegmentedBroker) Unsubscribe(channel Channel, id string, clientChan chan Event) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	switch channel {
	case ChannelAdmin:
		delete(b.adminClients, clientChan)
		close(clientChan)

	case ChannelMerchant:
		if clients, exists := b.merchantClients[id]; exists {
			delete(clients, clientChan)
			if len(clients) == 0 {
				delete(b.merchantClients, id)
			}
		}
		close(clientChan)
	}
}

// Publish sends an event to the appropriate channel(s).
// Merchant events also fan out to admin clients so the admin dashboard
// sees all activity.
func (b *SegmentedBroker) Publish(channel Channel, id string, event Event) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	switch channel {
	case ChannelAdmin:
		for clientChan := range b.adminClients {
			select {
			case clientChan <- event:
			default:
				// Client not ready, skip to avoid blocking
			}
		}

	case ChannelMerchant:
		if clients, exists := b.merchantClients[id]; exists {
			for clientChan := range clients {
				select {
				case clientChan <- event:
				default:
					// Client not ready, skip
				}
			}
		}
		for clientChan := range b.adminClients {
			select {
			case clientChan <- event:
			default:
			}
		}
	}
}

// PublishToAll sends event to every connected client (system events).
func (b *SegmentedBroker) PublishToAll(event Event) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	for clientChan := range b.adminClients {
		select {
		case clientChan <- event:
		default:
		}
	}

	for _, clients := range b.merchantClients {
		for clientChan := range clients {
			select {
			case clientChan <- event:
			default:
			}
		}
	}
}

// GetStats returns current broker statistics
func (b *SegmentedBroker) GetStats() map[string]int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	merchantCount := 0
	for _, clients := range b.merchantClients {
		merchantCount += len(clients)
	}

	return map[string]int{
		"admin_clients":    len(b.adminClients),
		"merchant_clients": merchantCount,
	}
}
