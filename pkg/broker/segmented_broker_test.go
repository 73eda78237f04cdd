package broker

import (
	"testing"
	"time"
)

func TestSegmentedBroker_AdminChannel(t *testing.T) {
	broker := NewSegmentedBroker()

	client1 := broker.Subscribe(ChannelAdmin, "")
	client2 := broker.Subscribe(ChannelAdmin, "")

	event := Event{
		Type:      TypeCatalogUpdated,
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"event_id": "ramadan",
		},
	}

	go broker.Publish(ChannelAdmin, "", event)

	// Both admin clients should receive
	select {
	case e := <-client1:
		if e.Type != TypeCatalogUpdated {
			t.Errorf("Expected %s, got %s", TypeCatalogUpdated, e.Type)
		}
	case <-time.After(time.Second):
		t.Error("Client 1 timeout")
	}

	select {
	case e := <-client2:
		if e.Type != TypeCatalogUpdated {
			t.Errorf("Expected %s, got %s", TypeCatalogUpdated, e.Type)
		}
	case <-time.After(time.Second):
		t.Error("Client 2 timeout")
	}
}

func TestSegmentedBroker_MerchantChannel_Isolation(t *testing.T) {
	broker := NewSegmentedBroker()

	merchantA := broker.Subscribe(ChannelMerchant, "m1")
	merchantB := broker.Subscribe(ChannelMerchant, "m2")

	event := Event{
		Type:      TypeContentCreated,
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"merchant_id": "m1",
		},
	}

	go broker.Publish(ChannelMerchant, "m1", event)

	// Merchant A should receive
	select {
	case e := <-merchantA:
		if e.Type != TypeContentCreated {
			t.Errorf("Expected %s, got %s", TypeContentCreated, e.Type)
		}
	case <-time.After(time.Second):
		t.Error("Merchant A timeout")
	}

	// Merchant B should NOT receive
	select {
	case <-merchantB:
		t.Error("Merchant B should not receive events meant for merchant A")
	case <-time.After(100 * time.Millisecond):
		// Expected: timeout means no event received
	}
}

func TestSegmentedBroker_MerchantEventsFanOutToAdmin(t *testing.T) {
	broker := NewSegmentedBroker()

	admin := broker.Subscribe(ChannelAdmin, "")

	event := Event{
		Type:      TypeContentCreated,
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"merchant_id": "m1",
		},
	}

	go broker.Publish(ChannelMerchant, "m1", event)

	select {
	case e := <-admin:
		if e.Type != TypeContentCreated {
			t.Errorf("Expected %s, got %s", TypeContentCreated, e.Type)
		}
	case <-time.After(time.Second):
		t.Error("Admin should see merchant activity")
	}
}

func TestSegmentedBroker_Unsubscribe(t *testing.T) {
	broker := NewSegmentedBroker()

	client := broker.Subscribe(ChannelAdmin, "")

	stats := broker.GetStats()
	if stats["admin_clients"] != 1 {
		t.Errorf("Expected 1 admin client, got %d", stats["admin_clients"])
	}

	broker.Unsubscribe(ChannelAdmin, "", client)

	stats = broker.GetStats()
	if stats["admin_clients"] != 0 {
		t.Errorf("Expected 0 admin clients, got %d", stats["admin_clients"])
	}
}

func TestSegmentedBroker_GetStats(t *testing.T) {
	broker := NewSegmentedBroker()

	broker.Subscribe(ChannelAdmin, "")
	broker.Subscribe(ChannelMerchant, "m1")
	broker.Subscribe(ChannelMerchant, "m2")

	stats := broker.GetStats()

	if stats["admin_clients"] != 1 {
		t.Errorf("Expected 1 admin client, got %d", stats["admin_clients"])
	}

	if stats["merchant_clients"] != 2 {
		t.Errorf("Expected 2 merchant clients, got %d", stats["merchant_clients"])
	}
}
