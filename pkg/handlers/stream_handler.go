package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"mawasim/pkg/broker"
	"mawasim/pkg/middleware"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// StreamHandler serves the SSE endpoints. Subscriptions authenticate
// with a short-lived stream token passed as a query parameter.
type StreamHandler struct {
	Broker      *broker.SegmentedBroker
	TokenSecret string
}

func NewStreamHandler(b *broker.SegmentedBroker, tokenSecret string) *StreamHandler {
	return &StreamHandler{Broker: b, TokenSecret: tokenSecret}
}

// StreamAdmin handles GET /api/stream/admin?token=...
// Admin dashboards receive every catalog, content and reminder event.
func (h *StreamHandler) StreamAdmin(e *pbCore.RequestEvent) error {
	claims, err := middleware.VerifyStreamToken(h.TokenSecret, e.Request.URL.Query().Get("token"))
	if err != nil || claims.Channel != string(broker.ChannelAdmin) {
		return e.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid stream token"})
	}

	return h.stream(e, broker.ChannelAdmin, "")
}

// StreamMerchant handles GET /api/stream/merchants/{id}?token=...
// A merchant only receives events for their own account.
func (h *StreamHandler) StreamMerchant(e *pbCore.RequestEvent) error {
	merchantID := e.Request.PathValue("id")
	if merchantID == "" {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing merchant ID"})
	}

	claims, err := middleware.VerifyStreamToken(h.TokenSecret, e.Request.URL.Query().Get("token"))
	if err != nil || claims.Channel != string(broker.ChannelMerchant) || claims.Subject != merchantID {
		return e.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid stream token"})
	}

	return h.stream(e, broker.ChannelMerchant, merchantID)
}

// IssueToken mints a stream token for the authenticated caller.
// POST /api/stream/token
// Admins get an admin-channel token, merchants one for their own channel.
func (h *StreamHandler) IssueToken(e *pbCore.RequestEvent) error {
	if e.Auth == nil {
		return e.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	channel := string(broker.ChannelMerchant)
	subject := e.Auth.Id
	if e.Auth.IsSuperuser() {
		channel = string(broker.ChannelAdmin)
		subject = ""
	}

	token, err := middleware.IssueStreamToken(h.TokenSecret, channel, subject, 15*time.Minute)
	if err != nil {
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return e.JSON(http.StatusOK, map[string]string{
		"token":   token,
		"channel": channel,
	})
}

func (h *StreamHandler) stream(e *pbCore.RequestEvent, channel broker.Channel, id string) error {
	// Set SSE headers
	e.Response.Header().Set("Content-Type", "text/event-stream")
	e.Response.Header().Set("Cache-Control", "no-cache")
	e.Response.Header().Set("Connection", "keep-alive")

	eventChan := h.Broker.Subscribe(channel, id)
	defer h.Broker.Unsubscribe(channel, id, eventChan)

	sendSSEMessage(e, "connected", map[string]interface{}{
		"channel":   string(channel),
		"timestamp": time.Now().Unix(),
	})

	// Heartbeat to keep the connection alive
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				return nil
			}
			sendSSEMessage(e, event.Type, event.Data)

		case <-ticker.C:
			sendSSEMessage(e, "heartbeat", map[string]interface{}{
				"timestamp": time.Now().Unix(),
			})

		case <-e.Request.Context().Done():
			log.Printf("stream client disconnected (%s %s)", channel, id)
			return nil
		}
	}
}

// sendSSEMessage sends a single SSE message
func sendSSEMessage(e *pbCore.RequestEvent, eventType string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal event data: %v", err)
		return
	}

	message := fmt.Sprintf("event: %s\ndata: %s\n\n", eventType, jsonData)
	if _, err := e.Response.Write([]byte(message)); err != nil {
		log.Printf("Failed to write SSE message: %v", err)
		return
	}

	if flusher, ok := e.Response.(interface{ Flush() }); ok {
		flusher.Flush()
	}
}
