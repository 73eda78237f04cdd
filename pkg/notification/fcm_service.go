package notification

import (
	"context"
	"fmt"
	"log"

	"mawasim/internal/core"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMService sends event reminders to merchant devices through Firebase
// Cloud Messaging.
type FCMService struct {
	client *messaging.Client
}

// NewFCMService creates a new FCM service instance
func NewFCMService(credentialsPath string) (*FCMService, error) {
	ctx := context.Background()
	opt := option.WithCredentialsFile(credentialsPath)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %v", err)
	}

	return &FCMService{client: client}, nil
}

// NotificationPayload defines the structure for push notifications
type NotificationPayload struct {
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
	DeviceToken string            `json:"-"` // Not sent to FCM, used internally
}

// Send delivers a single notification to a device.
func (s *FCMService) Send(ctx context.Context, payload *NotificationPayload) (string, error) {
	message := &messaging.Message{
		Token: payload.DeviceToken,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: payload.Title,
				Body:  payload.Body,
			},
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Title: payload.Title,
				Body:  payload.Body,
			},
		},
	}

	response, err := s.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("error sending message: %v", err)
	}

	log.Printf("Successfully sent message: %s\n", response)
	return response, nil
}

// SendEventReminder notifies a merchant that a marketing occasion is
// daysLeft days away. Title and body carry both languages so the device
// shows something sensible whatever the locale.
func (s *FCMService) SendEventReminder(ctx context.Context, deviceToken string, event core.MarketingEvent, daysLeft int) error {
	payload := &NotificationPayload{
		DeviceToken: deviceToken,
		Title:       fmt.Sprintf("📅 %s · %s", event.Title.AR, event.Title.EN),
		Body:        fmt.Sprintf("باقي %d يوم — %d days to go. جهّز حملتك الآن!", daysLeft, daysLeft),
		Data: map[string]string{
			"event_id":  event.ID,
			"type":      "event_reminder",
			"days_left": fmt.Sprintf("%d", daysLeft),
			"action":    "open_studio",
			"studioUrl": fmt.Sprintf("/studio?event=%s", event.ID),
		},
	}

	_, err := s.Send(ctx, payload)
	return err
}
