package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mawasim/internal/core"
	"mawasim/pkg/broker"

	"github.com/google/uuid"
)

// ErrVideoTimeout is returned when a video operation does not finish
// within the bounded poll budget. Distinguishable from remote failures.
var ErrVideoTimeout = errors.New("video generation timed out")

// copyPromptTemplate is the canonical marketing prompt. Store name,
// business category, occasion, tone and language are substituted in.
const copyPromptTemplate = `Write a professional marketing caption for social media.
  Store Name: %s
  Business Category: %s
  Event/Occasion: %s
  Tone: %s
  Language: %s
  Include hashtags and a clear call to action. Return only the text.`

// StudioService orchestrates content generation: it builds the prompt,
// awaits exactly one generation call, and appends the resulting artifact
// to the merchant's content history.
type StudioService struct {
	generator core.ContentGenerator
	catalog   *CatalogService
	merchants core.MerchantRepository
	contents  core.ContentRepository
	broker    *broker.SegmentedBroker

	// Video polling policy. The loop is bounded: maxPollAttempts polls
	// spaced pollInterval apart, then ErrVideoTimeout.
	pollInterval    time.Duration
	maxPollAttempts int
}

func NewStudioService(
	generator core.ContentGenerator,
	catalog *CatalogService,
	merchants core.MerchantRepository,
	contents core.ContentRepository,
	b *broker.SegmentedBroker,
) *StudioService {
	return &StudioService{
		generator:       generator,
		catalog:         catalog,
		merchants:       merchants,
		contents:        contents,
		broker:          b,
		pollInterval:    10 * time.Second,
		maxPollAttempts: 30, // 5 minutes
	}
}

// BuildCopyPrompt substitutes the merchant and event parameters into the
// caption template.
func BuildCopyPrompt(storeName, businessType, occasion, tone, lang string) string {
	language := "English"
	if lang == "ar" {
		language = "Arabic"
	}
	return fmt.Sprintf(copyPromptTemplate, storeName, businessType, occasion, tone, language)
}

// GenerateCopy produces a marketing caption for the given event.
func (s *StudioService) GenerateCopy(ctx context.Context, req core.CopyRequest) (*core.GeneratedContent, error) {
	merchant, err := s.merchants.GetByID(req.MerchantID)
	if err != nil {
		return nil, err
	}
	event, ok := s.catalog.Get(req.EventID)
	if !ok {
		return nil, fmt.Errorf("event %s: %w", req.EventID, core.ErrNotFound)
	}

	prompt := BuildCopyPrompt(
		merchant.StoreName,
		merchant.BusinessType,
		event.Title.In(req.Lang),
		req.Tone,
		req.Lang,
	)

	text, err := s.generator.GenerateCopy(ctx, prompt)
	if err != nil {
		return nil, err
	}

	content := core.GeneratedContent{
		ID:      uuid.NewString(),
		Type:    core.ContentCopy,
		Text:    text,
		EventID: event.ID,
	}
	return s.save(req.MerchantID, content)
}

// GenerateImage produces a square campaign visual. An empty prompt falls
// back to one derived from the event and store name.
func (s *StudioService) GenerateImage(ctx context.Context, req core.MediaRequest) (*core.GeneratedContent, error) {
	prompt, eventID, err := s.mediaPrompt(req)
	if err != nil {
		return nil, err
	}

	url, err := s.generator.GenerateImage(ctx, prompt, req.AspectRatio)
	if err != nil {
		return nil, err
	}

	content := core.GeneratedContent{
		ID:      uuid.NewString(),
		Type:    core.ContentImage,
		URL:     url,
		EventID: eventID,
	}
	return s.save(req.MerchantID, content)
}

// GenerateVideo starts a long-running video job and polls it to
// completion under a bounded attempt budget.
func (s *StudioService) GenerateVideo(ctx context.Context, req core.MediaRequest) (*core.GeneratedContent, error) {
	prompt, eventID, err := s.mediaPrompt(req)
	if err != nil {
		return nil, err
	}

	operation, err := s.generator.StartVideo(ctx, prompt)
	if err != nil {
		return nil, err
	}

	uri, err := s.awaitVideo(ctx, operation)
	if err != nil {
		return nil, err
	}

	content := core.GeneratedContent{
		ID:      uuid.NewString(),
		Type:    core.ContentVideo,
		URL:     uri,
		EventID: eventID,
	}
	return s.save(req.MerchantID, content)
}

// FetchVideo downloads the bytes of a finished video artifact owned by
// the merchant.
func (s *StudioService) FetchVideo(ctx context.Context, merchantID, contentID string) ([]byte, error) {
	contents, err := s.contents.ListByMerchant(merchantID)
	if err != nil {
		return nil, err
	}
	for _, c := range contents {
		if c.ID == contentID && c.Type == core.ContentVideo {
			return s.generator.DownloadVideo(ctx, c.URL)
		}
	}
	return nil, fmt.Errorf("video %s: %w", contentID, core.ErrNotFound)
}

// ListContents returns the merchant's generation history, newest first.
func (s *StudioService) ListContents(merchantID string) ([]core.GeneratedContent, error) {
	return s.contents.ListByMerchant(merchantID)
}

// Stats counts the merchant's artifacts by type for the dashboard.
func (s *StudioService) Stats(merchantID string) (core.ContentStats, error) {
	contents, err := s.contents.ListByMerchant(merchantID)
	if err != nil {
		return core.ContentStats{}, err
	}

	var stats core.ContentStats
	for _, c := range contents {
		switch c.Type {
		case core.ContentImage:
			stats.Images++
		case core.ContentVideo:
			stats.Videos++
		case core.ContentCopy:
			stats.Copies++
		}
	}
	return stats, nil
}

func (s *StudioService) mediaPrompt(req core.MediaRequest) (prompt, eventID string, err error) {
	if req.Prompt != "" {
		return req.Prompt, req.EventID, nil
	}

	merchant, err := s.merchants.GetByID(req.MerchantID)
	if err != nil {
		return "", "", err
	}
	event, ok := s.catalog.Get(req.EventID)
	if !ok {
		return "", "", fmt.Errorf("event %s: %w", req.EventID, core.ErrNotFound)
	}

	prompt = fmt.Sprintf("A vibrant social media marketing visual for %s celebrating %s. Modern, festive, no text.",
		merchant.StoreName, event.Title.EN)
	return prompt, event.ID, nil
}

// awaitVideo polls the operation on a fixed interval until it reports
// done, the attempt budget runs out, or the context is cancelled.
func (s *StudioService) awaitVideo(ctx context.Context, operation string) (string, error) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for attempt := 0; attempt < s.maxPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}

		done, uri, err := s.generator.PollVideo(ctx, operation)
		if err != nil {
			return "", err
		}
		if done {
			return uri, nil
		}
	}

	return "", fmt.Errorf("%w after %d attempts", ErrVideoTimeout, s.maxPollAttempts)
}

func (s *StudioService) save(merchantID string, content core.GeneratedContent) (*core.GeneratedContent, error) {
	if err := s.contents.Append(merchantID, content); err != nil {
		return nil, fmt.Errorf("persist content: %w", err)
	}

	if s.broker != nil {
		s.broker.Publish(broker.ChannelMerchant, merchantID, broker.Event{
			Type:      broker.TypeContentCreated,
			Timestamp: time.Now().Unix(),
			Data: map[string]interface{}{
				"merchant_id":  merchantID,
				"content_id":   content.ID,
				"content_type": string(content.Type),
			},
		})
	}
	return &content, nil
}
