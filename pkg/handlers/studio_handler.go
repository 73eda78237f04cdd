package handlers

import (
	"errors"
	"net/http"

	"mawasim/internal/core"
	"mawasim/internal/service"
	"mawasim/pkg/genai"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// StudioHandler exposes the AI studio: copy, image and video generation
// plus the merchant's content history.
type StudioHandler struct {
	Studio *service.StudioService
}

// GenerateCopy produces a marketing caption for an event.
// POST /api/studio/copy
// Body: {"event_id": "...", "tone": "Persuasive", "lang": "ar"}
func (h *StudioHandler) GenerateCopy(e *pbCore.RequestEvent) error {
	var req struct {
		EventID string `json:"event_id"`
		Tone    string `json:"tone"`
		Lang    string `json:"lang"`
	}
	if err := e.BindBody(&req); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.EventID == "" {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "event_id required"})
	}
	if req.Lang != "ar" && req.Lang != "en" {
		req.Lang = "ar"
	}

	content, err := h.Studio.GenerateCopy(e.Request.Context(), core.CopyRequest{
		MerchantID: e.Auth.Id,
		EventID:    req.EventID,
		Tone:       req.Tone,
		Lang:       req.Lang,
	})
	if err != nil {
		return h.fail(e, err)
	}
	return e.JSON(http.StatusOK, content)
}

// GenerateImage produces a campaign visual.
// POST /api/studio/image
// Body: {"event_id": "...", "prompt": "...", "aspect_ratio": "1:1"}
func (h *StudioHandler) GenerateImage(e *pbCore.RequestEvent) error {
	req, err := h.bindMediaRequest(e)
	if err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	content, err := h.Studio.GenerateImage(e.Request.Context(), req)
	if err != nil {
		return h.fail(e, err)
	}
	return e.JSON(http.StatusOK, content)
}

// GenerateVideo produces a short vertical video. The request blocks
// while the long-running operation is polled, bounded by the studio's
// attempt budget.
// POST /api/studio/video
func (h *StudioHandler) GenerateVideo(e *pbCore.RequestEvent) error {
	req, err := h.bindMediaRequest(e)
	if err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	content, err := h.Studio.GenerateVideo(e.Request.Context(), req)
	if err != nil {
		return h.fail(e, err)
	}
	return e.JSON(http.StatusOK, content)
}

// DownloadVideo streams the bytes of a finished video artifact.
// GET /api/studio/video/{id}
func (h *StudioHandler) DownloadVideo(e *pbCore.RequestEvent) error {
	contentID := e.Request.PathValue("id")
	if contentID == "" {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing content ID"})
	}

	data, err := h.Studio.FetchVideo(e.Request.Context(), e.Auth.Id, contentID)
	if err != nil {
		return h.fail(e, err)
	}

	e.Response.Header().Set("Content-Type", "video/mp4")
	_, err = e.Response.Write(data)
	return err
}

// ListContents returns the merchant's generation history, newest first.
// GET /api/studio/contents
func (h *StudioHandler) ListContents(e *pbCore.RequestEvent) error {
	contents, err := h.Studio.ListContents(e.Auth.Id)
	if err != nil {
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return e.JSON(http.StatusOK, contents)
}

func (h *StudioHandler) bindMediaRequest(e *pbCore.RequestEvent) (core.MediaRequest, error) {
	var req struct {
		EventID     string `json:"event_id"`
		Prompt      string `json:"prompt"`
		AspectRatio string `json:"aspect_ratio"`
	}
	if err := e.BindBody(&req); err != nil {
		return core.MediaRequest{}, errors.New("Invalid request")
	}
	if req.EventID == "" && req.Prompt == "" {
		return core.MediaRequest{}, errors.New("event_id or prompt required")
	}

	return core.MediaRequest{
		MerchantID:  e.Auth.Id,
		EventID:     req.EventID,
		Prompt:      req.Prompt,
		AspectRatio: req.AspectRatio,
	}, nil
}

// fail maps service failures to HTTP responses, keeping the specific
// cause instead of one opaque error.
func (h *StudioHandler) fail(e *pbCore.RequestEvent, err error) error {
	var apiErr *genai.APIError
	switch {
	case errors.Is(err, core.ErrNotFound):
		return e.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrVideoTimeout):
		return e.JSON(http.StatusGatewayTimeout, map[string]string{"error": err.Error()})
	case errors.As(err, &apiErr):
		status := http.StatusBadGateway
		switch apiErr.Kind {
		case genai.KindUnauthorized:
			status = http.StatusUnauthorized
		case genai.KindQuota:
			status = http.StatusTooManyRequests
		}
		return e.JSON(status, map[string]string{
			"error": apiErr.Message,
			"kind":  string(apiErr.Kind),
		})
	}
	return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
