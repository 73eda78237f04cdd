// Package genai is the HTTP client for the external generative AI API.
// It covers the three operations the studio consumes: text generation,
// image generation (inline base64 payload), and long-running video
// generation polled via an operation handle.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	ModelCopy  = "gemini-3-flash-preview"
	ModelImage = "gemini-2.5-flash-image"
	ModelVideo = "veo-3.1-fast-generate-preview"
)

// Client talks to the generative AI API. One API key, read from the
// environment at startup, is used unmodified for all calls.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// ---- request/response wire shapes ----

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type generationConfig struct {
	ImageConfig *imageConfig `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type videoRequest struct {
	Instances []struct {
		Prompt string `json:"prompt"`
	} `json:"instances"`
	Parameters videoParameters `json:"parameters"`
}

type videoParameters struct {
	NumberOfVideos int    `json:"numberOfVideos"`
	Resolution     string `json:"resolution"`
	AspectRatio    string `json:"aspectRatio"`
}

type operationResponse struct {
	Name     string `json:"name"`
	Done     bool   `json:"done"`
	Response struct {
		GenerateVideoResponse struct {
			GeneratedSamples []struct {
				Video struct {
					URI string `json:"uri"`
				} `json:"video"`
			} `json:"generatedSamples"`
		} `json:"generateVideoResponse"`
	} `json:"response"`
}

// GenerateCopy asks the text model for a completion and returns the
// first candidate's text.
func (c *Client) GenerateCopy(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	var resp generateResponse
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, ModelCopy, c.apiKey)
	if err := c.post(ctx, url, reqBody, &resp); err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text, nil
			}
		}
	}
	return "", &APIError{Kind: KindUnavailable, Message: "response contained no text"}
}

// GenerateImage asks the image model for a single image and returns it
// as a data URL built from the inline base64 payload.
func (c *Client) GenerateImage(ctx context.Context, prompt, aspectRatio string) (string, error) {
	if aspectRatio == "" {
		aspectRatio = "1:1"
	}
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ImageConfig: &imageConfig{AspectRatio: aspectRatio},
		},
	}

	var resp generateResponse
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, ModelImage, c.apiKey)
	if err := c.post(ctx, url, reqBody, &resp); err != nil {
		return "", err
	}

	// The image may not be the first part; scan them all.
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return "data:image/png;base64," + p.InlineData.Data, nil
			}
		}
	}
	return "", &APIError{Kind: KindUnavailable, Message: "response contained no image data"}
}

// StartVideo kicks off a long-running video generation and returns the
// operation name to poll.
func (c *Client) StartVideo(ctx context.Context, prompt string) (string, error) {
	reqBody := videoRequest{
		Parameters: videoParameters{
			NumberOfVideos: 1,
			Resolution:     "720p",
			AspectRatio:    "9:16",
		},
	}
	reqBody.Instances = append(reqBody.Instances, struct {
		Prompt string `json:"prompt"`
	}{Prompt: prompt})

	var resp operationResponse
	url := fmt.Sprintf("%s/models/%s:predictLongRunning?key=%s", c.baseURL, ModelVideo, c.apiKey)
	if err := c.post(ctx, url, reqBody, &resp); err != nil {
		return "", err
	}
	if resp.Name == "" {
		return "", &APIError{Kind: KindUnavailable, Message: "operation has no name"}
	}
	return resp.Name, nil
}

// PollVideo checks the operation once. When done, it returns the
// downloadable URI of the first generated sample.
func (c *Client) PollVideo(ctx context.Context, operation string) (bool, string, error) {
	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, operation, c.apiKey)

	var resp operationResponse
	if err := c.get(ctx, url, &resp); err != nil {
		return false, "", err
	}
	if !resp.Done {
		return false, "", nil
	}

	samples := resp.Response.GenerateVideoResponse.GeneratedSamples
	if len(samples) == 0 || samples[0].Video.URI == "" {
		return true, "", &APIError{Kind: KindUnavailable, Message: "operation finished without a video"}
	}
	return true, samples[0].Video.URI, nil
}

// DownloadVideo fetches the finished video's bytes. The API key is
// appended as a query parameter, as the download endpoint requires.
func (c *Client) DownloadVideo(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri+"&key="+c.apiKey, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromStatus(resp.StatusCode, "video download failed")
	}
	return io.ReadAll(resp.Body)
}

// ---- transport helpers ----

func (c *Client) post(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		return errorFromStatus(resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
