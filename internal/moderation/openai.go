package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wheatandcat/KAWKAW/internal/config"
	"github.com/wheatandcat/KAWKAW/internal/pkg/logger"
	"github.com/wheatandcat/KAWKAW/internal/pkg/metrics"
)

// Client calls the OpenAI moderations endpoint to classify free text.
//
// The gate fails open: any failure of the remote call (network error,
// non-2xx, timeout) is logged and treated as not flagged. Moderation
// unavailability must never block legitimate content flow.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *logger.Logger
}

// NewClient creates a new moderation client
func NewClient(cfg config.ModerationConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		logger:     log,
	}
}

type moderationRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type moderationResponse struct {
	Results []struct {
		Flagged bool `json:"flagged"`
	} `json:"results"`
}

// Classify reports whether the classifier flagged the text as violating
// content policy. A single attempt, no retries, no result caching.
func (c *Client) Classify(ctx context.Context, text string) bool {
	flagged, err := c.classify(ctx, text)
	if err != nil {
		metrics.ModerationFailures.Inc()
		c.logger.Error("Moderation call failed, failing open", err)
		return false
	}
	return flagged
}

func (c *Client) classify(ctx context.Context, text string) (bool, error) {
	body, err := json.Marshal(moderationRequest{
		Model: c.model,
		Input: text,
	})
	if err != nil {
		return false, fmt.Errorf("failed to marshal moderation request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/moderations",
		bytes.NewReader(body),
	)
	if err != nil {
		return false, fmt.Errorf("failed to build moderation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("moderation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("moderation API returned status %d", resp.StatusCode)
	}

	var decoded moderationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return false, fmt.Errorf("failed to decode moderation response: %w", err)
	}

	if len(decoded.Results) == 0 {
		return false, fmt.Errorf("moderation response contained no results")
	}

	return decoded.Results[0].Flagged, nil
}
