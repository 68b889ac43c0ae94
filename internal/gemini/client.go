// Package gemini adapts the Gemini API to the three calls the pipeline
// needs: free-form text, JSON-constrained text, and inline image bytes.
// Every call runs under a bounded timeout and is attempted exactly once.
package gemini

import (
	"context"
	"log"
	"time"

	"google.golang.org/genai"

	"github.com/DeclanJeon/TrendLens/internal/config"
)

// Client wraps one genai connection with the configured models and timeout.
type Client struct {
	genai       *genai.Client
	model       string
	imageModel  string
	callTimeout time.Duration
}

// New dials the Gemini API with the key from the environment.
func New(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	apiKey := config.GeminiAPIKey()
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, classify(err)
	}

	return &Client{
		genai:       gc,
		model:       cfg.Model,
		imageModel:  cfg.ImageModel,
		callTimeout: cfg.CallTimeout.Std(),
	}, nil
}

// GenerateText sends an instruction prompt and returns the raw response text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, nil)
}

// GenerateJSON sends an instruction prompt in JSON response mode. The model
// is asked for JSON-only output, but callers still normalize defensively —
// the hint is not a guarantee.
func (c *Client) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
}

func (c *Client) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// GenerateImage produces one inline image for a prompt, or ErrNoImage when
// the model answers without inline data.
func (c *Client) GenerateImage(ctx context.Context, prompt, aspectRatio string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	}
	if aspectRatio != "" {
		prompt = prompt + "\n\nAspect ratio: " + aspectRatio
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.imageModel, genai.Text(prompt), cfg)
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}

	log.Printf("[gemini] no inline image data for prompt: %.30q...", prompt)
	return nil, ErrNoImage
}
