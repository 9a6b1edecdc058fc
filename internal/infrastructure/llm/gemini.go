package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/Arthur-Marques-IA/moneytora/internal/infrastructure/config"
)

// Client wraps the Gemini API behind a single-prompt completion call.
// Every request carries a bounded timeout so a stuck upstream cannot
// hang the caller.
type Client struct {
	genai   *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient creates a Gemini-backed completion client.
func NewClient(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{
		genai:   client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger.Named("llm"),
	}, nil
}

// Complete sends a single user prompt and returns the model's text reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	start := time.Now()
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	c.logger.Debug("completion finished",
		zap.String("model", c.model),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_len", len(text)),
	)
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// CleanJSON strips Markdown code fences that models sometimes wrap
// around JSON output despite instructions not to.
func CleanJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
