package openai

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/tmc/langchaingo/llms"
	langopenai "github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/time/rate"
)

// ErrRateLimited signals a 429 from the completion API so callers can
// pause before the next call instead of treating it as a hard failure.
var ErrRateLimited = errors.New("completion API rate limited")

const (
	defaultModel = "gpt-4o"

	// Completions are short (a handful of words), so the token caps
	// stay tight and the temperature non-zero, matching how the
	// summaries were originally tuned. Outputs are not reproducible
	// between runs.
	maxCompletionTokens = 20
	temperature         = 0.7

	summarySystemPrompt = "You are a conversation summarizer. Create a concise 3-6 word summary " +
		"of the conversation that captures its main topic or purpose. Respond with only the summary text."
	titleSystemPrompt = "You are a title generator. Create a punchy 2-7 word title for these " +
		"meeting notes. Respond with only the title text."
)

type Client struct {
	llm     llms.Model
	limiter *rate.Limiter
}

func NewClient() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	llm, err := langopenai.New(
		langopenai.WithToken(apiKey),
		langopenai.WithModel(model),
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		llm:     llm,
		limiter: rate.NewLimiter(rate.Limit(2), 4),
	}, nil
}

// Summarize produces a 3-6 word topic summary of the conversation text.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	return c.complete(ctx, summarySystemPrompt, text)
}

// GenerateTitle produces a short title for the meeting notes.
func (c *Client) GenerateTitle(ctx context.Context, text string) (string, error) {
	return c.complete(ctx, titleSystemPrompt, text)
}

func (c *Client) complete(ctx context.Context, system, text string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := c.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, system),
			llms.TextParts(llms.ChatMessageTypeHuman, text),
		},
		llms.WithMaxTokens(maxCompletionTokens),
		llms.WithTemperature(temperature),
	)
	if err != nil {
		if isRateLimit(err) {
			return "", ErrRateLimited
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func isRateLimit(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "rate limit")
}

// Unavailable stands in for the client when no API key is configured.
// Every call fails, which makes downstream fallbacks apply.
type Unavailable struct{}

func (Unavailable) Summarize(context.Context, string) (string, error) {
	return "", errors.New("completion API not configured")
}

func (Unavailable) GenerateTitle(context.Context, string) (string, error) {
	return "", errors.New("completion API not configured")
}
