package llm

import (
	"context"
)

// Completer represents a single-shot text completion backend. The
// remote model keeps no session state; the whole conversation must be
// linearized into one prompt by the caller.
type Completer interface {
	// Complete sends one prompt and returns the model's answer
	Complete(ctx context.Context, prompt string, opts ...Option) (Completion, error)
}

// Completion contains the model's answer and additional metadata
type Completion struct {
	Answer string
	Usage  Usage
}

// Usage represents token usage statistics
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Client represents a configured completion client
type Client struct {
	completer Completer
}

// NewClient creates a new completion client
func NewClient(completer Completer) *Client {
	return &Client{completer: completer}
}

// Complete sends one prompt and returns the model's answer
func (c *Client) Complete(ctx context.Context, prompt string, opts ...Option) (Completion, error) {
	return c.completer.Complete(ctx, prompt, opts...)
}
