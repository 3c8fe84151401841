package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/auralisbot/auralis/pkg/llm"
	"github.com/mudler/xlog"
)

var (
	ErrNoChoices     = errors.New("completion returned no choices")
	ErrEmptyResponse = errors.New("completion returned empty content")
)

// Result is what callers see: either the model text or the fallback text.
type Result struct {
	Text     string
	Fallback bool
}

// outcome keeps the failure reason around long enough to log it.
type outcome struct {
	text string
	err  error
}

func (o outcome) result() Result {
	if o.err != nil {
		return Result{Text: FallbackText, Fallback: true}
	}
	return Result{Text: o.text}
}

type Client struct {
	llm         llm.LLMClient
	system      string
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

type Option func(*Client) error

func WithModel(model string) Option {
	return func(c *Client) error {
		if model == "" {
			return errors.New("model cannot be empty")
		}
		c.model = model
		return nil
	}
}

func WithSystemPrompt(prompt string) Option {
	return func(c *Client) error {
		c.system = prompt
		return nil
	}
}

func WithMaxTokens(n int) Option {
	return func(c *Client) error {
		if n <= 0 {
			return fmt.Errorf("invalid max tokens: %d", n)
		}
		c.maxTokens = n
		return nil
	}
}

func WithTemperature(t float32) Option {
	return func(c *Client) error {
		if t < 0 || t > 2 {
			return fmt.Errorf("invalid temperature: %v", t)
		}
		c.temperature = t
		return nil
	}
}

// WithTimeout accepts a duration string such as "30s". Zero disables the
// per-call deadline.
func WithTimeout(timeout string) Option {
	return func(c *Client) error {
		dur, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", timeout, err)
		}
		c.timeout = dur
		return nil
	}
}

func NewClient(client llm.LLMClient, opts ...Option) (*Client, error) {
	if client == nil {
		return nil, errors.New("llm client is required")
	}
	c := &Client{
		llm:         client,
		system:      DefaultSystemPrompt,
		model:       DefaultModel,
		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
		timeout:     60 * time.Second,
	}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Client) request(prompt string) Request {
	return Request{
		System:      c.system,
		Prompt:      prompt,
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}
}

// Complete never fails: any error from the service, including a deadline,
// yields the fallback text. There is a single attempt per call.
func (c *Client) Complete(ctx context.Context, prompt string) Result {
	o := c.call(ctx, c.request(prompt))
	if o.err != nil {
		xlog.Warn("Completion failed, using fallback", "model", c.model, "error", o.err)
	}
	return o.result()
}

func (c *Client) call(ctx context.Context, req Request) outcome {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.llm.CreateChatCompletion(ctx, req.chatRequest())
	if err != nil {
		return outcome{err: fmt.Errorf("create chat completion: %w", err)}
	}
	if len(resp.Choices) == 0 {
		return outcome{err: ErrNoChoices}
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return outcome{err: ErrEmptyResponse}
	}

	xlog.Debug("Completion received", "model", c.model, "tokens", resp.Usage.TotalTokens)
	return outcome{text: text}
}
