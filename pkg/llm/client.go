package llm

import (
	"context"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

const DefaultAPIURL = "https://api.openai.com/v1"

// LLMClient is the subset of the OpenAI client the relay talks to.
type LLMClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

var _ LLMClient = (*openai.Client)(nil)

func NewClient(APIKey, URL, timeout string) *openai.Client {
	config := openai.DefaultConfig(APIKey)
	if URL != "" {
		config.BaseURL = URL
	}

	dur, err := time.ParseDuration(timeout)
	if err != nil {
		dur = 150 * time.Second
	}

	config.HTTPClient = &http.Client{
		Timeout: dur,
	}
	return openai.NewClientWithConfig(config)
}
