package completion

import (
	"github.com/sashabaranov/go-openai"
)

const (
	DefaultModel       = openai.GPT4oMini
	DefaultMaxTokens   = 350
	DefaultTemperature = 0.4

	Disclaimer = "Info generali, non è un consulto medico. In emergenza 144."

	// FallbackText is returned whenever the completion service cannot answer.
	FallbackText = "Ops, non riesco a rispondere ora. Riprova tra poco. " + Disclaimer

	DefaultSystemPrompt = "You are AuraLis, a warm, empathetic digital health companion for everyday wellbeing." +
		" Be concise (<=120 words). Offer practical steps users can do now." +
		" Never give diagnoses or drug dosages. Avoid medical claims." +
		" Always end with: 'Info generali, non è un consulto medico. In emergenza chiama il 144.'" +
		" Finish with a friendly follow-up question."
)

// Request is a single completion call. It is built per message and dropped
// once the call returns.
type Request struct {
	System      string
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature float32
}

func (r Request) chatRequest() openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: r.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: r.System},
			{Role: openai.ChatMessageRoleUser, Content: r.Prompt},
		},
		MaxTokens:   r.MaxTokens,
		Temperature: r.Temperature,
	}
}
