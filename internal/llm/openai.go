package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultOpenAITimeout = 60 * time.Second
)

type OpenAIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// OpenAIGateway is the chat-completions backed alternative to the Gemini
// provider, selected by configuration at startup.
type OpenAIGateway struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIGateway(cfg OpenAIConfig) *OpenAIGateway {
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultOpenAITimeout
	}

	var opts []option.RequestOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	return &OpenAIGateway{
		client:  openai.NewClient(opts...),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

func (o *OpenAIGateway) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	res, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		Model:    o.model,
	})
	if err != nil {
		slog.Error("openai error: chat completions failed", "model", o.model, "error", err)
		return "", ErrGateway
	}

	if len(res.Choices) == 0 || res.Choices[0].Message.Content == "" {
		return NoResponseFallback, nil
	}
	return res.Choices[0].Message.Content, nil
}

func (o *OpenAIGateway) ModelID() string {
	return "openai/" + o.model
}
