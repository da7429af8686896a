package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-1.5-flash"
	defaultGeminiTimeout = 60 * time.Second
)

type GeminiConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GeminiGateway calls the generative language REST API's generateContent
// endpoint, sending the prompt as the sole user turn.
type GeminiGateway struct {
	client  *resty.Client
	apiKey  string
	model   string
	timeout time.Duration
}

func NewGeminiGateway(cfg GeminiConfig) *GeminiGateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultGeminiTimeout
	}

	return &GeminiGateway{
		client:  resty.New().SetBaseURL(cfg.BaseURL),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiGateway) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	body := generateContentRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	}

	res, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(body).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		slog.Error("gemini request failed", "model", g.model, "error", err)
		return "", ErrGateway
	}

	if !res.IsSuccess() {
		slog.Error("gemini returned error", "status_code", res.StatusCode(), "body", res.String())
		return "", ErrGateway
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(res.Body(), &parsed); err != nil {
		slog.Error("error parsing gemini response", "error", err)
		return "", ErrGateway
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 || parsed.Candidates[0].Content.Parts[0].Text == "" {
		return NoResponseFallback, nil
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func (g *GeminiGateway) ModelID() string {
	return "gemini/" + g.model
}
