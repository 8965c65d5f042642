package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"masar-mortgage/internal/usecase/assistant"
)

const deepSeekBaseURL = "https://api.deepseek.com"

// DeepSeek speaks the OpenAI chat-completions protocol.
type DeepSeek struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
	HTTP      *http.Client
}

var _ assistant.Provider = (*DeepSeek)(nil)

func NewDeepSeek(apiKey, model string) *DeepSeek {
	return &DeepSeek{APIKey: apiKey, Model: model, BaseURL: deepSeekBaseURL, MaxTokens: 1024, HTTP: defaultClient()}
}

func (d *DeepSeek) Name() string { return "deepseek" }

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (d *DeepSeek) Ask(ctx context.Context, question string, history []assistant.Message) (string, error) {
	if d.APIKey == "" {
		return "", errors.New("deepseek: api key not configured")
	}
	req := chatRequest{Model: d.Model, Messages: chatMessages(question, history), MaxTokens: d.MaxTokens}

	var resp chatResponse
	endpoint := strings.TrimRight(d.BaseURL, "/") + "/chat/completions"
	if err := postJSON(ctx, d.HTTP, endpoint, map[string]string{"Authorization": "Bearer " + d.APIKey}, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("deepseek: no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
