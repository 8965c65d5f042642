package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"masar-mortgage/internal/usecase/assistant"
)

// Ollama talks to a local Ollama server without streaming.
type Ollama struct {
	BaseURL string
	Model   string
	HTTP    *http.Client
}

var _ assistant.Provider = (*Ollama)(nil)

func NewOllama(baseURL, model string) *Ollama {
	return &Ollama{BaseURL: baseURL, Model: model, HTTP: defaultClient()}
}

func (o *Ollama) Name() string { return "ollama" }

type ollamaRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type ollamaResponse struct {
	Message chatMessage `json:"message"`
}

func (o *Ollama) Ask(ctx context.Context, question string, history []assistant.Message) (string, error) {
	if o.BaseURL == "" {
		return "", errors.New("ollama: url not configured")
	}
	req := ollamaRequest{Model: o.Model, Messages: chatMessages(question, history)}

	var resp ollamaResponse
	if err := postJSON(ctx, o.HTTP, strings.TrimRight(o.BaseURL, "/")+"/api/chat", nil, req, &resp); err != nil {
		return "", err
	}
	return resp.Message.Content, nil
}
