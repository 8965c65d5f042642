package llm

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"masar-mortgage/internal/usecase/assistant"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type Gemini struct {
	APIKey  string
	Model   string
	BaseURL string
	HTTP    *http.Client
}

var _ assistant.Provider = (*Gemini)(nil)

func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{APIKey: apiKey, Model: model, BaseURL: geminiBaseURL, HTTP: defaultClient()}
}

func (g *Gemini) Name() string { return "gemini" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) Ask(ctx context.Context, question string, history []assistant.Message) (string, error) {
	if g.APIKey == "" {
		return "", errors.New("gemini: api key not configured")
	}

	req := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: assistant.SystemPrompt}}},
	}
	for _, m := range history {
		role := "user"
		if m.Role == assistant.RoleAssistant {
			role = "model"
		}
		req.Contents = append(req.Contents, geminiContent{Role: role, Parts: []geminiPart{{Text: m.Content}}})
	}
	req.Contents = append(req.Contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: question}}})

	// the key must stay out of the URL: transport errors print it
	endpoint := strings.TrimRight(g.BaseURL, "/") + "/models/" + url.PathEscape(g.Model) + ":generateContent"
	headers := map[string]string{"x-goog-api-key": g.APIKey}

	var resp geminiResponse
	if err := postJSON(ctx, g.HTTP, endpoint, headers, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("gemini: no candidates in response")
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String(), nil
}
