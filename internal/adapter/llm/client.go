// Package llm holds the remote model providers used by the assistant chain.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"masar-mortgage/internal/usecase/assistant"
)

const maxErrorBody = 512

func defaultClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

// postJSON sends body as JSON and decodes a 200 response into out.
func postJSON(ctx context.Context, hc *http.Client, url string, headers map[string]string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatMessages renders system prompt, history and question in the
// role/content shape shared by OpenAI-compatible and Ollama endpoints.
func chatMessages(question string, history []assistant.Message) []chatMessage {
	out := make([]chatMessage, 0, len(history)+2)
	out = append(out, chatMessage{Role: "system", Content: assistant.SystemPrompt})
	for _, m := range history {
		out = append(out, chatMessage{Role: string(m.Role), Content: m.Content})
	}
	return append(out, chatMessage{Role: "user", Content: question})
}

// Providers builds the chain order from whatever is configured.
func Providers(geminiKey, geminiModel, deepSeekKey, deepSeekModel, ollamaURL, ollamaModel string) []assistant.Provider {
	var out []assistant.Provider
	if geminiKey != "" {
		out = append(out, NewGemini(geminiKey, geminiModel))
	}
	if deepSeekKey != "" {
		out = append(out, NewDeepSeek(deepSeekKey, deepSeekModel))
	}
	if ollamaURL != "" {
		out = append(out, NewOllama(ollamaURL, ollamaModel))
	}
	return out
}
