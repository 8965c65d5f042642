package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"masar-mortgage/internal/usecase/assistant"
)

var history = []assistant.Message{
	{Role: assistant.RoleUser, Content: "مرحبا"},
	{Role: assistant.RoleAssistant, Content: "أهلاً"},
}

func TestGemini_Ask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-test:generateContent" {
			t.Errorf("path=%s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "k1" {
			t.Errorf("api key header=%q", r.Header.Get("x-goog-api-key"))
		}
		if r.URL.RawQuery != "" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if len(req.Contents) != 3 || req.Contents[1].Role != "model" || req.Contents[2].Parts[0].Text != "سؤال" {
			t.Errorf("contents=%+v", req.Contents)
		}
		if req.SystemInstruction == nil {
			t.Errorf("missing system instruction")
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"جزء "},{"text":"ثاني"}]}}]}`))
	}))
	defer srv.Close()

	g := NewGemini("k1", "gemini-test")
	g.BaseURL = srv.URL
	got, err := g.Ask(context.Background(), "سؤال", history)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != "جزء ثاني" {
		t.Fatalf("got %q", got)
	}
}

func TestGemini_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	g := NewGemini("k", "m")
	g.BaseURL = srv.URL
	if _, err := g.Ask(context.Background(), "q", nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestGemini_KeyNotInTransportError(t *testing.T) {
	g := NewGemini("SECRET-KEY-123", "gemini-test")
	g.BaseURL = "http://127.0.0.1:1"
	_, err := g.Ask(context.Background(), "سؤال", nil)
	if err == nil {
		t.Fatal("want dial error")
	}
	if strings.Contains(err.Error(), "SECRET-KEY-123") {
		t.Fatalf("api key leaked into error: %v", err)
	}
}

func TestDeepSeek_Ask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path=%s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("auth=%q", r.Header.Get("Authorization"))
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Model != "deepseek-chat" || len(req.Messages) != 4 || req.Messages[0].Role != "system" {
			t.Errorf("req=%+v", req)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"الجواب"}}]}`))
	}))
	defer srv.Close()

	d := NewDeepSeek("secret", "deepseek-chat")
	d.BaseURL = srv.URL
	got, err := d.Ask(context.Background(), "سؤال", history)
	if err != nil || got != "الجواب" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestDeepSeek_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	d := NewDeepSeek("secret", "m")
	d.BaseURL = srv.URL
	_, err := d.Ask(context.Background(), "q", nil)
	if err == nil || !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("want status error with body, got %v", err)
	}
}

func TestOllama_Ask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path=%s", r.URL.Path)
		}
		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Stream || req.Model != "llama3" {
			t.Errorf("req=%+v", req)
		}
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"تمام"}}`))
	}))
	defer srv.Close()

	got, err := NewOllama(srv.URL+"/", "llama3").Ask(context.Background(), "q", nil)
	if err != nil || got != "تمام" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestUnconfiguredProvidersFail(t *testing.T) {
	ctx := context.Background()
	if _, err := NewGemini("", "m").Ask(ctx, "q", nil); err == nil {
		t.Fatal("gemini without key must fail")
	}
	if _, err := NewDeepSeek("", "m").Ask(ctx, "q", nil); err == nil {
		t.Fatal("deepseek without key must fail")
	}
	if _, err := NewOllama("", "m").Ask(ctx, "q", nil); err == nil {
		t.Fatal("ollama without url must fail")
	}
}

func TestProviders_Order(t *testing.T) {
	ps := Providers("g", "gm", "", "dm", "http://ollama:11434", "om")
	if len(ps) != 2 || ps[0].Name() != "gemini" || ps[1].Name() != "ollama" {
		names := make([]string, len(ps))
		for i, p := range ps {
			names[i] = p.Name()
		}
		t.Fatalf("providers=%v", names)
	}
	if len(Providers("", "", "", "", "", "")) != 0 {
		t.Fatal("nothing configured should give no providers")
	}
}
