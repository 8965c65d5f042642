package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"
)

type Chain struct {
	providers []Provider
	timeout   time.Duration
	rec       Recorder
}

// NewChain tries providers in the given order, each bounded by timeout.
func NewChain(timeout time.Duration, rec Recorder, providers ...Provider) *Chain {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Chain{providers: providers, timeout: timeout, rec: rec}
}

func (q Question) validate() (string, error) {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return "", ErrEmptyQuestion
	}
	if utf8.RuneCountInString(text) > MaxQuestionRunes {
		return "", fmt.Errorf("%w: max %d characters", ErrQuestionTooLong, MaxQuestionRunes)
	}
	return text, nil
}

// Ask always answers a valid question: when every provider fails the
// local fallback text is returned.
func (c *Chain) Ask(ctx context.Context, q Question) (*Answer, error) {
	text, err := q.validate()
	if err != nil {
		return nil, err
	}
	history := q.History
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}

	for _, p := range c.providers {
		if ctx.Err() != nil {
			break
		}
		out, err := c.try(ctx, p, text, history)
		if err != nil {
			slog.WarnContext(ctx, "assistant: provider failed", "provider", p.Name(), "err", err)
			continue
		}
		c.rec.AssistantAnswer(p.Name())
		return &Answer{Text: out, Provider: p.Name()}, nil
	}

	c.rec.AssistantAnswer(FallbackName)
	return &Answer{Text: Fallback(text), Provider: FallbackName}, nil
}

func (c *Chain) try(ctx context.Context, p Provider, text string, history []Message) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	out, err := p.Ask(ctx, text, history)
	if err != nil {
		return "", err
	}
	out = CleanMarkdown(out)
	if out == "" {
		return "", ErrEmptyAnswer
	}
	return out, nil
}

func Fallback(question string) string {
	return "عذراً، نواجه حالياً صعوبة في الاتصال بنماذج الذكاء الاصطناعي. الرجاء المحاولة مرة أخرى لاحقاً. سؤالك كان عن: " + question
}
