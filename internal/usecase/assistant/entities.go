package assistant

import (
	"context"
	"errors"
)

var (
	ErrEmptyQuestion   = errors.New("question is empty")
	ErrQuestionTooLong = errors.New("question is too long")
	ErrEmptyAnswer     = errors.New("provider returned an empty answer")
)

const (
	MaxQuestionRunes = 2000
	MaxHistory       = 20

	// FallbackName is reported when no remote provider answered.
	FallbackName = "fallback"
)

// SystemPrompt frames every provider as a Saudi real-estate advisor.
const SystemPrompt = "أنت مستشار عقاري سعودي خبير. أجب باللغة العربية بإيجاز ووضوح عن التمويل العقاري ودعم سكني واختيار العقار في المملكة العربية السعودية. الأرقام تقديرية وليست عرضاً تمويلياً."

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Question struct {
	Text    string    `json:"question"`
	History []Message `json:"history,omitempty"`
}

type Answer struct {
	Text     string `json:"answer"`
	Provider string `json:"provider"`
}

// Provider is one remote model. Ask returns an error on any failure so the
// chain can move on.
type Provider interface {
	Name() string
	Ask(ctx context.Context, question string, history []Message) (string, error)
}

// Recorder receives the name of the provider that answered.
type Recorder interface{ AssistantAnswer(provider string) }

type nopRecorder struct{}

func (nopRecorder) AssistantAnswer(string) {}
