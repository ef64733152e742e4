package router

import (
	"context"
	"errors"
	"testing"

	"director-agent/internal/model"
	"director-agent/pkg/llmprovider"
	"director-agent/pkg/log"
)

type mockLLM struct {
	resp  *llmprovider.Response
	err   error
	calls int
	last  *llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.last = req
	return m.resp, m.err
}

func choice(text string) *llmprovider.Response {
	return &llmprovider.Response{Content: llmprovider.NewTextMessage("assistant", text)}
}

func TestClassify_Labels(t *testing.T) {
	tests := []struct {
		name  string
		resp  *llmprovider.Response
		want  model.Label
		reply string
	}{
		{"exact choice", choice("calendar"), model.LabelCalendar, "calendar"},
		{"direct field", &llmprovider.Response{Text: "touring"}, model.LabelTouring, "touring"},
		{"case insensitive", choice("Financial"), model.LabelFinancial, "Financial"},
		{"embedded in sentence", choice("This request belongs to the audience agent."), model.LabelAudience, "This request belongs to the audience agent."},
		{"leftmost wins", choice("touring, maybe calendar"), model.LabelTouring, "touring, maybe calendar"},
		{"choice untrimmed", choice("  calendar\n"), model.LabelCalendar, "  calendar\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &mockLLM{resp: tt.resp}
			r := New(llm, "", log.NewNop())

			out, err := r.Classify(context.Background(), "When is my next show?")
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if out.Label != tt.want {
				t.Errorf("Label = %q, want %q", out.Label, tt.want)
			}
			if out.Reply.Text != tt.reply {
				t.Errorf("Reply = %q, want %q", out.Reply.Text, tt.reply)
			}
			if out.Query != "When is my next show?" {
				t.Errorf("Query = %q", out.Query)
			}
			if llm.calls != 1 {
				t.Errorf("expected exactly one inference call, got %d", llm.calls)
			}
		})
	}
}

func TestClassify_RequestShape(t *testing.T) {
	llm := &mockLLM{resp: choice("calendar")}
	r := New(llm, "small-model", log.NewNop())

	if _, err := r.Classify(context.Background(), "  raw query  "); err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	req := llm.last
	if req.Model != "small-model" {
		t.Errorf("Model = %q, want small-model", req.Model)
	}
	if req.Stream {
		t.Errorf("Stream should be false")
	}
	if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != PromptRouterSystem {
		t.Errorf("unexpected system instruction %+v", req.SystemInstruction)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != "user" || req.Messages[0].Parts[0].Text != "  raw query  " {
		t.Errorf("user message not forwarded verbatim: %+v", req.Messages)
	}
}

func TestClassify_InvalidReply(t *testing.T) {
	llm := &mockLLM{resp: choice("weather")}
	r := New(llm, "", log.NewNop())

	_, err := r.Classify(context.Background(), "What's the weather?")

	var invalid *InvalidReplyError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidReplyError, got %v", err)
	}
	want := "Invalid agent response: weather. Expected one of: calendar, financial, audience, touring."
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
	if llm.calls != 1 {
		t.Errorf("invalid replies must not be retried, got %d calls", llm.calls)
	}
}

func TestClassify_CapabilityMissing(t *testing.T) {
	r := New(nil, "", log.NewNop())

	_, err := r.Classify(context.Background(), "anything")
	if !errors.Is(err, ErrCapabilityMissing) {
		t.Fatalf("expected ErrCapabilityMissing, got %v", err)
	}
}

func TestClassify_LLMError(t *testing.T) {
	boom := errors.New("upstream unavailable")
	r := New(&mockLLM{err: boom}, "", log.NewNop())

	_, err := r.Classify(context.Background(), "anything")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
	var invalid *InvalidReplyError
	if errors.As(err, &invalid) {
		t.Errorf("LLM failure must not be reported as invalid reply")
	}
}

func TestClassify_InvalidReplyQuotedVerbatim(t *testing.T) {
	tests := []struct {
		name string
		resp *llmprovider.Response
		want string
	}{
		{"surrounding whitespace kept", choice("  I don't understand \n"), "Invalid agent response:   I don't understand \n. Expected one of: calendar, financial, audience, touring."},
		{"empty choice", choice(""), "Invalid agent response: . Expected one of: calendar, financial, audience, touring."},
		{"whitespace-only choice", choice("   "), "Invalid agent response:    . Expected one of: calendar, financial, audience, touring."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&mockLLM{resp: tt.resp}, "", log.NewNop())

			_, err := r.Classify(context.Background(), "")

			var invalid *InvalidReplyError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidReplyError, got %v", err)
			}
			if err.Error() != tt.want {
				t.Errorf("message = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestClassify_LLMErrorUnwrapsProvider(t *testing.T) {
	boom := errors.New("connection refused")
	err := error(&llmprovider.ProviderError{Provider: "ollama", Err: boom})
	r := New(&mockLLM{err: err}, "", log.NewNop())

	_, got := r.Classify(context.Background(), "anything")
	if got == nil || got.Error() != "connection refused" {
		t.Fatalf("error = %v, want the provider's own message", got)
	}
}

func TestClassify_EmptyReply(t *testing.T) {
	r := New(&mockLLM{resp: &llmprovider.Response{}}, "", log.NewNop())

	_, err := r.Classify(context.Background(), "anything")
	if !errors.Is(err, ErrEmptyReply) {
		t.Fatalf("expected ErrEmptyReply, got %v", err)
	}
}
