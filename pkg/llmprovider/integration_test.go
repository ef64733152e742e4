package llmprovider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"director-agent/config"
	"director-agent/pkg/llmprovider"
	"director-agent/pkg/log"
)

// TestIntegration_ConfigToManagerFlow verifies that provider configuration,
// provider initialization and the manager work together against a real HTTP backend.
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"model":"llama3.1","response":"touring","done":true}`))
	}))
	defer ts.Close()

	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "test-gemini-key", Model: "gemini-2.5-flash", Timeout: "30s"},
			{Name: "ollama", Enabled: true, Priority: 1, BaseURL: ts.URL, Model: "llama3.1", Timeout: "5s"},
			{Name: "qwen", Enabled: false, Priority: 3, APIKey: "k", Model: "qwen-plus"},
		},
		RetryAttempts: 1,
		RetryDelay:    "1s",
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("InitializeProviders() error = %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 enabled providers, got %d", len(providers))
	}
	if providers[0].Name() != "ollama" || providers[1].Name() != "gemini" {
		t.Errorf("providers not sorted by priority: %s, %s", providers[0].Name(), providers[1].Name())
	}

	manager := llmprovider.NewManager(providers, llmprovider.ManagerConfigFrom(cfg), log.NewNop())

	resp, err := manager.GenerateContent(context.Background(), &llmprovider.Request{
		Messages: []llmprovider.Message{llmprovider.NewTextMessage("user", "Book the venue")},
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if reply := llmprovider.DecodeReply(resp); reply.Text != "touring" {
		t.Errorf("unexpected reply %+v", reply)
	}
}

func TestIntegration_ProviderValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr error
	}{
		{"nil config", nil, nil},
		{"no enabled providers", &config.LLMConfig{Providers: []config.ProviderConfig{{Name: "qwen", Model: "m"}}}, llmprovider.ErrNoProvidersConfigured},
		{"missing api key", &config.LLMConfig{Providers: []config.ProviderConfig{{Name: "qwen", Enabled: true, Priority: 1, Model: "m"}}}, nil},
		{"unknown provider", &config.LLMConfig{Providers: []config.ProviderConfig{{Name: "claude", Enabled: true, Priority: 1, APIKey: "k", Model: "m"}}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := llmprovider.InitializeProviders(tt.cfg)
			if err == nil {
				t.Fatalf("expected error, got %d providers", len(providers))
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIntegration_PartialInit(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 1, Model: "deepseek-chat"},
			{Name: "ollama", Enabled: true, Priority: 2, Model: "llama3.1"},
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	var partial *llmprovider.PartialInitError
	if !errors.As(err, &partial) {
		t.Fatalf("expected PartialInitError, got %v", err)
	}
	if len(partial.Failures) != 1 || len(providers) != 1 || providers[0].Name() != "ollama" {
		t.Errorf("unexpected result: providers=%d failures=%v", len(providers), partial.Failures)
	}
}

func TestManagerConfigFrom(t *testing.T) {
	got := llmprovider.ManagerConfigFrom(&config.LLMConfig{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "250ms",
		MaxTotalTimeout: "bogus",
	})
	if !got.FallbackEnabled || got.RetryAttempts != 3 || got.RetryDelay != 250*time.Millisecond {
		t.Errorf("unexpected config %+v", got)
	}
	if got.MaxTotalTimeout != 0 {
		t.Errorf("unparseable timeout should be zero, got %v", got.MaxTotalTimeout)
	}
}
