package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"director-agent/pkg/gemini"
)

func newTestServer(t *testing.T, gotPath *string, gotBody *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		*gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(gotBody); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contents := (*gotBody)["contents"].([]any)
		text := contents[0].(map[string]any)["parts"].([]any)[0].(map[string]any)["text"]
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "  touring  "}]}}],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 3, "totalTokenCount": 15}
		}`))
	}))
}

func TestGenerateContent(t *testing.T) {
	var path string
	var body map[string]any
	ts := newTestServer(t, &path, &body)
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "classify"}}},
		Messages:          []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "book a show"}}}},
		Temperature:       0.1,
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}

	if path != "/models/"+gemini.DefaultModel+":generateContent" {
		t.Errorf("unexpected path %q", path)
	}
	if _, ok := body["system_instruction"]; !ok {
		t.Errorf("system_instruction missing from request body")
	}
	if resp.Content.Parts[0].Text != "  touring  " {
		t.Errorf("unexpected text %q", resp.Content.Parts[0].Text)
	}
	if resp.Usage.TotalTokens != 15 || resp.Usage.InputTokens != 12 {
		t.Errorf("unexpected usage %+v", resp.Usage)
	}
}

func TestGenerateContent_ModelOverride(t *testing.T) {
	var path string
	var body map[string]any
	ts := newTestServer(t, &path, &body)
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	_, err := client.GenerateContent(context.Background(), &gemini.Request{
		Model:    "gemini-2.0-flash-lite",
		Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "hi"}}}},
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if !strings.Contains(path, "gemini-2.0-flash-lite") {
		t.Errorf("model override not applied, path %q", path)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("Model() = %q, want default", client.Model())
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	var path string
	var body map[string]any
	ts := newTestServer(t, &path, &body)
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	_, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "cause_500"}}}},
	})
	if err == nil || !strings.Contains(err.Error(), "API error 500") {
		t.Fatalf("expected API error 500, got %v", err)
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
