package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func newOllamaImpl(cfg Config) *ollamaImpl {
	return &ollamaImpl{
		host:       strings.TrimRight(cfg.Host, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Generate sends the prompt to /api/generate with streaming disabled
func (o *ollamaImpl) Generate(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("ollama: request is nil")
	}
	if req.Stream {
		return nil, fmt.Errorf("ollama: streaming is not supported")
	}

	body := generateRequest{
		Model:  o.model,
		Prompt: req.Prompt,
		System: req.System,
		Stream: false,
	}
	if req.Model != "" {
		body.Model = req.Model
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		body.Options = &generateOption{Temperature: req.Temperature, NumPredict: req.MaxTokens}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.host+"/api/generate", bytes.NewBuffer(raw))
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama: API error %d: %s", resp.StatusCode, string(respBody))
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("ollama: failed to decode response: %w", err)
	}

	return &result, nil
}

// Model returns the model being used
func (o *ollamaImpl) Model() string {
	return o.model
}
