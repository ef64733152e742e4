package ollama

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Config holds Ollama client configuration
type Config struct {
	Host       string
	Model      string
	Timeout    time.Duration // used when HTTPClient is nil
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if _, err := url.ParseRequestURI(c.Host); err != nil {
		return fmt.Errorf("ollama: invalid host %q: %w", c.Host, err)
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		timeout := c.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.HTTPClient = &http.Client{Timeout: timeout}
	}
	return nil
}

// ollamaImpl is the internal implementation of IOllama
type ollamaImpl struct {
	host       string
	model      string
	httpClient *http.Client
}

// Request is a generate call. Model overrides the configured model when set.
type Request struct {
	Model       string
	System      string
	Prompt      string
	Stream      bool
	Temperature float64
	MaxTokens   int
}

// Response is the final generate result
type Response struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system,omitempty"`
	Stream  bool            `json:"stream"`
	Options *generateOption `json:"options,omitempty"`
}

type generateOption struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}
