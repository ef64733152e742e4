package ollama

import "context"

// IOllama defines the interface for the Ollama generate API.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Generate runs a single non-streaming completion
	Generate(ctx context.Context, req *Request) (*Response, error)

	// Model returns the default model
	Model() string
}

// New creates a new Ollama client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
