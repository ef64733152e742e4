package ollama

import "time"

const (
	// DefaultHost is the default local Ollama endpoint
	DefaultHost = "http://localhost:11434"

	// DefaultModel is the default Ollama model
	DefaultModel = "llama3.1"

	// DefaultTimeout is the default HTTP client timeout. Local models can be slow
	// on the first call while weights load.
	DefaultTimeout = 120 * time.Second
)
