package llmprovider

import "context"

// Generator is the inference capability handed to the router and agents.
// Manager and every Provider satisfy it.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Provider defines the interface for LLM providers
type Provider interface {
	Generator

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the default model. Request.Model overrides it per call.
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	Model             string // optional per-call model override
	SystemInstruction *Message
	Messages          []Message
	Stream            bool
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

// Part is a text segment of a message.
type Part struct {
	Text string
}

// Response represents a normalized LLM generation response.
//
// Backends whose wire format carries a top-level completion string fill Text;
// chat-style backends fill Content with the first choice/candidate message.
// Use DecodeReply to read it.
type Response struct {
	Text         string
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// NewTextMessage builds a single-part message.
func NewTextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}
