package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"director-agent/internal/agent"
	"director-agent/internal/model"
	"director-agent/pkg/llmprovider"
	"director-agent/pkg/log"
	"director-agent/pkg/metrics"
)

// PromptAgent is a stateless agent that answers a query with one inference
// call over a fixed system prompt.
type PromptAgent struct {
	label        model.Label
	role         string
	capabilities []string
	stateTitle   string
	state        []string
	model        string
	l            log.Logger
}

var _ agent.Handler = (*PromptAgent)(nil)

// Label implements agent.Handler.
func (a *PromptAgent) Label() model.Label {
	return a.label
}

// SystemPrompt renders the role, the capability list and the current state block.
func (a *PromptAgent) SystemPrompt() string {
	var sb strings.Builder
	sb.WriteString(a.role)
	sb.WriteString(" You can:\n")
	for i, c := range a.capabilities {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, c)
	}
	sb.WriteString("\n")
	sb.WriteString(a.stateTitle)
	sb.WriteString(":\n")
	for _, s := range a.state {
		sb.WriteString("- ")
		sb.WriteString(s)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Handle implements agent.Handler.
func (a *PromptAgent) Handle(ctx context.Context, payload agent.Payload, llm llmprovider.Generator) (res agent.Result) {
	if llm == nil {
		a.l.Errorf(ctx, "%s: AI binding is missing or invalid", a.logPrefix())
		return agent.Result{Error: agent.MsgCapabilityMissing}
	}

	defer func() {
		if r := recover(); r != nil {
			a.l.Errorf(ctx, "%s: recovered panic: %v", a.logPrefix(), r)
			res = a.fail(fmt.Sprint(r))
		}
	}()

	system := llmprovider.NewTextMessage("system", a.SystemPrompt())
	req := &llmprovider.Request{
		Model:             a.model,
		SystemInstruction: &system,
		Messages:          []llmprovider.Message{llmprovider.NewTextMessage("user", fmt.Sprintf(UserMessageFormat, payload.Query))},
		Stream:            false,
	}

	start := time.Now()
	resp, err := llm.GenerateContent(ctx, req)
	metrics.InferenceDuration.WithLabelValues(string(a.label)).Observe(time.Since(start).Seconds())
	if err != nil {
		a.l.Errorf(ctx, "%s: %v", a.logPrefix(), err)
		return a.fail(err.Error())
	}

	text := agent.MsgNoValidResponse
	if reply := llmprovider.DecodeReply(resp); reply.Valid() {
		text = reply.Text
	}

	a.l.Debugf(ctx, "%s: LLM Response: %s", a.logPrefix(), text)
	return agent.Result{LLMReasoning: text}
}

func (a *PromptAgent) fail(msg string) agent.Result {
	metrics.AgentErrors.WithLabelValues(string(a.label)).Inc()
	return agent.Result{Error: fmt.Sprintf(agent.MsgErrorOccurred, msg)}
}

func (a *PromptAgent) logPrefix() string {
	return LogPrefixHandle + "." + string(a.label)
}
