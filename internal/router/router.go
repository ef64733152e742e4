package router

import (
	"context"
	"errors"
	"strings"
	"time"

	"director-agent/internal/model"
	"director-agent/pkg/llmprovider"
	"director-agent/pkg/metrics"
)

// Classify asks the LLM which agent should handle query.
// Makes exactly one inference call.
func (r *SemanticRouter) Classify(ctx context.Context, query string) (RouterOutput, error) {
	if r.llm == nil {
		r.l.Errorf(ctx, "%s: %s", LogPrefixClassify, ErrMsgCapabilityMissing)
		return RouterOutput{}, ErrCapabilityMissing
	}

	system := llmprovider.NewTextMessage("system", PromptRouterSystem)
	req := &llmprovider.Request{
		Model:             r.model,
		SystemInstruction: &system,
		Messages:          []llmprovider.Message{llmprovider.NewTextMessage("user", query)},
		Stream:            false,
		Temperature:       RouterTemperature,
	}

	start := time.Now()
	resp, err := r.llm.GenerateContent(ctx, req)
	metrics.InferenceDuration.WithLabelValues(metrics.StageClassify).Observe(time.Since(start).Seconds())
	if err != nil {
		r.l.Errorf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return RouterOutput{}, providerCause(err)
	}

	// The classifier reply is matched untrimmed so an invalid reply is quoted as sent.
	reply := llmprovider.DecodeRawReply(resp)
	if !reply.Valid() {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return RouterOutput{}, ErrEmptyReply
	}

	label, ok := matchLabel(reply.Text)
	if !ok {
		metrics.ClassificationFailures.Inc()
		r.l.Warnf(ctx, "%s: no label in reply %q", LogPrefixClassify, reply.Text)
		return RouterOutput{}, &InvalidReplyError{Reply: reply.Text}
	}

	r.l.Infof(ctx, "%s: Selected agent: %s", LogPrefixClassify, label)
	return RouterOutput{Label: label, Query: query, Reply: reply}, nil
}

// providerCause strips the provider-chain wrapping so callers see the
// backend's own message.
func providerCause(err error) error {
	var pe *llmprovider.ProviderError
	if errors.As(err, &pe) && pe.Err != nil {
		return pe.Err
	}
	return err
}

// matchLabel returns the leftmost label token in text, case-insensitively.
func matchLabel(text string) (model.Label, bool) {
	m := labelPattern.FindString(strings.ToLower(text))
	if m == "" {
		return "", false
	}
	return model.Label(m), true
}
