package router

import (
	"errors"
	"fmt"
)

var (
	// ErrCapabilityMissing means the router was built without an inference capability.
	ErrCapabilityMissing = errors.New(ErrMsgCapabilityMissing)

	// ErrEmptyReply means the classifier returned neither a direct nor a choice reply.
	ErrEmptyReply = errors.New(ErrMsgEmptyResponse)
)

// InvalidReplyError is returned when the classifier reply names no known label.
// It is a client-visible validation failure and is never retried.
type InvalidReplyError struct {
	Reply string
}

func (e *InvalidReplyError) Error() string {
	return fmt.Sprintf(ErrMsgInvalidReplyFormat, e.Reply)
}
