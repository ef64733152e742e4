package agent

import (
	"errors"
	"fmt"

	"director-agent/internal/model"
)

// ErrAgentNotFound matches any *NotFoundError via errors.Is.
var ErrAgentNotFound = errors.New("agent not found")

// NotFoundError is returned when no handler is registered for a label.
type NotFoundError struct {
	Label model.Label
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(ErrMsgAgentNotFound, e.Label)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrAgentNotFound
}
