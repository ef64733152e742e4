package http

import (
	"director-agent/internal/director"
	"director-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc director.UseCase
}

// New creates a new HTTP handler for the director domain.
func New(l log.Logger, uc director.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
