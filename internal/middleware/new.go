package middleware

import (
	"director-agent/pkg/log"
)

// Middleware bundles the gin middlewares shared by all routes.
type Middleware struct {
	l log.Logger
}

// New creates the middleware set.
func New(l log.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
