package router

import (
	"director-agent/internal/model"
	"director-agent/pkg/llmprovider"
)

// RouterOutput is the result of classifying a query
type RouterOutput struct {
	Label model.Label
	Query string            // the query, forwarded verbatim to the agent
	Reply llmprovider.Reply // raw classifier reply
}
