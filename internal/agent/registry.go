package agent

import (
	"director-agent/internal/model"
)

// Registry maps labels to handlers.
// Register everything at startup; lookups are safe for concurrent use afterwards.
type Registry struct {
	handlers map[model.Label]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[model.Label]Handler),
	}
}

// Register adds a handler under its label, replacing any previous one.
func (r *Registry) Register(h Handler) {
	r.handlers[h.Label()] = h
}

// Get retrieves the handler for label.
func (r *Registry) Get(label model.Label) (Handler, error) {
	h, ok := r.handlers[label]
	if !ok {
		return nil, &NotFoundError{Label: label}
	}
	return h, nil
}

// Labels returns the registered labels in canonical order. Labels outside
// the known set come last, in no particular order.
func (r *Registry) Labels() []model.Label {
	labels := make([]model.Label, 0, len(r.handlers))
	for _, l := range model.AllLabels {
		if _, ok := r.handlers[l]; ok {
			labels = append(labels, l)
		}
	}
	for l := range r.handlers {
		if !l.IsValid() {
			labels = append(labels, l)
		}
	}
	return labels
}
