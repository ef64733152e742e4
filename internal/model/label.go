package model

// Label names one of the specialised agents a query can be routed to.
type Label string

const (
	LabelCalendar  Label = "calendar"
	LabelFinancial Label = "financial"
	LabelAudience  Label = "audience"
	LabelTouring   Label = "touring"
)

// AllLabels lists every label in canonical order.
var AllLabels = []Label{LabelCalendar, LabelFinancial, LabelAudience, LabelTouring}

// String implements fmt.Stringer.
func (l Label) String() string {
	return string(l)
}

// IsValid reports whether l is one of the known labels.
func (l Label) IsValid() bool {
	switch l {
	case LabelCalendar, LabelFinancial, LabelAudience, LabelTouring:
		return true
	}
	return false
}
