package director

// Binding names and status messages reported by Debug
const (
	BindingAI        = "AI"
	MsgBindingExists = "AI binding exists"
	MsgBindingAbsent = "AI binding is missing"
)
