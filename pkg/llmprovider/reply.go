package llmprovider

import "strings"

// ReplyShape tags which response shape a reply was decoded from.
type ReplyShape int

const (
	// ShapeNone means the response carried no usable text.
	ShapeNone ReplyShape = iota
	// ShapeDirect is the top-level completion text (Response.Text).
	ShapeDirect
	// ShapeChoice is the first choice message content (Response.Content), trimmed.
	ShapeChoice
)

func (s ReplyShape) String() string {
	switch s {
	case ShapeDirect:
		return "direct"
	case ShapeChoice:
		return "choice"
	default:
		return "none"
	}
}

// Reply is the decoded text of a Response together with the shape it came from.
type Reply struct {
	Shape ReplyShape
	Text  string
}

// Valid reports whether the reply carries text.
func (r Reply) Valid() bool {
	return r.Shape != ShapeNone
}

// DecodeReply probes resp in fixed priority order: the direct text field,
// then the choice message content (trimmed). A nil response or one where both
// are empty decodes to ShapeNone.
func DecodeReply(resp *Response) Reply {
	if resp == nil {
		return Reply{Shape: ShapeNone}
	}

	if resp.Text != "" {
		return Reply{Shape: ShapeDirect, Text: resp.Text}
	}

	if text := strings.TrimSpace(messageText(resp.Content)); text != "" {
		return Reply{Shape: ShapeChoice, Text: text}
	}

	return Reply{Shape: ShapeNone}
}

// DecodeRawReply is DecodeReply without trimming. A choice message that is
// present but empty still decodes to ShapeChoice with empty text; only a nil
// response or one with no message at all is ShapeNone.
func DecodeRawReply(resp *Response) Reply {
	if resp == nil {
		return Reply{Shape: ShapeNone}
	}

	if resp.Text != "" {
		return Reply{Shape: ShapeDirect, Text: resp.Text}
	}

	if resp.Content.Role != "" || len(resp.Content.Parts) > 0 {
		return Reply{Shape: ShapeChoice, Text: messageText(resp.Content)}
	}

	return Reply{Shape: ShapeNone}
}

// messageText concatenates the text parts of m as-is.
func messageText(m Message) string {
	var sb strings.Builder
	for _, p := range m.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}
