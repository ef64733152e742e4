package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// ErrorBody is the flat error body returned by the director routes.
type ErrorBody struct {
	Error string `json:"error"`
}
