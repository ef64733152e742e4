package response

const (
	MessageSuccess     = "Success"
	MessageRateLimited = "rate limit exceeded"
)
