package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "director-agent/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Raw sends data as the JSON body without the envelope.
func Raw(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Fail sends a flat {"error": message} body with the given status.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// HTTPError sends err as a flat error body. Errors that are not *errors.HTTPError
// are reported as 500 with their message.
func HTTPError(c *gin.Context, err error) {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		Fail(c, httpErr.Code, httpErr.Message)
		return
	}
	Fail(c, http.StatusInternalServerError, err.Error())
}

// TooManyRequests sends 429 with a flat error body.
func TooManyRequests(c *gin.Context) {
	Fail(c, http.StatusTooManyRequests, MessageRateLimited)
}
