package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "director-agent/pkg/errors"
)

// processRouteTaskReq binds the route-task body. The query itself is not validated.
// An unreadable body is not a classification failure, so it surfaces as a 500.
func (h *handler) processRouteTaskReq(c *gin.Context) (routeTaskReq, error) {
	var req routeTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return req, nil
}
