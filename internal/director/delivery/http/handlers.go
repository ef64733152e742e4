package http

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"director-agent/pkg/response"
)

//go:embed static/index.html
var indexHTML []byte

// Index godoc
// @Summary     Chat page
// @Description Serves the HTML form that posts queries to /route-task.
// @Tags        Director
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      / [GET]
func (h *handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// Debug godoc
// @Summary     Binding diagnostics
// @Description Lists the configured bindings and whether the AI binding is present.
// @Tags        Director
// @Produce     json
// @Success     200 {object} debugResp
// @Router      /debug [GET]
func (h *handler) Debug(c *gin.Context) {
	out := h.uc.Debug(c.Request.Context())
	response.Raw(c, http.StatusOK, h.newDebugResp(out))
}

// RouteTask godoc
// @Summary     Route a query to an agent
// @Description Classifies the query into calendar, financial, audience or touring and returns the agent's answer.
// @Tags        Director
// @Accept      json
// @Produce     json
// @Param       body body     routeTaskReq true "User query"
// @Success     200  {object} routeTaskResp
// @Failure     400  {object} response.ErrorBody "Invalid classifier reply"
// @Failure     429  {object} response.ErrorBody "Rate limit exceeded"
// @Failure     500  {object} response.ErrorBody "Malformed body, inference failure or missing AI binding"
// @Router      /route-task [POST]
func (h *handler) RouteTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteTaskReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processRouteTaskReq: %v", err)
		response.HTTPError(c, err)
		return
	}

	output, err := h.uc.RouteTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "Error routing task: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.Raw(c, http.StatusOK, h.newRouteTaskResp(output))
}
