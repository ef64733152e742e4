package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// routeTaskMW runs in front of POST /route-task only.
func RegisterRoutes(r gin.IRouter, h *handler, routeTaskMW ...gin.HandlerFunc) {
	r.GET("/", h.Index)
	r.GET("/debug", h.Debug)
	chain := append(append([]gin.HandlerFunc{}, routeTaskMW...), h.RouteTask)
	r.POST("/route-task", chain...)
}
