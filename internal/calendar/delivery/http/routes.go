package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the feed and the JSON listing.
func RegisterRoutes(r gin.IRouter, api *gin.RouterGroup, h Handler) {
	r.GET("/calendar.ics", h.Feed)
	api.GET("/events", h.List)
}
