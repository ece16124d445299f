package http

import "github.com/gin-gonic/gin"

// Register attaches the dashboard routes to a group already gated by the
// Firebase auth middleware.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/overview", h.overview)

	rg.POST("/projects", h.addProject)
	rg.PUT("/projects/:id", h.updateProject)
	rg.DELETE("/projects/:id", h.deleteProject)

	rg.PATCH("/messages/:id/status", h.toggleMessageStatus)
	rg.DELETE("/messages/:id", h.deleteMessage)
}
