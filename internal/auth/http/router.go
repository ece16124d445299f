package http

import "github.com/gin-gonic/gin"

// Register attaches the public session routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/session", h.session)
}

// RegisterProtected attaches the routes that require a verified session.
func (h *Handler) RegisterProtected(rg *gin.RouterGroup) {
	rg.POST("/signout", h.signOut)
}
