package http

import "github.com/gin-gonic/gin"

// Register attaches the public project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
}
