package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-7b282/portfolio-backend/internal/admin/service"
)

type Handler struct {
	dashboard *service.Dashboard
}

func NewHandler(dashboard *service.Dashboard) *Handler {
	return &Handler{dashboard: dashboard}
}

// overview re-reads both collections. On failure the client keeps whatever
// it was already showing.
func (h *Handler) overview(c *gin.Context) {
	data, err := h.dashboard.RefreshAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to fetch data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": data.Projects, "messages": data.Messages})
}

func (h *Handler) addProject(c *gin.Context) {
	in, err := projectForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	image, f, err := imageUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid image upload"})
		return
	}
	if f != nil {
		defer f.Close()
	}

	data, err := h.dashboard.AddProject(c.Request.Context(), in, image)
	h.respondMutation(c, http.StatusCreated, data, err)
}

func (h *Handler) updateProject(c *gin.Context) {
	in, err := projectForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	image, f, err := imageUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid image upload"})
		return
	}
	if f != nil {
		defer f.Close()
	}

	data, err := h.dashboard.UpdateProject(c.Request.Context(), c.Param("id"), in, image)
	h.respondMutation(c, http.StatusOK, data, err)
}

func (h *Handler) deleteProject(c *gin.Context) {
	data, err := h.dashboard.DeleteProject(c.Request.Context(), c.Param("id"))
	h.respondMutation(c, http.StatusOK, data, err)
}

func (h *Handler) toggleMessageStatus(c *gin.Context) {
	data, err := h.dashboard.ToggleMessageStatus(c.Request.Context(), c.Param("id"))
	h.respondMutation(c, http.StatusOK, data, err)
}

func (h *Handler) deleteMessage(c *gin.Context) {
	data, err := h.dashboard.DeleteMessage(c.Request.Context(), c.Param("id"))
	h.respondMutation(c, http.StatusOK, data, err)
}

// respondMutation maps the dashboard's three mutation outcomes: applied and
// refreshed, applied but refresh failed (stale lists kept client-side), or
// not applied at all.
func (h *Handler) respondMutation(c *gin.Context, okStatus int, data *service.Overview, err error) {
	switch {
	case err == nil:
		c.JSON(okStatus, gin.H{"ok": true, "projects": data.Projects, "messages": data.Messages})
	case errors.Is(err, service.ErrRefresh):
		c.JSON(okStatus, gin.H{"ok": true, "warning": "saved, but refreshing data failed"})
	case errors.Is(err, service.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
	default:
		log.Printf("Admin mutation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "operation failed"})
	}
}
