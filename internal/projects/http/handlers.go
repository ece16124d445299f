package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-7b282/portfolio-backend/internal/projects/repository"
)

type Handler struct {
	repo *repository.Repo
}

func NewHandler(repo *repository.Repo) *Handler {
	return &Handler{repo: repo}
}

// list serves the public project listing. It never fails: a broken or
// empty store falls back to the sample dataset inside the repo.
func (h *Handler) list(c *gin.Context) {
	projects := h.repo.ListPublic(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}
