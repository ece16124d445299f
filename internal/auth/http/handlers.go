package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-7b282/portfolio-backend/internal/auth"
	"github.com/portfolio-7b282/portfolio-backend/internal/auth/service"
)

type Handler struct {
	sessions *service.SessionService
}

func NewHandler(sessions *service.SessionService) *Handler {
	return &Handler{sessions: sessions}
}

// session reports the current session snapshot. Works with or without a
// token: the frontend polls this while restoring its session.
func (h *Handler) session(c *gin.Context) {
	sess, err := h.sessions.CurrentUser(c.Request.Context(), bearerToken(c))
	if err != nil || sess == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "authenticated": true, "user": sess})
}

// signOut revokes the caller's refresh tokens. It always reports success;
// revocation errors are logged server-side.
func (h *Handler) signOut(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	if email := auth.UserEmail(c); email != "" {
		log.Printf("Sign-out requested by %s (%s)", email, uid)
	}

	h.sessions.SignOut(c.Request.Context(), uid)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return header[len("Bearer "):]
	}
	return ""
}
