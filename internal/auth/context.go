package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxFirebaseUID = "firebase_uid"
	CtxEmail       = "email"
)

// UserFirebaseUID extracts the Firebase UID from the Gin context.
// This is set by FirebaseAuthMiddleware.
func UserFirebaseUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxFirebaseUID))
}

// UserEmail extracts the authenticated user's email from the Gin context,
// if the ID token carried one.
func UserEmail(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxEmail))
}
