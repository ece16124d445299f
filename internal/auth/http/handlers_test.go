package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmw "github.com/portfolio-7b282/portfolio-backend/internal/auth/middleware"
	"github.com/portfolio-7b282/portfolio-backend/internal/auth/service"
)

type fakeIdentityClient struct {
	token      *auth.Token
	verifyErr  error
	revokedUID string
}

func (f *fakeIdentityClient) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.token, nil
}

func (f *fakeIdentityClient) RevokeRefreshTokens(ctx context.Context, uid string) error {
	f.revokedUID = uid
	return nil
}

func newRouter(client *fakeIdentityClient) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := NewHandler(service.NewSessionService(client))

	group := r.Group("/auth")
	h.Register(group)

	protected := group.Group("")
	protected.Use(authmw.FirebaseAuthMiddleware(client))
	h.RegisterProtected(protected)

	return r
}

func TestSessionHandler(t *testing.T) {
	t.Run("no token reports unauthenticated", func(t *testing.T) {
		r := newRouter(&fakeIdentityClient{})

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/auth/session", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"authenticated":false`)
	})

	t.Run("stale token reports unauthenticated, not an error", func(t *testing.T) {
		r := newRouter(&fakeIdentityClient{verifyErr: errors.New("expired")})

		req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
		req.Header.Set("Authorization", "Bearer stale")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"authenticated":false`)
	})

	t.Run("valid token reports the user", func(t *testing.T) {
		r := newRouter(&fakeIdentityClient{token: &auth.Token{
			UID:    "uid-1",
			Claims: map[string]interface{}{"email": "admin@example.com"},
		}})

		req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
		req.Header.Set("Authorization", "Bearer good")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"authenticated":true`)
		assert.Contains(t, rr.Body.String(), "admin@example.com")
	})
}

func TestSignOutHandler(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		r := newRouter(&fakeIdentityClient{verifyErr: errors.New("no token")})

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/signout", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("revokes the caller's refresh tokens and always succeeds", func(t *testing.T) {
		client := &fakeIdentityClient{token: &auth.Token{UID: "uid-1"}}
		r := newRouter(client)

		req := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
		req.Header.Set("Authorization", "Bearer good")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "uid-1", client.revokedUID)
	})
}
