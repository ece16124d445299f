package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-7b282/portfolio-backend/internal/contacts/repository"
	"github.com/portfolio-7b282/portfolio-backend/internal/contacts/service"
	"github.com/portfolio-7b282/portfolio-backend/internal/store/storetest"
)

func newRouter(docs *storetest.FakeDocumentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewService(repository.NewRepo(docs), nil)
	NewHandler(svc).Register(r.Group("/contact"))
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSubmitHandler(t *testing.T) {
	t.Run("valid submission returns success without the document id", func(t *testing.T) {
		docs := storetest.NewFakeDocumentStore()
		r := newRouter(docs)

		rr := postJSON(r, `{"name":"A","email":"a@x.com","subject":"Hi","message":"test"}`)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"ok":true}`, rr.Body.String())

		list, err := repository.NewRepo(docs).List(t.Context())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "unread", list[0].Status)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		r := newRouter(storetest.NewFakeDocumentStore())

		rr := postJSON(r, `{"name":"A","email":"a@x.com"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid body is rejected", func(t *testing.T) {
		r := newRouter(storetest.NewFakeDocumentStore())

		rr := postJSON(r, `{not json`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("store failure surfaces the generic message only", func(t *testing.T) {
		docs := storetest.NewFakeDocumentStore()
		docs.ErrCreate = errors.New("permission denied: rules")
		r := newRouter(docs)

		rr := postJSON(r, `{"name":"A","email":"a@x.com","subject":"Hi","message":"test"}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "failed to send message")
		assert.NotContains(t, rr.Body.String(), "permission denied")
	})
}
