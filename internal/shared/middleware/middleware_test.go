package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-content-backend/pkg/jwt"
)

type patternCache struct {
	deleted []string
}

func (p *patternCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (p *patternCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (p *patternCache) Delete(context.Context, ...string) error { return nil }
func (p *patternCache) DeletePattern(_ context.Context, pattern string) error {
	p.deleted = append(p.deleted, pattern)
	return nil
}
func (p *patternCache) Ping(context.Context) error { return nil }

func serve(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := jwt.NewManager("secret", "")
	r := gin.New()
	r.GET("/admin", AuthMiddleware(tokens), AdminMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id"))
	})

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/admin", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/admin", map[string]string{"Authorization": "Token abc"}).Code)

	editor, err := tokens.GenerateAccessToken("u2", "", "editor")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/admin", map[string]string{"Authorization": "Bearer " + editor}).Code)

	admin, err := tokens.GenerateAccessToken("u1", "", jwt.RoleAdmin)
	require.NoError(t, err)
	w := serve(r, http.MethodGet, "/admin", map[string]string{"Authorization": "Bearer " + admin})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}

func TestInvalidateOnWriteOnlyAfterSuccessfulWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := &patternCache{}
	r := gin.New()
	r.Use(InvalidateOnWrite(c, "page:fresh:*"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.PUT("/x", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	serve(r, http.MethodGet, "/x", nil)
	serve(r, http.MethodPut, "/x", nil)
	assert.Empty(t, c.deleted)

	serve(r, http.MethodPost, "/x", nil)
	assert.Equal(t, []string{"page:fresh:*"}, c.deleted)
}

func TestRecoveryAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/boom", map[string]string{RequestIDHeader: "req-1"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"https://robroy.ca"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/x", map[string]string{"Origin": "https://robroy.ca"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://robroy.ca", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/x", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/x", nil)
	assert.Equal(t, http.StatusOK, w.Code, "same-origin requests carry no Origin header")
}
