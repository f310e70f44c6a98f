// internal/middleware/session_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionTestRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(Session(3600, false))
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString("session_id")
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestSessionAssignsNewID(t *testing.T) {
	router, seen := sessionTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	require.NoError(t, uuid.Validate(*seen))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "pc3d_session", cookies[0].Name)
	assert.Equal(t, *seen, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionReusesExistingID(t *testing.T) {
	router, seen := sessionTestRouter()
	existing := uuid.New().String()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "pc3d_session", Value: existing})
	router.ServeHTTP(w, req)

	assert.Equal(t, existing, *seen)
}

func TestSessionReplacesGarbageCookie(t *testing.T) {
	router, seen := sessionTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "pc3d_session", Value: "definitely-not-a-uuid"})
	router.ServeHTTP(w, req)

	require.NoError(t, uuid.Validate(*seen))
	assert.NotEqual(t, "definitely-not-a-uuid", *seen)
}
