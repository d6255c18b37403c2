package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(t *testing.T, maxAttempts int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	router := gin.New()
	limiter := NewRateLimiter(client, maxAttempts, time.Minute)
	router.POST("/transactions", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router, server
}

func doPost(router *gin.Engine) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/transactions", nil)
	request.RemoteAddr = "10.0.0.1:51234"
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestRateLimiter_AllowsUpToTheLimit(t *testing.T) {
	router, _ := newLimitedRouter(t, 3)

	for i := 0; i < 3; i++ {
		recorder := doPost(router)
		require.Equal(t, http.StatusCreated, recorder.Code, "request %d", i+1)
	}
}

func TestRateLimiter_BlocksOverTheLimit(t *testing.T) {
	router, _ := newLimitedRouter(t, 2)

	doPost(router)
	doPost(router)
	recorder := doPost(router)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Too many requests")
}

func TestRateLimiter_WindowExpiryResetsTheCounter(t *testing.T) {
	router, server := newLimitedRouter(t, 1)

	require.Equal(t, http.StatusCreated, doPost(router).Code)
	require.Equal(t, http.StatusTooManyRequests, doPost(router).Code)

	server.FastForward(2 * time.Minute)

	assert.Equal(t, http.StatusCreated, doPost(router).Code)
}

func TestRateLimiter_NilClientDisablesLimiting(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	limiter := NewRateLimiter(nil, 1, time.Minute)
	router.POST("/transactions", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusCreated, doPost(router).Code)
	}
}
