package cache

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentamorph/riskshape/internal/monitoring"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("k", []byte(`{"ok":true}`), "application/json")

	item, found := c.Get("k")
	require.True(t, found)
	assert.Equal(t, []byte(`{"ok":true}`), item.Data)
	assert.Equal(t, "application/json", item.ContentType)
	assert.Equal(t, 1, c.Size())

	c.Delete("k")
	_, found = c.Get("k")
	assert.False(t, found)
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(10 * time.Millisecond)
	c.Set("k", []byte("v"), "text/plain")

	_, found := c.Get("k")
	require.True(t, found)

	time.Sleep(20 * time.Millisecond)
	_, found = c.Get("k")
	assert.False(t, found, "expired items miss")
}

func TestCacheClearAndStats(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("a", []byte("1"), "text/plain")
	c.Set("b", []byte("2"), "text/plain")

	stats := c.Stats()
	assert.Equal(t, 2, stats["total_items"])
	assert.Equal(t, 60.0, stats["ttl_seconds"])

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func newTestRouter(c *Cache, metrics *monitoring.Metrics, hits *atomic.Int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(c.Middleware(metrics))
	handler := func(ctx *gin.Context) {
		hits.Add(1)
		ctx.JSON(http.StatusOK, gin.H{"path": ctx.Request.URL.Path})
	}
	r.GET("/api/systems", handler)
	r.GET("/api/playback/:id", handler)
	r.GET("/health", handler)
	return r
}

func TestMiddlewareCachesAPIGets(t *testing.T) {
	var handlerHits atomic.Int64
	metrics := monitoring.NewMetrics()
	r := newTestRouter(NewCache(time.Minute), metrics, &handlerHits)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/systems", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, int64(1), handlerHits.Load(), "second and third hits come from cache")
	assert.Equal(t, int64(2), atomic.LoadInt64(&metrics.CacheHits))
	assert.Equal(t, int64(1), atomic.LoadInt64(&metrics.CacheMisses))
}

func TestMiddlewareKeysOnQuery(t *testing.T) {
	var handlerHits atomic.Int64
	r := newTestRouter(NewCache(time.Minute), monitoring.NewMetrics(), &handlerHits)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/systems?day=1", nil))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/systems?day=2", nil))

	assert.Equal(t, int64(2), handlerHits.Load(), "different queries are different entries")
}

func TestMiddlewareSkipsPlaybackAndNonAPI(t *testing.T) {
	var handlerHits atomic.Int64
	r := newTestRouter(NewCache(time.Minute), monitoring.NewMetrics(), &handlerHits)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/playback/abc", nil))
	}
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	}

	assert.Equal(t, int64(4), handlerHits.Load(), "playback and non-API paths bypass the cache")
}
