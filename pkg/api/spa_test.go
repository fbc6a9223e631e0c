package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nichebay/domain-offer/web"
)

func newFallbackEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bundle, err := web.Bundle()
	require.NoError(t, err)

	engine := gin.New()
	engine.NoRoute(ServeBundle(bundle))
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServeBundleRootServesIndex(t *testing.T) {
	engine := newFallbackEngine(t)

	rec := get(engine, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Domain For Sale")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestServeBundleExtensionlessFallsBackToIndex(t *testing.T) {
	engine := newFallbackEngine(t)

	for _, path := range []string{"/pricing", "/some/client/route"} {
		rec := get(engine, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Domain For Sale", path)
	}
}

func TestServeBundleMissingFileIs404(t *testing.T) {
	engine := newFallbackEngine(t)

	rec := get(engine, "/nonexistent.png")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "404", rec.Body.String())
}

func TestServeBundleServesAssetsWithContentType(t *testing.T) {
	engine := newFallbackEngine(t)

	rec := get(engine, "/assets/index.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")

	rec = get(engine, "/assets/index.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "javascript")
}
