package system

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetReqLoggerFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fallback := zap.NewNop().Sugar()

	assert.Same(t, fallback, GetReqLogger(nil, fallback))

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Same(t, fallback, GetReqLogger(c, fallback))

	c.Set(ReqLoggerKey, "not a logger")
	assert.Same(t, fallback, GetReqLogger(c, fallback))
}

func TestRequestLoggerAttachesLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fallback := zap.NewNop().Sugar()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)

	RequestLogger(fallback)(c)

	v, ok := c.Get(ReqLoggerKey)
	require.True(t, ok)
	_, isLogger := v.(*zap.SugaredLogger)
	assert.True(t, isLogger)
	assert.NotSame(t, fallback, GetReqLogger(c, fallback))
}
