// SPDX-License-Identifier: Apache-2.0

package system

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReqLoggerKey is the context key used to store the request-scoped logger
// in the gin context.
const ReqLoggerKey = "reqLogger"

// RequestLogger returns middleware that attaches a request-scoped sugared
// logger, tagged with a fresh request ID, to every gin context.
func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ReqLoggerKey, log.With("requestID", uuid.NewString()))
		c.Next()
	}
}

// GetReqLogger returns the request-scoped sugared logger from gin.Context
// if present, otherwise the provided fallback.
func GetReqLogger(c *gin.Context, fallback *zap.SugaredLogger) *zap.SugaredLogger {
	if c == nil {
		return fallback
	}
	if v, ok := c.Get(ReqLoggerKey); ok {
		if l, ok2 := v.(*zap.SugaredLogger); ok2 {
			return l
		}
	}
	return fallback
}
