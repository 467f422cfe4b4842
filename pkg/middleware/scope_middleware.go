package middleware

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScopesHeader is set by the gateway after it authenticated the caller.
const ScopesHeader = "X-User-Scopes"

//go:generate mockgen -source=scope_middleware.go -destination=scope_middleware_mock.go -package=middleware

type ScopeMiddleware interface {
	RequireScope(requiredScope string) gin.HandlerFunc
}

type scopeMiddleware struct {
}

func (s *scopeMiddleware) RequireScope(requiredScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scopesHeader := c.Request.Header.Get(ScopesHeader)
		if len(scopesHeader) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": ScopesHeader + " header is empty",
			})
			return
		}
		scopes := strings.Split(scopesHeader, ",")
		for i := range scopes {
			scopes[i] = strings.TrimSpace(scopes[i])
		}
		if !slices.Contains(scopes, requiredScope) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Permission denied",
			})
			return
		}
		c.Next()
	}
}

func NewScopeMiddleware() ScopeMiddleware {
	return &scopeMiddleware{}
}

// RequestLogger writes one access log line per request.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := zap.InfoLevel
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = zap.WarnLevel
		}
		logger.Log(level, "request served",
			zap.String("http_method", c.Request.Method),
			zap.String("http_path", c.FullPath()),
			zap.Int("http_status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
