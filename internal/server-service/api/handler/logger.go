package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level)
}

type logger struct {
	log *zap.Logger
}

// LoggingError adds the request line, the route id and the gateway user to the entry.
func (l *logger) LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	ce := l.log.Check(logLevel, errDescription)
	if ce == nil {
		return
	}
	fields := []zapcore.Field{
		zap.Error(err),
		zap.String("http_method", c.Request.Method),
		zap.String("http_path", c.Request.URL.Path),
	}
	if id := c.Param("id"); id != "" {
		if strings.HasPrefix(c.Request.URL.Path, "/projects/") {
			fields = append(fields, zap.String("project_id", id))
		} else {
			fields = append(fields, zap.String("server_id", id))
		}
	}
	if userId := c.GetHeader("X-User-Id"); userId != "" {
		fields = append(fields, zap.String("user_id", userId))
	}
	ce.Write(fields...)
}

func NewLogger(l *zap.Logger) Logger {
	return &logger{
		log: l,
	}
}
