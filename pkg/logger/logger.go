package logger

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func ParseLevel(logLevel string) zapcore.Level {
	switch logLevel {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

// NewLogger writes JSON lines to both fileSyncer and stderr.
func NewLogger(logLevel string, fileSyncer zapcore.WriteSyncer) *zap.Logger {
	encodeConfig := zap.NewProductionConfig()
	encodeConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encodeConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encodeConfig.EncoderConfig), zapcore.NewMultiWriteSyncer(
		fileSyncer, os.Stderr), ParseLevel(logLevel))
	return zap.New(core, zap.AddCaller())
}

// NewServiceLogger opens <logDir>/<serviceName>.log and tags every entry with service.name.
func NewServiceLogger(serviceName string, logLevel string, logDir string) (*zap.Logger, *ReopenableWriteSyncer, error) {
	fileSyncer, err := NewReopenableWriteSyncer(filepath.Join(logDir, serviceName+".log"))
	if err != nil {
		return nil, nil, fmt.Errorf("NewServiceLogger: %w", err)
	}
	zapLogger := NewLogger(logLevel, fileSyncer).With(zap.String("service.name", serviceName))
	return zapLogger, fileSyncer, nil
}

// ReloadOnSignal reopens the log file on every SIGHUP sent by logrotate, until ctx is done.
func ReloadOnSignal(ctx context.Context, fileSyncer *ReopenableWriteSyncer, zapLogger *zap.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		defer signal.Stop(c)
		for {
			select {
			case <-ctx.Done():
				return
			case <-c:
				zapLogger.Info("receive logrotate SIGHUP, reloading log file", zap.String("path", fileSyncer.Path()))
				if e := fileSyncer.Reload(); e != nil {
					zapLogger.Error("failed to reload log file", zap.Error(e))
				} else {
					zapLogger.Info("successfully reloaded log file")
				}
			}
		}
	}()
}
