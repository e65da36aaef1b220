package logger

import (
	"context"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
)

// GRPC adapts a sugared logger to the go-grpc-middleware logging interface
func GRPC(l *zap.SugaredLogger) grpc_logging.Logger {
	l = OrNop(l)
	return grpc_logging.LoggerFunc(func(_ context.Context, level grpc_logging.Level, msg string, fields ...any) {
		switch level {
		case grpc_logging.LevelDebug:
			l.Debugw(msg, fields...)
		case grpc_logging.LevelInfo:
			l.Infow(msg, fields...)
		case grpc_logging.LevelWarn:
			l.Warnw(msg, fields...)
		default:
			l.Errorw(msg, fields...)
		}
	})
}
