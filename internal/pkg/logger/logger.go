// Package logger is a thin context-first wrapper around zap. Handlers carry
// a request id in their context; when present it is attached to every entry.
package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// CtxKeyRequestID keys the request id injected by the api middleware.
var CtxKeyRequestID = ctxKey{}

var global *zap.SugaredLogger

func init() {
	l, _ := zap.NewProduction()
	global = l.Sugar()
}

// Init replaces the global logger. debug switches to the development config.
func Init(debug bool) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	global = l.Sugar()
}

func from(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if id, ok := ctx.Value(CtxKeyRequestID).(string); ok {
			return global.With("request_id", id)
		}
	}
	return global
}

func Debugf(ctx context.Context, format string, args ...any) {
	from(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	from(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	from(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	from(ctx).Errorf(format, args...)
}

func Error(ctx context.Context, msg string) {
	from(ctx).Error(msg)
}

// Fatal logs the error and exits. A nil error is ignored so it can wrap
// server Start calls directly.
func Fatal(ctx context.Context, err error) {
	if err == nil {
		return
	}
	from(ctx).Fatal(err.Error())
}
