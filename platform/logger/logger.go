package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var (
	mu     sync.RWMutex
	global = &logger{zl: zap.NewNop()}
)

// Logger is the context-aware logging surface shared by all services.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
}

type logger struct {
	zl *zap.Logger
}

// Init replaces the global logger. Until Init is called every entry is dropped.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: parse level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(lvl))

	mu.Lock()
	global = &logger{zl: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
	mu.Unlock()

	return nil
}

// Replace swaps the global zap logger and returns a func restoring the previous one.
func Replace(zl *zap.Logger) func() {
	mu.Lock()
	prev := global
	global = &logger{zl: zl}
	mu.Unlock()

	return func() {
		mu.Lock()
		global = prev
		mu.Unlock()
	}
}

// L returns the global logger.
func L() *logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// With returns a child of the global logger carrying fields.
func With(fields ...Field) *logger {
	return L().With(fields...)
}

// WithRequestID stores a request id that is attached to every entry logged with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (l *logger) With(fields ...Field) *logger {
	return &logger{zl: l.zl.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zl.Debug(msg, withContext(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zl.Info(msg, withContext(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zl.Warn(msg, withContext(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zl.Error(msg, withContext(ctx, fields)...)
}

func (l *logger) Sync() error {
	return l.zl.Sync()
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func withContext(ctx context.Context, fields []Field) []Field {
	if id := RequestID(ctx); id != "" {
		return append(fields, zap.String("request_id", id))
	}
	return fields
}

// NoopLogger discards everything. Handy in tests and helpers.
type NoopLogger struct{}

func (NoopLogger) Debug(context.Context, string, ...Field) {}
func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Warn(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
