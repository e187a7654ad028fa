package shared

import "go.uber.org/zap"

// ZapLogger adapts a *zap.Logger to the Logger interface, for use by
// cmd/obexd and by any test that wants real log output instead of the
// NoopLogger.
type ZapLogger struct {
	L *zap.Logger
}

// NewZapLogger wraps z as a Logger.
func NewZapLogger(z *zap.Logger) ZapLogger { return ZapLogger{L: z} }

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

func (z ZapLogger) Debug(msg string, fields ...Field) { z.L.Debug(msg, toZapFields(fields)...) }
func (z ZapLogger) Info(msg string, fields ...Field)  { z.L.Info(msg, toZapFields(fields)...) }
func (z ZapLogger) Warn(msg string, fields ...Field)  { z.L.Warn(msg, toZapFields(fields)...) }
func (z ZapLogger) Error(msg string, fields ...Field) { z.L.Error(msg, toZapFields(fields)...) }
