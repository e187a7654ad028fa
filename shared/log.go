// Package shared holds the ambient Logger capability interface, plus a
// small set of cross-cutting sentinel errors. Consensus logic never
// imports a concrete logging library directly; cmd/obexd logs through
// this interface so that the caller controls where log lines go.
package shared

// Logger is the minimal structured-logging capability; cmd/obexd is its
// only user in this module. It mirrors the teacher's own logging seam: plain
// methods, no dependency on any specific backend's types leaking into
// call sites.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is a single structured log attribute. Concrete Logger
// implementations translate Fields into their own backend's field type.
type Field struct {
	Key   string
	Value interface{}
}

// Str builds a string Field.
func Str(key, val string) Field { return Field{Key: key, Value: val} }

// Int builds an int Field.
func Int(key string, val int) Field { return Field{Key: key, Value: val} }

// Uint64 builds a uint64 Field.
func Uint64(key string, val uint64) Field { return Field{Key: key, Value: val} }

// Err builds an error Field.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// NoopLogger discards every log line. It is the default for unit tests
// that don't care about log output.
type NoopLogger struct{}

func (NoopLogger) Debug(string, ...Field) {}
func (NoopLogger) Info(string, ...Field)  {}
func (NoopLogger) Warn(string, ...Field)  {}
func (NoopLogger) Error(string, ...Field) {}
