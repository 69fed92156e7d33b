// Package diag is the boundary between model parsing and whatever records its
// diagnostics. Parsing never reads anything back from a Sink.
package diag

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the severity of a Record.
type Level int

const (
	LevelDebug Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// ParseLevel accepts debug, warn (or warning) and error, case-insensitively.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelDebug, false
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	}
	return slog.LevelDebug
}

// ZapLevel returns the equivalent zap level.
func (l Level) ZapLevel() zapcore.Level {
	switch l {
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	}
	return zapcore.DebugLevel
}

// Record is one structured diagnostic.
type Record struct {
	Level   Level
	Message string
	Attrs   []slog.Attr
}

// Attr returns the value of the first attribute with key, if any.
func (r Record) Attr(key string) (string, bool) {
	for _, a := range r.Attrs {
		if a.Key == key {
			return a.Value.String(), true
		}
	}
	return "", false
}

// Sink receives records. Implementations must be safe for concurrent use.
type Sink interface {
	Emit(Record)
}

// Debug emits a debug record built from slog-style key/value pairs.
func Debug(s Sink, msg string, args ...any) { emit(s, LevelDebug, msg, args) }

// Warn emits a warn record built from slog-style key/value pairs.
func Warn(s Sink, msg string, args ...any) { emit(s, LevelWarn, msg, args) }

// Error emits an error record built from slog-style key/value pairs.
func Error(s Sink, msg string, args ...any) { emit(s, LevelError, msg, args) }

func emit(s Sink, level Level, msg string, args []any) {
	if s == nil {
		return
	}
	s.Emit(Record{Level: level, Message: msg, Attrs: toAttrs(args)})
}

// toAttrs follows slog's argument convention: Attr values are taken as-is,
// otherwise a string key is paired with the next value.
func toAttrs(args []any) []slog.Attr {
	var attrs []slog.Attr
	for len(args) > 0 {
		switch x := args[0].(type) {
		case slog.Attr:
			attrs = append(attrs, x)
			args = args[1:]
		case string:
			if len(args) == 1 {
				attrs = append(attrs, slog.String("!BADKEY", x))
				args = nil
				continue
			}
			attrs = append(attrs, slog.Any(x, args[1]))
			args = args[2:]
		default:
			attrs = append(attrs, slog.Any("!BADKEY", x))
			args = args[1:]
		}
	}
	return attrs
}

type discard struct{}

func (discard) Emit(Record) {}

// Discard drops every record.
var Discard Sink = discard{}

type tee []Sink

func (t tee) Emit(r Record) {
	for _, s := range t {
		s.Emit(r)
	}
}

// Tee fans every record out to each non-nil sink in order.
func Tee(sinks ...Sink) Sink {
	var t tee
	for _, s := range sinks {
		if s != nil {
			t = append(t, s)
		}
	}
	return t
}

// SlogSink forwards records to a *slog.Logger.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink returns a sink writing to l, or to slog.Default() when l is nil.
func NewSlogSink(l *slog.Logger) *SlogSink {
	if l == nil {
		l = slog.Default()
	}
	return &SlogSink{logger: l}
}

func (s *SlogSink) Emit(r Record) {
	s.logger.LogAttrs(context.Background(), r.Level.slog(), r.Message, r.Attrs...)
}

// ZapSink forwards records to a *zap.Logger.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink returns a sink writing to l, or a no-op logger when l is nil.
func NewZapSink(l *zap.Logger) *ZapSink {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapSink{logger: l}
}

func (s *ZapSink) Emit(r Record) {
	ce := s.logger.Check(r.Level.ZapLevel(), r.Message)
	if ce == nil {
		return
	}
	fields := make([]zap.Field, 0, len(r.Attrs))
	for _, a := range r.Attrs {
		fields = append(fields, zap.Any(a.Key, a.Value.Any()))
	}
	ce.Write(fields...)
}
