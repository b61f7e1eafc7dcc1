// Package tracelog provides a tracer that acts as a traditional logger.
package tracelog

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgcodec"
)

// LogLevel represents the pgcodec logging level. See LogLevel* constants for
// possible values.
type LogLevel int

// The values for log levels are chosen such that the zero value means that no
// log level was specified.
const (
	LogLevelTrace = LogLevel(6)
	LogLevelDebug = LogLevel(5)
	LogLevelInfo  = LogLevel(4)
	LogLevelWarn  = LogLevel(3)
	LogLevelError = LogLevel(2)
	LogLevelNone  = LogLevel(1)
)

func (ll LogLevel) String() string {
	switch ll {
	case LogLevelTrace:
		return "trace"
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	case LogLevelNone:
		return "none"
	default:
		return fmt.Sprintf("invalid level %d", ll)
	}
}

// Logger is the interface used to get log output from pgcodec.
type Logger interface {
	// Log a message at the given level with data key/value pairs. data may be nil.
	Log(ctx context.Context, level LogLevel, msg string, data map[string]any)
}

// LoggerFunc is a wrapper around a function to satisfy the Logger interface
type LoggerFunc func(ctx context.Context, level LogLevel, msg string, data map[string]any)

// Log delegates the logging request to the wrapped function
func (f LoggerFunc) Log(ctx context.Context, level LogLevel, msg string, data map[string]any) {
	f(ctx, level, msg, data)
}

// ErrInvalidLogLevel is returned by LogLevelFromString for an unknown level name.
var ErrInvalidLogLevel = errors.New("invalid log level")

// LogLevelFromString converts log level string to constant
//
// Valid levels:
//
//	trace
//	debug
//	info
//	warn
//	error
//	none
func LogLevelFromString(s string) (LogLevel, error) {
	switch s {
	case "trace":
		return LogLevelTrace, nil
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "none":
		return LogLevelNone, nil
	default:
		return 0, ErrInvalidLogLevel
	}
}

// FormatBytes renders b as hex. Input longer than 64 bytes is truncated.
func FormatBytes(b []byte) string {
	if len(b) <= 64 {
		return hex.EncodeToString(b)
	}
	return fmt.Sprintf("%x (truncated %d bytes)", b[:64], len(b)-64)
}

// TraceLogConfig holds the configuration for key names
type TraceLogConfig struct {
	TimeKey string
}

// DefaultTraceLogConfig returns the default configuration for TraceLog
func DefaultTraceLogConfig() *TraceLogConfig {
	return &TraceLogConfig{
		TimeKey: "time",
	}
}

// TraceLog implements pgcodec.DecodeTracer and pgcodec.EncodeTracer. Successful calls are logged at LogLevelTrace and
// failures at LogLevelDebug. Logger and LogLevel are required. Config will be automatically initialized on the first
// use if nil.
type TraceLog struct {
	Logger   Logger
	LogLevel LogLevel

	Config           *TraceLogConfig
	ensureConfigOnce sync.Once
}

// ensureConfig initializes the Config field with default values if it is nil.
func (tl *TraceLog) ensureConfig() {
	tl.ensureConfigOnce.Do(
		func() {
			if tl.Config == nil {
				tl.Config = DefaultTraceLogConfig()
			}
		},
	)
}

type ctxKey int

const (
	_ ctxKey = iota
	tracelogDecodeCtxKey
	tracelogEncodeCtxKey
)

type traceDecodeData struct {
	startTime time.Time
	typ       *pgcodec.Type
	src       []byte
}

func (tl *TraceLog) TraceDecodeStart(ctx context.Context, _ *pgcodec.Map, data pgcodec.TraceDecodeStartData) context.Context {
	return context.WithValue(ctx, tracelogDecodeCtxKey, &traceDecodeData{
		startTime: time.Now(),
		typ:       data.Type,
		src:       data.Src,
	})
}

func (tl *TraceLog) TraceDecodeEnd(ctx context.Context, _ *pgcodec.Map, data pgcodec.TraceDecodeEndData) {
	tl.ensureConfig()
	decodeData := ctx.Value(tracelogDecodeCtxKey).(*traceDecodeData)

	endTime := time.Now()
	interval := endTime.Sub(decodeData.startTime)

	if data.Err != nil {
		if tl.shouldLog(LogLevelDebug) {
			logData := map[string]any{"src": FormatBytes(decodeData.src), "err": data.Err, tl.Config.TimeKey: interval}
			addErrorData(logData, data.Err)
			tl.log(ctx, decodeData.typ, LogLevelDebug, "Decode", logData)
		}
		return
	}

	if tl.shouldLog(LogLevelTrace) {
		tl.log(ctx, decodeData.typ, LogLevelTrace, "Decode", map[string]any{"len": len(decodeData.src), tl.Config.TimeKey: interval})
	}
}

type traceEncodeData struct {
	startTime time.Time
	typ       *pgcodec.Type
	value     any
}

func (tl *TraceLog) TraceEncodeStart(ctx context.Context, _ *pgcodec.Map, data pgcodec.TraceEncodeStartData) context.Context {
	return context.WithValue(ctx, tracelogEncodeCtxKey, &traceEncodeData{
		startTime: time.Now(),
		typ:       data.Type,
		value:     data.Value,
	})
}

func (tl *TraceLog) TraceEncodeEnd(ctx context.Context, _ *pgcodec.Map, data pgcodec.TraceEncodeEndData) {
	tl.ensureConfig()
	encodeData := ctx.Value(tracelogEncodeCtxKey).(*traceEncodeData)

	endTime := time.Now()
	interval := endTime.Sub(encodeData.startTime)

	if data.Err != nil {
		if tl.shouldLog(LogLevelDebug) {
			logData := map[string]any{"goType": fmt.Sprintf("%T", encodeData.value), "err": data.Err, tl.Config.TimeKey: interval}
			addErrorData(logData, data.Err)
			tl.log(ctx, encodeData.typ, LogLevelDebug, "Encode", logData)
		}
		return
	}

	if tl.shouldLog(LogLevelTrace) {
		tl.log(ctx, encodeData.typ, LogLevelTrace, "Encode", map[string]any{"len": len(data.Buf), tl.Config.TimeKey: interval})
	}
}

func addErrorData(data map[string]any, err error) {
	var codecErr *pgcodec.Error
	if errors.As(err, &codecErr) {
		data["kind"] = codecErr.Kind.String()
		data["offset"] = codecErr.Offset
	}
}

func (tl *TraceLog) shouldLog(lvl LogLevel) bool {
	return tl.LogLevel >= lvl
}

func (tl *TraceLog) log(ctx context.Context, typ *pgcodec.Type, lvl LogLevel, msg string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}

	if typ != nil {
		data["type"] = typ.Name
		if typ.OID != 0 {
			data["oid"] = typ.OID
		}
	}

	tl.Logger.Log(ctx, lvl, msg, data)
}
