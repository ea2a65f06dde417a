package encoder

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewEncoderConfig returns an EncoderConfig with default settings.
func NewEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "msg",
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "name",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeLevel:    AbbrLevelEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// NewDevelopmentEncoderConfig returns an EncoderConfig for a terminal.
func NewDevelopmentEncoderConfig() zapcore.EncoderConfig {
	cfg := NewEncoderConfig()
	cfg.EncodeTime = JustTimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	cfg.CallerKey = ""
	return cfg
}

// NewLoggerConfig returns the logger configuration of the command line
// tools: console output for a terminal, json otherwise.
func NewLoggerConfig(level zapcore.Level, json bool) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	if json {
		cfg.Development = false
		cfg.Encoding = "json"
		cfg.EncoderConfig = NewEncoderConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		return cfg
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig = NewDevelopmentEncoderConfig()
	return cfg
}

// JustTimeEncoder encodes the time of day without a date.
func JustTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}

// AbbrLevelEncoder encodes levels as 3-char abbreviations in upper case.
func AbbrLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString("DBG")
	case zapcore.InfoLevel:
		enc.AppendString("INF")
	case zapcore.WarnLevel:
		enc.AppendString("WRN")
	case zapcore.ErrorLevel:
		enc.AppendString("ERR")
	case zapcore.PanicLevel, zapcore.FatalLevel, zapcore.DPanicLevel:
		enc.AppendString("FTL")
	default:
		s := l.String()
		if len(s) > 3 {
			s = s[:3]
		}
		enc.AppendString(strings.ToUpper(s))
	}
}
