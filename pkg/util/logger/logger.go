package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Prm groups Logger's parameters.
// Successful passing non-nil parameters to the NewLogger (if returned
// error is nil) leads to applying the parameters on the logger.
type Prm struct {
	level    zapcore.Level
	encoding string

	noTimestamp bool
}

// Supported encodings.
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// SetLevelString sets the minimum logging level. Default is "info".
//
// Returns an error if s is not a string representation of a
// supporting logging level.
//
// Supports the following values:
//   - "debug"
//   - "info"
//   - "warn"
//   - "error"
//   - "dpanic"
//   - "panic"
//   - "fatal"
func (p *Prm) SetLevelString(s string) error {
	return p.level.UnmarshalText([]byte(s))
}

// SetEncoding sets the log encoding, EncodingConsole or EncodingJSON.
// Default is EncodingConsole.
func (p *Prm) SetEncoding(s string) error {
	switch s {
	case "":
		p.encoding = EncodingConsole
	case EncodingConsole, EncodingJSON:
		p.encoding = s
	default:
		return fmt.Errorf("unsupported log encoding %q", s)
	}
	return nil
}

// DisableTimestamp omits time from the records, useful when the output is
// already timestamped by the consumer.
func (p *Prm) DisableTimestamp() {
	p.noTimestamp = true
}

// NewLogger constructs a new zap logger instance. Constructing with nil
// parameters is safe: default values are used then.
//
// Logger is built from production logging configuration with:
//   - parameterized level;
//   - console encoding unless changed;
//   - ISO8601 time encoding;
//   - sampling disabled.
//
// Logger records a stack trace for all messages at or above fatal level.
func NewLogger(prm *Prm) (*zap.Logger, error) {
	if prm == nil {
		prm = &Prm{level: zapcore.InfoLevel}
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(prm.level)
	c.Encoding = EncodingConsole
	if prm.encoding != "" {
		c.Encoding = prm.encoding
	}
	c.Sampling = nil
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if prm.noTimestamp {
		c.EncoderConfig.EncodeTime = func(time.Time, zapcore.PrimitiveArrayEncoder) {}
	}

	lZap, err := c.Build(
		zap.AddStacktrace(zap.NewAtomicLevelAt(zap.FatalLevel)),
	)
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return lZap, nil
}
