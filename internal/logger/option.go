package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap/zapcore"
)

// options collects settings for New.
type options struct {
	// output is where the console sink writes.
	output io.Writer
	// core replaces the console sink when set.
	core zapcore.Core
	// colors forces markup on or off; nil means auto-detect.
	colors *bool
	// tracebacks attaches stack traces to ERROR and CRITICAL entries.
	tracebacks bool
	// level is the initial threshold.
	level Tier
}

// Option configures a Logger built by New.
type Option func(*options)

// WithOutput sets the writer used by the console sink.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithCore replaces the console sink with core. The threshold still applies on top of it.
func WithCore(core zapcore.Core) Option {
	return func(o *options) {
		o.core = core
	}
}

// WithColors forces terminal markup on or off for the console sink.
func WithColors(enabled bool) Option {
	return func(o *options) {
		o.colors = &enabled
	}
}

// WithTracebacks attaches stack traces to ERROR and CRITICAL entries.
func WithTracebacks(enabled bool) Option {
	return func(o *options) {
		o.tracebacks = enabled
	}
}

// WithLevel sets the initial threshold.
func WithLevel(tier Tier) Option {
	return func(o *options) {
		o.level = tier
	}
}

// colorsEnabled resolves the color setting against the output.
func (o *options) colorsEnabled() bool {
	if o.colors != nil {
		return *o.colors
	}

	f, ok := o.output.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// coreWithLevel wraps a zapcore.Core with a threshold shared by every logger of the process.
type coreWithLevel struct {
	zapcore.Core

	// level is the minimum log level for this core to process messages.
	level zapcore.LevelEnabler
}

// Enabled reports whether the shared threshold lets l through.
func (c *coreWithLevel) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l)
}

// Check adds the core to a checked entry if the entry level passes the threshold.
//
//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *coreWithLevel) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

// With returns a new core with added fields that keeps the same threshold.
//
//nolint:ireturn,nolintlint // Returning zapcore.Core is intended for zap integration.
func (c *coreWithLevel) With(fields []zapcore.Field) zapcore.Core {
	return &coreWithLevel{
		Core:  c.Core.With(fields),
		level: c.level,
	}
}

// plainCore strips terminal markup from messages before they reach a non-terminal output.
type plainCore struct {
	zapcore.Core
}

// Check adds the core to a checked entry if the wrapped core accepts the level.
//
//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *plainCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

// Write removes ANSI sequences from the message and writes the entry.
//
//nolint:gocritic // zapcore.Core defines Write with ent by value.
func (c *plainCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	ent.Message = ansi.Strip(ent.Message)

	return c.Core.Write(ent, fields)
}

// With returns a new stripping core with added fields.
//
//nolint:ireturn,nolintlint // Returning zapcore.Core is intended for zap integration.
func (c *plainCore) With(fields []zapcore.Field) zapcore.Core {
	return &plainCore{Core: c.Core.With(fields)}
}
