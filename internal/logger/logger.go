package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/project-template/internal/config"
)

// Logger is the logging facade. Every copy derived from one Logger (see Named)
// shares its sink and its threshold.
type Logger struct {
	// base writes entries to the shared sink.
	base *zap.Logger
	// level is the shared threshold; changing it affects every derived logger.
	level zap.AtomicLevel
}

var (
	// defaultLogger is the process-wide logger handed out by Default.
	//nolint:gochecknoglobals // One sink per process is the point of Default.
	defaultLogger *Logger
	//nolint:gochecknoglobals // Guards the first construction of defaultLogger.
	defaultOnce sync.Once
)

// Default returns the process-wide logger, creating it on first use.
// Later calls return the same instance with the same sink and threshold.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New()
	})

	return defaultLogger
}

// New creates a logger with its own sink. Without options it writes to stderr
// at the WARNING threshold, with colors when stderr is a terminal.
func New(opts ...Option) *Logger {
	o := &options{
		output: os.Stderr,
		level:  DefaultTier,
	}

	for _, opt := range opts {
		opt(o)
	}

	level := zap.NewAtomicLevelAt(o.level.zapLevel())

	sink := o.core
	if sink == nil {
		sink = newConsoleCore(o)
	}

	var zapOptions []zap.Option
	if o.tracebacks {
		zapOptions = append(zapOptions, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return &Logger{
		base:  zap.New(&coreWithLevel{Core: sink, level: level}, zapOptions...),
		level: level,
	}
}

// newConsoleCore builds the text sink: time, tier name, logger name and message.
func newConsoleCore(o *options) zapcore.Core {
	//nolint:exhaustruct // I'm okay with default encoder configuration values.
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "message",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      encodeTier,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: ", ",
	})

	// The threshold is enforced by coreWithLevel, so the sink itself accepts everything.
	var core zapcore.Core = zapcore.NewCore(encoder, zapcore.AddSync(o.output), zapcore.DebugLevel)
	if !o.colorsEnabled() {
		core = &plainCore{Core: core}
	}

	return core
}

// encodeTier renders zap levels with the facade tier names.
func encodeTier(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(tierOf(level).String())
}

// Named returns a logger that prefixes entries with name and shares the sink and threshold.
func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return nil
	}

	return &Logger{
		base:  l.base.Named(name),
		level: l.level,
	}
}

// SetLogLevel sets the threshold from a configuration literal
// (debug, info, warning, error, critical, none). Unknown literals select WARNING.
// The sink is kept; only the threshold changes.
func (l *Logger) SetLogLevel(name string) Tier {
	tier := LookupTier(name)
	l.SetLevel(tier)

	return tier
}

// SetLevel sets the threshold.
func (l *Logger) SetLevel(tier Tier) {
	if l == nil {
		return
	}

	//nolint:errcheck // Syncing a console is best-effort.
	defer l.base.Sync()

	l.level.SetLevel(tier.zapLevel())
}

// Apply sets the threshold from the log_level attribute of store.
func (l *Logger) Apply(store *config.Store) Tier {
	return l.SetLogLevel(store.String(config.LogLevelKey, ""))
}

// Level returns the current threshold.
func (l *Logger) Level() Tier {
	if l == nil {
		return TierNone
	}

	return tierOf(l.level.Level())
}

// Enabled reports whether a message at tier would be emitted.
func (l *Logger) Enabled(tier Tier) bool {
	if l == nil || tier >= TierNone || !tier.valid() {
		return false
	}

	return l.level.Enabled(tier.zapLevel())
}

// Sync flushes buffered entries of the sink.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}

	return l.base.Sync()
}

// Debug writes a debug message.
func (l *Logger) Debug(message string) {
	l.emit(TierDebug, message)
}

// Debugf writes a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) {
	if l.Enabled(TierDebug) {
		l.emit(TierDebug, fmt.Sprintf(format, args...))
	}
}

// Info writes an information message.
func (l *Logger) Info(message string) {
	l.emit(TierInfo, message)
}

// Infof writes a formatted information message.
func (l *Logger) Infof(format string, args ...any) {
	if l.Enabled(TierInfo) {
		l.emit(TierInfo, fmt.Sprintf(format, args...))
	}
}

// Warn writes a warning message.
func (l *Logger) Warn(message string) {
	l.emit(TierWarning, message)
}

// Warnf writes a formatted warning message.
func (l *Logger) Warnf(format string, args ...any) {
	if l.Enabled(TierWarning) {
		l.emit(TierWarning, fmt.Sprintf(format, args...))
	}
}

// Error writes an error message.
func (l *Logger) Error(message string) {
	l.emit(TierError, message)
}

// Errorf writes a formatted error message.
func (l *Logger) Errorf(format string, args ...any) {
	if l.Enabled(TierError) {
		l.emit(TierError, fmt.Sprintf(format, args...))
	}
}

// Critical writes a critical message. It never panics or exits.
func (l *Logger) Critical(message string) {
	l.emit(TierCritical, message)
}

// Criticalf writes a formatted critical message.
func (l *Logger) Criticalf(format string, args ...any) {
	if l.Enabled(TierCritical) {
		l.emit(TierCritical, fmt.Sprintf(format, args...))
	}
}

// emit tags message and hands it to the sink when tier passes the threshold.
func (l *Logger) emit(tier Tier, message string) {
	if !l.Enabled(tier) {
		return
	}

	l.base.Log(tier.zapLevel(), Tag(tier, message))
}
