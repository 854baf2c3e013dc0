package logger

import "context"

// contextKey is the private key under which the logger is stored in a context.
type contextKey struct{}

// ToContext returns a copy of ctx carrying l.
func ToContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger carried by ctx, or the process-wide logger.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*Logger); ok && l != nil {
			return l
		}
	}

	return Default()
}

// WithName returns a copy of ctx whose logger prefixes entries with name.
func WithName(ctx context.Context, name string) context.Context {
	return ToContext(ctx, FromContext(ctx).Named(name))
}

// Debug writes a debug level message using the logger from the context.
func Debug(ctx context.Context, message string) {
	FromContext(ctx).Debug(message)
}

// Debugf writes a formatted debug level message using the logger from the context.
func Debugf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Debugf(format, args...)
}

// Info writes an information level message using the logger from the context.
func Info(ctx context.Context, message string) {
	FromContext(ctx).Info(message)
}

// Infof writes a formatted information level message using the logger from the context.
func Infof(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Infof(format, args...)
}

// Warn writes a warning level message using the logger from the context.
func Warn(ctx context.Context, message string) {
	FromContext(ctx).Warn(message)
}

// Warnf writes a formatted warning level message using the logger from the context.
func Warnf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Warnf(format, args...)
}

// Error writes an error level message using the logger from the context.
func Error(ctx context.Context, message string) {
	FromContext(ctx).Error(message)
}

// Errorf writes a formatted error level message using the logger from the context.
func Errorf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Errorf(format, args...)
}

// Critical writes a critical level message using the logger from the context.
func Critical(ctx context.Context, message string) {
	FromContext(ctx).Critical(message)
}

// Criticalf writes a formatted critical level message using the logger from the context.
func Criticalf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Criticalf(format, args...)
}
