package logger

import "go.uber.org/zap/zapcore"

// Tier is a severity level of the facade.
// Tiers are ordered: a message is emitted when its tier is at or above the threshold.
type Tier int8

const (
	// TierDebug is for verbose diagnostics.
	TierDebug Tier = iota
	// TierInfo is for normal operational messages.
	TierInfo
	// TierWarning is for unexpected but recoverable conditions.
	TierWarning
	// TierError is for failed operations.
	TierError
	// TierCritical is for failures that leave the program unusable.
	TierCritical
	// TierNone is a threshold above every tier; it suppresses all output.
	TierNone
)

// DefaultTier is the threshold used when the configured level is unknown or missing.
const DefaultTier = TierWarning

// suppressLevel is the zap level above every level the facade emits at.
const suppressLevel = zapcore.FatalLevel + 1

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	// tiersByName maps configuration literals to thresholds. Matching is case-sensitive.
	tiersByName = map[string]Tier{
		"debug":    TierDebug,
		"info":     TierInfo,
		"warning":  TierWarning,
		"error":    TierError,
		"critical": TierCritical,
		"none":     TierNone,
	}

	tierNames = [...]string{
		TierDebug:    "DEBUG",
		TierInfo:     "INFO",
		TierWarning:  "WARNING",
		TierError:    "ERROR",
		TierCritical: "CRITICAL",
		TierNone:     "NONE",
	}

	zapLevels = [...]zapcore.Level{
		TierDebug:    zapcore.DebugLevel,
		TierInfo:     zapcore.InfoLevel,
		TierWarning:  zapcore.WarnLevel,
		TierError:    zapcore.ErrorLevel,
		TierCritical: zapcore.DPanicLevel,
		TierNone:     suppressLevel,
	}
)

// ParseTier converts a configuration literal to a Tier.
// The second result is false when the literal is not recognized.
func ParseTier(name string) (Tier, bool) {
	tier, ok := tiersByName[name]
	if !ok {
		return DefaultTier, false
	}

	return tier, true
}

// LookupTier converts a configuration literal to a Tier, falling back to DefaultTier.
func LookupTier(name string) Tier {
	tier, _ := ParseTier(name)

	return tier
}

// String returns the uppercase tier name.
func (t Tier) String() string {
	if !t.valid() {
		return "UNKNOWN"
	}

	return tierNames[t]
}

// Markup returns the display markup wrapped around messages of this tier.
func (t Tier) Markup() Markup {
	switch t {
	case TierDebug, TierInfo:
		return mutedMarkup
	case TierWarning:
		return warningMarkup
	case TierError, TierCritical:
		return strongMarkup
	default:
		return Markup{}
	}
}

func (t Tier) valid() bool {
	return t >= TierDebug && t <= TierNone
}

func (t Tier) zapLevel() zapcore.Level {
	if !t.valid() {
		return zapLevels[DefaultTier]
	}

	return zapLevels[t]
}

// tierOf maps a zap level back to the facade tier.
func tierOf(level zapcore.Level) Tier {
	switch {
	case level <= zapcore.DebugLevel:
		return TierDebug
	case level == zapcore.InfoLevel:
		return TierInfo
	case level == zapcore.WarnLevel:
		return TierWarning
	case level == zapcore.ErrorLevel:
		return TierError
	case level <= zapcore.FatalLevel:
		return TierCritical
	default:
		return TierNone
	}
}
