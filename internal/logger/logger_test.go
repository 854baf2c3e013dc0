package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oshokin/project-template/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newObserved returns a logger whose sink records every forwarded entry.
func newObserved(opts ...Option) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)

	return New(append([]Option{WithCore(core)}, opts...)...), logs
}

// emitAll writes one message per tier.
func emitAll(l *Logger) {
	l.Debug("debug")
	l.Info("info")
	l.Warn("warning")
	l.Error("error")
	l.Critical("critical")
}

// TestParseTier verifies the literal table and the WARNING fallback.
func TestParseTier(t *testing.T) {
	t.Parallel()

	cases := map[string]Tier{
		"debug":    TierDebug,
		"info":     TierInfo,
		"warning":  TierWarning,
		"error":    TierError,
		"critical": TierCritical,
		"none":     TierNone,
	}
	for s, tier := range cases {
		got, ok := ParseTier(s)
		require.True(t, ok)
		require.Equal(t, tier, got)
		require.Equal(t, tier, LookupTier(s))
	}

	for _, s := range []string{"", "bogus", "DEBUG", "Info", "warn", " info"} {
		got, ok := ParseTier(s)
		require.False(t, ok, s)
		require.Equal(t, TierWarning, got, s)
		require.Equal(t, TierWarning, LookupTier(s), s)
	}
}

// TestTierString checks tier names, including out of range values.
func TestTierString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "DEBUG", TierDebug.String())
	require.Equal(t, "WARNING", TierWarning.String())
	require.Equal(t, "CRITICAL", TierCritical.String())
	require.Equal(t, "NONE", TierNone.String())
	require.Equal(t, "UNKNOWN", Tier(42).String())
}

// TestSetLogLevel_Thresholds counts forwarded messages for every threshold.
func TestSetLogLevel_Thresholds(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"debug":    5,
		"info":     4,
		"warning":  3,
		"error":    2,
		"critical": 1,
		"none":     0,
		"bogus":    3,
		"":         3,
	}

	for name, want := range cases {
		l, logs := newObserved()
		l.SetLogLevel(name)
		emitAll(l)
		require.Equal(t, want, logs.Len(), "level %q", name)
	}
}

// TestSetLogLevel_UnknownFallsBackToWarning checks WARNING passes and INFO is dropped.
func TestSetLogLevel_UnknownFallsBackToWarning(t *testing.T) {
	t.Parallel()

	l, logs := newObserved()
	require.Equal(t, TierWarning, l.SetLogLevel("bogus"))

	l.Warn("kept")
	l.Info("dropped")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, Tag(TierWarning, "kept"), entries[0].Message)
}

// TestSetLogLevel_NoneSuppressesCritical ensures nothing is forwarded at the none threshold.
func TestSetLogLevel_NoneSuppressesCritical(t *testing.T) {
	t.Parallel()

	l, logs := newObserved()
	require.Equal(t, TierNone, l.SetLogLevel("none"))
	require.Equal(t, TierNone, l.Level())

	emitAll(l)
	l.Criticalf("critical %d", 2)

	require.Zero(t, logs.Len())
	require.False(t, l.Enabled(TierCritical))
	require.False(t, l.Enabled(TierNone))
}

// TestMarkup verifies tier styling groups and message wrapping.
func TestMarkup(t *testing.T) {
	t.Parallel()

	require.Equal(t, TierDebug.Markup(), TierInfo.Markup())
	require.Equal(t, TierError.Markup(), TierCritical.Markup())
	require.NotEqual(t, TierInfo.Markup(), TierWarning.Markup())
	require.NotEqual(t, TierWarning.Markup(), TierError.Markup())
	require.Equal(t, "plain", Tag(TierNone, "plain"))

	l, logs := newObserved(WithLevel(TierDebug))
	emitAll(l)

	entries := logs.AllUntimed()
	require.Len(t, entries, 5)

	tiers := []Tier{TierDebug, TierInfo, TierWarning, TierError, TierCritical}
	messages := []string{"debug", "info", "warning", "error", "critical"}

	for i, tier := range tiers {
		markup := tier.Markup()
		require.True(t, strings.HasPrefix(entries[i].Message, markup.Prefix))
		require.True(t, strings.HasSuffix(entries[i].Message, markup.Suffix))
		require.Equal(t, tier.zapLevel(), entries[i].Level)
		require.Equal(t, Tag(tier, messages[i]), entries[i].Message)
	}
}

// TestFormattedMethods checks the f-variants format only when enabled.
func TestFormattedMethods(t *testing.T) {
	t.Parallel()

	l, logs := newObserved(WithLevel(TierInfo))
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Warnf("shown %d", 3)
	l.Errorf("shown %d", 4)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	require.Equal(t, Tag(TierInfo, "shown 2"), entries[0].Message)
	require.Equal(t, Tag(TierError, "shown 4"), entries[2].Message)
}

// TestApply reads log_level from the configuration store.
func TestApply(t *testing.T) {
	t.Parallel()

	store, err := config.Parse([]byte(`{"logging": {"log_level": "debug"}}`))
	require.NoError(t, err)

	l, _ := newObserved()
	require.Equal(t, TierDebug, l.Apply(store))
	require.Equal(t, TierDebug, l.Level())

	require.Equal(t, TierWarning, l.Apply(config.NewStore()))
	require.Equal(t, TierWarning, l.Apply(nil))

	numeric, err := config.Parse([]byte(`{"log_level": "10"}`))
	require.NoError(t, err)
	require.Equal(t, TierWarning, l.Apply(numeric))
}

// TestConsoleSink_StripsMarkupWithoutColors checks the plain sink output.
func TestConsoleSink_StripsMarkupWithoutColors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := New(WithOutput(&buf), WithColors(false))
	l.Named("demo").Error("disk is full")
	l.Info("dropped")
	require.NoError(t, l.Sync())

	out := buf.String()
	require.Contains(t, out, "ERROR")
	require.Contains(t, out, "demo")
	require.Contains(t, out, "disk is full")
	require.NotContains(t, out, "\033[")
	require.NotContains(t, out, "dropped")
}

// TestConsoleSink_KeepsMarkupWithColors checks markup reaches a color-capable output.
func TestConsoleSink_KeepsMarkupWithColors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := New(WithOutput(&buf), WithColors(true))
	l.Warn("careful")
	l.Critical("boom")

	out := buf.String()
	require.Contains(t, out, Tag(TierWarning, "careful"))
	require.Contains(t, out, Tag(TierCritical, "boom"))
	require.Contains(t, out, "WARNING")
	require.Contains(t, out, "CRITICAL")
}

// TestConsoleSink_AutoColorsOffForBuffers ensures non-terminal writers get plain text.
func TestConsoleSink_AutoColorsOffForBuffers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	New(WithOutput(&buf)).Warn("plain")
	require.NotContains(t, buf.String(), "\033[")
	require.Contains(t, buf.String(), "plain")
}

// TestTracebacks attaches stack traces to error entries only when requested.
func TestTracebacks(t *testing.T) {
	t.Parallel()

	l, logs := newObserved(WithTracebacks(true))
	l.Warn("no stack")
	l.Error("with stack")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	require.Empty(t, entries[0].Stack)
	require.NotEmpty(t, entries[1].Stack)

	plain, plainLogs := newObserved()
	plain.Error("no stack")
	require.Empty(t, plainLogs.AllUntimed()[0].Stack)
}

// TestNamed_SharesThreshold verifies derived loggers see threshold changes.
func TestNamed_SharesThreshold(t *testing.T) {
	t.Parallel()

	l, logs := newObserved()
	child := l.Named("child")

	child.Info("dropped")
	l.SetLogLevel("info")
	child.Info("kept")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	require.Equal(t, "child", entries[0].LoggerName)
}

// TestNilLogger makes sure a nil logger is inert.
func TestNilLogger(t *testing.T) {
	t.Parallel()

	var l *Logger

	require.NotPanics(t, func() {
		emitAll(l)
		l.SetLogLevel("debug")
		require.NoError(t, l.Sync())
	})
	require.Nil(t, l.Named("x"))
	require.Equal(t, TierNone, l.Level())
}

// TestDefault_Singleton verifies every call shares one instance, sink and threshold.
//
//nolint:paralleltest // Mutates the process-wide logger.
func TestDefault_Singleton(t *testing.T) {
	first := Default()
	second := Default()

	require.Same(t, first, second)

	previous := first.Level()
	t.Cleanup(func() {
		first.SetLevel(previous)
	})

	first.SetLogLevel("debug")
	require.Equal(t, TierDebug, second.Level())

	second.SetLogLevel("none")
	require.Equal(t, TierNone, first.Level())
	require.Same(t, first.base, second.base)
}

// TestContext covers ToContext, FromContext and WithName.
//
//nolint:paralleltest // Reads the process-wide logger.
func TestContext(t *testing.T) {
	require.Same(t, Default(), FromContext(context.Background()))
	//nolint:staticcheck // A nil context must still resolve to the default logger.
	require.Same(t, Default(), FromContext(nil))

	l, logs := newObserved(WithLevel(TierDebug))
	ctx := ToContext(context.Background(), l)
	require.Same(t, l, FromContext(ctx))

	ctx = WithName(ctx, "svc")
	Debug(ctx, "a")
	Debugf(ctx, "%s", "b")
	Info(ctx, "c")
	Infof(ctx, "%s", "d")
	Warn(ctx, "e")
	Warnf(ctx, "%s", "f")
	Error(ctx, "g")
	Errorf(ctx, "%s", "h")
	Critical(ctx, "i")
	Criticalf(ctx, "%s", "j")

	entries := logs.AllUntimed()
	require.Len(t, entries, 10)

	for _, entry := range entries {
		require.Equal(t, "svc", entry.LoggerName)
	}

	require.Equal(t, Tag(TierCritical, "j"), entries[9].Message)
}
