package console

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

// fixedRandom always returns the same component value.
func fixedRandom(value int) func(int) int {
	return func(int) int {
		return value
	}
}

// TestPrint_Plain verifies that a colorless output receives the raw text.
func TestPrint_Plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	p := New(&buf, WithColorProfile(termenv.Ascii))
	require.NoError(t, p.Print("Hello, world!", "red"))
	require.Equal(t, "Hello, world!\n", buf.String())
}

// TestPrint_Colored checks ANSI sequences are emitted for a true color profile.
func TestPrint_Colored(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	p := New(&buf, WithColorProfile(termenv.TrueColor))
	require.NoError(t, p.Print("styled", "bold rgb(255, 0, 0)"))
	require.Contains(t, buf.String(), "styled")
	require.Contains(t, buf.String(), "\x1b[")
}

// TestPrint_Defaults uses the default text and a random color when both are empty.
func TestPrint_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	p := New(&buf, WithColorProfile(termenv.Ascii), WithRandom(fixedRandom(7)))
	require.NoError(t, p.Print("", ""))
	require.Contains(t, buf.String(), "Hello, world!")
}

// TestPrint_UnknownStyle rejects styles that cannot be parsed.
func TestPrint_UnknownStyle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := New(&buf).Print("text", "sparkly")
	require.ErrorIs(t, err, ErrUnknownStyle)
	require.Empty(t, buf.String())
}

// TestParseColor covers every accepted color form and a few rejections.
func TestParseColor(t *testing.T) {
	t.Parallel()

	valid := map[string]lipgloss.Color{
		"red":              "1",
		"Grey":             "8",
		"bright_white":     "15",
		"rgb(128,128,128)": "#808080",
		"rgb(0, 255, 16)":  "#00ff10",
		"#FFAA00":          "#ffaa00",
		"#abc":             "#abc",
		"42":               "42",
	}
	for token, want := range valid {
		got, err := ParseColor(token)
		require.NoError(t, err, token)
		require.Equal(t, want, got, token)
	}

	for _, token := range []string{"rgb(1,2)", "rgb(a,b,c)", "#12", "#zzzzzz", "256", "-1", "chartreuse"} {
		_, err := ParseColor(token)
		require.ErrorIs(t, err, ErrUnknownStyle, token)
	}

	_, err := ParseColor("rgb(300,0,0)")
	require.ErrorIs(t, err, errColorComponent)
}

// TestStyle applies attributes and background colors.
func TestStyle(t *testing.T) {
	t.Parallel()

	p := New(&bytes.Buffer{})

	style, err := p.Style("bold italic underline yellow on rgb(0, 0, 255)")
	require.NoError(t, err)
	require.True(t, style.GetBold())
	require.True(t, style.GetItalic())
	require.True(t, style.GetUnderline())
	require.Equal(t, lipgloss.Color("3"), style.GetForeground())
	require.Equal(t, lipgloss.Color("#0000ff"), style.GetBackground())

	style, err = p.Style("dim")
	require.NoError(t, err)
	require.True(t, style.GetFaint())
}

// TestRandomColor checks the rgb() format produced from the random source.
func TestRandomColor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "rgb(9,9,9)", RandomColor(fixedRandom(9)))

	color, err := ParseColor(RandomColor(nil))
	require.NoError(t, err)
	require.NotEmpty(t, color)
}
