package console

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DefaultText is printed when no text is given.
const DefaultText = "\nHello, world!"

var (
	// ErrUnknownStyle is returned for style tokens that are neither attributes nor colors.
	ErrUnknownStyle = errors.New("unknown style")
	// errColorComponent is returned for rgb() components outside 0..255.
	errColorComponent = errors.New("color component must be in 0..255")
)

// namedColors maps the standard terminal color names to ANSI indexes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright_black":   "8",
	"grey":           "8",
	"gray":           "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// Printer writes styled text to a terminal.
type Printer struct {
	// out receives the rendered text.
	out io.Writer
	// renderer detects the color profile of out and renders styles for it.
	renderer *lipgloss.Renderer
	// intN returns a random number in [0, n); used to pick colors.
	intN func(n int) int
}

// Option configures a Printer.
type Option func(*Printer)

// WithColorProfile overrides the detected color profile of the output.
func WithColorProfile(profile termenv.Profile) Option {
	return func(p *Printer) {
		p.renderer.SetColorProfile(profile)
	}
}

// WithRandom replaces the random source used for colors.
func WithRandom(intN func(n int) int) Option {
	return func(p *Printer) {
		if intN != nil {
			p.intN = intN
		}
	}
}

// New returns a Printer writing to w.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		out:      w,
		renderer: lipgloss.NewRenderer(w),
		intN:     rand.IntN,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Print writes text in the given style followed by a newline.
// Empty text prints DefaultText; an empty style picks a random RGB color.
func (p *Printer) Print(text, style string) error {
	if text == "" {
		text = DefaultText
	}

	if style == "" {
		style = RandomColor(p.intN)
	}

	rendered, err := p.Style(style)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(p.out, rendered.Render(text)); err != nil {
		return fmt.Errorf("write text: %w", err)
	}

	return nil
}

// Style parses a style description such as "bold red", "rgb(10,20,30)" or
// "italic #ff8800 on blue" into a lipgloss style bound to the printer's renderer.
func (p *Printer) Style(description string) (lipgloss.Style, error) {
	style := p.renderer.NewStyle()
	background := false

	for _, token := range tokenize(description) {
		switch token {
		case "on":
			background = true

			continue
		case "bold":
			style = style.Bold(true)
		case "dim", "faint":
			style = style.Faint(true)
		case "italic":
			style = style.Italic(true)
		case "underline":
			style = style.Underline(true)
		case "strike":
			style = style.Strikethrough(true)
		case "reverse":
			style = style.Reverse(true)
		case "blink":
			style = style.Blink(true)
		default:
			color, err := ParseColor(token)
			if err != nil {
				return style, err
			}

			if background {
				style = style.Background(color)
			} else {
				style = style.Foreground(color)
			}
		}

		background = false
	}

	return style, nil
}

// ParseColor converts a single color token to a lipgloss color.
// Accepted forms: rgb(r,g,b), #rgb, #rrggbb, an ANSI index 0..255 or a standard color name.
func ParseColor(token string) (lipgloss.Color, error) {
	token = strings.ToLower(strings.TrimSpace(token))

	if index, ok := namedColors[token]; ok {
		return lipgloss.Color(index), nil
	}

	switch {
	case strings.HasPrefix(token, "rgb(") && strings.HasSuffix(token, ")"):
		return parseRGB(token[len("rgb(") : len(token)-1])
	case strings.HasPrefix(token, "#"):
		if !isHex(token[1:]) || (len(token) != 4 && len(token) != 7) {
			return "", fmt.Errorf("%w: %q", ErrUnknownStyle, token)
		}

		return lipgloss.Color(token), nil
	default:
		index, err := strconv.Atoi(token)
		if err != nil || index < 0 || index > 255 {
			return "", fmt.Errorf("%w: %q", ErrUnknownStyle, token)
		}

		return lipgloss.Color(token), nil
	}
}

// RandomColor returns an rgb(r,g,b) color with components drawn from intN.
func RandomColor(intN func(n int) int) string {
	if intN == nil {
		intN = rand.IntN
	}

	return fmt.Sprintf("rgb(%d,%d,%d)", intN(256), intN(256), intN(256))
}

// parseRGB converts "r,g,b" into a hex color.
func parseRGB(body string) (lipgloss.Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: rgb(%s)", ErrUnknownStyle, body)
	}

	var components [3]int

	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return "", fmt.Errorf("%w: rgb(%s)", ErrUnknownStyle, body)
		}

		if value < 0 || value > 255 {
			return "", fmt.Errorf("%w: rgb(%s)", errColorComponent, body)
		}

		components[i] = value
	}

	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", components[0], components[1], components[2])), nil
}

// tokenize splits a style description on whitespace, keeping rgb(...) groups whole.
func tokenize(description string) []string {
	var (
		tokens  []string
		current strings.Builder
		depth   int
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	for _, r := range description {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case (r == ' ' || r == '\t') && depth == 0:
			flush()

			continue
		case r == ' ' || r == '\t':
			continue
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isHex(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}

	return true
}
