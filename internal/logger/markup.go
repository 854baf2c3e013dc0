package logger

// ANSI SGR sequences used by tier markup.
const (
	sgrReset  = "\033[0m"
	sgrBold   = "\033[1m"
	sgrDim    = "\033[2m"
	sgrRed    = "\033[31m"
	sgrYellow = "\033[33m"
	sgrGray   = "\033[90m"
)

// Markup is the display prefix/suffix pair placed around a message.
// It only affects rendering, never routing.
type Markup struct {
	// Prefix opens the style.
	Prefix string
	// Suffix closes the style.
	Suffix string
}

//nolint:gochecknoglobals // Immutable style table.
var (
	mutedMarkup   = Markup{Prefix: sgrDim + sgrGray, Suffix: sgrReset}
	warningMarkup = Markup{Prefix: sgrYellow, Suffix: sgrReset}
	strongMarkup  = Markup{Prefix: sgrBold + sgrRed, Suffix: sgrReset}
)

// Wrap surrounds message with the markup.
func (m Markup) Wrap(message string) string {
	if m.Prefix == "" && m.Suffix == "" {
		return message
	}

	return m.Prefix + message + m.Suffix
}

// Tag wraps message with the markup of tier.
func Tag(tier Tier, message string) string {
	return tier.Markup().Wrap(message)
}
