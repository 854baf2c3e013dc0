package manifest

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// edit applies value at the key path directly to the source text.
// It reports false when the path cannot be edited in place: a table is missing,
// aliased or in flow style, or the current value spans several lines.
func (d *Document) edit(value string, keys []string) ([]byte, bool) {
	mapping := d.root.Content[0]

	for _, key := range keys[:len(keys)-1] {
		if mapping.Style&yaml.FlowStyle != 0 {
			return nil, false
		}

		index := entryIndex(mapping, key)
		if index < 0 || mapping.Content[index].Kind != yaml.MappingNode {
			return nil, false
		}

		mapping = mapping.Content[index]
	}

	if mapping.Style&yaml.FlowStyle != 0 {
		return nil, false
	}

	last := keys[len(keys)-1]
	if index := entryIndex(mapping, last); index >= 0 {
		return d.replace(mapping.Content[index], value)
	}

	return d.insert(mapping, last, value)
}

// replace overwrites the text of a scalar or alias value node, keeping its quoting style.
// An alias is replaced by the scalar itself, so the anchored value stays untouched.
func (d *Document) replace(node *yaml.Node, value string) ([]byte, bool) {
	start, end, ok := valueSpan(d.source, node)
	if !ok {
		return nil, false
	}

	var style yaml.Style
	if node.Kind == yaml.ScalarNode {
		style = node.Style
	}

	text, ok := renderScalar(value, style)
	if !ok {
		return nil, false
	}

	edited := make([]byte, 0, len(d.source)-(end-start)+len(text))
	edited = append(edited, d.source[:start]...)
	edited = append(edited, text...)
	edited = append(edited, d.source[end:]...)

	return edited, true
}

// insert adds "key: value" as a new line right after the last entry of a block mapping,
// indented like the mapping's first key.
func (d *Document) insert(mapping *yaml.Node, key, value string) ([]byte, bool) {
	if len(mapping.Content) < 2 {
		return nil, false
	}

	keyText, ok := renderScalar(key, 0)
	if !ok {
		return nil, false
	}

	valueText, ok := renderScalar(value, 0)
	if !ok {
		return nil, false
	}

	src := d.source
	starts := lineStarts(src)
	indent := mapping.Content[0].Column - 1
	lastKey := mapping.Content[len(mapping.Content)-2]

	if indent < 0 || lastKey.Line < 1 || lastKey.Line > len(starts) {
		return nil, false
	}

	// Lines indented deeper than the keys still belong to the last entry;
	// blank lines and anything less indented stay below the new one.
	at := lineEnd(src, starts, lastKey.Line-1)

	for line := lastKey.Line; line < len(starts); line++ {
		text := bytes.TrimSuffix(src[starts[line]:lineEnd(src, starts, line)], []byte("\n"))

		trimmed := bytes.TrimLeft(text, " ")
		if len(bytes.TrimSpace(trimmed)) == 0 {
			continue
		}

		if len(text)-len(trimmed) <= indent {
			break
		}

		at = lineEnd(src, starts, line)
	}

	nl := newline(src)
	entry := strings.Repeat(" ", indent) + keyText + ": " + valueText + nl

	if at == len(src) && len(src) > 0 && src[len(src)-1] != '\n' {
		entry = nl + entry
	}

	edited := make([]byte, 0, len(src)+len(entry))
	edited = append(edited, src[:at]...)
	edited = append(edited, entry...)
	edited = append(edited, src[at:]...)

	return edited, true
}

// valueSpan returns the byte range of a single-line scalar or alias in src,
// excluding its anchor. Tagged and block scalars are not handled.
func valueSpan(src []byte, node *yaml.Node) (int, int, bool) {
	start := offset(src, lineStarts(src), node.Line, node.Column)
	if start < 0 {
		return 0, 0, false
	}

	limit := len(src)
	if i := bytes.IndexByte(src[start:], '\n'); i >= 0 {
		limit = start + i
	}

	switch node.Kind {
	case yaml.AliasNode:
		token := "*" + node.Value
		if !bytes.HasPrefix(src[start:limit], []byte(token)) {
			return 0, 0, false
		}

		return start, start + len(token), true
	case yaml.ScalarNode:
	default:
		return 0, 0, false
	}

	if node.Style&(yaml.TaggedStyle|yaml.LiteralStyle|yaml.FoldedStyle) != 0 {
		return 0, 0, false
	}

	if node.Anchor != "" {
		token := "&" + node.Anchor
		if !bytes.HasPrefix(src[start:limit], []byte(token)) {
			return 0, 0, false
		}

		start += len(token)
		for start < limit && (src[start] == ' ' || src[start] == '\t') {
			start++
		}
	}

	if start >= limit {
		return 0, 0, false
	}

	switch {
	case node.Style&yaml.DoubleQuotedStyle != 0:
		if src[start] != '"' {
			return 0, 0, false
		}

		for i := start + 1; i < limit; i++ {
			switch src[i] {
			case '\\':
				i++
			case '"':
				return start, i + 1, true
			}
		}
	case node.Style&yaml.SingleQuotedStyle != 0:
		if src[start] != '\'' {
			return 0, 0, false
		}

		for i := start + 1; i < limit; i++ {
			if src[i] != '\'' {
				continue
			}

			if i+1 < limit && src[i+1] == '\'' {
				i++

				continue
			}

			return start, i + 1, true
		}
	case node.Value != "" && bytes.HasPrefix(src[start:limit], []byte(node.Value)):
		return start, start + len(node.Value), true
	}

	return 0, 0, false
}

// renderScalar encodes value as a single-line YAML string in the given style.
// Plain values that would read back as another type come out quoted.
func renderScalar(value string, style yaml.Style) (string, bool) {
	out, err := yaml.Marshal(&yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: value,
		Style: style &^ yaml.TaggedStyle,
	})
	if err != nil {
		return "", false
	}

	text := strings.TrimSuffix(string(out), "\n")
	if text == "" || strings.ContainsAny(text, "\r\n") {
		return "", false
	}

	return text, true
}

// encode serializes a node tree with the given indentation.
func encode(root *yaml.Node, spaces int) ([]byte, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(spaces)

	if err := encoder.Encode(root); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	return buf.Bytes(), nil
}

// detectIndent returns the nesting step used by the first block table of mapping.
func detectIndent(mapping *yaml.Node) int {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if value.Kind != yaml.MappingNode || value.Style&yaml.FlowStyle != 0 || len(value.Content) == 0 {
			continue
		}

		if step := value.Content[0].Column - key.Column; step >= defaultIndent {
			return step
		}
	}

	return defaultIndent
}

// lineStarts returns the byte offset of every line in src.
func lineStarts(src []byte) []int {
	starts := []int{0}

	for i, b := range src {
		if b == '\n' && i+1 < len(src) {
			starts = append(starts, i+1)
		}
	}

	return starts
}

// lineEnd returns the offset just past the newline of the zero-based line.
func lineEnd(src []byte, starts []int, line int) int {
	if line+1 < len(starts) {
		return starts[line+1]
	}

	return len(src)
}

// offset converts a one-based line and character column into a byte offset, or -1.
func offset(src []byte, starts []int, line, column int) int {
	if line < 1 || line > len(starts) || column < 1 {
		return -1
	}

	pos := starts[line-1]

	for n := 1; n < column; n++ {
		if pos >= len(src) || src[pos] == '\n' {
			return -1
		}

		_, size := utf8.DecodeRune(src[pos:])
		pos += size
	}

	return pos
}

// newline returns the line terminator used by src.
func newline(src []byte) string {
	if bytes.Contains(src, []byte("\r\n")) {
		return "\r\n"
	}

	return "\n"
}
