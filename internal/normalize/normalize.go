package normalize

import (
	"strings"
	"unicode"
)

// Normalize resolves inline annotation syntax in one inscription text span
// and returns clean text.
//
// Three constructs are handled:
//   - correction spans "<CORRECTED=original>": the whole span is replaced by
//     the lowercased text between the opening marker and the separator
//   - superficial-letter spans "{...}": removed together with the delimiters
//   - illegible-letter placeholders "[3]": preserved verbatim, the only
//     punctuation that survives
//
// The final pass keeps letters, whitespace, and placeholder characters,
// collapses runs of whitespace, and trims. Normalize is idempotent on its
// own output.
func Normalize(raw string) string {
	text := raw
	if strings.Contains(text, "=") {
		text = resolveCorrections(text)
	}
	if strings.Contains(text, "{") {
		text = removeSuperficial(text)
	}

	rs := []rune(text)
	var b strings.Builder
	for i, r := range rs {
		if unicode.IsSpace(r) || unicode.IsLetter(r) || isIllegible(rs, i) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// resolveCorrections replaces every "<corrected=original>" span with the
// lowercased corrected reading. The closing marker is located by a forward
// scan at or after the opening one; an unmatched opening marker extends the
// span to the end of the string.
func resolveCorrections(text string) string {
	var b strings.Builder
	i := 0
	for i < len(text) {
		open := strings.IndexByte(text[i:], '<')
		if open < 0 {
			b.WriteString(text[i:])
			break
		}
		open += i
		b.WriteString(text[i:open])

		end := len(text)
		if cl := strings.IndexByte(text[open:], '>'); cl >= 0 {
			end = open + cl
		}
		if eq := strings.IndexByte(text[open:], '='); eq >= 0 && open+eq < end {
			b.WriteString(strings.ToLower(text[open+1 : open+eq]))
		}
		if end == len(text) {
			break
		}
		i = end + 1
	}
	return b.String()
}

// removeSuperficial drops every "{...}" span including the braces. An
// unmatched opening brace drops the remainder of the string.
func removeSuperficial(text string) string {
	var b strings.Builder
	i := 0
	for i < len(text) {
		open := strings.IndexByte(text[i:], '{')
		if open < 0 {
			b.WriteString(text[i:])
			break
		}
		open += i
		b.WriteString(text[i:open])

		cl := strings.IndexByte(text[open:], '}')
		if cl < 0 {
			break
		}
		i = open + cl + 1
	}
	return b.String()
}

// isIllegible reports whether the rune at i belongs to an illegible-letter
// placeholder: a single digit enclosed in square brackets. The window checks
// all three positions so the digit may sit one position off relative to i.
func isIllegible(rs []rune, i int) bool {
	if i >= len(rs)-2 {
		return false
	}
	if rs[i] == '[' && unicode.IsDigit(rs[i+1]) && rs[i+2] == ']' {
		return true
	}
	if i >= 1 && rs[i-1] == '[' && unicode.IsDigit(rs[i]) && rs[i+1] == ']' {
		return true
	}
	if i >= 2 && rs[i-2] == '[' && unicode.IsDigit(rs[i-1]) && rs[i] == ']' {
		return true
	}
	return false
}
