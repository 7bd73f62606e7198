package textwrap

import (
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the conventional default wrap width, matching the
// reference configuration.
const DefaultWidth = 70

// whitespaceReplacer maps every non-space whitespace character to a
// plain space before wrapping, so multi-line generator output wraps
// the same as single-line output.
var whitespaceReplacer = strings.NewReplacer(
	"\t", " ",
	"\n", " ",
	"\v", " ",
	"\f", " ",
	"\r", " ",
)

// Wrap reflows text into lines no wider than width runes, preserving
// word boundaries. A non-positive width falls back to DefaultWidth.
//
// Leading and trailing whitespace is trimmed. Input that fits within a
// single line is returned as exactly one element equal to the trimmed
// input. Empty or whitespace-only input yields an empty slice.
func Wrap(text string, width int) []string {
	if width <= 0 {
		width = DefaultWidth
	}

	normalized := strings.Trim(whitespaceReplacer.Replace(text), " ")
	if normalized == "" {
		return nil
	}

	// Short-circuit: text that fits on one line is a no-op. This also
	// preserves interior whitespace runs exactly.
	if utf8.RuneCountInString(normalized) <= width {
		return []string{normalized}
	}

	var lines []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		line := strings.TrimRight(cur.String(), " ")
		if line != "" {
			lines = append(lines, line)
		}
		cur.Reset()
		curLen = 0
	}

	for _, chunk := range splitChunks(normalized) {
		chunkLen := utf8.RuneCountInString(chunk)

		if chunk[0] == ' ' {
			// Whitespace at the start of a line is dropped; interior
			// whitespace is kept verbatim, run length included.
			if curLen == 0 {
				continue
			}
			cur.WriteString(chunk)
			curLen += chunkLen
			continue
		}

		// A word that no longer fits ends the current line first.
		if curLen > 0 && curLen+chunkLen > width {
			flush()
		}

		// A word wider than the whole line is hard-broken at the width.
		for chunkLen > width {
			runes := []rune(chunk)
			lines = append(lines, string(runes[:width]))
			chunk = string(runes[width:])
			chunkLen -= width
		}

		cur.WriteString(chunk)
		curLen += chunkLen
	}
	flush()

	return lines
}

// splitChunks splits s into alternating runs of non-space and space
// characters. By this point all whitespace has been normalized to
// plain spaces, so only ' ' needs checking.
func splitChunks(s string) []string {
	var chunks []string
	start := 0
	inSpace := s[0] == ' '

	for i := 0; i < len(s); i++ {
		isSpace := s[i] == ' '
		if isSpace != inSpace {
			chunks = append(chunks, s[start:i])
			start = i
			inSpace = isSpace
		}
	}
	chunks = append(chunks, s[start:])

	return chunks
}
