package textwrap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrap_ShortTextIsNoOp verifies that text no wider than the wrap
// width passes through as a single unchanged line, interior whitespace
// runs included.
func TestWrap_ShortTextIsNoOp(t *testing.T) {
	lines := Wrap("Test fortune message", DefaultWidth)
	require.Len(t, lines, 1)
	assert.Equal(t, "Test fortune message", lines[0])

	// Interior double spaces survive the no-op path untouched.
	lines = Wrap("double  spaced", DefaultWidth)
	require.Len(t, lines, 1)
	assert.Equal(t, "double  spaced", lines[0])
}

// TestWrap_TrimsSurroundingWhitespace verifies leading/trailing
// whitespace removal before wrapping.
func TestWrap_TrimsSurroundingWhitespace(t *testing.T) {
	lines := Wrap("  padded fortune \n", DefaultWidth)
	require.Len(t, lines, 1)
	assert.Equal(t, "padded fortune", lines[0])
}

// TestWrap_SplitsAtWordBoundary verifies that a space exactly at the
// wrap boundary splits the text between words, never mid-word.
func TestWrap_SplitsAtWordBoundary(t *testing.T) {
	// "aaaa bbbb" with width 4: the space falls exactly at the boundary.
	lines := Wrap("aaaa bbbb", 4)
	require.Equal(t, []string{"aaaa", "bbbb"}, lines)
}

// TestWrap_NeverBreaksMidWord verifies greedy filling keeps whole words
// together when they fit on the next line.
func TestWrap_NeverBreaksMidWord(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 10)

	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 10)
	}
	// Rejoining on single spaces reconstructs the input, proving no word
	// was broken apart.
	assert.Equal(t, "the quick brown fox jumps over the lazy dog",
		strings.Join(lines, " "))
}

// TestWrap_HardBreaksOverlongWord verifies that a single word wider than
// the wrap width is broken at the width rather than producing an
// overlong line.
func TestWrap_HardBreaksOverlongWord(t *testing.T) {
	lines := Wrap("supercalifragilistic", 8)
	require.Equal(t, []string{"supercal", "ifragili", "stic"}, lines)
}

// TestWrap_ReplacesNewlinesBeforeWrapping verifies that multi-line
// generator output is reflowed as if it were a single line.
func TestWrap_ReplacesNewlinesBeforeWrapping(t *testing.T) {
	lines := Wrap("line one\nline two", DefaultWidth)
	require.Len(t, lines, 1)
	assert.Equal(t, "line one line two", lines[0])
}

// TestWrap_DropsWhitespaceAtBreaks verifies that whitespace straddling a
// line break is dropped instead of leaking onto either line.
func TestWrap_DropsWhitespaceAtBreaks(t *testing.T) {
	lines := Wrap("aaaa   bbbb", 4)
	require.Equal(t, []string{"aaaa", "bbbb"}, lines)
}

// TestWrap_EmptyInput verifies that empty and whitespace-only inputs
// yield an empty slice, so the joined result is the empty string.
func TestWrap_EmptyInput(t *testing.T) {
	assert.Empty(t, Wrap("", DefaultWidth))
	assert.Empty(t, Wrap("   \n\t ", DefaultWidth))
	assert.Equal(t, "", strings.Join(Wrap("", DefaultWidth), "\n"))
}

// TestWrap_NonPositiveWidthUsesDefault verifies the DefaultWidth
// fallback for zero and negative widths.
func TestWrap_NonPositiveWidthUsesDefault(t *testing.T) {
	text := strings.Repeat("word ", 30) // 150 chars, wraps at 70
	zero := Wrap(text, 0)
	def := Wrap(text, DefaultWidth)
	assert.Equal(t, def, zero)

	neg := Wrap(text, -5)
	assert.Equal(t, def, neg)
}

// TestWrap_LongFortune exercises a realistic fortune at the default
// width and checks every line stays within budget.
func TestWrap_LongFortune(t *testing.T) {
	text := "The best way to predict the future is to invent it. " +
		"The second best way is to prevent someone else from inventing it first."

	lines := Wrap(text, DefaultWidth)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), DefaultWidth)
		assert.NotEmpty(t, line)
	}
	assert.Equal(t, text, strings.Join(lines, " "))
}
