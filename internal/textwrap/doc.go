// Package textwrap reflows fortune text to a maximum line width before
// it is embedded in an upstream URL.
//
// The algorithm follows the conventional text-wrap semantics of the
// reference tool: tabs and newlines are replaced with spaces, lines are
// filled greedily on word boundaries, whitespace runs inside a line are
// preserved, whitespace at a line break is dropped, and a word longer
// than the width is broken at the width. Text that already fits on one
// line passes through unchanged.
package textwrap
