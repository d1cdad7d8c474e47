package slave

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func feed(b *lineBuffer, data string) []string {
	var lines []string
	b.Feed([]byte(data), func(line string) {
		lines = append(lines, line)
	})
	return lines
}

func TestLineBufferSplitsLines(t *testing.T) {
	b := newLineBuffer(16)
	require.Equal(t, []string{"one", "two"}, feed(b, "one\ntwo\npart"))
	// the partial line stays buffered
	require.Equal(t, []string{"partial"}, feed(b, "ial\n"))
}

func TestLineBufferDropsWhileFull(t *testing.T) {
	b := newLineBuffer(4)
	lines := feed(b, "abcdefgh\n")
	require.Equal(t, []string{"abcd"}, lines)
	// bound never grows, and the newline cleared the buffer
	require.Equal(t, []string{"next"}, feed(b, "next\n"))
}

func TestLineBufferClearsOnEveryNewline(t *testing.T) {
	b := newLineBuffer(8)
	var count int
	b.Feed([]byte(strings.Repeat("\n", 5)), func(string) { count++ })
	require.Zero(t, count)
	require.Equal(t, []string{"ok"}, feed(b, "ok\n"))
}
