package libdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffLines(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\nB\nc\nd\n"
	lines := DiffLines(from, to)
	assert.True(t, Changed(lines))
	assert.Equal(t, []Line{
		{Equal, "a"},
		{Delete, "b"},
		{Insert, "B"},
		{Equal, "c"},
		{Insert, "d"},
	}, lines)
	assert.False(t, Changed(DiffLines(from, from)))
}

func TestFormat(t *testing.T) {
	from := "1\n2\n3\n4\n5\n6\n7\n"
	to := "1\n2\n3\n4\n5\n6\nx\n"
	got := Format(DiffLines(from, to), 1, nil)
	assert.Equal(t, "...\n 6\n-7\n+x\n", got)
	assert.Equal(t, "", Format(DiffLines(from, from), 1, nil))
}
