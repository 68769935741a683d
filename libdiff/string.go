package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Line is a line of a line diff, without its line break.
type Line struct {
	Op   Op
	Text string
}

// DiffLines computes a line diff from one text to another.
func DiffLines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		text := strings.TrimSuffix(diff.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

// Changed reports whether lines hold an insertion or a deletion.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}
