package libdiff

import (
	"strings"

	"github.com/fatih/color"
)

// Colors colors the lines of a formatted diff.
type Colors struct {
	Map map[Op]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{Map: map[Op]func(string, ...any) string{
		Insert: color.GreenString,
		Delete: color.RedString,
		Equal:  color.New(color.Faint).SprintfFunc(),
	}}
}

// Format writes lines with a +, - or space prefix, keeping context equal
// lines around each change. Skipped runs of equal lines are written as
// "...". A nil Colors writes plain text.
func Format(lines []Line, context int, c *Colors) string {
	keep := make([]bool, len(lines))
	for i, ln := range lines {
		if ln.Op == Equal {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			keep[j] = true
		}
	}
	buf := &strings.Builder{}
	skipped := false
	for i, ln := range lines {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			buf.WriteString("...\n")
			skipped = false
		}
		s := ln.Op.Prefix() + ln.Text
		if c != nil && c.Map[ln.Op] != nil {
			s = c.Map[ln.Op]("%s", s)
		}
		buf.WriteString(s)
		buf.WriteByte('\n')
	}
	if skipped && buf.Len() != 0 {
		buf.WriteString("...\n")
	}
	return buf.String()
}
