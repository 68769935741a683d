package token

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets of a document to lines and columns.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	off := 0
	for {
		i := bytes.IndexByte(d[off:], '\n')
		if i == -1 {
			break
		}
		p.n = append(p.n, off+i)
		off += i + 1
	}
	return p
}

// LineCol returns the 0 based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

// LineStart returns the offset of the first byte of the line containing off.
func (p *PosDoc) LineStart(off int) int {
	ln, _ := p.LineCol(off)
	if ln == 0 {
		return 0
	}
	return p.n[ln-1] + 1
}

// Indent returns the leading whitespace of the line containing off.
func (p *PosDoc) Indent(off int) string {
	i := p.LineStart(off)
	j := i
	for j < len(p.d) && (p.d[j] == ' ' || p.d[j] == '\t') {
		j++
	}
	return string(p.d[i:j])
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

// Snippet returns a short quoted excerpt of the document around p.
func (p *Pos) Snippet() string {
	sample := string(p.D.d[max(0, p.I-10):min(p.I+10, len(p.D.d))])
	sample = strconv.Quote(sample)
	return sample[1 : len(sample)-1]
}

func (p Pos) String() string {
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", p.Snippet(), p.I, p.Line()+1, p.Col()+1)
}
