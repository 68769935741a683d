package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/lintcfg/ir"
)

type EncState struct {
	buf   *bytes.Buffer
	unit  string
	quote byte
	semi  *bool
	width int
	// row is set while printing inside a list spliced on one line.
	row bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) (err error) {
	es := &EncState{width: 80}
	for _, opt := range opts {
		opt(es)
	}
	es.detect(node.Root())
	es.buf = bytes.NewBuffer(nil)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrEncoding, r)
		}
	}()
	if node.Type == ir.ProgramType && node.Span() != nil && node.Parent == nil {
		src := node.Span().Src.Text
		es.buf.Write(src[:node.Span().Start])
		es.node(node, "")
		es.buf.Write(src[node.Span().End:])
	} else {
		es.node(node, "")
	}
	_, err = w.Write(es.buf.Bytes())
	return err
}

func (es *EncState) node(n *ir.Node, ind string) {
	switch {
	case n.Pristine():
		es.reindent(n.Range.Text(), indentAt(n.Range), ind)
	case n.Range != nil && spliceable(n):
		saved := es.buf
		es.buf = bytes.NewBuffer(nil)
		es.splice(n)
		s := es.buf.String()
		es.buf = saved
		es.reindent(s, indentAt(n.Range), ind)
	default:
		es.fresh(n, ind)
	}
}

// reindent writes s replacing the indentation prefix from with to on
// every line but the first.
func (es *EncState) reindent(s, from, to string) {
	if from == to || !strings.Contains(s, "\n") {
		es.buf.WriteString(s)
		return
	}
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if i > 0 {
			es.buf.WriteByte('\n')
			if rest, ok := strings.CutPrefix(ln, from); ok {
				if rest != "" {
					es.buf.WriteString(to)
				}
				ln = rest
			}
		}
		es.buf.WriteString(ln)
	}
}

func indentAt(r *ir.Range) string {
	return r.Src.Doc.Indent(r.Start)
}

func (es *EncState) write(t ir.Type, a ColorAttr, s string) {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	es.buf.WriteString(s)
}

func (es *EncState) sep(s string) {
	es.write(ir.NullType, SepColor, s)
}

func (es *EncState) semicolon() {
	if es.semi == nil || *es.semi {
		es.sep(";")
	}
}

// detect fills in style settings not given as options from the source
// root was parsed from.
func (es *EncState) detect(root *ir.Node) {
	var src *ir.Source
	if r := root.Span(); r != nil {
		src = r.Src
	}
	if es.unit == "" {
		es.unit = "  "
		if src != nil {
			es.unit = detectIndent(src.Text)
		}
	}
	if es.quote == 0 {
		es.quote = '"'
		dq, sq := 0, 0
		for n := range root.All() {
			if n.Type != ir.StringType || n.Range == nil || n.Raw == "" {
				continue
			}
			switch n.Raw[0] {
			case '"':
				dq++
			case '\'':
				sq++
			}
		}
		if sq > dq {
			es.quote = '\''
		}
	}
	if es.semi == nil && root.Type == ir.ProgramType {
		seen, with := 0, 0
		for _, s := range root.Values {
			if s.Range == nil || !s.Type.IsStatement() {
				continue
			}
			seen++
			if strings.HasSuffix(s.Range.Text(), ";") {
				with++
			}
		}
		if seen > 0 {
			v := with > 0
			es.semi = &v
		}
	}
}

func detectIndent(d []byte) string {
	for _, ln := range bytes.Split(d, []byte("\n")) {
		i := 0
		for i < len(ln) && (ln[i] == ' ' || ln[i] == '\t') {
			i++
		}
		if i == 0 || i == len(ln) {
			continue
		}
		if ln[0] == '\t' {
			return "\t"
		}
		if ln[i] == '*' {
			continue
		}
		return string(ln[:i])
	}
	return "  "
}
