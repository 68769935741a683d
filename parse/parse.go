package parse

import (
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/signadot/lintcfg/debug"
	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/token"
)

var language = sync.OnceValue(javascript.GetLanguage)

// ParseProgram parses src as a JavaScript module or script.
func ParseProgram(src []byte, opts ...ParseOption) (*ir.Node, error) {
	o := newParseOpts(opts)
	tree, err := parseTree(o, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()
	c := newConverter(o, src)
	root := tree.RootNode()
	if err := c.check(root); err != nil {
		return nil, err
	}
	prog := c.program(root)
	if o.comments {
		associateComments(prog, c.comments)
	}
	if debug.Parse() {
		debug.Logf("parsed program (%d statements, %d comments)\n", len(prog.Values), len(c.comments))
	}
	return prog, nil
}

// ParseExpression parses src as a single JavaScript expression.
func ParseExpression(src []byte, opts ...ParseOption) (*ir.Node, error) {
	o := newParseOpts(opts)
	wrapped := make([]byte, 0, len(src)+3)
	wrapped = append(wrapped, '(')
	wrapped = append(wrapped, src...)
	wrapped = append(wrapped, '\n', ')')
	tree, err := parseTree(o, wrapped)
	if err != nil {
		return nil, err
	}
	defer tree.Close()
	c := newConverter(o, wrapped)
	root := tree.RootNode()
	if err := c.check(root); err != nil {
		return nil, err
	}
	stmts := c.namedChildren(root)
	if len(stmts) != 1 || stmts[0].Type() != "expression_statement" {
		return nil, c.syntaxError(root, ErrTrailing)
	}
	paren := stmts[0].NamedChild(0)
	if paren == nil || paren.Type() != "parenthesized_expression" ||
		paren.StartByte() != 0 || int(paren.EndByte()) != len(wrapped) {
		return nil, c.syntaxError(stmts[0], ErrTrailing)
	}
	inner := c.namedChildren(paren)
	if len(inner) != 1 {
		return nil, c.syntaxError(paren, ErrTrailing)
	}
	x := c.expr(inner[0])
	if o.comments {
		associateComments(x, c.comments)
	}
	return x, nil
}

func parseTree(o *parseOpts, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(language())
	tree, err := parser.ParseCtx(o.ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInternal, err)
	}
	return tree, nil
}

// check returns a syntax error for the first ERROR or MISSING node below n
// and collects comments.
func (c *converter) check(n *sitter.Node) error {
	var first *sitter.Node
	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if first == nil && (n.IsError() || n.IsMissing()) {
			first = n
		}
		if n.Type() == "comment" {
			c.comments = append(c.comments, c.comment(n))
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(n)
	if first == nil {
		return nil
	}
	var msg string
	switch {
	case first.IsMissing():
		msg = fmt.Sprintf("missing %q", first.Type())
	case first.EndByte() > first.StartByte():
		msg = fmt.Sprintf("unexpected %s", token.Quote(clip(first.Content(c.src.Text), 24), '"'))
	default:
		msg = "unexpected input"
	}
	return token.NewSyntaxError(c.opts.format, c.src.Doc.Pos(int(first.StartByte())), msg)
}

func (c *converter) syntaxError(n *sitter.Node, err error) error {
	se := token.NewSyntaxError(c.opts.format, c.src.Doc.Pos(int(n.StartByte())), "")
	se.Err = err
	return se
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
