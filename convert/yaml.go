package convert

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/signadot/lintcfg/eval"
	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/token"
	"github.com/signadot/lintcfg/value"
)

// JSONToYAML prints JSON text as a YAML document.
func JSONToYAML(text string) (string, error) {
	v, err := value.ParseJSON([]byte(text))
	if err != nil {
		return "", err
	}
	return value.EncodeTree(value.Tree(v))
}

// YAMLToJSON prints the native value of a YAML document as JSON.
func YAMLToJSON(text string) (string, error) {
	v, err := value.FromYAML([]byte(text))
	if err != nil {
		return "", err
	}
	return value.EncodeJSON(v, "  "), nil
}

// ModuleToYAML translates the exported expression of a module to YAML,
// keeping the comments attached to its elements and properties.
func ModuleToYAML(text string) (string, error) {
	prog, exp, err := parseExport(text)
	if err != nil {
		return "", err
	}
	y, err := toYAML(exp.Value, eval.ModuleScope(prog))
	if err != nil {
		return "", err
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{y}}
	doc.HeadComment = yamlComment(exp.Stmt.Leading)
	doc.FootComment = yamlComment(exp.Stmt.Trailing)
	return value.EncodeTree(doc)
}

func toYAML(n *ir.Node, s *eval.Scope) (*yaml.Node, error) {
	switch n.Type {
	case ir.ArrayType:
		res := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range n.Values {
			if e.Type == ir.SpreadType {
				return nil, fmt.Errorf("%w: spread at %s", errNotRepresentable, e.Path())
			}
			y, err := toYAML(e, s)
			if err != nil {
				return nil, err
			}
			y.HeadComment = yamlComment(e.Leading)
			y.LineComment = yamlComment(e.Trailing)
			res.Content = append(res.Content, y)
		}
		return res, nil
	case ir.ObjectType:
		res := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, p := range n.Values {
			if p.Type != ir.PropertyType {
				return nil, fmt.Errorf("%w: %s at %s", errNotRepresentable, p.Type, p.Path())
			}
			k, ok := propKey(p, s)
			if !ok {
				return nil, fmt.Errorf("%w: computed key at %s", errNotRepresentable, p.Path())
			}
			y, err := toYAML(p.Value, s)
			if err != nil {
				return nil, err
			}
			key := value.Scalar(k)
			key.HeadComment = yamlComment(p.Leading)
			if y.Kind == yaml.ScalarNode {
				y.LineComment = yamlComment(p.Trailing)
			} else {
				key.LineComment = yamlComment(p.Trailing)
			}
			res.Content = append(res.Content, key, y)
		}
		return res, nil
	}
	v, ok := eval.Resolve(n, s)
	if !ok {
		return nil, fmt.Errorf("%w: %s at %s", errNotRepresentable, n.Type, n.Path())
	}
	return value.Tree(v), nil
}

func propKey(p *ir.Node, s *eval.Scope) (string, bool) {
	if !p.Computed {
		return p.KeyName()
	}
	v, ok := eval.Resolve(p.Key, s)
	if !ok {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return value.FormatNumber(x), true
	}
	return "", false
}

// YAMLToModule translates a YAML document to module.exports = <expr>;
func YAMLToModule(text string) (string, error) {
	doc, err := value.ParseTree([]byte(text))
	if err != nil {
		return "", err
	}
	var x *ir.Node
	if len(doc.Content) == 0 {
		x = ir.Null()
	} else {
		x, err = fromYAML(doc.Content[0], 0)
		if err != nil {
			return "", err
		}
	}
	stmt := ir.ModuleExports(x)
	stmt.Leading = append(irComments(doc.HeadComment), x.Leading...)
	x.Leading = nil
	if foot := irComments(doc.FootComment); len(foot) != 0 {
		footer(x, stmt).Trailing = append(footer(x, stmt).Trailing, foot...)
	}
	return printModule(stmt)
}

// footer returns the node foot comments of x attach to.
func footer(x, stmt *ir.Node) *ir.Node {
	if x.Type.IsList() && len(x.Values) != 0 {
		return x.Values[len(x.Values)-1]
	}
	return stmt
}

const maxAliasDepth = 64

func fromYAML(n *yaml.Node, depth int) (*ir.Node, error) {
	switch n.Kind {
	case yaml.AliasNode:
		if depth > maxAliasDepth {
			return nil, fmt.Errorf("%w: alias nesting too deep at line %d", errNotRepresentable, n.Line)
		}
		return fromYAML(n.Alias, depth+1)
	case yaml.SequenceNode:
		res := ir.FromSlice()
		for _, c := range n.Content {
			e, err := fromYAML(c, depth)
			if err != nil {
				return nil, err
			}
			e.Leading = append(irComments(c.HeadComment), e.Leading...)
			e.Trailing = append(e.Trailing, irComments(c.LineComment)...)
			e.Trailing = append(e.Trailing, irComments(c.FootComment)...)
			res.Values = append(res.Values, e)
			e.Parent = res
		}
		return res, nil
	case yaml.MappingNode:
		res := ir.FromProps()
		for _, ent := range value.MappingEntries(n) {
			if ent.Key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: non scalar key at line %d", errNotRepresentable, ent.Key.Line)
			}
			v, err := fromYAML(ent.Value, depth)
			if err != nil {
				return nil, err
			}
			var p *ir.Node
			if ent.Key.Style == 0 && token.IsIdentifierName(ent.Key.Value) {
				p = ir.PropKey(ir.Ident(ent.Key.Value), v)
			} else {
				p = ir.PropKey(ir.FromString(ent.Key.Value), v)
			}
			if !ent.Merged {
				p.Leading = append(irComments(ent.Key.HeadComment), irComments(ent.Value.HeadComment)...)
				p.Leading = append(p.Leading, v.Leading...)
				p.Trailing = irComments(ent.Key.LineComment)
				p.Trailing = append(p.Trailing, irComments(ent.Value.LineComment)...)
				p.Trailing = append(p.Trailing, v.Trailing...)
				p.Trailing = append(p.Trailing, irComments(ent.Key.FootComment)...)
			}
			v.Leading, v.Trailing = nil, nil
			res.Values = append(res.Values, p)
			p.Parent = res
		}
		return res, nil
	case yaml.ScalarNode:
		v, err := value.FromTree(n)
		if err != nil {
			return nil, err
		}
		return eval.ToNode(v), nil
	}
	return nil, fmt.Errorf("%w: yaml node kind %d", errNotRepresentable, n.Kind)
}

// yamlComment renders comments as YAML comment lines.
func yamlComment(cs []ir.Comment) string {
	var lines []string
	for _, c := range cs {
		for _, ln := range strings.Split(c.Text, "\n") {
			if c.Block {
				ln = strings.TrimPrefix(strings.TrimSpace(ln), "*")
			}
			ln = strings.TrimSpace(ln)
			if ln == "" {
				lines = append(lines, "#")
				continue
			}
			lines = append(lines, "# "+ln)
		}
	}
	return strings.Join(lines, "\n")
}

// irComments splits YAML comment text into line comments.
func irComments(s string) []ir.Comment {
	var res []ir.Comment
	for _, ln := range strings.Split(s, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		ln = strings.TrimPrefix(ln, "#")
		res = append(res, ir.Comment{Text: strings.TrimSpace(ln)})
	}
	return res
}
