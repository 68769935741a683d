package install

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/signadot/lintcfg/value"
)

type yamlDoc struct {
	doc, root *yaml.Node
}

func newYAMLDoc(text string) (*yamlDoc, error) {
	doc, err := value.ParseTree([]byte(text))
	if err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"})
	}
	root := doc.Content[0]
	if isNull(root) {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", HeadComment: root.HeadComment, LineComment: root.LineComment}
		doc.Content[0] = m
		root = m
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: config is not a mapping", ErrStructure)
	}
	return &yamlDoc{doc: doc, root: root}, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// entry returns the index of the value of key in mapping m, or -1.
func entry(m *yaml.Node, key string) int {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return i + 1
		}
	}
	return -1
}

func newSeq(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
}

func (d *yamlDoc) mergeList(key string, add []string) (bool, error) {
	i := entry(d.root, key)
	if i == -1 {
		seq := newSeq()
		for _, a := range add {
			seq.Content = append(seq.Content, value.Scalar(a))
		}
		d.root.Content = append(d.root.Content, value.Scalar(key), seq)
		return true, nil
	}
	v := d.root.Content[i]
	var seq *yaml.Node
	switch {
	case isNull(v):
		seq = newSeq()
		seq.LineComment = v.LineComment
	case v.Kind == yaml.ScalarNode:
		seq = newSeq(v)
	case v.Kind == yaml.SequenceNode:
		seq = v
	default:
		return false, fmt.Errorf("%w: %s is not a scalar or a sequence", ErrStructure, key)
	}
	var have []string
	for _, c := range seq.Content {
		if c.Kind == yaml.ScalarNode {
			have = append(have, c.Value)
		}
	}
	n := len(seq.Content)
	for _, a := range add {
		if !slices.Contains(have, a) {
			seq.Content = append(seq.Content, value.Scalar(a))
			have = append(have, a)
		}
	}
	if len(seq.Content) == n {
		return false, nil
	}
	d.root.Content[i] = seq
	return true, nil
}

// scalars returns the strings of a scalar or a sequence of scalars.
func scalars(n *yaml.Node) ([]string, bool) {
	for n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return []string{n.Value}, true
	case yaml.SequenceNode:
		res := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			for c.Kind == yaml.AliasNode {
				c = c.Alias
			}
			if c.Kind != yaml.ScalarNode {
				return nil, false
			}
			res = append(res, c.Value)
		}
		return res, true
	}
	return nil, false
}

func (d *yamlDoc) mergeOverride(o value.Object) (bool, error) {
	i := entry(d.root, "overrides")
	if i == -1 {
		d.root.Content = append(d.root.Content, value.Scalar("overrides"), newSeq(value.Tree(o)))
		return true, nil
	}
	seq := d.root.Content[i]
	if isNull(seq) {
		seq = newSeq()
		d.root.Content[i] = seq
	}
	if seq.Kind != yaml.SequenceNode {
		return false, fmt.Errorf("%w: overrides is not a sequence", ErrStructure)
	}
	files := overrideFiles(o)
	for _, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			continue
		}
		j := entry(item, "files")
		if j == -1 {
			continue
		}
		if fs, ok := scalars(item.Content[j]); !ok || !slices.Equal(fs, files) {
			continue
		}
		changed := false
		for _, m := range o {
			if m.Key == "files" {
				continue
			}
			k := entry(item, m.Key)
			if k == -1 {
				item.Content = append(item.Content, value.Scalar(m.Key), value.Tree(m.Value))
				changed = true
				continue
			}
			if cur, err := value.FromTree(item.Content[k]); err == nil && value.Equal(cur, m.Value) {
				continue
			}
			old := item.Content[k]
			repl := value.Tree(m.Value)
			repl.HeadComment, repl.LineComment, repl.FootComment = old.HeadComment, old.LineComment, old.FootComment
			item.Content[k] = repl
			changed = true
		}
		return changed, nil
	}
	seq.Content = append(seq.Content, value.Tree(o))
	return true, nil
}

func (d *yamlDoc) String() (string, error) {
	return value.EncodeTree(d.doc)
}
