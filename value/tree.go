package value

import (
	"bytes"
	"errors"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/signadot/lintcfg/token"
)

// ParseTree parses the first document of d into a YAML node tree with
// comments. An empty document yields a DocumentNode without content.
func ParseTree(d []byte) (*yaml.Node, error) {
	doc := &yaml.Node{}
	if err := yaml.Unmarshal(d, doc); err != nil {
		se := token.NewSyntaxError("yaml", nil, err.Error())
		se.Err = ErrYAML
		return nil, se
	}
	if doc.Kind == 0 {
		doc.Kind = yaml.DocumentNode
	}
	return doc, nil
}

// EncodeTree prints n as YAML with 2-space indentation.
func EncodeTree(n *yaml.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return "", errors.Join(ErrYAML, err)
	}
	if err := enc.Close(); err != nil {
		return "", errors.Join(ErrYAML, err)
	}
	return buf.String(), nil
}

// Tree builds a YAML node for v. Object keys keep their order.
func Tree(v any) *yaml.Node {
	switch x := v.(type) {
	case []any:
		res := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range x {
			res.Content = append(res.Content, Tree(e))
		}
		return res
	case Object:
		res := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range x {
			res.Content = append(res.Content, Scalar(m.Key), Tree(m.Value))
		}
		return res
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(x)}
	case float64:
		tag := "!!float"
		if x == math.Trunc(x) && math.Abs(x) < 1e21 {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: FormatNumber(x)}
	case string:
		return Scalar(x)
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

// Scalar builds a string scalar. The printer quotes it when it would
// otherwise read as another type.
func Scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// FromTree returns the value of a YAML node, following aliases and
// merge keys.
func FromTree(n *yaml.Node) (any, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return FromTree(n.Content[0])
	case yaml.AliasNode:
		return FromTree(n.Alias)
	case yaml.SequenceNode:
		res := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := FromTree(c)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case yaml.MappingNode:
		res := Object{}
		for _, e := range MappingEntries(n) {
			v, err := FromTree(e.Value)
			if err != nil {
				return nil, err
			}
			res.Set(e.Key.Value, v)
		}
		return res, nil
	}
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!timestamp" {
		return n.Value, nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, errors.Join(ErrYAML, err)
	}
	return normalize(v), nil
}

// Entry is a key value pair of a YAML mapping.
type Entry struct {
	Key, Value *yaml.Node
	// Merged is set for entries inherited through a << merge key.
	Merged bool
}

// MappingEntries returns the entries of mapping n in order, with the
// entries of << merge keys inlined where the merge key appears. Explicit
// keys override merged ones.
func MappingEntries(n *yaml.Node) []Entry {
	explicit := map[string]bool{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if !isMerge(n.Content[i]) {
			explicit[n.Content[i].Value] = true
		}
	}
	var res []Entry
	seen := map[string]bool{}
	var merge func(m *yaml.Node)
	merge = func(m *yaml.Node) {
		for m.Kind == yaml.AliasNode {
			m = m.Alias
		}
		switch m.Kind {
		case yaml.SequenceNode:
			for _, c := range m.Content {
				merge(c)
			}
		case yaml.MappingNode:
			for _, e := range MappingEntries(m) {
				k := e.Key.Value
				if explicit[k] || seen[k] {
					continue
				}
				seen[k] = true
				e.Merged = true
				res = append(res, e)
			}
		}
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if isMerge(k) {
			merge(v)
			continue
		}
		res = append(res, Entry{Key: k, Value: v})
	}
	return res
}

func isMerge(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.Value == "<<" && (k.Tag == "!!merge" || k.Tag == "" && k.Style == 0)
}
