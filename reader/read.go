package reader

import (
	"strconv"
	"strings"

	"github.com/mahimahi42/lispy/value"
)

// FromNode translates a parser AST node into a value tree, following the
// reader contract: number/symbol/string leaves become their matching
// Value; sexpr and root nodes become an SExpr; qexpr nodes become a
// QExpr; punctuation and comment children are silently skipped.
func FromNode(n *Node) (value.Value, error) {
	switch n.Tag {
	case TagNumber:
		i, err := strconv.ParseInt(n.Contents, 10, 64)
		if err != nil {
			return value.NewInvalidNumberError(n.Contents), nil
		}
		return value.NewNumber(i), nil
	case TagSymbol:
		return value.NewSymbol(n.Contents), nil
	case TagString:
		s, err := value.Unescape(n.Contents)
		if err != nil {
			return nil, err
		}
		return value.NewString(s), nil
	case TagSExpr, TagRoot:
		children, err := readChildren(n)
		if err != nil {
			return nil, err
		}
		return value.NewSExpr(children...), nil
	case TagQExpr:
		children, err := readChildren(n)
		if err != nil {
			return nil, err
		}
		return value.NewQExpr(children...), nil
	default:
		return nil, value.NewErrorValuef("reader: unexpected node tag %q", n.Tag)
	}
}

func readChildren(n *Node) ([]value.Value, error) {
	var out []value.Value
	for _, c := range n.Children {
		if c.Tag == TagPunct || strings.Contains(string(c.Tag), "comment") {
			continue
		}
		v, err := FromNode(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
