// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflow

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// BoolStyle controls how YAML booleans are rendered.
type BoolStyle int

const (
	// BoolTitle renders True / False.
	BoolTitle BoolStyle = iota
	// BoolLower renders true / false.
	BoolLower
)

// ParseBoolStyle maps "title" or "lower" to a BoolStyle.
func ParseBoolStyle(s string) (BoolStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "title":
		return BoolTitle, nil
	case "lower":
		return BoolLower, nil
	default:
		return BoolTitle, fmt.Errorf("unknown bool style %q (want title or lower)", s)
	}
}

func (s BoolStyle) String() string {
	if s == BoolLower {
		return "lower"
	}
	return "title"
}

var titleCaser = cases.Title(language.Und)

// Value is an optional YAML value. The zero Value is absent.
type Value struct {
	node *yaml.Node
}

// Present reports whether the key existed and was not null.
func (v Value) Present() bool {
	n := v.resolved()
	return n != nil && !(n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

// Kind returns the YAML node kind, or 0 when absent.
func (v Value) Kind() yaml.Kind {
	if n := v.resolved(); n != nil {
		return n.Kind
	}
	return 0
}

// IsBool reports whether the value is a YAML boolean scalar.
func (v Value) IsBool() bool {
	n := v.resolved()
	return n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() == "!!bool"
}

// Text renders the value: scalars verbatim, booleans per style, sequences
// and mappings as YAML flow text, absent and null as the empty string.
func (v Value) Text(style BoolStyle) string {
	if !v.Present() {
		return ""
	}
	n := v.resolved()

	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == "!!bool" {
			b := strings.ToLower(n.Value)
			if style == BoolTitle {
				return titleCaser.String(b)
			}
			return b
		}
		return n.Value
	case yaml.SequenceNode, yaml.MappingNode:
		return flowText(n)
	default:
		return n.Value
	}
}

// TextOr renders the value, or fallback when it is absent or null.
func (v Value) TextOr(fallback string, style BoolStyle) string {
	if !v.Present() {
		return fallback
	}
	return v.Text(style)
}

func (v Value) resolved() *yaml.Node {
	n := v.node
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// flowText renders a collection node on one line, e.g. [self-hosted, linux].
func flowText(n *yaml.Node) string {
	c := *n
	c.Style |= yaml.FlowStyle
	c.Anchor = ""
	c.HeadComment, c.LineComment, c.FootComment = "", "", ""

	out, err := yaml.Marshal(&c)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
