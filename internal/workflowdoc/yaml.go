// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflowdoc

import (
	"bytes"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GenerateYAML renders summaries as a YAML catalog. Table rows become
// mappings keyed by column name, in column order.
func GenerateYAML(summaries []Summary) (string, error) {
	workflows := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, s := range summaries {
		workflows.Content = append(workflows.Content, summaryNode(s))
	}

	root := mappingNode(
		"count", intNode(len(summaries)),
		"workflows", workflows,
	)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func summaryNode(s Summary) *yaml.Node {
	pairs := []any{"name", stringNode(s.Name)}
	if s.Source != "" {
		pairs = append(pairs, "source", stringNode(s.Source))
	}
	if s.Trigger != "" {
		pairs = append(pairs, "trigger", stringNode(s.Trigger))
	}
	pairs = append(pairs,
		"inputs", tableNode(s.Inputs),
		"secrets", tableNode(s.Secrets),
		"jobs", tableNode(s.Jobs),
	)
	return mappingNode(pairs...)
}

func tableNode(t Table) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, row := range t.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, col := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			m.Content = append(m.Content, stringNode(col), stringNode(cell))
		}
		seq.Content = append(seq.Content, m)
	}
	return seq
}

// mappingNode builds a mapping from alternating string keys and value nodes.
func mappingNode(pairs ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Content = append(m.Content, stringNode(pairs[i].(string)), pairs[i+1].(*yaml.Node))
	}
	return m
}

// stringNode always tags the scalar as a string so cells like "True" or
// "1.10" are quoted instead of being re-read as other types.
func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func intNode(n int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(n)}
}
