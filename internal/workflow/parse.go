// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflow

import (
	"os"

	"gopkg.in/yaml.v3"

	"grimm.is/wfdocs/internal/errors"
)

// ParseFile reads and parses one workflow file. Read failures are classified
// with errors.WrapIO; invalid YAML is returned as KindParse.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO(err, path)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Attr(errors.Wrap(err, errors.KindParse, path), "path", path)
	}
	return doc, nil
}

// Parse decodes a workflow document. Only invalid YAML is an error; missing
// or wrongly typed keys simply leave the corresponding fields absent. An empty
// document, or one whose root is not a mapping, yields an empty Document.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	doc := &Document{}

	top := deref(&root)
	if top != nil && top.Kind == yaml.DocumentNode && len(top.Content) > 0 {
		top = deref(top.Content[0])
	}
	if top == nil || top.Kind != yaml.MappingNode {
		return doc, nil
	}

	doc.Name = Value{node: lookup(top, "name")}

	if on := deref(lookup(top, "on")); on != nil && on.Kind == yaml.MappingNode {
		doc.OnMapping = true
		for _, e := range entries(on) {
			doc.Events = append(doc.Events, Event{
				Name:    e.key,
				Trigger: parseTrigger(e.value),
			})
		}
	}

	for _, e := range entries(lookup(top, "jobs")) {
		doc.Jobs = append(doc.Jobs, Job{
			ID:     e.key,
			Name:   Value{node: lookup(e.value, "name")},
			RunsOn: Value{node: lookup(e.value, "runs-on")},
		})
	}

	return doc, nil
}

// parseTrigger returns nil for a null, empty or non-mapping event config.
func parseTrigger(n *yaml.Node) *Trigger {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode || len(n.Content) == 0 {
		return nil
	}

	t := &Trigger{}
	for _, e := range entries(lookup(n, "inputs")) {
		t.Inputs = append(t.Inputs, Input{
			Name:        e.key,
			Description: Value{node: lookup(e.value, "description")},
			Default:     Value{node: lookup(e.value, "default")},
			Required:    Value{node: lookup(e.value, "required")},
		})
	}
	for _, e := range entries(lookup(n, "secrets")) {
		t.Secrets = append(t.Secrets, Secret{
			Name:        e.key,
			Description: Value{node: lookup(e.value, "description")},
			Required:    Value{node: lookup(e.value, "required")},
		})
	}
	return t
}

type entry struct {
	key   string
	value *yaml.Node
}

// entries returns the key/value pairs of a mapping node in source order.
// A repeated key keeps its first position and takes its last value, the way
// YAML loaders fill an insertion-ordered map. Non-mappings have no entries.
func entries(n *yaml.Node) []entry {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}

	out := make([]entry, 0, len(n.Content)/2)
	index := make(map[string]int, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := deref(n.Content[i])
		if key == nil || key.Kind != yaml.ScalarNode {
			continue
		}
		if pos, ok := index[key.Value]; ok {
			out[pos].value = n.Content[i+1]
			continue
		}
		index[key.Value] = len(out)
		out = append(out, entry{key: key.Value, value: n.Content[i+1]})
	}
	return out
}

// lookup returns the value for key in a mapping node, or nil.
func lookup(n *yaml.Node, key string) *yaml.Node {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}

	var found *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		if k := deref(n.Content[i]); k != nil && k.Kind == yaml.ScalarNode && k.Value == key {
			found = n.Content[i+1]
		}
	}
	return found
}

func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}
