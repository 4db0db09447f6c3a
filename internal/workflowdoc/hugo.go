// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflowdoc

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// HugoOutput represents a set of Hugo-compatible markdown files.
type HugoOutput struct {
	Files map[string]string // path -> content
}

type hugoFrontMatter struct {
	Title       string `yaml:"title"`
	LinkTitle   string `yaml:"linkTitle"`
	Weight      int    `yaml:"weight"`
	Description string `yaml:"description,omitempty"`
}

// GenerateHugo generates Hugo-compatible markdown files with front matter.
// It creates:
// - _index.md (overview table linking every workflow)
// - One page per workflow, named after its source file (ci.yml -> ci.md)
func GenerateHugo(summaries []Summary) (*HugoOutput, error) {
	output := &HugoOutput{
		Files: make(map[string]string),
	}

	pages := pageNames(summaries)

	index, err := generateHugoIndex(summaries, pages)
	if err != nil {
		return nil, err
	}
	output.Files["_index.md"] = index

	for i, s := range summaries {
		page, err := generateHugoWorkflow(s, i+20) // weight starts at 20
		if err != nil {
			return nil, err
		}
		output.Files[pages[i]+".md"] = page
	}

	return output, nil
}

// Names returns the generated file names in sorted order.
func (h *HugoOutput) Names() []string {
	names := make([]string, 0, len(h.Files))
	for name := range h.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func generateHugoIndex(summaries []Summary, pages []string) (string, error) {
	var sb strings.Builder

	if err := writeFrontMatter(&sb, hugoFrontMatter{
		Title:       "Workflows",
		LinkTitle:   "Workflows",
		Weight:      10,
		Description: "Reference of the GitHub Actions workflows in this repository.",
	}); err != nil {
		return "", err
	}

	sb.WriteString("This reference is generated from the workflow files.\n\n")

	if len(summaries) == 0 {
		sb.WriteString("No workflows found.\n")
		return sb.String(), nil
	}

	rows := make([][]string, 0, len(summaries))
	for i, s := range summaries {
		trigger := s.Trigger
		if trigger == "" {
			trigger = "-"
		}
		link := fmt.Sprintf("[%s]({{< relref \"%s\" >}})", cellText(s.Name), pages[i])
		rows = append(rows, []string{link, "`" + s.Source + "`", trigger})
	}
	sb.WriteString(renderRows([]string{"Workflow", "Source", "Trigger"}, rows))
	sb.WriteString("\n")

	return sb.String(), nil
}

func generateHugoWorkflow(s Summary, weight int) (string, error) {
	var sb strings.Builder

	fm := hugoFrontMatter{
		Title:     oneLine(s.Name),
		LinkTitle: oneLine(s.Name),
		Weight:    weight,
	}
	if s.Source != "" {
		fm.Description = fmt.Sprintf("Generated from %s.", s.Source)
	}
	if err := writeFrontMatter(&sb, fm); err != nil {
		return "", err
	}

	if s.Trigger != "" {
		sb.WriteString(fmt.Sprintf("Inputs and secrets are declared by the `%s` trigger.\n\n", s.Trigger))
	}

	sb.WriteString(fmt.Sprintf("## Inputs\n\n%s\n\n", s.Inputs.Text))
	sb.WriteString(fmt.Sprintf("## Secrets\n\n%s\n\n", s.Secrets.Text))
	sb.WriteString(fmt.Sprintf("## Jobs\n\n%s\n", s.Jobs.Text))

	return sb.String(), nil
}

func writeFrontMatter(sb *strings.Builder, fm hugoFrontMatter) error {
	data, err := yaml.Marshal(fm)
	if err != nil {
		return fmt.Errorf("front matter: %w", err)
	}
	sb.WriteString("---\n")
	sb.Write(data)
	sb.WriteString("---\n\n")
	return nil
}

// pageNames derives a unique page slug per summary from its source file.
func pageNames(summaries []Summary) []string {
	names := make([]string, len(summaries))
	used := map[string]bool{"_index": true}

	for i, s := range summaries {
		base := slug(strings.TrimSuffix(s.Source, filepath.Ext(s.Source)))
		if base == "" {
			base = slug(s.Name)
		}
		if base == "" {
			base = "workflow"
		}

		// A suffixed name can collide with another file's own slug.
		name := base
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s-%d", base, n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

func slug(s string) string {
	var sb strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
			lastDash = false
		case !lastDash && sb.Len() > 0:
			sb.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
