// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflowdoc

import (
	"fmt"
	"strings"

	"grimm.is/wfdocs/internal/workflow"
)

// Sentinels rendered in place of an empty table.
const (
	NoInputs  = "No inputs specified"
	NoSecrets = "No secrets specified"
	NoJobs    = "No jobs specified"
)

// DefaultPattern matches workflow files in the scanned directory.
const DefaultPattern = "*.yml"

// Format selects the output renderer.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatHugo     Format = "hugo"
)

// ParseFormat validates a format name. The empty string selects Markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatMarkdown, nil
	case FormatMarkdown, FormatHTML, FormatJSON, FormatYAML, FormatHugo:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want markdown, html, json, yaml or hugo)", s)
	}
}

// Summary is the documentation extracted from one workflow file.
type Summary struct {
	Name    string `json:"name"`
	Source  string `json:"source,omitempty"`
	Trigger string `json:"trigger,omitempty"` // event the inputs and secrets came from
	Inputs  Table  `json:"inputs"`
	Secrets Table  `json:"secrets"`
	Jobs    Table  `json:"jobs"`
}

// Table is a rendered Markdown table together with the cells it was built from.
// Text holds either the table or the sentinel when there are no rows.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Text    string     `json:"-"`
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Options control extraction.
type Options struct {
	BoolStyle workflow.BoolStyle
}
