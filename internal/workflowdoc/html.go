// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflowdoc

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var htmlEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// GenerateHTML renders the Markdown document as an HTML fragment. Workflow
// text is not trusted, so raw HTML in descriptions is omitted rather than
// passed through.
func GenerateHTML(summaries []Summary) (string, error) {
	var buf bytes.Buffer
	if err := htmlEngine.Convert([]byte(GenerateMarkdown(summaries)), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}
