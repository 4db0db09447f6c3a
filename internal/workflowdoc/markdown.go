// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflowdoc

import (
	"fmt"
	"strings"
)

// GenerateMarkdown renders summaries as one Markdown document, one block per
// workflow in the given order. No summaries yields an empty document.
func GenerateMarkdown(summaries []Summary) string {
	var sb strings.Builder

	for _, s := range summaries {
		sb.WriteString(fmt.Sprintf("# %s\n\n", oneLine(s.Name)))
		sb.WriteString(fmt.Sprintf("Inputs:\n\n%s\n\n", s.Inputs.Text))
		sb.WriteString(fmt.Sprintf("Secrets:\n\n%s\n\n", s.Secrets.Text))
		sb.WriteString(fmt.Sprintf("Jobs:\n\n%s\n\n", s.Jobs.Text))
	}

	return sb.String()
}

// renderTable writes a pipe table: header, a dash separator as wide as each
// header, then one line per row. There is no trailing newline.
func renderTable(columns []string, rows [][]string) string {
	escaped := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cellText(cell)
		}
		escaped[i] = cells
	}
	return renderRows(columns, escaped)
}

// renderRows is renderTable for cells that are already Markdown.
func renderRows(columns []string, rows [][]string) string {
	var sb strings.Builder

	writeRow(&sb, columns)
	sep := make([]string, len(columns))
	for i, c := range columns {
		sep[i] = strings.Repeat("-", len(c))
	}
	sb.WriteString("\n")
	writeRow(&sb, sep)

	for _, row := range rows {
		sb.WriteString("\n")
		writeRow(&sb, row)
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("| ")
	sb.WriteString(strings.Join(cells, " | "))
	sb.WriteString(" |")
}

// cellText keeps a value on one line and escapes pipes so it cannot split
// the cell.
func cellText(s string) string {
	return strings.ReplaceAll(oneLine(s), "|", "\\|")
}

// oneLine collapses line breaks into single spaces.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
