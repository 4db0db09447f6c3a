// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflowdoc

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff from the file on disk to the generated content,
// or "" when they are identical.
func Diff(name, existing, generated string) string {
	if existing == generated {
		return ""
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(existing),
		B:        difflib.SplitLines(generated),
		FromFile: name + " (on disk)",
		ToFile:   name + " (generated)",
		Context:  3,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	return text
}
