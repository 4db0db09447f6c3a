// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflowdoc

import (
	"encoding/json"
)

// Catalog is the JSON document written by FormatJSON.
type Catalog struct {
	Count     int       `json:"count"`
	Workflows []Summary `json:"workflows"`
}

// GenerateJSON renders summaries as pretty-printed JSON with a trailing newline.
func GenerateJSON(summaries []Summary) (string, error) {
	catalog := Catalog{
		Count:     len(summaries),
		Workflows: summaries,
	}
	if catalog.Workflows == nil {
		catalog.Workflows = []Summary{}
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
