// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package workflowdoc generates documentation for a directory of GitHub
// Actions workflows.
//
// Each workflow is reduced to a Summary holding three tables:
//   - Inputs and secrets of the workflow_dispatch trigger, or of
//     workflow_call when there is no dispatch configuration
//   - Jobs with their display name, id and runner
//
// Summaries can be rendered as one Markdown document (the default), as HTML,
// as JSON or YAML for tooling, or as a set of Hugo pages.
package workflowdoc
