// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package workflow parses the parts of a GitHub Actions workflow file that
// wfdocs documents: the name, the workflow_dispatch / workflow_call inputs and
// secrets, and the jobs. Mappings keep their source order.
package workflow
