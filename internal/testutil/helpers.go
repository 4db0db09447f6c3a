// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CIWorkflow is a small workflow_dispatch workflow with one input and one job.
const CIWorkflow = `name: CI
on:
  workflow_dispatch:
    inputs:
      env:
        description: Target
        default: prod
        required: true
jobs:
  build:
    name: Build
    runs-on: ubuntu-latest
`

// WriteFiles writes name -> content below dir, creating parent directories.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// WorkflowDir returns a fresh temporary directory holding files.
func WorkflowDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	WriteFiles(t, dir, files)
	return dir
}
