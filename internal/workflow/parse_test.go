// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/wfdocs/internal/errors"
)

const reusableWorkflow = `
name: Deploy
on:
  workflow_call:
    inputs:
      environment:
        description: Target environment
        default: staging
        required: true
      dry_run:
        description: Skip the apply step
        required: false
    secrets:
      token:
        description: Deploy token
        required: true
  push:
    branches: [main]
jobs:
  plan:
    name: Plan
    runs-on: ubuntu-latest
  apply:
    runs-on: [self-hosted, linux]
  notify: {}
`

func TestParse_ReusableWorkflow(t *testing.T) {
	doc, err := Parse([]byte(reusableWorkflow))
	require.NoError(t, err)

	assert.Equal(t, "Deploy", doc.DisplayName(BoolTitle))
	assert.True(t, doc.OnMapping)
	require.Len(t, doc.Events, 2)
	assert.Equal(t, "workflow_call", doc.Events[0].Name)
	assert.Equal(t, "push", doc.Events[1].Name)

	call := doc.Event(EventWorkflowCall)
	require.NotNil(t, call)
	require.Len(t, call.Inputs, 2)
	assert.Equal(t, "environment", call.Inputs[0].Name)
	assert.Equal(t, "Target environment", call.Inputs[0].Description.Text(BoolTitle))
	assert.Equal(t, "staging", call.Inputs[0].Default.Text(BoolTitle))
	assert.Equal(t, "True", call.Inputs[0].Required.Text(BoolTitle))
	assert.Equal(t, "dry_run", call.Inputs[1].Name)
	assert.False(t, call.Inputs[1].Default.Present())
	assert.Equal(t, "false", call.Inputs[1].Required.Text(BoolLower))

	require.Len(t, call.Secrets, 1)
	assert.Equal(t, "token", call.Secrets[0].Name)

	assert.Nil(t, doc.Event(EventWorkflowDispatch))

	require.Len(t, doc.Jobs, 3)
	assert.Equal(t, "plan", doc.Jobs[0].ID)
	assert.Equal(t, "Plan", doc.Jobs[0].DisplayName(BoolTitle))
	assert.Equal(t, "ubuntu-latest", doc.Jobs[0].RunsOn.Text(BoolTitle))
	assert.Equal(t, "apply", doc.Jobs[1].ID)
	assert.Equal(t, DefaultJobName, doc.Jobs[1].DisplayName(BoolTitle))
	assert.Equal(t, "[self-hosted, linux]", doc.Jobs[1].RunsOn.Text(BoolTitle))
	assert.Equal(t, "notify", doc.Jobs[2].ID)
	assert.False(t, doc.Jobs[2].RunsOn.Present())
	assert.Equal(t, "", doc.Jobs[2].RunsOn.Text(BoolTitle))
}

func TestParse_Defaults(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		onMap  bool
		events int
		jobs   int
	}{
		{name: "empty document", input: ""},
		{name: "comment only", input: "# nothing here\n"},
		{name: "root is a list", input: "- a\n- b\n"},
		{name: "root is a scalar", input: "hello\n"},
		{name: "on is a string", input: "on: push\njobs:\n  a: {}\n", jobs: 1},
		{name: "on is a list", input: "on: [push, pull_request]\n"},
		{name: "on is a mapping", input: "on:\n  push:\n  workflow_dispatch:\n", onMap: true, events: 2},
		{name: "jobs is a list", input: "jobs: [a, b]\n"},
		{name: "null name", input: "name:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, DefaultWorkflowName, doc.DisplayName(BoolTitle))
			assert.Equal(t, tt.onMap, doc.OnMapping)
			assert.Len(t, doc.Events, tt.events)
			assert.Len(t, doc.Jobs, tt.jobs)
		})
	}
}

func TestParse_EmptyTriggerConfigs(t *testing.T) {
	input := `
on:
  workflow_dispatch:
  workflow_call: {}
  schedule: "not a mapping"
`
	doc, err := Parse([]byte(input))
	require.NoError(t, err)

	assert.Nil(t, doc.Event(EventWorkflowDispatch))
	assert.Nil(t, doc.Event(EventWorkflowCall))
	assert.Nil(t, doc.Event("schedule"))
	assert.Len(t, doc.Events, 3)
}

func TestParse_InputWithoutDetails(t *testing.T) {
	input := `
on:
  workflow_dispatch:
    inputs:
      bare:
      listed: [1, 2]
`
	doc, err := Parse([]byte(input))
	require.NoError(t, err)

	dispatch := doc.Event(EventWorkflowDispatch)
	require.NotNil(t, dispatch)
	require.Len(t, dispatch.Inputs, 2)
	for _, in := range dispatch.Inputs {
		assert.False(t, in.Description.Present(), in.Name)
		assert.False(t, in.Default.Present(), in.Name)
		assert.False(t, in.Required.Present(), in.Name)
	}
}

func TestParse_DuplicateKeysKeepFirstPositionLastValue(t *testing.T) {
	input := `
jobs:
  build:
    name: First
  test:
    name: Test
  build:
    name: Second
`
	doc, err := Parse([]byte(input))
	require.NoError(t, err)

	require.Len(t, doc.Jobs, 2)
	assert.Equal(t, "build", doc.Jobs[0].ID)
	assert.Equal(t, "Second", doc.Jobs[0].DisplayName(BoolTitle))
	assert.Equal(t, "test", doc.Jobs[1].ID)
}

func TestParse_Aliases(t *testing.T) {
	input := `
x-runner: &runner ubuntu-22.04
jobs:
  lint:
    runs-on: *runner
`
	doc, err := Parse([]byte(input))
	require.NoError(t, err)

	require.Len(t, doc.Jobs, 1)
	assert.Equal(t, "ubuntu-22.04", doc.Jobs[0].RunsOn.Text(BoolTitle))
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("jobs:\n  build: [unterminated\n"))
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "ci.yml")
	require.NoError(t, os.WriteFile(good, []byte("name: CI\n"), 0644))
	doc, err := ParseFile(good)
	require.NoError(t, err)
	assert.Equal(t, "CI", doc.DisplayName(BoolTitle))

	bad := filepath.Join(dir, "broken.yml")
	require.NoError(t, os.WriteFile(bad, []byte("name: [\n"), 0644))
	_, err = ParseFile(bad)
	require.Error(t, err)
	assert.Equal(t, errors.KindParse, errors.GetKind(err))
	assert.Contains(t, err.Error(), bad)
	assert.Equal(t, bad, errors.GetAttributes(err)["path"])

	_, err = ParseFile(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
	assert.Equal(t, errors.KindNotFound, errors.GetKind(err))
}
