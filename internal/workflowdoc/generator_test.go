// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflowdoc

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/wfdocs/internal/errors"
	"grimm.is/wfdocs/internal/logging"
	"grimm.is/wfdocs/internal/testutil"
)

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Output: &buf, Level: logging.LevelDebug})
	return NewGenerator(Options{}, logger)
}

func TestRun_Markdown(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"ci.yml": ciWorkflow})
	out := filepath.Join(t.TempDir(), "docs", "workflows.md")

	res, err := testGenerator(t).Run(context.Background(), Request{
		WorkflowDir: dir,
		Output:      out,
		Format:      FormatMarkdown,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, out, res.Output)
	assert.False(t, res.Stale)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, ciMarkdown, string(data))
}

func TestRun_EmptyDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.md")
	res, err := testGenerator(t).Run(context.Background(), Request{
		WorkflowDir: t.TempDir(),
		Output:      out,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"ci.yml":      ciWorkflow,
		"release.yml": "name: Release\non:\n  workflow_call:\n    secrets:\n      token:\n        required: true\n",
	})
	out := filepath.Join(t.TempDir(), "out.md")
	g := testGenerator(t)
	req := Request{WorkflowDir: dir, Output: out}

	_, err := g.Run(context.Background(), req)
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = g.Run(context.Background(), req)
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_ParseErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"a.yml": ciWorkflow,
		"b.yml": "name: [unclosed\n",
	})
	out := filepath.Join(t.TempDir(), "out.md")

	_, err := testGenerator(t).Run(context.Background(), Request{WorkflowDir: dir, Output: out})
	require.Error(t, err)
	assert.Equal(t, errors.KindParse, errors.GetKind(err))
	assert.Equal(t, filepath.Join(dir, "b.yml"), errors.GetAttributes(err)["path"])

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_Validation(t *testing.T) {
	g := testGenerator(t)

	_, err := g.Run(context.Background(), Request{Output: "out.md"})
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))

	_, err = g.Run(context.Background(), Request{WorkflowDir: t.TempDir()})
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))
}

func TestRun_MissingDir(t *testing.T) {
	_, err := testGenerator(t).Run(context.Background(), Request{
		WorkflowDir: filepath.Join(t.TempDir(), "nope"),
		Output:      filepath.Join(t.TempDir(), "out.md"),
	})
	assert.Equal(t, errors.KindNotFound, errors.GetKind(err))
}

func TestRun_Canceled(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"ci.yml": ciWorkflow})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testGenerator(t).Run(ctx, Request{WorkflowDir: dir, Output: filepath.Join(t.TempDir(), "out.md")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Check(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"ci.yml": ciWorkflow})
	out := filepath.Join(t.TempDir(), "out.md")
	g := testGenerator(t)

	// Missing output is stale and is not created.
	res, err := g.Run(context.Background(), Request{WorkflowDir: dir, Output: out, Check: true})
	require.NoError(t, err)
	assert.True(t, res.Stale)
	assert.Contains(t, res.Diff, "+# CI")
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, os.WriteFile(out, []byte(ciMarkdown), 0644))
	res, err = g.Run(context.Background(), Request{WorkflowDir: dir, Output: out, Check: true})
	require.NoError(t, err)
	assert.False(t, res.Stale)
	assert.Empty(t, res.Diff)

	require.NoError(t, os.WriteFile(out, []byte("# Old\n"), 0644))
	res, err = g.Run(context.Background(), Request{WorkflowDir: dir, Output: out, Check: true})
	require.NoError(t, err)
	assert.True(t, res.Stale)
	assert.Contains(t, res.Diff, "-# Old")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "# Old\n", string(data))
}

func TestRun_Hugo(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"ci.yml": ciWorkflow})
	out := filepath.Join(t.TempDir(), "content", "workflows")
	g := testGenerator(t)
	req := Request{WorkflowDir: dir, Output: out, Format: FormatHugo}

	res, err := g.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.FileExists(t, filepath.Join(out, "_index.md"))
	assert.FileExists(t, filepath.Join(out, "ci.md"))

	req.Check = true
	res, err = g.Run(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.Stale)

	require.NoError(t, os.WriteFile(filepath.Join(out, "ci.md"), []byte("stale\n"), 0644))
	res, err = g.Run(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.Stale)
	assert.Contains(t, res.Diff, "ci.md (on disk)")
	assert.NotContains(t, res.Diff, "_index.md")
}

func TestRun_JSON(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"ci.yml": ciWorkflow})
	out := filepath.Join(t.TempDir(), "workflows.json")

	_, err := testGenerator(t).Run(context.Background(), Request{WorkflowDir: dir, Output: out, Format: FormatJSON})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"source": "ci.yml"`)
}

func TestRender_RejectsHugo(t *testing.T) {
	_, err := Render(FormatHugo, nil)
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))
}
