// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package settings loads gen-workflow-docs settings from an optional HCL file
// and merges them with command-line flags.
//
// A settings file may reference the process environment through the env
// variable:
//
//	workflow_dir = "${env.GITHUB_WORKSPACE}/.github/workflows"
//	output_file  = "docs/workflows.md"
package settings

import (
	"os"
	"strings"

	"github.com/gobwas/glob"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"

	"grimm.is/wfdocs/internal/errors"
	"grimm.is/wfdocs/internal/workflow"
	"grimm.is/wfdocs/internal/workflowdoc"
)

// Settings are the options of one generation run. Empty strings mean unset.
type Settings struct {
	WorkflowDir string `hcl:"workflow_dir,optional"`
	OutputFile  string `hcl:"output_file,optional"`
	Format      string `hcl:"format,optional"`
	Pattern     string `hcl:"pattern,optional"`
	BoolStyle   string `hcl:"bool_style,optional"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Format:    string(workflowdoc.FormatMarkdown),
		Pattern:   workflowdoc.DefaultPattern,
		BoolStyle: workflow.BoolTitle.String(),
	}
}

// Load reads a settings file. The name must end in .hcl or .json.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO(err, path)
	}
	return Decode(path, data, os.Environ())
}

// Decode parses settings source. environ is exposed to expressions as env.
func Decode(filename string, data []byte, environ []string) (*Settings, error) {
	var s Settings
	if err := hclsimple.Decode(filename, data, EvalContext(environ), &s); err != nil {
		return nil, errors.Attr(errors.Wrap(err, errors.KindValidation, "failed to decode settings"), "path", filename)
	}
	return &s, nil
}

// EvalContext builds the expression context for a settings file from
// KEY=VALUE pairs.
func EvalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

// Merge returns s with every field that is set in over replaced.
func (s Settings) Merge(over Settings) Settings {
	pick := func(base, v string) string {
		if v != "" {
			return v
		}
		return base
	}

	return Settings{
		WorkflowDir: pick(s.WorkflowDir, over.WorkflowDir),
		OutputFile:  pick(s.OutputFile, over.OutputFile),
		Format:      pick(s.Format, over.Format),
		Pattern:     pick(s.Pattern, over.Pattern),
		BoolStyle:   pick(s.BoolStyle, over.BoolStyle),
	}
}

// Validate checks required fields and enumerated values.
func (s Settings) Validate() error {
	if s.WorkflowDir == "" {
		return errors.New(errors.KindValidation, "workflow_dir is required")
	}
	if s.OutputFile == "" {
		return errors.New(errors.KindValidation, "output_file is required")
	}
	if _, err := workflowdoc.ParseFormat(s.Format); err != nil {
		return errors.Attr(errors.Wrap(err, errors.KindValidation, ""), "field", "format")
	}
	if _, err := workflow.ParseBoolStyle(s.BoolStyle); err != nil {
		return errors.Attr(errors.Wrap(err, errors.KindValidation, ""), "field", "bool_style")
	}
	if s.Pattern != "" {
		if _, err := glob.Compile(s.Pattern); err != nil {
			return errors.Attr(errors.Wrapf(err, errors.KindValidation, "invalid pattern %q", s.Pattern), "field", "pattern")
		}
	}
	return nil
}

// Request converts validated settings into a generator request and options.
func (s Settings) Request() (workflowdoc.Request, workflowdoc.Options, error) {
	if err := s.Validate(); err != nil {
		return workflowdoc.Request{}, workflowdoc.Options{}, err
	}

	format, _ := workflowdoc.ParseFormat(s.Format)
	style, _ := workflow.ParseBoolStyle(s.BoolStyle)

	req := workflowdoc.Request{
		WorkflowDir: s.WorkflowDir,
		Output:      s.OutputFile,
		Format:      format,
		Pattern:     s.Pattern,
	}
	return req, workflowdoc.Options{BoolStyle: style}, nil
}
