// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflowdoc

import (
	"context"
	"path/filepath"
	"strings"

	"grimm.is/wfdocs/internal/errors"
	"grimm.is/wfdocs/internal/logging"
	"grimm.is/wfdocs/internal/workflow"
)

// Request describes one generation run.
type Request struct {
	WorkflowDir string
	Output      string // file, or directory for FormatHugo
	Format      Format
	Pattern     string
	// Check compares against Output instead of writing it.
	Check bool
}

// Result reports what a run did.
type Result struct {
	Count  int
	Output string
	// Stale is set in check mode when Output differs from the generated docs.
	Stale bool
	Diff  string
}

// Generator drives discovery, extraction, rendering and writing.
type Generator struct {
	opts   Options
	logger *logging.Logger
}

// NewGenerator creates a Generator. A nil logger uses the default logger.
func NewGenerator(opts Options, logger *logging.Logger) *Generator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Generator{
		opts:   opts,
		logger: logger.WithComponent("workflowdoc"),
	}
}

// Collect parses every matching workflow in dir and returns their summaries
// in discovery order. The first unreadable or invalid file aborts collection.
func (g *Generator) Collect(ctx context.Context, dir, pattern string) ([]Summary, error) {
	files, err := Discover(dir, pattern)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Discovered workflow files", "dir", dir, "count", len(files))

	summaries := make([]Summary, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := workflow.ParseFile(path)
		if err != nil {
			return nil, err
		}

		s := Extract(doc, g.opts)
		s.Source = filepath.Base(path)
		summaries = append(summaries, s)

		g.logger.Debug("Extracted workflow",
			"file", s.Source,
			"name", s.Name,
			"trigger", s.Trigger,
			"inputs", len(s.Inputs.Rows),
			"secrets", len(s.Secrets.Rows),
			"jobs", len(s.Jobs.Rows))
	}

	return summaries, nil
}

// Render produces a single-document format. FormatHugo is multi-file and is
// handled by GenerateHugo.
func Render(format Format, summaries []Summary) (string, error) {
	switch format {
	case FormatMarkdown, "":
		return GenerateMarkdown(summaries), nil
	case FormatHTML:
		return GenerateHTML(summaries)
	case FormatJSON:
		return GenerateJSON(summaries)
	case FormatYAML:
		return GenerateYAML(summaries)
	default:
		return "", errors.Errorf(errors.KindValidation, "format %q does not render to a single file", format)
	}
}

// Run collects, renders and writes (or checks) the documentation. Nothing is
// written unless every workflow parsed.
func (g *Generator) Run(ctx context.Context, req Request) (*Result, error) {
	if req.WorkflowDir == "" {
		return nil, errors.New(errors.KindValidation, "workflow directory is required")
	}
	if req.Output == "" {
		return nil, errors.New(errors.KindValidation, "output path is required")
	}

	summaries, err := g.Collect(ctx, req.WorkflowDir, req.Pattern)
	if err != nil {
		return nil, err
	}

	result := &Result{Count: len(summaries), Output: req.Output}

	if req.Format == FormatHugo {
		out, err := GenerateHugo(summaries)
		if err != nil {
			return nil, errors.Wrap(err, errors.KindInternal, "hugo render")
		}
		if req.Check {
			if err := g.checkHugo(out, req.Output, result); err != nil {
				return nil, err
			}
			return result, nil
		}
		if err := out.WriteToDir(req.Output); err != nil {
			return nil, err
		}
		g.logger.Debug("Wrote hugo pages", "dir", req.Output, "files", len(out.Files))
		return result, nil
	}

	content, err := Render(req.Format, summaries)
	if err != nil {
		return nil, err
	}

	if req.Check {
		existing, err := readExisting(req.Output)
		if err != nil {
			return nil, err
		}
		if existing != content {
			result.Stale = true
			result.Diff = Diff(req.Output, existing, content)
		}
		g.logger.Debug("Checked docs", "output", req.Output, "stale", result.Stale)
		return result, nil
	}

	if err := WriteFile(req.Output, content); err != nil {
		return nil, err
	}
	g.logger.Debug("Wrote docs", "output", req.Output, "bytes", len(content))
	return result, nil
}

func (g *Generator) checkHugo(out *HugoOutput, dir string, result *Result) error {
	var diffs strings.Builder
	for _, name := range out.Names() {
		path := filepath.Join(dir, name)
		existing, err := readExisting(path)
		if err != nil {
			return err
		}
		if existing != out.Files[name] {
			result.Stale = true
			diffs.WriteString(Diff(path, existing, out.Files[name]))
		}
	}
	result.Diff = diffs.String()
	g.logger.Debug("Checked hugo pages", "dir", dir, "stale", result.Stale)
	return nil
}
