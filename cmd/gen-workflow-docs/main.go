// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// gen-workflow-docs generates reference documentation for the GitHub Actions
// workflows in a directory.
//
// Usage:
//
//	go run ./cmd/gen-workflow-docs --workflow_dir=.github/workflows --output_file=docs/workflows.md
//	go run ./cmd/gen-workflow-docs --workflow_dir=.github/workflows --output_file=docs/workflows.md --check
//	go run ./cmd/gen-workflow-docs --workflow_dir=.github/workflows --output_file=docs-site/content/workflows --format=hugo
//	go run ./cmd/gen-workflow-docs --config=wfdocs.hcl
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	"grimm.is/wfdocs/internal/errors"
	"grimm.is/wfdocs/internal/logging"
	"grimm.is/wfdocs/internal/settings"
	"grimm.is/wfdocs/internal/workflowdoc"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

var errUsage = errors.New(errors.KindValidation, "usage")

type options struct {
	flags    settings.Settings
	config   string
	check    bool
	logLevel string
	logJSON  bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("gen-workflow-docs", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.flags.WorkflowDir, "workflow_dir", "", "Directory containing the workflow files (required)")
	fs.StringVar(&o.flags.WorkflowDir, "workflow-dir", "", "Alias for --workflow_dir")
	fs.StringVar(&o.flags.OutputFile, "output_file", "", "Output file, or output directory for --format=hugo (required)")
	fs.StringVar(&o.flags.OutputFile, "output-file", "", "Alias for --output_file")
	fs.StringVar(&o.flags.Format, "format", "", "Output format: markdown, html, json, yaml, hugo (default markdown)")
	fs.StringVar(&o.flags.Pattern, "pattern", "", "Workflow file name pattern (default *.yml)")
	fs.StringVar(&o.flags.BoolStyle, "bool-style", "", "Boolean rendering: title or lower (default title)")
	fs.BoolVar(&o.check, "check", false, "Compare with the existing output instead of writing it; exit 1 if stale")
	fs.StringVar(&o.config, "config", "", "Optional HCL settings file")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.BoolVar(&o.logJSON, "log-json", false, "Write JSON log lines")

	// Parse reports its own errors and usage on stderr.
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return nil, errUsage
	}
	return &o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	logging.SetDefault(logging.New(logging.Config{
		Level:  level,
		Output: stderr,
		JSON:   o.logJSON,
	}))
	logger := logging.WithComponent("cli")

	s := settings.Defaults()
	if o.config != "" {
		file, err := settings.Load(o.config)
		if err != nil {
			return fail(stderr, err)
		}
		logger.Debug("Loaded settings", "path", o.config)
		s = s.Merge(*file)
	}
	s = s.Merge(o.flags)

	req, opts, err := s.Request()
	if err != nil {
		return fail(stderr, err)
	}
	req.Check = o.check

	res, err := workflowdoc.NewGenerator(opts, logging.Default()).Run(ctx, req)
	if err != nil {
		return fail(stderr, err)
	}

	if !req.Check {
		fmt.Fprintf(stdout, "Generated docs for %d workflows, output to %s\n", res.Count, res.Output)
		return exitOK
	}

	styles := newStyles(stderr)
	if res.Stale {
		fmt.Fprint(stderr, res.Diff)
		fmt.Fprintln(stderr, styles.stale.Render(fmt.Sprintf("%s is out of date; regenerate it without --check", res.Output)))
		return exitError
	}
	fmt.Fprintln(stderr, styles.fresh.Render(fmt.Sprintf("%s is up to date (%d workflows)", res.Output, res.Count)))
	return exitOK
}

// fail reports err and maps its kind to an exit status.
func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	logging.Debug("Failure details", "kind", errors.GetKind(err).String(), "attrs", errors.GetAttributes(err))
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.GetKind(err) == errors.KindValidation:
		return exitUsage
	default:
		return exitError
	}
}

type styles struct {
	fresh lipgloss.Style
	stale lipgloss.Style
}

// newStyles binds styles to w so colour is only emitted for terminals.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		fresh: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		stale: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}
