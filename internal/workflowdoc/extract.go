// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflowdoc

import (
	"grimm.is/wfdocs/internal/workflow"
)

var (
	inputColumns  = []string{"Name", "Description", "Default", "Required"}
	secretColumns = []string{"Name", "Description", "Required"}
	jobColumns    = []string{"Name", "Job ID", "Runs On"}
)

// Extract builds the Summary for one parsed workflow. It has no side effects.
//
// Inputs and secrets come from the first non-empty trigger among
// workflow_dispatch and workflow_call; the two are never merged. When `on`
// is a string or list there is no trigger and both tables are sentinels.
func Extract(doc *workflow.Document, opts Options) Summary {
	s := Summary{Name: doc.DisplayName(opts.BoolStyle)}

	var trigger *workflow.Trigger
	if doc != nil && doc.OnMapping {
		for _, event := range []string{workflow.EventWorkflowDispatch, workflow.EventWorkflowCall} {
			if t := doc.Event(event); t != nil {
				trigger = t
				s.Trigger = event
				break
			}
		}
	}

	var inputRows, secretRows, jobRows [][]string
	if trigger != nil {
		for _, in := range trigger.Inputs {
			inputRows = append(inputRows, []string{
				in.Name,
				in.Description.Text(opts.BoolStyle),
				in.Default.Text(opts.BoolStyle),
				in.Required.Text(opts.BoolStyle),
			})
		}
		for _, sec := range trigger.Secrets {
			secretRows = append(secretRows, []string{
				sec.Name,
				sec.Description.Text(opts.BoolStyle),
				sec.Required.Text(opts.BoolStyle),
			})
		}
	}

	if doc != nil {
		for _, job := range doc.Jobs {
			jobRows = append(jobRows, []string{
				job.DisplayName(opts.BoolStyle),
				job.ID,
				job.RunsOn.Text(opts.BoolStyle),
			})
		}
	}

	s.Inputs = newTable(inputColumns, inputRows, NoInputs)
	s.Secrets = newTable(secretColumns, secretRows, NoSecrets)
	s.Jobs = newTable(jobColumns, jobRows, NoJobs)
	return s
}

func newTable(columns []string, rows [][]string, sentinel string) Table {
	t := Table{Columns: columns, Rows: rows}
	if t.Rows == nil {
		t.Rows = [][]string{}
	}
	if len(rows) == 0 {
		t.Text = sentinel
	} else {
		t.Text = renderTable(columns, rows)
	}
	return t
}
