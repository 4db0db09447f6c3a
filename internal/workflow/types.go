// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflow

const (
	// DefaultWorkflowName is used when a document has no name.
	DefaultWorkflowName = "Unnamed workflow"
	// DefaultJobName is used when a job has no name.
	DefaultJobName = "Unnamed job"

	EventWorkflowDispatch = "workflow_dispatch"
	EventWorkflowCall     = "workflow_call"
)

// Document is the subset of a GitHub Actions workflow that wfdocs reads.
// Only the mapping form of `on` is kept; string and list forms leave
// OnMapping false and Events empty.
type Document struct {
	Name      Value
	OnMapping bool
	Events    []Event
	Jobs      []Job
}

// Event is one entry of the `on` mapping, in source order.
// Trigger is nil when the event's configuration is null, empty or not a mapping.
type Event struct {
	Name    string
	Trigger *Trigger
}

// Trigger holds the inputs and secrets declared by an event.
type Trigger struct {
	Inputs  []Input
	Secrets []Secret
}

// Input is a workflow_dispatch or workflow_call input.
type Input struct {
	Name        string
	Description Value
	Default     Value
	Required    Value
}

// Secret is a workflow_call secret.
type Secret struct {
	Name        string
	Description Value
	Required    Value
}

// Job is an entry of the `jobs` mapping.
type Job struct {
	ID     string
	Name   Value
	RunsOn Value
}

// DisplayName returns the workflow name or DefaultWorkflowName.
func (d *Document) DisplayName(style BoolStyle) string {
	if d == nil {
		return DefaultWorkflowName
	}
	return d.Name.TextOr(DefaultWorkflowName, style)
}

// Event returns the trigger for the named event. It returns nil when the event
// is missing or its configuration is empty.
func (d *Document) Event(name string) *Trigger {
	if d == nil {
		return nil
	}
	for _, ev := range d.Events {
		if ev.Name == name {
			return ev.Trigger
		}
	}
	return nil
}

// DisplayName returns the job name or DefaultJobName.
func (j Job) DisplayName(style BoolStyle) string {
	return j.Name.TextOr(DefaultJobName, style)
}
