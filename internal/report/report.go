// Package report renders tool invocation outcomes into the fixed text format
// shown to the user and fed back to the model. Downstream consumers preserve
// the rendered block verbatim, so the format here is load-bearing.
package report

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/ada/internal/diff"
)

// OperationReport describes the outcome of a single tool invocation. Details
// and Diff are both optional; a report normally carries one of the two.
type OperationReport struct {
	ToolName string
	Summary  string
	Details  string
	Diff     *diff.ChangeSummary
}

// New returns a header-only report for the given tool and summary.
func New(toolName, summary string) OperationReport {
	return OperationReport{ToolName: toolName, Summary: summary}
}

// WithDetails returns a copy of the report carrying a details line.
func (r OperationReport) WithDetails(details string) OperationReport {
	r.Details = details
	return r
}

// WithDiff returns a copy of the report carrying a change summary.
func (r OperationReport) WithDiff(d diff.ChangeSummary) OperationReport {
	r.Diff = &d
	return r
}

// Render formats the report. Layout:
//
//	⏺ ToolName(summary)
//	  ⎿  Updated path with N additions and M removals
//	      12      unchanged line
//	      13    - removed line
//	      13    + added line
//
// or, without a diff, a single details line under the header. Render performs
// no I/O and applies no wrapping or truncation.
func (r OperationReport) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "⏺ %s(%s)\n", r.ToolName, r.Summary)

	switch {
	case r.Diff != nil:
		d := r.Diff
		fmt.Fprintf(&b, "  ⎿  Updated %s with %d addition%s and %d removal%s\n",
			d.FilePath,
			d.Additions, plural(d.Additions),
			d.Removals, plural(d.Removals))

		for _, line := range d.Lines {
			fmt.Fprintf(&b, "    %4d%s %s\n", line.Number, tagColumn(line.Tag), line.Content)
		}
	case r.Details != "":
		fmt.Fprintf(&b, "  ⎿  %s\n", r.Details)
	}

	return b.String()
}

func tagColumn(tag diff.ChangeTag) string {
	switch tag {
	case diff.Addition:
		return "    +"
	case diff.Removal:
		return "    -"
	default:
		return "     "
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
