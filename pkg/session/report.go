package session

import (
	"fmt"
	"strings"

	"github.com/aretw0/nsutil/pkg/domain"
	"github.com/aretw0/nsutil/pkg/source"
)

// ImportReport summarizes one bulk-import pass.
type ImportReport struct {
	Source string
	Format source.Format
	// Malformed counts entries dropped by the parser.
	Malformed int
	Outcomes  []domain.Outcome
	// Diff is the net change to the table, nil when nothing changed.
	Diff *domain.TableDiff
}

// Record appends an outcome to the report.
func (r *ImportReport) Record(o domain.Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Count returns how many outcomes ended with result.
func (r *ImportReport) Count(result domain.Result) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Result == result {
			n++
		}
	}
	return n
}

var reportOrder = []domain.Result{
	domain.ResultRegistered,
	domain.ResultUnchanged,
	domain.ResultSkipped,
	domain.ResultRejected,
}

// Markdown renders the report as a markdown document.
func (r *ImportReport) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Import summary: `%s`\n\n", r.Source)
	b.WriteString("| Result | Count |\n|---|---|\n")
	for _, res := range reportOrder {
		fmt.Fprintf(&b, "| %s | %d |\n", res, r.Count(res))
	}
	fmt.Fprintf(&b, "| malformed | %d |\n", r.Malformed)

	if r.Diff.Empty() {
		b.WriteString("\nNo prefixes changed.\n")
		return b.String()
	}
	b.WriteString("\n")
	for _, prefix := range domain.Table(r.Diff.Added).Prefixes() {
		fmt.Fprintf(&b, "- added `%s` → %s\n", prefix, r.Diff.Added[prefix])
	}
	for _, rb := range r.Diff.Rebound {
		fmt.Fprintf(&b, "- rebound `%s`: %s → %s\n", rb.Prefix, rb.From, rb.To)
	}
	return b.String()
}

// Text renders the report as a single plain line.
func (r *ImportReport) Text() string {
	parts := make([]string, 0, len(reportOrder)+1)
	for _, res := range reportOrder {
		parts = append(parts, fmt.Sprintf("%d %s", r.Count(res), res))
	}
	parts = append(parts, fmt.Sprintf("%d malformed", r.Malformed))
	return fmt.Sprintf("Import of %s finished: %s\n", r.Source, strings.Join(parts, ", "))
}
