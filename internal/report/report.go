// internal/report/report.go
//
// Plain-text rendering of comparison results, shared by the one-shot CLI
// mode and reused (restyled) by the TUI.

package report

import (
	"fmt"
	"strings"

	"github.com/pgold/venn/internal/compare"
	"github.com/pgold/venn/internal/value"
)

// NeedMoreInputs is shown when there is nothing to compare yet.
const NeedMoreInputs = "Add at least two arrays to compare."

// Values joins a derived sequence for display, with an explicit placeholder
// when it is empty.
func Values(values []value.Value) string {
	if len(values) == 0 {
		return "None"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

// Render formats every pair result as a labeled section. An empty result
// list renders the "add at least two arrays" message instead.
func Render(results []compare.PairResult) string {
	if len(results) == 0 {
		return NeedMoreInputs + "\n"
	}
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s vs %s\n", r.LeftName, r.RightName)
		fmt.Fprintf(&b, "  Only in %s: %s\n", r.LeftName, Values(r.OnlyInLeft))
		fmt.Fprintf(&b, "  Only in %s: %s\n", r.RightName, Values(r.OnlyInRight))
		fmt.Fprintf(&b, "  In both: %s\n", Values(r.Intersection))
	}
	return b.String()
}
