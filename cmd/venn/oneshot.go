// cmd/venn/oneshot.go
//
// Non-interactive mode: `venn "[1,2,3]" "B=2,3,4"` parses every argument,
// reports parse failures per field, and prints the pairwise comparison.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pgold/venn/internal/compare"
	"github.com/pgold/venn/internal/config"
	"github.com/pgold/venn/internal/parse"
	"github.com/pgold/venn/internal/report"
)

// splitArg separates an optional "name=" prefix from the raw list text.
// The prefix only counts as a name when it looks like one: non-empty and
// free of commas and brackets, so `[1,2]` and `a=b,c=d` stay raw input.
func splitArg(arg string) (name, raw string) {
	head, tail, found := strings.Cut(arg, "=")
	if !found || head == "" || strings.ContainsAny(head, ",[{ ") {
		return "", arg
	}
	return head, tail
}

// runOnce parses every argument and prints the comparison. Any parse
// failure is reported per field and withholds comparison entirely.
func runOnce(args []string, cfg config.Config, stdout, stderr io.Writer) int {
	seqs := make([]compare.NamedSequence, 0, len(args))
	failed := false
	for i, arg := range args {
		name, raw := splitArg(arg)
		if name == "" {
			name = fmt.Sprintf("%s %d", cfg.NamePrefix, i+1)
		}
		values, err := parse.Parse(raw)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			failed = true
			continue
		}
		seqs = append(seqs, compare.NamedSequence{Name: name, Values: values})
	}
	if failed {
		return 1
	}
	fmt.Fprint(stdout, report.Render(compare.Compare(seqs)))
	return 0
}
