// internal/compare/compare.go
//
// Pairwise set relations across named value sequences. For every unordered
// pair of inputs the comparator reports which values appear only on the
// left, only on the right, and on both sides. Membership is tested against
// a set of distinct values, but output always keeps the original order and
// duplicates of the sequence it was drawn from.

package compare

import (
	"fmt"

	"github.com/pgold/venn/internal/value"
)

// NamedSequence pairs a parsed value sequence with its display label. The
// name is for labeling only; it never affects comparison.
type NamedSequence struct {
	Name   string
	Values []value.Value
}

// PairResult holds the three derived sequences for one pair of inputs.
// Left is the sequence that appeared earlier in the caller's order.
type PairResult struct {
	LeftName  string
	RightName string

	OnlyInLeft   []value.Value
	OnlyInRight  []value.Value
	Intersection []value.Value
}

// DefaultName labels the i-th (zero-based) sequence when the user gave
// none. Compare applies it, so callers may leave Name empty.
func DefaultName(i int) string {
	return fmt.Sprintf("Array %d", i+1)
}

func labelFor(seq NamedSequence, i int) string {
	if seq.Name != "" {
		return seq.Name
	}
	return DefaultName(i)
}

// membership is an insertion-blind presence set over value keys. It only
// answers "is this value in the sequence"; the ordered sequence itself
// stays the source of truth for output.
type membership map[string]struct{}

func membershipOf(values []value.Value) membership {
	m := make(membership, len(values))
	for _, v := range values {
		m[v.Key()] = struct{}{}
	}
	return m
}

func (m membership) has(v value.Value) bool {
	_, ok := m[v.Key()]
	return ok
}

// Compare derives a PairResult for every unordered pair (i, j), i < j, of
// the given sequences, enumerated in lexicographic order of (i, j): all
// pairs involving the first sequence, then the second, and so on. Fewer
// than two sequences yield an empty result. Inputs are never mutated.
func Compare(seqs []NamedSequence) []PairResult {
	if len(seqs) < 2 {
		return nil
	}
	results := make([]PairResult, 0, len(seqs)*(len(seqs)-1)/2)
	for i := 0; i < len(seqs); i++ {
		for j := i + 1; j < len(seqs); j++ {
			r := comparePair(seqs[i], seqs[j])
			r.LeftName = labelFor(seqs[i], i)
			r.RightName = labelFor(seqs[j], j)
			results = append(results, r)
		}
	}
	return results
}

// comparePair computes the three derived sequences for one left/right pair.
// Intersection is populated from the left side's occurrences: a value found
// on both sides appears once per occurrence in left, regardless of how
// often right repeats it.
func comparePair(left, right NamedSequence) PairResult {
	inLeft := membershipOf(left.Values)
	inRight := membershipOf(right.Values)

	result := PairResult{
		OnlyInLeft:   []value.Value{},
		OnlyInRight:  []value.Value{},
		Intersection: []value.Value{},
	}
	for _, v := range left.Values {
		if inRight.has(v) {
			result.Intersection = append(result.Intersection, v)
		} else {
			result.OnlyInLeft = append(result.OnlyInLeft, v)
		}
	}
	for _, v := range right.Values {
		if !inLeft.has(v) {
			result.OnlyInRight = append(result.OnlyInRight, v)
		}
	}
	return result
}
