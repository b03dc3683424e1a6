// internal/parse/parse.go
//
// Turns one raw text block into an ordered sequence of scalar values.
// Two grammars are accepted, tried in order:
//
//  1. A JSON array: `[1, "two", true]`
//  2. Comma-separated tokens: `1, two, true` — each token classified
//     independently as number, boolean, or string.
//
// A JSON syntax error is an expected branch (it just means "not JSON, try
// commas"), so it never surfaces to the caller. Only input that is valid
// JSON but not an array, or input the fallback cannot handle, yields a
// ParseError.

package parse

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pgold/venn/internal/value"
)

// ErrorKind distinguishes the two failure modes a caller may want to
// present differently.
type ErrorKind string

const (
	// ErrNotArray: the input was valid JSON but not a JSON array.
	ErrNotArray ErrorKind = "not-array"
	// ErrInvalid: the input matched neither accepted grammar.
	ErrInvalid ErrorKind = "invalid"
)

// ParseError reports why an input field could not be parsed. The message is
// suitable for showing next to the offending field.
type ParseError struct {
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string { return e.Message }

// Parse converts raw text into a value sequence. Empty (or all-whitespace)
// input is an empty sequence, not an error. Element order follows the input
// and duplicates are kept.
func Parse(raw string) ([]value.Value, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
		arr, ok := decoded.([]any)
		if !ok {
			return nil, &ParseError{Kind: ErrNotArray, Message: "Input must be a valid JSON array"}
		}
		values := make([]value.Value, 0, len(arr))
		for _, elem := range arr {
			values = append(values, value.FromJSON(elem))
		}
		return values, nil
	}

	return parseCommaSeparated(raw)
}

// parseCommaSeparated splits the raw text on commas and classifies each
// trimmed token on its own: number, then boolean, then string.
func parseCommaSeparated(raw string) ([]value.Value, error) {
	tokens := strings.Split(raw, ",")
	values := make([]value.Value, 0, len(tokens))
	for _, tok := range tokens {
		values = append(values, classifyToken(strings.TrimSpace(tok)))
	}
	return values, nil
}

// classifyToken decides the type of one comma-separated token. An empty
// token deliberately stays a string: "coerces to a number" logic would call
// it numeric (the empty string coerces to 0), which is never what a user
// typing `a,,b` meant.
func classifyToken(tok string) value.Value {
	if n, ok := parseDecimal(tok); ok {
		return value.Number(n)
	}
	switch strings.ToLower(tok) {
	case "true":
		return value.Boolean(true)
	case "false":
		return value.Boolean(false)
	}
	return value.String(tok)
}

// parseDecimal accepts only finite decimal lexemes (including scientific
// notation). strconv.ParseFloat also takes Go-only forms — digit-group
// underscores ("1_000") and hex floats ("0x1p4") — which are not numbers
// in this grammar; no decimal lexeme contains '_', 'x' or 'X', so those
// tokens are rejected up front.
func parseDecimal(tok string) (float64, bool) {
	if tok == "" || strings.ContainsAny(tok, "_xX") {
		return 0, false
	}
	n, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}
