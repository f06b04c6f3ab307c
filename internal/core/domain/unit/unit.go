/*
Package unit defines the granularity used when counting text and how text is
split into units of that granularity.
*/
package unit

import (
	"fmt"
	"strings"
)

// Kind selects the splitting strategy.
type Kind int

const (
	// Char counts Unicode scalar values.
	Char Kind = iota
	// Word counts whitespace-separated words.
	Word
	// Line counts whole lines.
	Line
)

// Default is the unit used when none is configured.
const Default = Word

// Names lists the accepted spellings, in declaration order.
var Names = []string{"char", "word", "line"}

func (k Kind) String() string {
	switch k {
	case Char:
		return "char"
	case Word:
		return "word"
	case Line:
		return "line"
	default:
		return "unknown"
	}
}

// Parse maps a CLI spelling ("char", "word" or "line") to a Kind.
func Parse(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "char":
		return Char, nil
	case "word":
		return Word, nil
	case "line":
		return Line, nil
	}
	return 0, fmt.Errorf("invalid unit %q: must be one of %s", s, strings.Join(Names, ", "))
}

// Split breaks text into units of the given kind. It never fails; empty text
// and unknown kinds yield an empty result.
func Split(text string, kind Kind) []string {
	if text == "" {
		return nil
	}
	switch kind {
	case Char:
		return splitChars(text)
	case Word:
		return strings.Fields(text)
	case Line:
		return splitLines(text)
	default:
		return nil
	}
}

func splitChars(text string) []string {
	units := make([]string, 0, len(text))
	for _, r := range text {
		units = append(units, string(r))
	}
	return units
}

// splitLines splits on '\n', strips a trailing '\r' from every line and drops
// the empty fragment after a final terminator.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
