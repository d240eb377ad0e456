package flowstate

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalizer maps a state token to its canonical form. Two tokens name the
// same state iff their canonical forms are equal.
type Normalizer func(StateID) StateID

// Canonical trims surrounding whitespace and applies Unicode NFC, so that
// composed and decomposed spellings of the same text compare equal.
// Comparison stays case-sensitive.
func Canonical(s StateID) StateID {
	return StateID(norm.NFC.String(strings.TrimSpace(string(s))))
}

// CaseFolded is Canonical followed by Unicode case folding.
func CaseFolded(s StateID) StateID {
	return StateID(cases.Fold().String(string(Canonical(s))))
}
