package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name folds a catalogue or patient name to its canonical stored form:
// NFD decomposition, combining marks stripped, lower-cased.
func Name(s string) string {
	folded, _, err := transform.String(foldChain, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// LikeParameter turns a user-supplied filter into a SQL LIKE pattern over
// normalized names. An empty filter matches everything.
func LikeParameter(filter string) string {
	return "%" + Name(strings.TrimSpace(filter)) + "%"
}
