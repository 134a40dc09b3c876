package resolver

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var punctuation = strings.NewReplacer(".", "", ",", "", "!", "", "?", "")

// Normalize returns the canonical key of a raw backend message: NFC form,
// lowercased, without . , ! ? and with whitespace runs collapsed to a single
// space. Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	s := strings.ToValidUTF8(raw, "\uFFFD")
	// Punctuation goes before composition: removing it can bring a base
	// letter next to a combining mark.
	s = punctuation.Replace(s)
	// A Caser carries state and must not be shared between goroutines.
	s = cases.Lower(language.Und).String(s)
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}
