package js8

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

/*
 * Free-text normalisation: operator-entered callsigns and message text
 * arrive in arbitrary Unicode case and with combining marks; this maps them
 * down to the fixed 64-character Alphabet an EncodeMessage payload draws
 * from.
 */

var upper = cases.Upper(language.Und)

// NormalizeForAlphabet decomposes s (folding accents off their base
// letters), upper-cases it, and drops any rune outside Alphabet. The result
// may be shorter than s and is not padded.
func NormalizeForAlphabet(s string) string {
	decomposed := norm.NFKD.String(s)
	upperCased := upper.String(decomposed)

	var b strings.Builder
	b.Grow(len(upperCased))
	for _, r := range upperCased {
		if r > 255 {
			continue
		}
		if alphabetIndex[byte(r)] >= 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PadPayload truncates or pads s to exactly 12 characters, the fixed width
// EncodeMessage requires. Alphabet has no space character, so padding uses
// '0', matching the convention of treating an incomplete field as zero-filled.
func PadPayload(s string) string {
	if len(s) >= 12 {
		return s[:12]
	}
	return s + strings.Repeat("0", 12-len(s))
}
