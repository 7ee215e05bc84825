package opencc

import "strings"

// Paired-quote substitution applied after conversion when the caller asks
// for punctuation handling. The mapping is tiny and single-character, so
// a Replacer beats a dictionary round.
var (
	s2tPunctReplacer = strings.NewReplacer(
		"“", "「",
		"”", "」",
		"‘", "『",
		"’", "』",
	)
	t2sPunctReplacer = strings.NewReplacer(
		"「", "“",
		"」", "”",
		"『", "‘",
		"』", "’",
	)
)

// convertPunctuation substitutes paired punctuation in text, toward
// Traditional corner brackets or back toward Simplified curly quotes.
func convertPunctuation(text string, toTraditional bool) string {
	if toTraditional {
		return s2tPunctReplacer.Replace(text)
	}
	return t2sPunctReplacer.Replace(text)
}
