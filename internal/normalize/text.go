// Package normalize converts definition text into typed output values.
package normalize

import "strings"

var bracketTokens = strings.NewReplacer(
	"[PAWN_nameDef]", "This pawn",
	"[PAWN_pronoun]", "This pawn",
	"[PAWN_possessive]", "their",
	"[PAWN_objective]", "them",
)

var braceTokens = strings.NewReplacer(
	"{PAWN_nameDef}", "This pawn",
	"{PAWN_pronoun}", "This pawn",
	"{PAWN_possessive}", "their",
	"{PAWN_objective}", "them",
)

// UnescapeNewlines turns literal backslash-n sequences into newlines.
func UnescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

// BackstoryText unescapes newlines, collapses each doubled newline to one
// and replaces bracketed pawn placeholders with generic wording.
func BackstoryText(s string) string {
	s = UnescapeNewlines(s)
	s = strings.ReplaceAll(s, "\n\n", "\n")
	return bracketTokens.Replace(s)
}

// DegreeText is BackstoryText that also replaces brace-delimited placeholders.
func DegreeText(s string) string {
	return braceTokens.Replace(BackstoryText(s))
}

// GeneText only unescapes newlines; gene descriptions keep paragraph breaks.
func GeneText(s string) string {
	return UnescapeNewlines(s)
}
