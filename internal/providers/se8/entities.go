package se8

import "strings"

// entityReplacements is applied in order, one literal at a time. None of
// the patterns is a substring of another or of a replacement.
var entityReplacements = []string{
	"&lt;", "<",
	"&gt;", ">",
	"&#40;", "(",
	"&#41;", ")",
	"&ldquo;", "“",
	"&rdquo;", "”",
	"&hellip;", "…",
	"&hearts;", "♥",
}

// DecodeEntities replaces the handful of entities the chapter API leaves
// encoded in chapter names.
func DecodeEntities(s string) string {
	for i := 0; i < len(entityReplacements); i += 2 {
		s = strings.ReplaceAll(s, entityReplacements[i], entityReplacements[i+1])
	}

	return s
}
