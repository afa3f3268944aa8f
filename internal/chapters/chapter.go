package chapters

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/brogergvhs/se8/internal/providers"

	"golang.org/x/text/unicode/norm"
)

var reUnderscore = regexp.MustCompile(`_+`)

// Chapter is a providers.Chapter tied to its series for file naming.
// Position is 1-based in the earliest-first list.
type Chapter struct {
	providers.Chapter
	Series   string
	Label    string
	Position int
}

func Wrap(series string, all []providers.Chapter) []Chapter {
	out := make([]Chapter, len(all))
	for i, c := range all {
		out[i] = Chapter{
			Chapter: c,
			Series:   series,
			Label:    FormatNumber(c.Number),
			Position: i + 1,
		}
	}

	return out
}

// FormatNumber prints 3 as "3" and 3.5 as "3.5".
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func sanitize(s string) string {
	s = strings.ToLower(norm.NFC.String(s))

	repl := []string{
		"•", "_",
		"-", "_",
		"—", "_",
		"–", "_",
		"/", "_",
		"\\", "_",
		".", "_",
		" ", "_",
		"　", "_",
		"(", "",
		")", "",
		"（", "",
		"）", "",
	}
	for i := 0; i < len(repl); i += 2 {
		s = strings.ReplaceAll(s, repl[i], repl[i+1])
	}

	clean := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			clean = append(clean, r)
		}
	}
	s = string(clean)

	s = reUnderscore.ReplaceAllString(s, "_")

	return strings.Trim(s, "_")
}

// baseName is "<series>_<number>_<title>", skipping empty parts and a
// title that only repeats the number.
func (c Chapter) baseName() string {
	lbl := sanitize(c.Label)
	title := sanitize(c.Title)
	series := sanitize(c.Series)

	parts := make([]string, 0, 3)
	if series != "" {
		parts = append(parts, series)
	}
	parts = append(parts, lbl)
	if title != "" && title != lbl {
		parts = append(parts, title)
	}

	return strings.Join(parts, "_")
}

func (c Chapter) FolderName() string {
	return c.baseName() + "_tmp"
}

func (c Chapter) OutputCBZ() string {
	return c.baseName() + ".cbz"
}

func (c Chapter) OutputCBZPath(out string) string {
	return filepath.Join(out, c.OutputCBZ())
}
