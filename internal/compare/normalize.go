package compare

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalizer turns raw list text into canonical item keys.
//
// The zero value trims and lowercases only. FoldCompat additionally applies
// NFKC so compatibility forms (full-width letters, ligatures) compare equal to
// their plain spelling.
type Normalizer struct {
	FoldCompat bool
}

// Key returns the canonical key for one line, or "" when the line is blank.
func (n Normalizer) Key(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	if n.FoldCompat {
		line = norm.NFKC.String(line)
	}
	return strings.TrimSpace(strings.ToLower(line))
}

// Parse splits text on line breaks and returns the distinct keys in first-seen order.
func (n Normalizer) Parse(text string) []string {
	lines := strings.Split(text, "\n")
	seen := make(stringSet, len(lines))
	res := make([]string, 0, len(lines))
	for _, line := range lines {
		key := n.Key(line)
		if key == "" || seen.Has(key) {
			continue
		}
		seen.Add(key)
		res = append(res, key)
	}
	return res
}

// ParseQuestions normalizes text with the default Normalizer.
func ParseQuestions(text string) []string {
	return Normalizer{}.Parse(text)
}
