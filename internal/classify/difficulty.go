package classify

import "strings"

// Difficulty is the tier parsed from an embedded "(Easy)"-style tag.
// The numeric value is the sort rank.
type Difficulty int

const (
	None Difficulty = iota
	Easy
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "none"
	}
}

func (d Difficulty) Rank() int {
	return int(d)
}

// Class is the display class used by renderers; empty for None.
func (d Difficulty) Class() string {
	if d == None {
		return ""
	}
	return "difficulty-" + d.String()
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ClassifyDifficulty looks for "(easy)", "(med.)"/"(medium)" and "(hard)" in
// that order, ignoring case. The first marker found wins.
func ClassifyDifficulty(text string) Difficulty {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "(easy)"):
		return Easy
	case strings.Contains(lower, "(med.)"), strings.Contains(lower, "(medium)"):
		return Medium
	case strings.Contains(lower, "(hard)"):
		return Hard
	}
	return None
}
