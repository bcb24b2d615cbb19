package order

import (
	"fmt"
	"sort"
	"strings"

	"listcmp/internal/classify"
)

// SortMode selects how result items are ordered for display.
type SortMode string

const (
	SortNone       SortMode = "none"
	SortDifficulty SortMode = "difficulty"
	SortTopic      SortMode = "topic"
)

// SortModes returns the modes in the order a UI cycles through them.
func SortModes() []SortMode {
	return []SortMode{SortNone, SortDifficulty, SortTopic}
}

// Next returns the mode following m in SortModes, wrapping around.
func (m SortMode) Next() SortMode {
	modes := SortModes()
	for i, mode := range modes {
		if mode == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return SortNone
}

// ParseSortMode accepts none|difficulty|topic; empty means none.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "difficulty":
		return SortDifficulty, nil
	case "topic":
		return SortTopic, nil
	default:
		return "", fmt.Errorf("unknown sort mode: %q (want none|difficulty|topic)", s)
	}
}

// Entry is one item annotated for display.
type Entry struct {
	Text       string              `json:"text"`
	Difficulty classify.Difficulty `json:"difficulty"`
	Topic      classify.Topic      `json:"topic"`
}

// Group is a topic bucket of entries.
type Group struct {
	Topic   classify.Topic `json:"topic"`
	Entries []Entry        `json:"entries"`
}

// View is the ordered rendering of a set of items.
// Groups is only filled in topic mode.
type View struct {
	Mode    SortMode `json:"mode"`
	Entries []Entry  `json:"entries"`
	Groups  []Group  `json:"groups,omitempty"`
}

// Annotate classifies each item, keeping input order.
func Annotate(items []string, c *classify.Classifier) []Entry {
	if c == nil {
		c = classify.Default()
	}
	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		entries = append(entries, Entry{
			Text:       it,
			Difficulty: classify.ClassifyDifficulty(it),
			Topic:      c.Topic(it),
		})
	}
	return entries
}

// Order annotates items and orders them according to mode.
// A nil classifier uses the built-in keyword table.
func Order(items []string, mode SortMode, c *classify.Classifier) View {
	v := View{Mode: mode, Entries: Annotate(items, c)}
	switch mode {
	case SortDifficulty:
		sortEntries(v.Entries, byDifficulty, byText)
	case SortTopic:
		sortEntries(v.Entries, byTopic, byText)
		v.Groups = groupByTopic(v.Entries)
	default:
		v.Mode = SortNone
	}
	return v
}

func groupByTopic(entries []Entry) []Group {
	buckets := map[classify.Topic][]Entry{}
	for _, e := range entries {
		buckets[e.Topic] = append(buckets[e.Topic], e)
	}
	groups := []Group{}
	for _, t := range classify.Topics() {
		bucket := buckets[t]
		if len(bucket) == 0 {
			continue
		}
		sortEntries(bucket, byDifficulty, byText)
		groups = append(groups, Group{Topic: t, Entries: bucket})
	}
	return groups
}

// sorter

type lessFunc func(*Entry, *Entry) bool

type entrySorter struct {
	entries []Entry
	less    []lessFunc
}

func sortEntries(entries []Entry, less ...lessFunc) {
	sort.Stable(entrySorter{entries: entries, less: less})
}

func (es entrySorter) Less(i, j int) bool {
	e1, e2 := &es.entries[i], &es.entries[j]
	k := 0
	for ; k < len(es.less)-1; k++ {
		l := es.less[k]
		switch {
		case l(e1, e2):
			return true
		case l(e2, e1):
			return false
		}
		// no decision yet
	}
	return es.less[k](e1, e2)
}

func (es entrySorter) Len() int {
	return len(es.entries)
}

func (es entrySorter) Swap(i, j int) {
	es.entries[i], es.entries[j] = es.entries[j], es.entries[i]
}

func byDifficulty(e1, e2 *Entry) bool {
	return e1.Difficulty.Rank() < e2.Difficulty.Rank()
}

func byTopic(e1, e2 *Entry) bool {
	return e1.Topic.Index() < e2.Topic.Index()
}

func byText(e1, e2 *Entry) bool {
	return e1.Text < e2.Text
}
