package compare

import (
	"strconv"
	"strings"

	"listcmp/internal/model"
)

// DisplayName returns the list name, falling back to "List N" (1-based) when blank.
func DisplayName(name string, index int) string {
	if strings.TrimSpace(name) == "" {
		return "List " + strconv.Itoa(index+1)
	}
	return name
}

// Parse snapshots lists into their canonical form.
func Parse(lists []model.List, n Normalizer) []model.ParsedList {
	parsed := make([]model.ParsedList, 0, len(lists))
	for i, l := range lists {
		parsed = append(parsed, model.ParsedList{
			ID:        l.ID,
			Name:      DisplayName(l.Name, i),
			Questions: n.Parse(l.Questions),
		})
	}
	return parsed
}

// Compare computes per-list unique items and the global stats.
//
// An item is unique to a list when no list with a different id contains it.
// Shared items are the intersection of every list, so a single list shares
// all of its items with itself.
func Compare(lists []model.ParsedList) ([]model.ComparisonResult, model.ComparisonStats) {
	sets := make([]stringSet, len(lists))
	// item -> ids of the lists holding it
	holders := map[string]stringSet{}
	all := stringSet{}
	withDuplicates := 0
	for i, l := range lists {
		sets[i] = newStringSet(l.Questions)
		withDuplicates += len(sets[i])
		for q := range sets[i] {
			all.Add(q)
			ids, ok := holders[q]
			if !ok {
				ids = stringSet{}
				holders[q] = ids
			}
			ids.Add(l.ID)
		}
	}

	shared := stringSet{}
	if len(sets) > 0 {
		for q := range sets[0] {
			inAll := true
			for _, other := range sets[1:] {
				if !other.Has(q) {
					inAll = false
					break
				}
			}
			if inAll {
				shared.Add(q)
			}
		}
	}

	results := make([]model.ComparisonResult, 0, len(lists))
	for i, l := range lists {
		unique := stringSet{}
		for q := range sets[i] {
			if len(holders[q]) == 1 {
				unique.Add(q)
			}
		}
		results = append(results, model.ComparisonResult{
			ID:              l.ID,
			Name:            l.Name,
			UniqueQuestions: unique.Slice(),
			TotalQuestions:  len(sets[i]),
			UniqueCount:     len(unique),
		})
	}

	stats := model.ComparisonStats{
		TotalLists:                len(lists),
		TotalUniqueQuestions:      len(all),
		TotalQuestionsAcrossLists: withDuplicates,
		SharedQuestions:           len(shared),
		SharedQuestionsList:       shared.Slice(),
	}
	return results, stats
}

// Run parses and compares lists in one step.
func Run(lists []model.List, n Normalizer) ([]model.ComparisonResult, model.ComparisonStats) {
	return Compare(Parse(lists, n))
}
