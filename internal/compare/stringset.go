package compare

import "sort"

type stringSet map[string]struct{}

func newStringSet(items []string) stringSet {
	set := make(stringSet, len(items))
	for _, s := range items {
		set.Add(s)
	}
	return set
}

func (set stringSet) Add(s string) stringSet {
	set[s] = struct{}{}
	return set
}

func (set stringSet) Has(s string) bool {
	_, ok := set[s]
	return ok
}

// Slice returns the members sorted ascending.
func (set stringSet) Slice() []string {
	ret := make([]string, 0, len(set))
	for s := range set {
		ret = append(ret, s)
	}
	sort.Strings(ret)
	return ret
}
