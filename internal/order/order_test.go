package order

import (
	"testing"

	"listcmp/internal/classify"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{
	"word search ii (hard)",
	"two sum (easy)",
	"jump game (medium)",
	"unlisted problem",
	"binary search (med.)",
	"climbing stairs (easy)",
	"contains duplicate (easy)",
	"group anagrams (medium)",
}

func texts(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Text)
	}
	return out
}

func TestOrder_NoneKeepsInputOrder(t *testing.T) {
	t.Parallel()

	v := Order(sample, SortNone, nil)
	assert.Equal(t, SortNone, v.Mode)
	assert.Equal(t, sample, texts(v.Entries))
	assert.Nil(t, v.Groups)
}

func TestOrder_Difficulty(t *testing.T) {
	t.Parallel()

	v := Order(sample, SortDifficulty, nil)
	want := []string{
		"unlisted problem",
		"climbing stairs (easy)",
		"contains duplicate (easy)",
		"two sum (easy)",
		"binary search (med.)",
		"group anagrams (medium)",
		"jump game (medium)",
		"word search ii (hard)",
	}
	if diff := cmp.Diff(want, texts(v.Entries)); diff != "" {
		t.Fatalf("difficulty order mismatch (-want +got):\n%s", diff)
	}

	for i := 1; i < len(v.Entries); i++ {
		require.LessOrEqual(t, v.Entries[i-1].Difficulty.Rank(), v.Entries[i].Difficulty.Rank())
	}
}

func TestOrder_Topic(t *testing.T) {
	t.Parallel()

	v := Order(sample, SortTopic, nil)

	wantFlat := []string{
		"contains duplicate (easy)",
		"group anagrams (medium)",
		"two sum (easy)",
		"binary search (med.)",
		"word search ii (hard)",
		"climbing stairs (easy)",
		"jump game (medium)",
		"unlisted problem",
	}
	if diff := cmp.Diff(wantFlat, texts(v.Entries)); diff != "" {
		t.Fatalf("topic order mismatch (-want +got):\n%s", diff)
	}

	type bucket struct {
		Topic classify.Topic
		Texts []string
	}
	var got []bucket
	for _, g := range v.Groups {
		got = append(got, bucket{Topic: g.Topic, Texts: texts(g.Entries)})
	}
	want := []bucket{
		{Topic: classify.ArraysHashing, Texts: []string{"contains duplicate (easy)", "two sum (easy)", "group anagrams (medium)"}},
		{Topic: classify.BinarySearch, Texts: []string{"binary search (med.)"}},
		{Topic: classify.Tries, Texts: []string{"word search ii (hard)"}},
		{Topic: classify.DP1D, Texts: []string{"climbing stairs (easy)"}},
		{Topic: classify.Greedy, Texts: []string{"jump game (medium)"}},
		{Topic: classify.Other, Texts: []string{"unlisted problem"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestOrder_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, mode := range SortModes() {
		v := Order(nil, mode, nil)
		assert.Empty(t, v.Entries, mode)
		assert.Empty(t, v.Groups, mode)
	}
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := append([]string(nil), sample...)
	Order(in, SortTopic, nil)
	assert.Equal(t, sample, in)
}

func TestOrder_UsesGivenClassifier(t *testing.T) {
	t.Parallel()

	c, err := classify.Default().WithOverrides(map[string][]string{"Intervals": {"unlisted problem"}})
	require.NoError(t, err)

	v := Order([]string{"unlisted problem"}, SortTopic, c)
	require.Len(t, v.Groups, 1)
	assert.Equal(t, classify.Intervals, v.Groups[0].Topic)
}

func TestParseSortMode(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]SortMode{"": SortNone, "none": SortNone, " Difficulty ": SortDifficulty, "TOPIC": SortTopic} {
		got, err := ParseSortMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseSortMode("alpha")
	assert.Error(t, err)
}

func TestSortMode_NextCycles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SortDifficulty, SortNone.Next())
	assert.Equal(t, SortTopic, SortDifficulty.Next())
	assert.Equal(t, SortNone, SortTopic.Next())
	assert.Equal(t, SortNone, SortMode("bogus").Next())
}
