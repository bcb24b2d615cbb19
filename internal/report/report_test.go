package report

import (
	"bytes"
	"strings"
	"testing"

	"listcmp/internal/classify"
	"listcmp/internal/model"
	"listcmp/internal/order"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLists() []model.List {
	return []model.List{
		{ID: "a", Name: "Blind", Questions: "Two Sum (Easy)\nClimbing Stairs (Easy)\nMerge K Sorted Lists (Hard)"},
		{ID: "b", Name: "", Questions: "Two Sum (Easy)\nJump Game (Medium)"},
	}
}

func plainStyles() Styles {
	var buf bytes.Buffer
	return NewStyles(NewRenderer(&buf, termenv.Ascii, true))
}

func TestBuild_OrdersEveryResultSet(t *testing.T) {
	t.Parallel()

	r := Build(sampleLists(), Options{Sort: order.SortDifficulty})
	require.Len(t, r.Results, 2)
	assert.Equal(t, order.SortDifficulty, r.Sort)
	assert.Equal(t, "List 2", r.Results[1].Name)

	var got []string
	for _, e := range r.Results[0].View.Entries {
		got = append(got, e.Text)
	}
	assert.Equal(t, []string{"climbing stairs (easy)", "merge k sorted lists (hard)"}, got)
	assert.Equal(t, []string{"two sum (easy)"}, r.Stats.SharedQuestionsList)
	require.Len(t, r.Shared.Entries, 1)
	assert.Equal(t, classify.Easy, r.Shared.Entries[0].Difficulty)
	assert.Equal(t, classify.ArraysHashing, r.Shared.Entries[0].Topic)
}

func TestBuild_EmptySortDefaultsToNone(t *testing.T) {
	t.Parallel()

	r := Build(nil, Options{})
	assert.Equal(t, order.SortNone, r.Sort)
	assert.Empty(t, r.Results)
	assert.Empty(t, r.Shared.Entries)
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	out := xansi.Strip(RenderText(Build(sampleLists(), Options{}), plainStyles(), 0))
	assert.Contains(t, out, "2 lists")
	assert.Contains(t, out, "4 total distinct")
	assert.Contains(t, out, "1 shared")
	assert.Contains(t, out, "Blind")
	assert.Contains(t, out, "2 unique question(s):")
	assert.Contains(t, out, "    climbing stairs (easy)")
	assert.Contains(t, out, "Total questions in list: 3")
	assert.Contains(t, out, "Shared by all lists (1)")
}

func TestRenderText_EmptyStates(t *testing.T) {
	t.Parallel()

	out := xansi.Strip(RenderText(Build(nil, Options{}), plainStyles(), 0))
	assert.Equal(t, noListsMessage+"\n", out)

	lists := []model.List{
		{ID: "a", Name: "A", Questions: "Two Sum"},
		{ID: "b", Name: "B", Questions: "two sum\nValid Anagram"},
	}
	out = xansi.Strip(RenderText(Build(lists, Options{}), plainStyles(), 0))
	assert.Contains(t, out, noUniqueMessage)
}

func TestRenderText_TopicGroupsAndTruncation(t *testing.T) {
	t.Parallel()

	r := Build(sampleLists(), Options{Sort: order.SortTopic})
	out := xansi.Strip(RenderText(r, plainStyles(), 20))
	assert.Contains(t, out, "1-D Dynamic Programming (1)")
	assert.Contains(t, out, "Linked List (1)")
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "    ") {
			assert.LessOrEqual(t, xansi.StringWidth(line), 20, line)
		}
	}
}

func TestColorProfile(t *testing.T) {
	t.Parallel()

	_, force, err := ColorProfile("auto")
	require.NoError(t, err)
	assert.False(t, force)

	p, force, err := ColorProfile("NEVER")
	require.NoError(t, err)
	assert.True(t, force)
	assert.Equal(t, termenv.Ascii, p)

	p, _, err = ColorProfile("always")
	require.NoError(t, err)
	assert.Equal(t, termenv.ANSI256, p)

	_, _, err = ColorProfile("sometimes")
	require.Error(t, err)
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	md := Markdown(Build(sampleLists(), Options{Sort: order.SortTopic}))
	assert.Contains(t, md, "# List comparison")
	assert.Contains(t, md, "| 2 | 4 | 1 | 5 |")
	assert.Contains(t, md, "## Blind")
	assert.Contains(t, md, "### Linked List")
	assert.Contains(t, md, "- merge k sorted lists (hard)")
	assert.Contains(t, md, "## Shared by all lists (1)")

	assert.Contains(t, Markdown(Build(nil, Options{})), noListsMessage)
}

func TestMarkdown_EscapesNames(t *testing.T) {
	t.Parallel()

	md := Markdown(Build([]model.List{{ID: "a", Name: "my_list*", Questions: "x"}}, Options{}))
	assert.Contains(t, md, `## my\_list\*`)
}

func TestMarkdownStyle_RespectsTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	t.Setenv("LISTCMP_TUI_THEME", "light")
	assert.Equal(t, "light", MarkdownStyle())

	t.Setenv("LISTCMP_TUI_THEME", "dark")
	assert.Equal(t, "dark", MarkdownStyle())

	t.Setenv("LISTCMP_TUI_THEME", "")
	t.Setenv("COLORFGBG", "0;15")
	assert.Equal(t, "light", MarkdownStyle())
}

func TestRenderMarkdown_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", RenderMarkdown("  \n", 80))
}

func TestTemplatePrinter(t *testing.T) {
	t.Parallel()

	p, err := NewTemplatePrinter(
		`{{ range .Results }}{{ .Name | upper }}={{ .UniqueCount }};{{ end }}`+
			`{{ range .Stats.SharedQuestionsList }}{{ . }}|{{ difficulty . }}|{{ topic . }}{{ end }}`,
		nil,
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Print(&buf, Build(sampleLists(), Options{})))
	assert.Equal(t, "BLIND=2;LIST 2=1;two sum (easy)|easy|Arrays & Hashing", buf.String())
}

func TestTemplatePrinter_ParseError(t *testing.T) {
	t.Parallel()

	_, err := NewTemplatePrinter("{{ .Results", nil)
	require.Error(t, err)
}
