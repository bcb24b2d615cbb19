package tui

import (
	"fmt"
	"strings"
	"testing"

	"listcmp/internal/model"
	"listcmp/internal/order"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(t *testing.T, lists ...model.List) appModel {
	t.Helper()
	n := 0
	m := newAppModel(Options{
		Lists: lists,
		NewID: func() string {
			n++
			return fmt.Sprintf("new-%d", n)
		},
	})
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am
}

func keys(t *testing.T, m appModel, msgs ...tea.KeyMsg) appModel {
	t.Helper()
	for _, msg := range msgs {
		m = update(t, m, msg)
	}
	return m
}

func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		if r == '\n' {
			m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			continue
		}
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

var (
	ctrlN    = tea.KeyMsg{Type: tea.KeyCtrlN}
	ctrlP    = tea.KeyMsg{Type: tea.KeyCtrlP}
	ctrlA    = tea.KeyMsg{Type: tea.KeyCtrlA}
	ctrlD    = tea.KeyMsg{Type: tea.KeyCtrlD}
	ctrlR    = tea.KeyMsg{Type: tea.KeyCtrlR}
	ctrlO    = tea.KeyMsg{Type: tea.KeyCtrlO}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
)

func twoLists() []model.List {
	return []model.List{
		{ID: "a", Name: "Blind", Questions: "Two Sum (Easy)\nClimbing Stairs (Easy)"},
		{ID: "b", Name: "Grind", Questions: "Two Sum (Easy)\nJump Game (Medium)"},
	}
}

func TestApp_CompareBuildsReport(t *testing.T) {
	m := testModel(t, twoLists()...)
	assert.Nil(t, m.report)

	m = keys(t, m, ctrlR)
	require.NotNil(t, m.report)
	assert.Equal(t, 2, m.report.Stats.TotalLists)
	assert.Equal(t, []string{"two sum (easy)"}, m.report.Stats.SharedQuestionsList)
	assert.Contains(t, m.status, "Compared 2 list(s)")

	view := xansi.Strip(m.results.View())
	assert.Contains(t, view, "climbing stairs (easy)")
}

func TestApp_NavigateAndEditName(t *testing.T) {
	m := testModel(t, twoLists()...)
	assert.Equal(t, focusName, m.focus)

	m = keys(t, m, ctrlN)
	assert.Equal(t, 1, m.active)
	assert.Equal(t, "Grind", m.name.Value())

	m = typeText(t, m, " 169")
	assert.Equal(t, "Grind 169", m.lists[1].Name)

	m = keys(t, m, ctrlN)
	assert.Equal(t, 0, m.active, "wraps around")
	m = keys(t, m, ctrlP)
	assert.Equal(t, 1, m.active)
}

func TestApp_EditQuestionsThenCompare(t *testing.T) {
	m := testModel(t, twoLists()...)

	m = keys(t, m, tab)
	require.Equal(t, focusQuestions, m.focus)
	m = typeText(t, m, "\nJump Game (Medium)")
	assert.True(t, strings.HasSuffix(m.lists[0].Questions, "Jump Game (Medium)"))

	m = keys(t, m, ctrlR)
	require.NotNil(t, m.report)
	assert.Equal(t, []string{"climbing stairs (easy)"}, m.report.Results[0].UniqueQuestions)
	assert.Empty(t, m.report.Results[1].UniqueQuestions)
}

func TestApp_AddAndRemoveLists(t *testing.T) {
	m := testModel(t, twoLists()...)

	m = keys(t, m, ctrlA)
	require.Len(t, m.lists, 3)
	assert.Equal(t, 2, m.active)
	assert.Equal(t, "new-1", m.lists[2].ID)
	assert.Equal(t, "List 3", m.lists[2].Name)
	assert.Equal(t, focusName, m.focus)

	m = keys(t, m, ctrlD)
	require.Len(t, m.lists, 2)
	assert.Equal(t, 1, m.active)
	assert.Equal(t, "Grind", m.name.Value())

	m = keys(t, m, ctrlD, ctrlD)
	assert.Empty(t, m.lists)
	assert.Contains(t, xansi.Strip(m.View()), "No lists")

	m = keys(t, m, ctrlD)
	assert.True(t, m.statusErr)

	m = keys(t, m, ctrlR)
	require.NotNil(t, m.report)
	assert.Contains(t, xansi.Strip(m.results.View()), "No lists to compare")
}

func TestApp_CycleSortReordersLastCompare(t *testing.T) {
	m := testModel(t, twoLists()...)
	m = keys(t, m, ctrlR)

	// Edits after a compare are not picked up by a sort change.
	m = keys(t, m, tab)
	m = typeText(t, m, "\nValid Anagram (Easy)")

	m = keys(t, m, ctrlO)
	assert.Equal(t, order.SortDifficulty, m.sort)
	require.NotNil(t, m.report)
	assert.Equal(t, order.SortDifficulty, m.report.Sort)
	assert.Equal(t, []string{"climbing stairs (easy)"}, m.report.Results[0].UniqueQuestions)

	m = keys(t, m, ctrlO)
	assert.Equal(t, order.SortTopic, m.sort)
	assert.NotEmpty(t, m.report.Shared.Groups)

	m = keys(t, m, ctrlO)
	assert.Equal(t, order.SortNone, m.sort)
}

func TestApp_FocusCycles(t *testing.T) {
	m := testModel(t, twoLists()...)
	m = keys(t, m, tab, tab)
	assert.Equal(t, focusResults, m.focus)
	m = keys(t, m, tab)
	assert.Equal(t, focusName, m.focus)
	m = keys(t, m, shiftTab)
	assert.Equal(t, focusResults, m.focus)
}

func TestApp_QuitKeys(t *testing.T) {
	m := testModel(t, twoLists()...)
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
	}
}

func TestApp_ViewTruncatesLongTabs(t *testing.T) {
	long := strings.Repeat("x", 80)
	m := testModel(t, model.List{ID: "a", Name: long})
	view := xansi.Strip(m.View())
	assert.NotContains(t, view, long)
	assert.Contains(t, view, "…")
}

func TestResolveTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	t.Setenv("LISTCMP_TUI_THEME", "")
	assert.Equal(t, "light", resolveTheme("light"))
	assert.Equal(t, "", resolveTheme(""))

	t.Setenv("LISTCMP_TUI_THEME", "dark")
	assert.Equal(t, "dark", resolveTheme("light"))

	t.Setenv("LISTCMP_TUI_THEME", "auto")
	t.Setenv("COLORFGBG", "15;0")
	assert.Equal(t, "dark", resolveTheme("light"))
}
