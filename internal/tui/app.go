package tui

import (
	"fmt"
	"strings"

	"listcmp/internal/classify"
	"listcmp/internal/compare"
	"listcmp/internal/model"
	"listcmp/internal/order"
	"listcmp/internal/report"
	"listcmp/internal/store"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// Options seeds the interactive session.
type Options struct {
	Lists      []model.List
	Sort       order.SortMode
	Classifier *classify.Classifier
	Normalizer compare.Normalizer
	// Theme is light|dark|auto; LISTCMP_TUI_THEME overrides it.
	Theme string
	// NewID mints ids for added lists. Defaults to store.NewListID.
	NewID func() string
}

type focusArea int

const (
	focusName focusArea = iota
	focusQuestions
	focusResults
	focusCount
)

const (
	maxTabWidth   = 20
	placeholder   = "Add lists and press ctrl+r to compare."
	minPaneWidth  = 24
	defaultWidth  = 100
	defaultHeight = 30
)

type appModel struct {
	keys keyMap

	lists  []model.List
	active int
	focus  focusArea

	name      textinput.Model
	questions textarea.Model
	results   viewport.Model

	sort       order.SortMode
	classifier *classify.Classifier
	normalizer compare.Normalizer
	newID      func() string

	// compared is the snapshot taken by the last compare; sort changes
	// re-render it without picking up later edits.
	compared []model.List
	report   *report.Report

	width  int
	height int

	status    string
	statusErr bool
}

func newAppModel(opts Options) appModel {
	m := appModel{
		keys:       defaultKeyMap(),
		lists:      append([]model.List(nil), opts.Lists...),
		sort:       opts.Sort,
		classifier: opts.Classifier,
		normalizer: opts.Normalizer,
		newID:      opts.NewID,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	if m.sort == "" {
		m.sort = order.SortNone
	}
	if m.newID == nil {
		m.newID = store.NewListID
	}

	m.name = textinput.New()
	m.name.Placeholder = "List name"
	m.name.CharLimit = 120

	m.questions = textarea.New()
	m.questions.Placeholder = "One problem per line, e.g. Two Sum (Easy)"
	m.questions.CharLimit = 0
	m.questions.MaxHeight = 0
	m.questions.ShowLineNumbers = false

	m.results = viewport.New(0, 0)
	m.results.SetContent(styleMuted().Render(placeholder))

	m.loadActive()
	m.setFocus(focusName)
	m.layout()
	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.renderResults()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Compare):
			m.runCompare()
			return m, nil
		case key.Matches(msg, m.keys.CycleSort):
			m.sort = m.sort.Next()
			m.setStatus(fmt.Sprintf("Sort: %s", m.sort), false)
			m.rebuildReport()
			return m, nil
		case key.Matches(msg, m.keys.NextList):
			m.selectList(m.active + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevList):
			m.selectList(m.active - 1)
			return m, nil
		case key.Matches(msg, m.keys.AddList):
			m.addList()
			return m, m.setFocus(focusName)
		case key.Matches(msg, m.keys.Remove):
			m.removeList()
			return m, nil
		case key.Matches(msg, m.keys.NextFocus):
			return m, m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, m.keys.PrevFocus):
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		if len(m.lists) == 0 {
			return m, nil
		}
		m.name, cmd = m.name.Update(msg)
		m.lists[m.active].Name = m.name.Value()
	case focusQuestions:
		if len(m.lists) == 0 {
			return m, nil
		}
		m.questions, cmd = m.questions.Update(msg)
		m.lists[m.active].Questions = m.questions.Value()
	case focusResults:
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

func (m *appModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.name.Blur()
	m.questions.Blur()
	switch f {
	case focusName:
		return m.name.Focus()
	case focusQuestions:
		return m.questions.Focus()
	}
	return nil
}

// loadActive copies the active list into the editors.
func (m *appModel) loadActive() {
	if len(m.lists) == 0 {
		m.active = 0
		m.name.SetValue("")
		m.questions.SetValue("")
		return
	}
	l := m.lists[m.active]
	m.name.SetValue(l.Name)
	m.name.CursorEnd()
	m.questions.SetValue(l.Questions)
}

func (m *appModel) selectList(i int) {
	if len(m.lists) == 0 {
		return
	}
	m.active = (i + len(m.lists)) % len(m.lists)
	m.loadActive()
}

func (m *appModel) addList() {
	m.lists = append(m.lists, model.List{
		ID:   m.newID(),
		Name: fmt.Sprintf("List %d", len(m.lists)+1),
	})
	m.active = len(m.lists) - 1
	m.loadActive()
	m.setStatus("Added "+m.lists[m.active].Name, false)
}

func (m *appModel) removeList() {
	if len(m.lists) == 0 {
		m.setStatus("No list to remove.", true)
		return
	}
	name := compare.DisplayName(m.lists[m.active].Name, m.active)
	m.lists = append(m.lists[:m.active], m.lists[m.active+1:]...)
	if m.active >= len(m.lists) && m.active > 0 {
		m.active--
	}
	m.loadActive()
	m.setStatus("Removed "+name, false)
}

func (m *appModel) runCompare() {
	m.compared = make([]model.List, len(m.lists))
	copy(m.compared, m.lists)
	m.rebuildReport()
	m.results.GotoTop()
	if m.report != nil {
		m.setStatus(fmt.Sprintf("Compared %d list(s): %d distinct, %d shared.",
			m.report.Stats.TotalLists, m.report.Stats.TotalUniqueQuestions, m.report.Stats.SharedQuestions), false)
	}
}

// rebuildReport recomputes the report from the compare snapshot.
func (m *appModel) rebuildReport() {
	if m.compared == nil {
		return
	}
	r := report.Build(m.compared, report.Options{
		Normalizer: m.normalizer,
		Sort:       m.sort,
		Classifier: m.classifier,
	})
	m.report = &r
	m.renderResults()
}

func (m *appModel) renderResults() {
	if m.report == nil {
		return
	}
	m.results.SetContent(report.RenderText(*m.report, report.NewStyles(nil), m.results.Width))
}

func (m *appModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *appModel) paneWidths() (left, right int) {
	left = m.width * 2 / 5
	if left < minPaneWidth {
		left = minPaneWidth
	}
	right = m.width - left
	if right < minPaneWidth {
		right = minPaneWidth
	}
	return left, right
}

func (m *appModel) layout() {
	left, right := m.paneWidths()
	// border (2) + padding (2)
	inner := func(w int) int { return max(w-4, 1) }

	// tabs, status, footer, and the two pane borders.
	body := max(m.height-5, 6)

	m.name.Width = inner(left) - 1
	m.questions.SetWidth(inner(left))
	m.questions.SetHeight(max(body-4, 1))

	m.results.Width = inner(right)
	m.results.Height = max(body-1, 1)
}

func (m appModel) View() string {
	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteByte('\n')

	left, right := m.paneWidths()
	editor := m.viewEditor(left)
	results := m.viewResults(right)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, editor, results))
	b.WriteByte('\n')

	b.WriteString(styleStatus(m.statusErr).Render(m.status))
	b.WriteByte('\n')
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m appModel) viewTabs() string {
	if len(m.lists) == 0 {
		return styleMuted().Render("No lists. Press ctrl+a to add one.")
	}
	tabs := make([]string, 0, len(m.lists))
	for i, l := range m.lists {
		name := xansi.Truncate(compare.DisplayName(l.Name, i), maxTabWidth, "…")
		tabs = append(tabs, styleTab(i == m.active).Render(name))
	}
	line := strings.Join(tabs, " ")
	if m.width > 0 {
		line = xansi.Truncate(line, m.width, "…")
	}
	return line
}

func (m appModel) viewEditor(width int) string {
	var b strings.Builder
	if len(m.lists) == 0 {
		b.WriteString(styleMuted().Render("Nothing to edit."))
	} else {
		count := len(compare.ParseQuestions(m.lists[m.active].Questions))
		b.WriteString(styleLabel(m.focus == focusName).Render("Name"))
		b.WriteByte('\n')
		b.WriteString(m.name.View())
		b.WriteString("\n\n")
		b.WriteString(styleLabel(m.focus == focusQuestions).Render(fmt.Sprintf("Questions (%d)", count)))
		b.WriteByte('\n')
		b.WriteString(m.questions.View())
	}
	focused := m.focus == focusName || m.focus == focusQuestions
	return stylePane(focused).Width(max(width-2, 1)).Render(b.String())
}

func (m appModel) viewResults(width int) string {
	title := fmt.Sprintf("Results · sort: %s", m.sort)
	content := styleLabel(m.focus == focusResults).Render(title) + "\n" + m.results.View()
	return stylePane(m.focus == focusResults).Width(max(width-2, 1)).Render(content)
}

func (m appModel) viewFooter() string {
	parts := make([]string, 0, len(m.keys.footer()))
	for _, k := range m.keys.footer() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	line := strings.Join(parts, " · ")
	if m.width > 0 {
		line = xansi.Truncate(line, m.width, "…")
	}
	return styleMuted().Render(line)
}
