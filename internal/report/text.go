package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"listcmp/internal/classify"
	"listcmp/internal/order"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

const (
	noListsMessage  = "No lists to compare. Please add at least one list with questions."
	noUniqueMessage = "No unique questions. All questions in this list appear in at least one other list."
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorEasy   = ac("28", "42")
	colorMedium = ac("130", "214")
	colorHard   = ac("160", "203")
	colorMuted  = ac("240", "245")
	colorAccent = ac("27", "62")
)

// Styles holds the lipgloss styles used to render a report.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Group   lipgloss.Style
	Muted   lipgloss.Style
	Stat    lipgloss.Style
	Easy    lipgloss.Style
	Medium  lipgloss.Style
	Hard    lipgloss.Style
	Plain   lipgloss.Style
}

// NewStyles builds styles bound to r. A nil renderer uses the lipgloss default.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(colorAccent),
		Heading: r.NewStyle().Bold(true),
		Group:   r.NewStyle().Underline(true),
		Muted:   r.NewStyle().Foreground(colorMuted),
		Stat:    r.NewStyle().Bold(true),
		Easy:    r.NewStyle().Foreground(colorEasy),
		Medium:  r.NewStyle().Foreground(colorMedium),
		Hard:    r.NewStyle().Foreground(colorHard),
		Plain:   r.NewStyle(),
	}
}

// Difficulty returns the style for a difficulty class.
func (s Styles) Difficulty(d classify.Difficulty) lipgloss.Style {
	switch d {
	case classify.Easy:
		return s.Easy
	case classify.Medium:
		return s.Medium
	case classify.Hard:
		return s.Hard
	default:
		return s.Plain
	}
}

// ColorProfile maps a --color flag value to a termenv profile.
// "auto" (or empty) returns ok=false so the writer's own detection applies.
func ColorProfile(mode string) (termenv.Profile, bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return termenv.Ascii, false, nil
	case "always":
		return termenv.ANSI256, true, nil
	case "never":
		return termenv.Ascii, true, nil
	default:
		return termenv.Ascii, false, fmt.Errorf("unknown color mode: %q (want auto|always|never)", mode)
	}
}

// NewRenderer returns a lipgloss renderer for w, forcing profile when force is set.
func NewRenderer(w io.Writer, profile termenv.Profile, force bool) *lipgloss.Renderer {
	if force {
		return lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	}
	return lipgloss.NewRenderer(w)
}

// RenderText renders the report for a terminal. Titles longer than width are
// truncated; width <= 0 disables truncation.
func RenderText(r Report, st Styles, width int) string {
	var b strings.Builder

	if len(r.Results) == 0 {
		b.WriteString(st.Muted.Render(noListsMessage))
		b.WriteByte('\n')
		return b.String()
	}

	stats := []string{
		st.Stat.Render(strconv.Itoa(r.Stats.TotalLists)) + " " + st.Muted.Render("lists"),
		st.Stat.Render(strconv.Itoa(r.Stats.TotalUniqueQuestions)) + " " + st.Muted.Render("total distinct"),
		st.Stat.Render(strconv.Itoa(r.Stats.SharedQuestions)) + " " + st.Muted.Render("shared"),
		st.Stat.Render(strconv.Itoa(r.Stats.TotalQuestionsAcrossLists)) + " " + st.Muted.Render("across lists"),
	}
	b.WriteString(strings.Join(stats, "   "))
	b.WriteString("\n\n")

	for _, res := range r.Results {
		b.WriteString(st.Title.Render(res.Name))
		b.WriteByte('\n')
		if len(res.UniqueQuestions) == 0 {
			b.WriteString("  " + st.Muted.Render(noUniqueMessage) + "\n")
		} else {
			b.WriteString(fmt.Sprintf("  %s\n", st.Heading.Render(fmt.Sprintf("%d unique question(s):", res.UniqueCount))))
			writeView(&b, res.View, st, width)
		}
		b.WriteString("  " + st.Muted.Render(fmt.Sprintf("Total questions in list: %d", res.TotalQuestions)) + "\n\n")
	}

	b.WriteString(st.Title.Render(fmt.Sprintf("Shared by all lists (%d)", r.Stats.SharedQuestions)))
	b.WriteByte('\n')
	if r.Stats.SharedQuestions == 0 {
		b.WriteString("  " + st.Muted.Render("None.") + "\n")
	} else {
		writeView(&b, r.Shared, st, width)
	}
	return b.String()
}

func writeView(b *strings.Builder, v order.View, st Styles, width int) {
	if v.Mode == order.SortTopic {
		for _, g := range v.Groups {
			b.WriteString("  " + st.Group.Render(fmt.Sprintf("%s (%d)", g.Topic, len(g.Entries))) + "\n")
			for _, e := range g.Entries {
				writeEntry(b, e, st, width, "    ")
			}
		}
		return
	}
	for _, e := range v.Entries {
		writeEntry(b, e, st, width, "    ")
	}
}

func writeEntry(b *strings.Builder, e order.Entry, st Styles, width int, indent string) {
	text := e.Text
	if width > 0 {
		text = xansi.Truncate(text, max(width-xansi.StringWidth(indent), 1), "…")
	}
	b.WriteString(indent + st.Difficulty(e.Difficulty).Render(text) + "\n")
}
