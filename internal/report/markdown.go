package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"listcmp/internal/order"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// Markdown renders the report as a markdown document.
func Markdown(r Report) string {
	var b strings.Builder
	b.WriteString("# List comparison\n\n")

	if len(r.Results) == 0 {
		b.WriteString(noListsMessage + "\n")
		return b.String()
	}

	b.WriteString("| Lists | Total distinct | Shared | Across lists |\n")
	b.WriteString("|---:|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d |\n\n",
		r.Stats.TotalLists,
		r.Stats.TotalUniqueQuestions,
		r.Stats.SharedQuestions,
		r.Stats.TotalQuestionsAcrossLists,
	)

	for _, res := range r.Results {
		fmt.Fprintf(&b, "## %s\n\n", mdEscape(res.Name))
		if len(res.UniqueQuestions) == 0 {
			b.WriteString("_" + noUniqueMessage + "_\n\n")
		} else {
			fmt.Fprintf(&b, "%d unique of %d questions.\n\n", res.UniqueCount, res.TotalQuestions)
			writeMarkdownView(&b, res.View)
		}
	}

	fmt.Fprintf(&b, "## Shared by all lists (%d)\n\n", r.Stats.SharedQuestions)
	if r.Stats.SharedQuestions == 0 {
		b.WriteString("_None._\n")
	} else {
		writeMarkdownView(&b, r.Shared)
	}
	return b.String()
}

func writeMarkdownView(b *strings.Builder, v order.View) {
	if v.Mode == order.SortTopic {
		for _, g := range v.Groups {
			fmt.Fprintf(b, "### %s\n\n", g.Topic)
			writeMarkdownEntries(b, g.Entries)
		}
		return
	}
	writeMarkdownEntries(b, v.Entries)
}

func writeMarkdownEntries(b *strings.Builder, entries []order.Entry) {
	for _, e := range entries {
		fmt.Fprintf(b, "- %s\n", mdEscape(e.Text))
	}
	b.WriteByte('\n')
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"|", `\|`,
)

func mdEscape(s string) string { return mdEscaper.Replace(s) }

var (
	mdRendererMu sync.Mutex
	// Keyed by style and wrap width. WithAutoStyle queries the terminal and can
	// block, so a fixed style is resolved up front instead.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// RenderMarkdown renders md for the terminal with glamour. On renderer errors
// the markdown source is returned unchanged.
func RenderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	style := MarkdownStyle()
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(markdownStyleConfig(style)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// MarkdownStyle picks "light" or "dark" from LISTCMP_TUI_THEME, then COLORFGBG,
// then lipgloss background detection.
func MarkdownStyle() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LISTCMP_TUI_THEME"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	// COLORFGBG is usually "fg;bg"; 0-6 are dark palette entries.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil && bg >= 0 {
			if bg >= 7 {
				return "light"
			}
			return "dark"
		}
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func markdownStyleConfig(style string) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if style == "light" {
		cfg = styles.LightStyleConfig
	}
	accent := mdColor(colorAccent, style)
	cfg.H2.Color = accent
	cfg.H3.Color = mdColor(colorMuted, style)
	cfg.Emph.Color = mdColor(colorMuted, style)
	return cfg
}

func mdColor(c lipgloss.AdaptiveColor, style string) *string {
	v := c.Dark
	if style == "light" {
		v = c.Light
	}
	return &v
}
