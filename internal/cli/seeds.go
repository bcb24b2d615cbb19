package cli

import (
	"fmt"
	"io"
	"strings"

	"listcmp/internal/report"
	"listcmp/internal/seed"

	"github.com/spf13/cobra"
)

type seedSummary struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

type seedSummaries []seedSummary

func (ss seedSummaries) WriteText(w io.Writer, st report.Styles) error {
	for _, s := range ss {
		if _, err := fmt.Fprintf(w, "%-12s %s %s\n", s.Name, st.Heading.Render(s.Title), st.Muted.Render(fmt.Sprintf("(%d)", s.Count))); err != nil {
			return err
		}
	}
	return nil
}

type seedDetail struct {
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Questions []string `json:"questions"`
}

func (sd seedDetail) WriteText(w io.Writer, st report.Styles) error {
	if _, err := fmt.Fprintln(w, st.Title.Render(sd.Title)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, strings.Join(sd.Questions, "\n"))
	return err
}

func newSeedsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "seeds [NAME]",
		Short: "List the built-in lists, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				out := make(seedSummaries, 0, len(seed.Datasets()))
				for _, d := range seed.Datasets() {
					_, text, _ := seed.Get(d.Name)
					out = append(out, seedSummary{Name: d.Name, Title: d.Title, Count: len(seedLines(text))})
				}
				return writeOut(cmd, app, out)
			}

			d, text, ok := seed.Get(args[0])
			if !ok {
				return writeErr(cmd, fmt.Errorf("%w (known: %s)", errNotFound("seed", args[0]), strings.Join(seed.Names(), ", ")))
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			return writeOut(cmd, app, seedDetail{Name: d.Name, Title: d.Title, Questions: seedLines(text)})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the list text as-is (no envelope)")

	return cmd
}

// seedLines returns the trimmed non-blank lines of text, keeping case.
func seedLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
