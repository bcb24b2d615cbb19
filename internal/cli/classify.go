package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"listcmp/internal/order"
	"listcmp/internal/report"

	"github.com/spf13/cobra"
)

type classification []order.Entry

func (c classification) WriteText(w io.Writer, st report.Styles) error {
	for _, e := range c {
		diff := e.Difficulty.String()
		if _, err := fmt.Fprintf(w, "%s  %s  %s\n",
			st.Difficulty(e.Difficulty).Render(fmt.Sprintf("%-6s", diff)),
			st.Muted.Render(string(e.Topic)),
			e.Text,
		); err != nil {
			return err
		}
	}
	return nil
}

func newClassifyCmd(app *App) *cobra.Command {
	var topicsFile string

	cmd := &cobra.Command{
		Use:   "classify [TITLE...]",
		Short: "Show the difficulty and topic of each title (reads stdin lines when no TITLE is given)",
		Example: strings.TrimSpace(`
  listcmp classify "Two Sum (Easy)" "Word Search II (Hard)"
  listcmp classify --format text < mylist.txt
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.classifier(topicsFile)
			if err != nil {
				return writeErr(cmd, err)
			}
			titles := args
			if len(titles) == 0 {
				titles, err = readTitles(cmd.InOrStdin())
				if err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, classification(order.Annotate(titles, c)))
		},
	}

	cmd.Flags().StringVar(&topicsFile, "topics", "", "YAML file of topic keyword overrides")

	return cmd
}

// readTitles returns the trimmed non-blank lines of r.
func readTitles(r io.Reader) ([]string, error) {
	var titles []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			titles = append(titles, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read titles: %w", err)
	}
	return titles, nil
}
