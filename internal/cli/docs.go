package cli

import (
	"fmt"
	"io"

	"listcmp/internal/docs"
	"listcmp/internal/report"

	"github.com/spf13/cobra"
)

type docsTopics struct {
	Topics []string `json:"topics"`
}

func (d docsTopics) WriteText(w io.Writer, _ report.Styles) error {
	for _, t := range d.Topics {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

type docsPage struct {
	Topic    string `json:"topic"`
	Markdown string `json:"markdown"`
}

func (d docsPage) WriteText(w io.Writer, _ report.Styles) error {
	_, err := fmt.Fprintln(w, report.RenderMarkdown(d.Markdown, 80))
	return err
}

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show documentation topics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, docsTopics{Topics: docs.Topics()})
			}

			body, ok := docs.Get(args[0])
			if !ok {
				return writeErr(cmd, fmt.Errorf("%w (run `listcmp docs` to list topics)", errNotFound("docs topic", args[0])))
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, docsPage{Topic: args[0], Markdown: body})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no envelope)")

	return cmd
}
