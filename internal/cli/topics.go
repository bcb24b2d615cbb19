package cli

import (
	"fmt"
	"io"
	"strings"

	"listcmp/internal/classify"
	"listcmp/internal/report"

	"github.com/spf13/cobra"
)

type topicInfo struct {
	Name         string   `json:"name"`
	Index        int      `json:"index"`
	KeywordCount int      `json:"keywordCount"`
	Keywords     []string `json:"keywords,omitempty"`
}

type topicList []topicInfo

func (tl topicList) WriteText(w io.Writer, st report.Styles) error {
	for _, t := range tl {
		line := fmt.Sprintf("%2d  %s %s", t.Index+1, st.Heading.Render(t.Name), st.Muted.Render(fmt.Sprintf("(%d keywords)", t.KeywordCount)))
		if len(t.Keywords) > 0 {
			line += "\n    " + strings.Join(t.Keywords, ", ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func newTopicsCmd(app *App) *cobra.Command {
	var (
		withKeywords bool
		topicsFile   string
	)

	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List topic categories in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.classifier(topicsFile)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := make(topicList, 0, len(classify.Topics()))
			for _, t := range classify.Topics() {
				kws := c.Keywords(t)
				info := topicInfo{Name: t.String(), Index: t.Index(), KeywordCount: len(kws)}
				if withKeywords {
					info.Keywords = kws
				}
				out = append(out, info)
			}
			return writeOut(cmd, app, out)
		},
	}

	cmd.Flags().BoolVar(&withKeywords, "keywords", false, "Include each topic's keywords")
	cmd.Flags().StringVar(&topicsFile, "topics", "", "YAML file of topic keyword overrides")

	return cmd
}
