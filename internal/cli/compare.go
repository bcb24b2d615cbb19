package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"listcmp/internal/format"
	"listcmp/internal/model"
	"listcmp/internal/report"
	"listcmp/internal/seed"
	"listcmp/internal/store"
	"listcmp/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type compareOptions struct {
	seeds      []string
	sort       string
	topicsFile string
	fold       bool
	watch      bool
	raw        bool
	width      int
}

func newCompareCmd(app *App) *cobra.Command {
	var opts compareOptions

	cmd := &cobra.Command{
		Use:   "compare [FILE...]",
		Short: "Compare lists: unique questions per list, shared questions, totals",
		Long: strings.TrimSpace(`
Each FILE holds one or more lists:

  *.txt (or anything else)  one list, one title per line, named after the file
  *.yaml, *.yml, *.json     {lists: [{name: ..., questions: ...}]}
  -                         one list read from stdin

With no FILE and no --seed, the built-in lists are compared.
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			ro, err := app.reportOptions(opts)
			if err != nil {
				return writeErr(cmd, err)
			}
			if opts.watch {
				return runCompareWatch(cmd, app, args, opts, ro)
			}
			return runCompareOnce(cmd, app, args, opts, ro)
		},
	}

	cmd.Flags().StringArrayVar(&opts.seeds, "seed", nil, "Include a built-in list (repeatable; see `listcmp seeds`)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "Result order (none|difficulty|topic)")
	cmd.Flags().StringVar(&opts.topicsFile, "topics", "", "YAML file of topic keyword overrides")
	cmd.Flags().BoolVar(&opts.fold, "fold", false, "Fold Unicode compatibility forms (e.g. full-width letters) before comparing")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Re-run whenever an input file changes")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "With --format markdown, print the markdown source")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Truncate titles to this many columns in text output (0 = no limit)")

	return cmd
}

func (app *App) reportOptions(opts compareOptions) (report.Options, error) {
	mode, err := app.sortMode(opts.sort)
	if err != nil {
		return report.Options{}, err
	}
	c, err := app.classifier(opts.topicsFile)
	if err != nil {
		return report.Options{}, err
	}
	return report.Options{
		Normalizer: app.normalizer(opts.fold),
		Sort:       mode,
		Classifier: c,
	}, nil
}

// loadLists returns the seed lists followed by the lists read from paths.
// With neither, both built-in lists are used.
func loadLists(ctx context.Context, paths, seeds []string, stdin io.Reader) ([]model.List, error) {
	if len(paths) == 0 && len(seeds) == 0 {
		seeds = seed.Names()
	}
	var lists []model.List
	for _, name := range seeds {
		l, ok := seed.List(name, store.NewListID())
		if !ok {
			return nil, errNotFound("seed", name)
		}
		lists = append(lists, l)
	}
	fromFiles, err := store.LoadFiles(ctx, paths, stdin)
	if err != nil {
		return nil, err
	}
	return append(lists, fromFiles...), nil
}

func seedLists(names []string) []model.List {
	lists := make([]model.List, 0, len(names))
	for _, name := range names {
		if l, ok := seed.List(name, store.NewListID()); ok {
			lists = append(lists, l)
		}
	}
	return lists
}

func runCompareOnce(cmd *cobra.Command, app *App, args []string, opts compareOptions, ro report.Options) error {
	lists, err := loadLists(cmd.Context(), args, opts.seeds, cmd.InOrStdin())
	if err != nil {
		return writeErr(cmd, err)
	}
	r := report.Build(lists, ro)
	app.logger.Debug("compared lists",
		zap.Int("lists", r.Stats.TotalLists),
		zap.Int("distinct", r.Stats.TotalUniqueQuestions),
		zap.Int("shared", r.Stats.SharedQuestions),
		zap.String("sort", string(r.Sort)),
	)
	if err := writeReport(cmd, app, r, opts, ro); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

func runCompareWatch(cmd *cobra.Command, app *App, args []string, opts compareOptions, ro report.Options) error {
	if len(args) == 0 {
		return writeErr(cmd, errUsage("--watch needs at least one FILE"))
	}
	for _, p := range args {
		if p == store.StdinPath {
			return writeErr(cmd, errUsage("--watch cannot read stdin (%s)", store.StdinPath))
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := runCompareOnce(cmd, app, args, opts, ro); err != nil {
		return err
	}

	w, err := watch.New(args, func(changed []string) {
		app.logger.Info("inputs changed, comparing again", zap.Strings("paths", changed))
		fmt.Fprintln(cmd.OutOrStdout())
		// Errors were already written to stderr; keep watching.
		_ = runCompareOnce(cmd, app, args, opts, ro)
	}, watch.WithLogger(app.logger))
	if err != nil {
		return writeErr(cmd, err)
	}
	return w.Run(ctx)
}

func writeReport(cmd *cobra.Command, app *App, r report.Report, opts compareOptions, ro report.Options) error {
	f, err := format.Parse(app.Format)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var p report.Printer
	switch f {
	case format.JSON, format.EDN:
		p = report.PrinterFunc(func(w io.Writer, r report.Report) error {
			return format.Write(w, r, f, app.PrettyJSON)
		})
	case format.Text:
		st := app.styles(out)
		p = report.PrinterFunc(func(w io.Writer, r report.Report) error {
			_, err := io.WriteString(w, report.RenderText(r, st, opts.width))
			return err
		})
	case format.Markdown:
		p = report.PrinterFunc(func(w io.Writer, r report.Report) error {
			md := report.Markdown(r)
			if !opts.raw {
				width := opts.width
				if width <= 0 {
					width = 80
				}
				md = report.RenderMarkdown(md, width) + "\n"
			}
			_, err := io.WriteString(w, md)
			return err
		})
	case format.Template:
		tp, err := app.templatePrinter(ro.Classifier)
		if err != nil {
			return err
		}
		p = tp
	}
	return p.Print(out, r)
}
