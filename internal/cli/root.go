package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"listcmp/internal/classify"
	"listcmp/internal/compare"
	"listcmp/internal/format"
	"listcmp/internal/order"
	"listcmp/internal/report"
	"listcmp/internal/seed"
	"listcmp/internal/store"
	"listcmp/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type App struct {
	Format     string
	PrettyJSON bool
	Verbose    bool
	Color      string
	ConfigDir  string
	Template   string

	cfg    *store.Config
	logger *zap.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:          "listcmp",
		Short:        "Compare problem lists: what is unique to each, what they share",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive UI with the built-in lists
  listcmp

  # Compare the built-in lists, grouped by topic
  listcmp compare --sort topic --format text

  # Compare your own lists (text files: one title per line)
  listcmp compare mine.txt friend.txt --seed neetcode150

  # Shortcut for: listcmp compare mine.txt friend.txt
  listcmp mine.txt friend.txt
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive UI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		app.logger = newLogger(cmd.ErrOrStderr(), app.Verbose)
		if _, _, err := report.ColorProfile(app.Color); err != nil {
			return writeErr(cmd, err)
		}
		cfg, err := app.loadConfig()
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		if !cmd.Flags().Changed("format") && os.Getenv("LISTCMP_FORMAT") == "" && cfg.Format != "" {
			if _, err := format.Parse(cfg.Format); err != nil {
				app.logger.Warn("ignoring format from config", zap.Error(err))
			} else {
				app.Format = cfg.Format
			}
		}
		if _, err := format.Parse(app.Format); err != nil {
			return writeErr(cmd, err)
		}
		app.logger.Debug("command start",
			zap.String("command", cmd.CommandPath()),
			zap.String("format", app.Format),
			zap.String("configDir", app.configDir()),
		)
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		_ = app.logger.Sync()
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("LISTCMP_FORMAT", "json"), "Output format (json|edn|text|markdown|template)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Debug logging on stderr")
	cmd.PersistentFlags().StringVar(&app.Color, "color", envOr("LISTCMP_COLOR", "auto"), "Colour for text output (auto|always|never)")
	cmd.PersistentFlags().StringVar(&app.ConfigDir, "config-dir", envOr("LISTCMP_CONFIG_DIR", ""), "Config directory (default ~/.listcmp)")
	cmd.PersistentFlags().StringVar(&app.Template, "template", "", "Go template used with --format template (sprig functions available)")

	cmd.AddCommand(newCompareCmd(app))
	cmd.AddCommand(newClassifyCmd(app))
	cmd.AddCommand(newTopicsCmd(app))
	cmd.AddCommand(newSeedsCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg.EncoderConfig),
		zapcore.AddSync(w),
		cfg.Level,
	)
	return zap.New(core)
}

func (app *App) configDir() string {
	if app.ConfigDir != "" {
		return app.ConfigDir
	}
	dir, err := store.ConfigDir()
	if err != nil {
		return ""
	}
	return dir
}

func (app *App) loadConfig() (*store.Config, error) {
	dir := app.configDir()
	if dir == "" {
		return &store.Config{}, nil
	}
	cfg, err := store.LoadConfigFrom(dir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (app *App) config() *store.Config {
	if app.cfg == nil {
		return &store.Config{}
	}
	return app.cfg
}

// classifier resolves the topic table: the flag wins over config.topicsFile.
func (app *App) classifier(topicsFile string) (*classify.Classifier, error) {
	path := strings.TrimSpace(topicsFile)
	if path == "" {
		path = app.config().TopicsFile
	}
	c, err := classify.FromFile(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		app.logger.Debug("loaded topic overrides", zap.String("path", path))
	}
	return c, nil
}

// sortMode resolves the sort mode: flag, then LISTCMP_SORT, then config.
func (app *App) sortMode(flag string) (order.SortMode, error) {
	s := strings.TrimSpace(flag)
	if s == "" {
		s = os.Getenv("LISTCMP_SORT")
	}
	if s == "" {
		s = app.config().Sort
	}
	return order.ParseSortMode(s)
}

func (app *App) normalizer(fold bool) compare.Normalizer {
	return compare.Normalizer{FoldCompat: fold || app.config().Fold}
}

func (app *App) styles(w io.Writer) report.Styles {
	profile, force, _ := report.ColorProfile(app.Color)
	return report.NewStyles(report.NewRenderer(w, profile, force))
}

func runTUI(app *App) error {
	c, err := app.classifier("")
	if err != nil {
		return err
	}
	mode, err := app.sortMode("")
	if err != nil {
		return err
	}
	theme := ""
	if app.config().TUI != nil {
		theme = app.config().TUI.Theme
	}
	return tui.Run(tui.Options{
		Lists:      seedLists(seed.Names()),
		Sort:       mode,
		Classifier: c,
		Normalizer: app.normalizer(false),
		Theme:      theme,
	})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// textView is implemented by payloads that have a human rendering for
// --format text and --format markdown.
type textView interface {
	WriteText(w io.Writer, st report.Styles) error
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	f, err := format.Parse(app.Format)
	if err != nil {
		return writeErr(cmd, err)
	}
	out := cmd.OutOrStdout()
	switch {
	case f.Structured():
		return format.Write(out, v, f, app.PrettyJSON)
	case f == format.Template:
		p, err := app.templatePrinter(nil)
		if err != nil {
			return writeErr(cmd, err)
		}
		return p.Execute(out, v)
	}
	if tv, ok := v.(textView); ok {
		return tv.WriteText(out, app.styles(out))
	}
	return format.Write(out, v, format.JSON, true)
}

func (app *App) templatePrinter(c *classify.Classifier) (report.TemplatePrinter, error) {
	if strings.TrimSpace(app.Template) == "" {
		return report.TemplatePrinter{}, fmt.Errorf("--format template requires --template")
	}
	p, err := report.NewTemplatePrinter(app.Template, c)
	if err != nil {
		return report.TemplatePrinter{}, fmt.Errorf("parse template: %w", err)
	}
	return p, nil
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
