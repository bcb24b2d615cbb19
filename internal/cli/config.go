package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"listcmp/internal/format"
	"listcmp/internal/order"
	"listcmp/internal/report"
	"listcmp/internal/store"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type configView struct {
	Path   string        `json:"path"`
	Config *store.Config `json:"config"`
}

func (cv configView) WriteText(w io.Writer, st report.Styles) error {
	b, err := yaml.Marshal(cv.Config)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, st.Muted.Render("# "+cv.Path)); err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change defaults stored in config.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, app.configView())
		},
	}
	cmd.AddCommand(newConfigSetCmd(app))
	return cmd
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "set KEY VALUE",
		Short:     "Set one config value",
		Args:      cobra.ExactArgs(2),
		ValidArgs: store.ConfigKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.configDir()
			if dir == "" {
				return writeErr(cmd, errUsage("no config directory; pass --config-dir"))
			}
			if err := validateConfigValue(args[0], args[1]); err != nil {
				return writeErr(cmd, err)
			}
			cfg := app.config()
			if err := cfg.Set(args[0], args[1]); err != nil {
				return writeErr(cmd, err)
			}
			if err := store.SaveConfigTo(dir, cfg); err != nil {
				return writeErr(cmd, fmt.Errorf("save config: %w", err))
			}
			app.cfg = cfg
			return writeOut(cmd, app, app.configView())
		},
	}
}

func validateConfigValue(key, value string) error {
	switch key {
	case "sort":
		_, err := order.ParseSortMode(value)
		return err
	case "format":
		_, err := format.Parse(value)
		return err
	}
	return nil
}

func (app *App) configView() configView {
	return configView{
		Path:   filepath.Join(app.configDir(), "config.yaml"),
		Config: app.config(),
	}
}
