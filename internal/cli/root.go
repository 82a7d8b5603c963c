package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"commentbox/internal/config"
	"commentbox/internal/form"
	"commentbox/internal/format"
	"commentbox/internal/logging"
	"commentbox/internal/model"
	"commentbox/internal/thread"
	"commentbox/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	ConfigPath string
	DebugLog   string
	PrettyJSON bool

	allowFutureDate      bool
	order                int
	showAddonCloseButton bool

	now func() time.Time
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	if app.now == nil {
		app.now = time.Now
	}

	cmd := &cobra.Command{
		Use:          "commentbox",
		Short:        "Terminal comment box",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive comment box
  commentbox

  # Newest comments on top, no future dates
  commentbox --order 2 --allow-future-date=false

  # Show the effective settings
  commentbox config --pretty

  # Validate a comment without the UI
  commentbox check --name Ann --text "hello" --date 2024-05-10
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		log, err := logging.New(app.DebugLog)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.log = log
		return nil
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.log != nil {
			_ = app.log.Sync()
		}
		return nil
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigPath, "config", envOr("COMMENTBOX_CONFIG", ""), "Path to a YAML config file (default: $COMMENTBOX_CONFIG_DIR/config.yaml or ~/.commentbox/config.yaml)")
	pf.StringVar(&app.DebugLog, "debug-log", envOr(logging.EnvDebugLog, ""), "Write a JSON debug log to this file")
	pf.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	pf.BoolVar(&app.allowFutureDate, "allow-future-date", true, "Accept dates after today")
	pf.IntVar(&app.order, "order", 0, "Where new comments go: 0 append, 1 prepend, 2 newest first, 3 oldest first")
	pf.BoolVar(&app.showAddonCloseButton, "show-close-button", true, "Offer the close action on comments")

	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newCheckCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	settings, _, err := loadSettings(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	ctrl := newController(app, settings, form.InputPicker)
	return tui.Run(ctrl, app.logger())
}

// loadSettings layers defaults, the config file, the environment and the
// flags the user actually set. Ignored values go to the debug log.
func loadSettings(cmd *cobra.Command, app *App) (model.Settings, []config.Note, error) {
	flags := cmd.Flags()
	var ov config.Overrides
	if flags.Changed("allow-future-date") {
		v := app.allowFutureDate
		ov.AllowFutureDate = &v
	}
	if flags.Changed("order") {
		v := app.order
		ov.OrderOfComments = &v
	}
	if flags.Changed("show-close-button") {
		v := app.showAddonCloseButton
		ov.ShowAddonCloseButton = &v
	}
	settings, notes, err := config.Load(config.Source{Path: app.ConfigPath, Overrides: ov})
	if err != nil {
		return settings, nil, err
	}
	for _, n := range notes {
		app.logger().Debug("config value ignored",
			zap.String("source", n.Source),
			zap.String("key", n.Key),
			zap.String("value", n.Value),
			zap.String("reason", n.Reason),
		)
	}
	return settings, notes, nil
}

func newController(app *App, settings model.Settings, dateKind form.InputKind, opts ...form.Option) *form.Controller {
	base := []form.Option{
		form.WithClock(app.now),
		form.WithLogger(app.logger()),
	}
	return form.NewController(settings, form.New(dateKind), thread.New(settings.OrderOfComments), append(base, opts...)...)
}

func (app *App) logger() *zap.Logger {
	if app.log == nil {
		return zap.NewNop()
	}
	return app.log
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
