package cli

import (
	"commentbox/internal/config"
	"commentbox/internal/format"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, notes, err := loadSettings(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			path := app.ConfigPath
			if path == "" {
				path, _ = config.DefaultPath(nil)
			}
			if notes == nil {
				notes = []config.Note{}
			}
			return writeOut(cmd, app, format.Envelope{
				Data: settings,
				Meta: map[string]any{
					"path":  path,
					"order": settings.OrderOfComments.String(),
					"notes": notes,
				},
			})
		},
	}
}
