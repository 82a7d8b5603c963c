package cli

import (
	"commentbox/internal/comment"
	"commentbox/internal/datefmt"
	"commentbox/internal/form"
	"commentbox/internal/format"
	"commentbox/internal/model"
	"commentbox/internal/validate"

	"github.com/spf13/cobra"
)

type checkResult struct {
	Comment     model.Comment        `json:"comment"`
	Label       string               `json:"label"`
	Affordances []comment.Affordance `json:"affordances"`
}

func newCheckCmd(app *App) *cobra.Command {
	var name, text, date string

	cmd := &cobra.Command{
		Use:           "check",
		Short:         "Run one submission through validation without the UI",
		Args:          cobra.NoArgs,
		SilenceErrors: true, // rejections are written once by writeErr
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, _, err := loadSettings(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}

			now := app.now()
			if !cmd.Flags().Changed("date") {
				date = datefmt.FormatInput(now, "-")
			}

			ctrl := newController(app, settings, form.InputTyping, form.WithImmediateFocus())
			f := ctrl.Form()
			f.SetValue(validate.FieldName, name)
			f.SetValue(validate.FieldText, text)
			f.SetValue(validate.FieldDate, date)

			out := ctrl.Submit()
			if out.Err != nil {
				return writeErr(cmd, errRejected(out.Err))
			}

			card := comment.Render(out.Comment, now, comment.RenderOptions{ShowCloseButton: settings.ShowAddonCloseButton})
			return writeOut(cmd, app, format.Envelope{Data: checkResult{
				Comment:     out.Comment,
				Label:       card.DateLabel,
				Affordances: card.Affordances,
			}})
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return writeErr(c, err)
	})
	cmd.Flags().StringVar(&name, "name", "", "Author name")
	cmd.Flags().StringVar(&text, "text", "", "Comment text")
	cmd.Flags().StringVar(&date, "date", "", "Comment date, YYYY-MM-DD or YYYY.MM.DD (default: today)")
	return cmd
}
